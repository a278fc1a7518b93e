package game

import (
	"image/color"
	"time"
)

const (
	bulletPackageRadius = 25
	firstAidKitRadius   = 20

	// pickupFloatStep advances the bobbing animation each tick
	pickupFloatStep = 0.05
)

// FirstAidColor is the tint of first aid kits.
var FirstAidColor = color.RGBA{0xff, 0x2d, 0x55, 0xff}

// PickupKind identifies what a pickup grants
type PickupKind int

const (
	PickupBullets PickupKind = iota
	PickupFirstAid
)

func (k PickupKind) String() string {
	if k == PickupFirstAid {
		return "first-aid"
	}
	return "bullets"
}

// Pickup is a collectable that expires on its own after its lifespan.
type Pickup interface {
	Circle
	Update(now time.Duration)
	Apply(p *Player)
	MarkForDeletion()
	MarkedForDeletion() bool
	View() PickupView
}

type pickupBase struct {
	Entity

	SpawnTime time.Duration
	Lifespan  time.Duration

	// FloatOffset drives the bobbing animation; no gameplay effect
	FloatOffset float64
}

func newPickupBase(x, y, radius float64, clr color.RGBA, now, lifespan time.Duration) pickupBase {
	return pickupBase{
		Entity:    newEntity(x, y, radius, clr),
		SpawnTime: now,
		Lifespan:  lifespan,
	}
}

// Update animates the pickup and marks it once its lifespan is exceeded.
func (b *pickupBase) Update(now time.Duration) {
	b.FloatOffset += pickupFloatStep
	if now-b.SpawnTime > b.Lifespan {
		b.MarkForDeletion()
	}
}

// BulletPackage grants a special bullet kind with a limited clip.
type BulletPackage struct {
	pickupBase

	Kind      BulletKind
	AmmoCount int
}

// NewBulletPackage creates a package spawned at now.
func NewBulletPackage(x, y float64, kind BulletKind, ammo int, clr color.RGBA, now, lifespan time.Duration) *BulletPackage {
	return &BulletPackage{
		pickupBase: newPickupBase(x, y, bulletPackageRadius, clr, now, lifespan),
		Kind:       kind,
		AmmoCount:  ammo,
	}
}

// Apply equips the package's bullets, replacing whatever the player held.
func (b *BulletPackage) Apply(p *Player) {
	p.EquipBullets(b.Kind, b.AmmoCount)
}

// View returns a read-only copy for renderers.
func (b *BulletPackage) View() PickupView {
	return PickupView{
		Kind:        PickupBullets,
		X:           b.X,
		Y:           b.Y,
		Radius:      b.Radius,
		FloatOffset: b.FloatOffset,
		Bullet:      b.Kind,
		Ammo:        b.AmmoCount,
		Color:       b.Color,
	}
}

// FirstAidKit restores a fixed amount of health, capped at max health.
type FirstAidKit struct {
	pickupBase

	HealAmount int
}

// NewFirstAidKit creates a kit spawned at now.
func NewFirstAidKit(x, y float64, heal int, now, lifespan time.Duration) *FirstAidKit {
	return &FirstAidKit{
		pickupBase: newPickupBase(x, y, firstAidKitRadius, FirstAidColor, now, lifespan),
		HealAmount: heal,
	}
}

// Apply heals the player.
func (k *FirstAidKit) Apply(p *Player) {
	p.Heal(k.HealAmount)
}

// View returns a read-only copy for renderers.
func (k *FirstAidKit) View() PickupView {
	return PickupView{
		Kind:        PickupFirstAid,
		X:           k.X,
		Y:           k.Y,
		Radius:      k.Radius,
		FloatOffset: k.FloatOffset,
		Heal:        k.HealAmount,
		Color:       k.Color,
	}
}
