package game

import (
	"image/color"
	"strconv"

	"github.com/google/uuid"
)

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . Renderer,HUD,Listener

// Renderer draws a frame from a snapshot. It must not hold on to game state.
type Renderer interface {
	Render(s Snapshot)
}

// HUD shows score, health and ammo. It is called once per tick, after all
// mutations for that tick are done.
type HUD interface {
	Update(status HUDStatus)
}

// Listener receives game events such as shots and kills.
type Listener interface {
	HandleEvent(ev Event)
}

// UnlimitedAmmo is reported as the ammo count while default bullets are equipped.
const UnlimitedAmmo = -1

// HUDStatus is what the HUD displays.
type HUDStatus struct {
	Phase         Phase
	Score         int
	HealthPercent int
	Bullet        BulletKind

	// Ammo is UnlimitedAmmo for BulletDefault
	Ammo int
}

// AmmoLabel renders the ammo count, or "unlimited" for default bullets.
func (s HUDStatus) AmmoLabel() string {
	if s.Ammo == UnlimitedAmmo {
		return "unlimited"
	}
	return strconv.Itoa(s.Ammo)
}

// EventKind enumerates game events
type EventKind int

const (
	EventGameStarted EventKind = iota
	EventShot
	EventEnemyKilled
	EventPlayerHit
	EventPickupCollected
	EventPickupExpired
	EventGameOver
)

var eventKindNames = map[EventKind]string{
	EventGameStarted:     "game_started",
	EventShot:            "shot",
	EventEnemyKilled:     "enemy_killed",
	EventPlayerHit:       "player_hit",
	EventPickupCollected: "pickup_collected",
	EventPickupExpired:   "pickup_expired",
	EventGameOver:        "game_over",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event describes something that happened during a tick.
type Event struct {
	Kind EventKind

	// Where it happened
	X, Y float64

	// Owner of the shot, for EventShot
	Owner Owner

	// Pickup kind, for pickup events
	Pickup PickupKind

	// Score after the event
	Score int

	Session uuid.UUID
}

// TankView is a read-only copy of a tank.
type TankView struct {
	X, Y, Radius       float64
	Angle, TurretAngle float64
	Health, MaxHealth  int
	Color              color.RGBA
	Dead               bool
}

// ProjectileView is a read-only copy of a projectile.
type ProjectileView struct {
	X, Y, Radius, Angle float64
	Owner               Owner
	Kind                BulletKind
	Shape               BulletShape
	Color               color.RGBA
}

// ParticleView is a read-only copy of a particle.
type ParticleView struct {
	X, Y, Radius, Alpha float64
	Color               color.RGBA
}

// PickupView is a read-only copy of a pickup.
type PickupView struct {
	Kind                      PickupKind
	X, Y, Radius, FloatOffset float64

	// Bullet and Ammo are set for bullet packages, Heal for first aid kits
	Bullet BulletKind
	Ammo   int
	Heal   int

	Color color.RGBA
}

// Snapshot is the read-only state a Renderer draws from.
type Snapshot struct {
	Phase   Phase
	Session uuid.UUID
	Bounds  Bounds
	Score   int

	HasPlayer bool
	Player    TankView

	Enemies     []TankView
	Projectiles []ProjectileView
	Particles   []ParticleView
	Pickups     []PickupView
}
