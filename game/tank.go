package game

import (
	"fmt"
	"math"
	"time"
)

// turretReach is how far ahead of the tank center, in radii, shots appear.
const turretReach = 1.5

// ProjectileSink receives projectiles fired by tanks.
type ProjectileSink interface {
	AddProjectile(p *Projectile)
}

// Tank is the shared state of the player and enemy tanks.
type Tank struct {
	Entity

	// Speed in pixels per tick
	Speed float64

	// Body and turret headings in radians, 0 points east
	Angle       float64
	TurretAngle float64

	// Health stays within [0, MaxHealth]
	Health    int
	MaxHealth int

	FireRate time.Duration

	lastShot time.Duration
	hasFired bool
}

func newTank(x, y float64, profile TankProfile) Tank {
	if profile.MaxHealth <= 0 {
		panic(fmt.Sprintf("game: tank max health must be > 0, got %d", profile.MaxHealth))
	}
	return Tank{
		Entity:    newEntity(x, y, profile.Radius, profile.Color),
		Speed:     profile.Speed,
		Health:    profile.MaxHealth,
		MaxHealth: profile.MaxHealth,
		FireRate:  profile.FireRate,
	}
}

// CanShoot reports whether the cooldown has elapsed at now.
// A tank that never fired can always shoot.
func (t *Tank) CanShoot(now time.Duration) bool {
	return !t.hasFired || now-t.lastShot > t.FireRate
}

func (t *Tank) recordShot(now time.Duration) {
	t.lastShot = now
	t.hasFired = true
}

// Muzzle returns the turret tip where new projectiles appear.
func (t *Tank) Muzzle() (float64, float64) {
	reach := t.Radius * turretReach
	return t.X + math.Cos(t.TurretAngle)*reach, t.Y + math.Sin(t.TurretAngle)*reach
}

// TakeDamage lowers health, never below zero.
func (t *Tank) TakeDamage(amount int) {
	t.Health = clampInt(t.Health-amount, 0, t.MaxHealth)
}

// Heal raises health, never above MaxHealth.
func (t *Tank) Heal(amount int) {
	t.Health = clampInt(t.Health+amount, 0, t.MaxHealth)
}

// IsDead reports whether health ran out.
func (t *Tank) IsDead() bool {
	return t.Health <= 0
}

// HealthPercent returns health as 0-100.
func (t *Tank) HealthPercent() int {
	return t.Health * 100 / t.MaxHealth
}

// View returns a read-only copy for renderers.
func (t *Tank) View() TankView {
	return TankView{
		X:           t.X,
		Y:           t.Y,
		Radius:      t.Radius,
		Angle:       t.Angle,
		TurretAngle: t.TurretAngle,
		Health:      t.Health,
		MaxHealth:   t.MaxHealth,
		Color:       t.Color,
		Dead:        t.IsDead(),
	}
}

// MovementKeys is the held state of the four movement directions.
type MovementKeys struct {
	Up, Down, Left, Right bool
}

// Any reports whether at least one key is held.
func (k MovementKeys) Any() bool {
	return k.Up || k.Down || k.Left || k.Right
}

// Player is the tank driven by the input source.
type Player struct {
	Tank

	Keys MovementKeys

	// Bullet is the equipped kind. Ammo counts remaining special shots and
	// is zero whenever Bullet is BulletDefault.
	Bullet BulletKind
	Ammo   int

	bullets BulletTable
}

// NewPlayer creates a player tank at the given position.
func NewPlayer(x, y float64, bullets BulletTable) *Player {
	if bullets == nil {
		bullets = DefaultBulletTable()
	}
	return &Player{
		Tank:    newTank(x, y, GetTankProfile(TankPlayer)),
		Bullet:  BulletDefault,
		bullets: bullets,
	}
}

// AimAt points the turret at a playfield coordinate.
func (p *Player) AimAt(x, y float64) {
	p.TurretAngle = math.Atan2(y-p.Y, x-p.X)
}

// Update moves the player by the held keys and keeps it inside b.
// Diagonal movement is not normalized.
func (p *Player) Update(b Bounds) {
	var dx, dy float64
	if p.Keys.Up {
		dy -= p.Speed
	}
	if p.Keys.Down {
		dy += p.Speed
	}
	if p.Keys.Left {
		dx -= p.Speed
	}
	if p.Keys.Right {
		dx += p.Speed
	}
	p.X = Clamp(p.X+dx, p.Radius, b.Width-p.Radius)
	p.Y = Clamp(p.Y+dy, p.Radius, b.Height-p.Radius)

	if dx != 0 || dy != 0 {
		p.Angle = math.Atan2(dy, dx)
	}
}

// Shoot fires the equipped bullet kind from the turret tip. It returns false,
// and does nothing, while the cooldown is running.
func (p *Player) Shoot(now time.Duration, sink ProjectileSink) bool {
	if !p.CanShoot(now) {
		return false
	}
	cfg := p.bullets.Get(p.Bullet)
	x, y := p.Muzzle()
	sink.AddProjectile(NewProjectile(x, y, p.TurretAngle, OwnerPlayer, cfg, cfg.Color))

	if p.Bullet != BulletDefault {
		p.Ammo--
		if p.Ammo <= 0 {
			p.Bullet = BulletDefault
			p.Ammo = 0
		}
	}
	p.recordShot(now)
	return true
}

// EquipBullets swaps the equipped kind for kind with ammo shots.
// Default or an empty clip leaves the player on default bullets.
func (p *Player) EquipBullets(kind BulletKind, ammo int) {
	if kind == BulletDefault || ammo <= 0 {
		p.Bullet = BulletDefault
		p.Ammo = 0
		return
	}
	p.Bullet = kind
	p.Ammo = ammo
}

// Enemy is an AI tank that closes in on the player and fires on cooldown.
type Enemy struct {
	Tank

	target   *Player
	standoff float64
	bullet   BulletKindConfig
}

// NewEnemy creates an enemy tank chasing target. It stops approaching once
// within standoff pixels and fires bullet-profile projectiles.
func NewEnemy(x, y float64, target *Player, standoff float64, bullet BulletKindConfig) *Enemy {
	return &Enemy{
		Tank:     newTank(x, y, GetTankProfile(TankEnemy)),
		target:   target,
		standoff: standoff,
		bullet:   bullet,
	}
}

// Update turns body and turret to the player and advances while farther
// than the standoff distance.
func (e *Enemy) Update() {
	if e.target == nil {
		return
	}
	dx := e.target.X - e.X
	dy := e.target.Y - e.Y
	angle := math.Atan2(dy, dx)
	e.Angle = angle
	e.TurretAngle = angle

	if math.Hypot(dx, dy) > e.standoff {
		e.X += math.Cos(angle) * e.Speed
		e.Y += math.Sin(angle) * e.Speed
	}
}

// Shoot fires at the current turret angle once the cooldown has elapsed.
func (e *Enemy) Shoot(now time.Duration, sink ProjectileSink) bool {
	if !e.CanShoot(now) {
		return false
	}
	x, y := e.Muzzle()
	sink.AddProjectile(NewProjectile(x, y, e.TurretAngle, OwnerEnemy, e.bullet, e.Color))
	e.recordShot(now)
	return true
}
