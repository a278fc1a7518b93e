package game

import (
	"fmt"
	"image/color"
	"math"
)

// Entity is the shared base of everything on the playfield: a positioned
// collision circle that can be flagged for removal.
//
// Removal is two-phase. Systems call MarkForDeletion while iterating and the
// owning World drops marked entities in Compact at the end of the tick, so
// collections are never spliced mid-iteration.
type Entity struct {
	// Position in playfield coordinates
	X, Y float64

	// Collision radius in pixels
	Radius float64

	Color color.RGBA

	markedForDeletion bool
}

func newEntity(x, y, radius float64, clr color.RGBA) Entity {
	if radius < 0 || math.IsNaN(radius) {
		panic(fmt.Sprintf("game: entity radius must be >= 0, got %v", radius))
	}
	return Entity{X: x, Y: y, Radius: radius, Color: clr}
}

// Center implements Circle.
func (e *Entity) Center() (float64, float64) {
	return e.X, e.Y
}

// CollisionRadius implements Circle.
func (e *Entity) CollisionRadius() float64 {
	return e.Radius
}

// MarkForDeletion flags the entity for removal at the end of the tick.
func (e *Entity) MarkForDeletion() {
	e.markedForDeletion = true
}

// MarkedForDeletion reports whether the entity is waiting to be culled.
func (e *Entity) MarkedForDeletion() bool {
	return e.markedForDeletion
}

// Owner says which side fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	switch o {
	case OwnerPlayer:
		return "player"
	case OwnerEnemy:
		return "enemy"
	default:
		return fmt.Sprintf("Owner(%d)", int(o))
	}
}

// Projectile is a bullet in flight.
type Projectile struct {
	Entity

	// Velocity in pixels per tick
	VX, VY float64

	// Heading in radians, 0 points east
	Angle float64

	Owner  Owner
	Damage int
	Kind   BulletKind
	Shape  BulletShape
}

// NewProjectile creates a projectile heading along angle with the speed,
// width and damage of cfg. clr overrides the kind's color.
func NewProjectile(x, y, angle float64, owner Owner, cfg BulletKindConfig, clr color.RGBA) *Projectile {
	return &Projectile{
		Entity: newEntity(x, y, cfg.Width, clr),
		VX:     math.Cos(angle) * cfg.Speed,
		VY:     math.Sin(angle) * cfg.Speed,
		Angle:  angle,
		Owner:  owner,
		Damage: cfg.Damage,
		Kind:   cfg.Kind,
		Shape:  cfg.Shape,
	}
}

// Update moves the projectile one tick and marks it once it leaves bounds.
func (p *Projectile) Update(b Bounds) {
	p.X += p.VX
	p.Y += p.VY
	if !b.Contains(p.X, p.Y) {
		p.MarkForDeletion()
	}
}

// View returns a read-only copy for renderers.
func (p *Projectile) View() ProjectileView {
	return ProjectileView{
		X:      p.X,
		Y:      p.Y,
		Radius: p.Radius,
		Angle:  p.Angle,
		Owner:  p.Owner,
		Kind:   p.Kind,
		Shape:  p.Shape,
		Color:  p.Color,
	}
}

const (
	particleFriction = 0.95
	particleFade     = 0.02
)

// Particle is a cosmetic spark. It never takes part in gameplay.
type Particle struct {
	Entity

	VX, VY float64

	// Alpha fades from 1 to 0; the particle is removed at 0
	Alpha float64

	Friction float64
}

// NewParticle creates a fully opaque particle.
func NewParticle(x, y, radius float64, clr color.RGBA, vx, vy float64) *Particle {
	return &Particle{
		Entity:   newEntity(x, y, radius, clr),
		VX:       vx,
		VY:       vy,
		Alpha:    1,
		Friction: particleFriction,
	}
}

// Update applies friction, moves and fades the particle.
func (p *Particle) Update() {
	p.VX *= p.Friction
	p.VY *= p.Friction
	p.X += p.VX
	p.Y += p.VY
	p.Alpha -= particleFade
	if p.Alpha <= 0 {
		p.MarkForDeletion()
	}
}

// View returns a read-only copy for renderers.
func (p *Particle) View() ParticleView {
	return ParticleView{
		X:      p.X,
		Y:      p.Y,
		Radius: p.Radius,
		Alpha:  math.Max(p.Alpha, 0),
		Color:  p.Color,
	}
}
