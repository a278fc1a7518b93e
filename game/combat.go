package game

import (
	"image/color"
	"math/rand"
	"time"
)

// hitEffectColor tints the burst shown when an enemy shot lands on the player.
var hitEffectColor = color.RGBA{0xff, 0x00, 0x00, 0xff}

// CombatSystem advances the world's entities and resolves collisions
// between them. Every pairing is a plain O(n*m) circle test; entity counts
// stay small enough that no spatial partitioning is needed.
//
// Nothing is removed while iterating. Hits mark entities for deletion and
// World.Compact drops them at the end of the tick.
type CombatSystem struct {
	world *World
	cfg   Config
	rng   *rand.Rand
	emit  func(Event)

	// Score accumulated by the player this session
	Score int
}

// NewCombatSystem creates a combat system over world. emit may be nil.
func NewCombatSystem(world *World, cfg Config, rng *rand.Rand, emit func(Event)) *CombatSystem {
	if emit == nil {
		emit = func(Event) {}
	}
	return &CombatSystem{
		world: world,
		cfg:   cfg,
		rng:   rng,
		emit:  emit,
	}
}

// AdvanceProjectiles moves every projectile and marks those leaving bounds.
func (c *CombatSystem) AdvanceProjectiles() {
	for _, p := range c.world.Projectiles {
		if p.MarkedForDeletion() {
			continue
		}
		p.Update(c.world.Bounds)
	}
}

// AdvancePickups animates pickups, retires expired ones and applies any the
// player is touching.
func (c *CombatSystem) AdvancePickups(now time.Duration) {
	for _, pkg := range c.world.BulletPackages {
		c.advancePickup(pkg, PickupBullets, now)
	}
	for _, kit := range c.world.FirstAidKits {
		c.advancePickup(kit, PickupFirstAid, now)
	}
}

func (c *CombatSystem) advancePickup(p Pickup, kind PickupKind, now time.Duration) {
	if p.MarkedForDeletion() {
		return
	}
	x, y := p.Center()

	p.Update(now)
	if p.MarkedForDeletion() {
		c.emit(Event{Kind: EventPickupExpired, X: x, Y: y, Pickup: kind})
		return
	}

	player := c.world.Player
	if CircleCollision(p, player) {
		p.Apply(player)
		p.MarkForDeletion()
		c.emit(Event{Kind: EventPickupCollected, X: x, Y: y, Pickup: kind})
	}
}

// AdvanceEnemies steers every enemy toward the player and lets it fire.
func (c *CombatSystem) AdvanceEnemies(now time.Duration) {
	for _, e := range c.world.Enemies {
		if e.MarkedForDeletion() {
			continue
		}
		e.Update()
		if e.Shoot(now, c.world) {
			x, y := e.Muzzle()
			c.emit(Event{Kind: EventShot, X: x, Y: y, Owner: OwnerEnemy})
		}
	}
}

// ResolveContact applies contact damage once per overlapping enemy. The
// damage is per tick, not per second, so overlapping is deadly at any frame rate.
func (c *CombatSystem) ResolveContact() {
	player := c.world.Player
	for _, e := range c.world.Enemies {
		if e.MarkedForDeletion() {
			continue
		}
		if CircleCollision(player, e) {
			player.TakeDamage(c.cfg.ContactDamage)
		}
	}
}

// ResolvePlayerHits destroys each enemy struck by a player projectile along
// with the projectile, and awards the kill score.
func (c *CombatSystem) ResolvePlayerHits() {
	for _, e := range c.world.Enemies {
		if e.MarkedForDeletion() {
			continue
		}
		for _, p := range c.world.Projectiles {
			if p.MarkedForDeletion() || p.Owner != OwnerPlayer {
				continue
			}
			if !CircleCollision(p, e) {
				continue
			}
			p.MarkForDeletion()
			e.MarkForDeletion()
			c.SpawnExplosion(e.X, e.Y, e.Color)
			c.Score += c.cfg.KillScore
			c.emit(Event{Kind: EventEnemyKilled, X: e.X, Y: e.Y})
			break
		}
	}
}

// ResolveEnemyHits applies enemy projectile damage to the player.
func (c *CombatSystem) ResolveEnemyHits() {
	player := c.world.Player
	for _, p := range c.world.Projectiles {
		if player.IsDead() {
			return
		}
		if p.MarkedForDeletion() || p.Owner != OwnerEnemy {
			continue
		}
		if !CircleCollision(p, player) {
			continue
		}
		p.MarkForDeletion()
		c.SpawnExplosion(player.X, player.Y, hitEffectColor)
		player.TakeDamage(p.Damage)
		c.emit(Event{Kind: EventPlayerHit, X: player.X, Y: player.Y})
	}
}

// DestroyPlayer blows up the player. The player is marked and must not be
// touched afterwards.
func (c *CombatSystem) DestroyPlayer() {
	player := c.world.Player
	c.SpawnExplosion(player.X, player.Y, player.Color)
	player.MarkForDeletion()
}

// AdvanceParticles moves and fades every particle.
func (c *CombatSystem) AdvanceParticles() {
	for _, p := range c.world.Particles {
		if p.MarkedForDeletion() {
			continue
		}
		p.Update()
	}
}

// SpawnExplosion bursts ExplosionParticles particles out of (x, y).
func (c *CombatSystem) SpawnExplosion(x, y float64, clr color.RGBA) {
	for i := 0; i < c.cfg.ExplosionParticles; i++ {
		radius := RandomRange(c.rng, 0, 3)
		vx := RandomRange(c.rng, -2.5, 2.5)
		vy := RandomRange(c.rng, -2.5, 2.5)
		c.world.Particles = append(c.world.Particles, NewParticle(x, y, radius, clr, vx, vy))
	}
}
