package game

// World owns every entity collection of a running game. Entities refer to
// each other only by non-owning pointers (an Enemy's target).
type World struct {
	Bounds Bounds

	Player *Player

	Projectiles    []*Projectile
	Enemies        []*Enemy
	Particles      []*Particle
	BulletPackages []*BulletPackage
	FirstAidKits   []*FirstAidKit
}

// NewWorld creates an empty world around player
func NewWorld(bounds Bounds, player *Player) *World {
	return &World{
		Bounds:         bounds,
		Player:         player,
		Projectiles:    make([]*Projectile, 0, 64),
		Enemies:        make([]*Enemy, 0, 32),
		Particles:      make([]*Particle, 0, 256),
		BulletPackages: make([]*BulletPackage, 0, 4),
		FirstAidKits:   make([]*FirstAidKit, 0, 4),
	}
}

// AddProjectile implements ProjectileSink.
func (w *World) AddProjectile(p *Projectile) {
	w.Projectiles = append(w.Projectiles, p)
}

// Compact drops every entity marked for deletion, one pass per collection.
func (w *World) Compact() {
	w.Projectiles = compact(w.Projectiles)
	w.Enemies = compact(w.Enemies)
	w.Particles = compact(w.Particles)
	w.BulletPackages = compact(w.BulletPackages)
	w.FirstAidKits = compact(w.FirstAidKits)
}

type deletable interface {
	MarkedForDeletion() bool
}

// compact filters items in place, preserving order.
func compact[T deletable](items []T) []T {
	kept := items[:0]
	for _, it := range items {
		if !it.MarkedForDeletion() {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}

// EntityCount returns the number of live entities across all collections,
// the player included.
func (w *World) EntityCount() int {
	n := len(w.Projectiles) + len(w.Enemies) + len(w.Particles) + len(w.BulletPackages) + len(w.FirstAidKits)
	if w.Player != nil {
		n++
	}
	return n
}
