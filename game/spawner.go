package game

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// IntervalTimer accumulates frame time and fires once it exceeds Interval.
// Firing resets the accumulator to zero, so any overshoot is dropped: a
// stalled frame produces one event, not several.
type IntervalTimer struct {
	Interval time.Duration
	Elapsed  time.Duration
}

// Advance adds dt and reports whether the timer fired.
func (t *IntervalTimer) Advance(dt time.Duration) bool {
	t.Elapsed += dt
	if t.Elapsed > t.Interval {
		t.Elapsed = 0
		return true
	}
	return false
}

// Spawner creates enemies and pickups on fixed intervals.
type Spawner struct {
	cfg Config
	rng *rand.Rand
	log zerolog.Logger

	Enemy         IntervalTimer
	BulletPackage IntervalTimer
	FirstAidKit   IntervalTimer
}

// NewSpawner creates a spawner with all timers at zero
func NewSpawner(cfg Config, rng *rand.Rand, log zerolog.Logger) *Spawner {
	return &Spawner{
		cfg:           cfg,
		rng:           rng,
		log:           log,
		Enemy:         IntervalTimer{Interval: cfg.EnemySpawnInterval},
		BulletPackage: IntervalTimer{Interval: cfg.BulletPackageSpawnInterval},
		FirstAidKit:   IntervalTimer{Interval: cfg.FirstAidKitSpawnInterval},
	}
}

// Update advances the timers by dt and spawns into w whatever is due.
func (s *Spawner) Update(w *World, now, dt time.Duration) {
	if s.Enemy.Advance(dt) {
		s.spawnEnemy(w)
	}
	if s.BulletPackage.Advance(dt) {
		s.spawnBulletPackage(w, now)
	}
	if s.FirstAidKit.Advance(dt) {
		s.spawnFirstAidKit(w, now)
	}
}

// spawnEnemy places an enemy just outside a random playfield edge
func (s *Spawner) spawnEnemy(w *World) {
	r := GetTankProfile(TankEnemy).Radius
	b := w.Bounds

	var x, y float64
	switch s.rng.Intn(4) {
	case 0: // Top
		x = RandomRange(s.rng, 0, b.Width)
		y = -r
	case 1: // Right
		x = b.Width + r
		y = RandomRange(s.rng, 0, b.Height)
	case 2: // Bottom
		x = RandomRange(s.rng, 0, b.Width)
		y = b.Height + r
	case 3: // Left
		x = -r
		y = RandomRange(s.rng, 0, b.Height)
	}

	enemy := NewEnemy(x, y, w.Player, s.cfg.StandoffDistance, s.cfg.Bullets.Get(BulletDefault))
	w.Enemies = append(w.Enemies, enemy)
	s.log.Debug().Float64("x", x).Float64("y", y).Int("enemies", len(w.Enemies)).Msg("enemy spawned")
}

func (s *Spawner) interiorPoint(b Bounds) (float64, float64) {
	m := s.cfg.PickupMargin
	return RandomRange(s.rng, m, b.Width-m), RandomRange(s.rng, m, b.Height-m)
}

func (s *Spawner) spawnBulletPackage(w *World, now time.Duration) {
	x, y := s.interiorPoint(w.Bounds)
	kind := SpecialBulletKinds[s.rng.Intn(len(SpecialBulletKinds))]
	ammo := 20 + s.rng.Intn(31) // 20-50

	pkg := NewBulletPackage(x, y, kind, ammo, s.cfg.Bullets.Get(kind).Color, now, s.cfg.PickupLifespan)
	w.BulletPackages = append(w.BulletPackages, pkg)
	s.log.Debug().Stringer("kind", kind).Int("ammo", ammo).Msg("bullet package spawned")
}

func (s *Spawner) spawnFirstAidKit(w *World, now time.Duration) {
	x, y := s.interiorPoint(w.Bounds)
	kit := NewFirstAidKit(x, y, s.cfg.FirstAidHeal, now, s.cfg.PickupLifespan)
	w.FirstAidKits = append(w.FirstAidKits, kit)
	s.log.Debug().Int("heal", kit.HealAmount).Msg("first aid kit spawned")
}
