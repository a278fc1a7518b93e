package game

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig wraps every Config validation failure.
var ErrInvalidConfig = errors.New("invalid game config")

// Config holds game configuration constants
type Config struct {
	// Width and Height of the playfield in pixels
	Width  float64
	Height float64

	// Seed for the game RNG; 0 lets the host pick one
	Seed int64

	// Spawn intervals; overshoot past an interval is dropped, not carried
	EnemySpawnInterval         time.Duration
	BulletPackageSpawnInterval time.Duration
	FirstAidKitSpawnInterval   time.Duration

	// PickupLifespan is how long an uncollected pickup stays on the field
	PickupLifespan time.Duration

	// PickupMargin keeps pickups this far from the playfield edges
	PickupMargin float64

	// FirstAidHeal is the health restored by a first aid kit
	FirstAidHeal int

	// StandoffDistance is where enemies stop approaching the player
	StandoffDistance float64

	// ContactDamage is applied every tick the player overlaps an enemy
	ContactDamage int

	// KillScore is awarded per enemy destroyed by the player
	KillScore int

	// ExplosionParticles per explosion burst
	ExplosionParticles int

	Bullets BulletTable
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Width:                      1024,
		Height:                     768,
		EnemySpawnInterval:         2000 * time.Millisecond,
		BulletPackageSpawnInterval: 8000 * time.Millisecond,
		FirstAidKitSpawnInterval:   10000 * time.Millisecond,
		PickupLifespan:             15000 * time.Millisecond,
		PickupMargin:               100,
		FirstAidHeal:               30,
		StandoffDistance:           150,
		ContactDamage:              1,
		KillScore:                  100,
		ExplosionParticles:         10,
		Bullets:                    DefaultBulletTable(),
	}
}

// Bounds returns the playfield rectangle
func (c Config) Bounds() Bounds {
	return Bounds{Width: c.Width, Height: c.Height}
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: playfield %vx%v", ErrInvalidConfig, c.Width, c.Height)
	case c.PickupMargin < 0 || 2*c.PickupMargin >= c.Width || 2*c.PickupMargin >= c.Height:
		return fmt.Errorf("%w: pickup margin %v does not fit %vx%v", ErrInvalidConfig, c.PickupMargin, c.Width, c.Height)
	case c.EnemySpawnInterval <= 0, c.BulletPackageSpawnInterval <= 0, c.FirstAidKitSpawnInterval <= 0:
		return fmt.Errorf("%w: spawn intervals must be positive", ErrInvalidConfig)
	case c.PickupLifespan <= 0:
		return fmt.Errorf("%w: pickup lifespan must be positive", ErrInvalidConfig)
	case c.FirstAidHeal < 0 || c.ContactDamage < 0 || c.KillScore < 0:
		return fmt.Errorf("%w: heal, contact damage and kill score must not be negative", ErrInvalidConfig)
	case c.StandoffDistance < 0:
		return fmt.Errorf("%w: standoff distance %v", ErrInvalidConfig, c.StandoffDistance)
	case c.ExplosionParticles < 0:
		return fmt.Errorf("%w: explosion particles %d", ErrInvalidConfig, c.ExplosionParticles)
	}
	if err := c.Bullets.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
