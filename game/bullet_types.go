package game

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// BulletKind names a projectile profile the player can have equipped.
type BulletKind int

const (
	BulletDefault BulletKind = iota
	BulletStar
	BulletHeart
	BulletLaser
	bulletKindCount
)

var bulletKindNames = [bulletKindCount]string{"default", "star", "heart", "laser"}

// SpecialBulletKinds are the kinds handed out by bullet packages.
var SpecialBulletKinds = []BulletKind{BulletStar, BulletHeart, BulletLaser}

// ErrUnknownBulletKind is returned when a bullet kind name is not recognised.
var ErrUnknownBulletKind = errors.New("unknown bullet kind")

func (k BulletKind) String() string {
	if k < 0 || k >= bulletKindCount {
		return fmt.Sprintf("BulletKind(%d)", int(k))
	}
	return bulletKindNames[k]
}

// ParseBulletKind maps a configuration key like "laser" to its BulletKind.
func ParseBulletKind(name string) (BulletKind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range bulletKindNames {
		if n == key {
			return BulletKind(i), nil
		}
	}
	return BulletDefault, fmt.Errorf("%w: %q", ErrUnknownBulletKind, name)
}

// BulletShape is the visual outline renderers use for a projectile.
type BulletShape int

const (
	ShapeCircle BulletShape = iota
	ShapeStar
	ShapeHeart
	ShapeLine
)

// BulletKindConfig holds the fixed profile of a bullet kind
type BulletKindConfig struct {
	Kind BulletKind

	// Speed in pixels per tick
	Speed float64

	// Width doubles as the projectile's collision radius
	Width float64

	Damage int
	Color  color.RGBA
	Shape  BulletShape
}

// GetBulletKindConfig returns the built-in profile for a bullet kind
func GetBulletKindConfig(kind BulletKind) BulletKindConfig {
	switch kind {
	case BulletDefault:
		return BulletKindConfig{
			Kind:   BulletDefault,
			Speed:  10,
			Width:  4,
			Damage: 10,
			Color:  color.RGBA{0x00, 0xf3, 0xff, 0xff}, // Neon blue
			Shape:  ShapeCircle,
		}
	case BulletStar:
		return BulletKindConfig{
			Kind:   BulletStar,
			Speed:  15,
			Width:  12,
			Damage: 15,
			Color:  color.RGBA{0xff, 0xff, 0x00, 0xff}, // Yellow
			Shape:  ShapeStar,
		}
	case BulletHeart:
		return BulletKindConfig{
			Kind:   BulletHeart,
			Speed:  8,
			Width:  16,
			Damage: 20,
			Color:  color.RGBA{0xff, 0x69, 0xb4, 0xff}, // Hot pink
			Shape:  ShapeHeart,
		}
	case BulletLaser:
		return BulletKindConfig{
			Kind:   BulletLaser,
			Speed:  25,
			Width:  8,
			Damage: 8,
			Color:  color.RGBA{0x00, 0xff, 0x00, 0xff}, // Green
			Shape:  ShapeLine,
		}
	default:
		return GetBulletKindConfig(BulletDefault)
	}
}

// BulletTable maps every bullet kind to its profile.
type BulletTable map[BulletKind]BulletKindConfig

// DefaultBulletTable returns the built-in profiles for all kinds.
func DefaultBulletTable() BulletTable {
	t := make(BulletTable, bulletKindCount)
	for k := BulletDefault; k < bulletKindCount; k++ {
		t[k] = GetBulletKindConfig(k)
	}
	return t
}

// Get returns the profile for kind, falling back to the built-in one.
func (t BulletTable) Get(kind BulletKind) BulletKindConfig {
	if cfg, ok := t[kind]; ok {
		return cfg
	}
	return GetBulletKindConfig(kind)
}

// Validate checks every entry for usable values.
func (t BulletTable) Validate() error {
	for kind, cfg := range t {
		if kind < 0 || kind >= bulletKindCount {
			return fmt.Errorf("%w: %d", ErrUnknownBulletKind, int(kind))
		}
		if cfg.Speed <= 0 {
			return fmt.Errorf("bullet %s: speed must be positive, got %v", kind, cfg.Speed)
		}
		if cfg.Width < 0 {
			return fmt.Errorf("bullet %s: width must not be negative, got %v", kind, cfg.Width)
		}
		if cfg.Damage < 0 {
			return fmt.Errorf("bullet %s: damage must not be negative, got %d", kind, cfg.Damage)
		}
	}
	return nil
}
