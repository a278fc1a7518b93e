package game

import (
	"image/color"
	"time"
)

// TankKind defines the two kinds of tank on the field
type TankKind int

const (
	TankPlayer TankKind = iota
	TankEnemy
)

// TankProfile holds configuration for each tank kind
type TankProfile struct {
	Kind TankKind
	Name string

	// Speed in pixels per tick
	Speed float64

	Radius    float64
	MaxHealth int

	// FireRate is the minimum time between two shots
	FireRate time.Duration

	Color color.RGBA
}

// GetTankProfile returns configuration for a tank kind
func GetTankProfile(kind TankKind) TankProfile {
	switch kind {
	case TankPlayer:
		return TankProfile{
			Kind:      TankPlayer,
			Name:      "Player",
			Speed:     3,
			Radius:    20,
			MaxHealth: 100,
			FireRate:  500 * time.Millisecond,
			Color:     color.RGBA{0x00, 0xf3, 0xff, 0xff}, // Neon blue
		}
	case TankEnemy:
		return TankProfile{
			Kind:      TankEnemy,
			Name:      "Enemy",
			Speed:     1.5,
			Radius:    20,
			MaxHealth: 100,
			FireRate:  2000 * time.Millisecond, // Slower than the player
			Color:     color.RGBA{0xff, 0x00, 0x00, 0xff}, // Neon red
		}
	default:
		return GetTankProfile(TankPlayer)
	}
}
