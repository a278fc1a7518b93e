package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"neontanks/game"
)

var hitboxColor = color.RGBA{0xff, 0xff, 0xff, 0x90}

// DebugState holds debug flags that persist across game restarts
type DebugState struct {
	ShowHitboxes bool // Collision circles and entity counts
}

// Toggle flips the hitbox overlay
func (d *DebugState) Toggle() {
	d.ShowHitboxes = !d.ShowHitboxes
}

func drawHitboxes(screen *ebiten.Image, s game.Snapshot) {
	circle := func(x, y, r float64) {
		vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 1, hitboxColor, true)
	}
	if s.HasPlayer {
		circle(s.Player.X, s.Player.Y, s.Player.Radius)
	}
	for _, e := range s.Enemies {
		circle(e.X, e.Y, e.Radius)
	}
	for _, p := range s.Projectiles {
		circle(p.X, p.Y, p.Radius)
	}
	for _, p := range s.Pickups {
		circle(p.X, p.Y, p.Radius)
	}
	ebitenutil.DebugPrintAt(screen, debugSummary(s, ebiten.ActualTPS()), 10, int(s.Bounds.Height)-20)
}

func debugSummary(s game.Snapshot, tps float64) string {
	return fmt.Sprintf("enemies %d | projectiles %d | particles %d | pickups %d | TPS %.0f",
		len(s.Enemies), len(s.Projectiles), len(s.Particles), len(s.Pickups), tps)
}
