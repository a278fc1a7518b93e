package termui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"neontanks/game"
)

// Renderer draws snapshots as glyphs. It implements game.Renderer; the
// last snapshot is kept so a frozen game over frame can be redrawn.
type Renderer struct {
	snapshot  game.Snapshot
	showStats bool
}

// NewRenderer creates an empty renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render implements game.Renderer.
func (r *Renderer) Render(s game.Snapshot) {
	r.snapshot = s
}

// Snapshot returns the last frame handed to Render
func (r *Renderer) Snapshot() game.Snapshot {
	return r.snapshot
}

// ToggleStats switches the entity count line on or off
func (r *Renderer) ToggleStats() {
	r.showStats = !r.showStats
}

// Draw paints the stored snapshot into the playfield area of screen
func (r *Renderer) Draw(screen tcell.Screen, v Viewport) {
	s := r.snapshot

	put := func(x, y float64, ch rune, fg tcell.Color) {
		if cx, cy, ok := v.ToCell(x, y); ok {
			screen.SetContent(cx, cy, ch, nil, tcell.StyleDefault.Foreground(fg))
		}
	}

	for _, p := range s.Pickups {
		put(p.X, p.Y, pickupGlyph(p), toTcell(p.Color))
	}
	for _, p := range s.Particles {
		put(p.X, p.Y, '·', faded(p.Color, p.Alpha))
	}
	for _, p := range s.Projectiles {
		put(p.X, p.Y, projectileGlyph(p), toTcell(p.Color))
	}
	for _, e := range s.Enemies {
		drawTank(put, e, v, 'X')
	}
	if s.HasPlayer && !s.Player.Dead {
		drawTank(put, s.Player, v, '@')
	}
	if r.showStats {
		printAt(screen, 0, 0, statsLine(s), hudStyle)
	}
}

func statsLine(s game.Snapshot) string {
	return fmt.Sprintf("enemies %d | projectiles %d | particles %d | pickups %d",
		len(s.Enemies), len(s.Projectiles), len(s.Particles), len(s.Pickups))
}

func drawTank(put func(x, y float64, ch rune, fg tcell.Color), t game.TankView, v Viewport, body rune) {
	fg := toTcell(t.Color)
	// barrel one cell out from the hull
	reach := math.Max(t.Radius*1.5, v.CellWidth())
	put(t.X+math.Cos(t.TurretAngle)*reach, t.Y+math.Sin(t.TurretAngle)*reach, lineGlyph(t.TurretAngle), fg)
	put(t.X, t.Y, body, fg)
}

func pickupGlyph(p game.PickupView) rune {
	if p.Kind == game.PickupFirstAid {
		return '+'
	}
	return '▣'
}

func projectileGlyph(p game.ProjectileView) rune {
	switch p.Shape {
	case game.ShapeStar:
		return '*'
	case game.ShapeHeart:
		return '♥'
	case game.ShapeLine:
		return lineGlyph(p.Angle)
	default:
		return '•'
	}
}

// lineGlyph picks the box-drawing stroke closest to angle. Screen y grows
// downwards, so a positive angle leans like a backslash.
func lineGlyph(angle float64) rune {
	a := math.Mod(angle, math.Pi)
	if a < 0 {
		a += math.Pi
	}
	switch {
	case a < math.Pi/8 || a >= 7*math.Pi/8:
		return '─'
	case a < 3*math.Pi/8:
		return '╲'
	case a < 5*math.Pi/8:
		return '│'
	default:
		return '╱'
	}
}
