package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"neontanks/game"
)

var (
	backgroundColor = color.RGBA{0x0a, 0x0a, 0x1a, 0xff}
	gridColor       = color.RGBA{0x1a, 0x1a, 0x3a, 0xff}
	healthBarBack   = color.RGBA{100, 0, 0, 255}
	healthBarFront  = color.RGBA{0, 255, 0, 255}
)

const (
	gridSpacing    = 50
	turretWidth    = 6
	healthBarH     = 4
	pickupBobRange = 5
)

// Renderer draws the last snapshot handed to it by the game. Render and
// Draw are both called from the ebiten game loop.
type Renderer struct {
	snapshot game.Snapshot
	debug    *DebugState
}

// NewRenderer creates a renderer. debug may be nil.
func NewRenderer(debug *DebugState) *Renderer {
	if debug == nil {
		debug = &DebugState{}
	}
	return &Renderer{debug: debug}
}

// Render implements game.Renderer.
func (r *Renderer) Render(s game.Snapshot) {
	r.snapshot = s
}

// Snapshot returns the last frame handed to Render.
func (r *Renderer) Snapshot() game.Snapshot {
	return r.snapshot
}

// Draw paints the stored snapshot onto screen
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s := r.snapshot
	drawGrid(screen, s.Bounds)

	for _, p := range s.Pickups {
		drawPickup(screen, p)
	}
	for _, p := range s.Projectiles {
		drawProjectile(screen, p)
	}
	for _, e := range s.Enemies {
		drawTank(screen, e)
	}
	if s.HasPlayer && !s.Player.Dead {
		drawTank(screen, s.Player)
	}
	for _, p := range s.Particles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), fade(p.Color, p.Alpha), true)
	}

	if r.debug.ShowHitboxes {
		drawHitboxes(screen, s)
	}
}

func drawGrid(screen *ebiten.Image, b game.Bounds) {
	for x := 0.0; x <= b.Width; x += gridSpacing {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(b.Height), 1, gridColor, false)
	}
	for y := 0.0; y <= b.Height; y += gridSpacing {
		vector.StrokeLine(screen, 0, float32(y), float32(b.Width), float32(y), 1, gridColor, false)
	}
}

// turretTip returns the end of the barrel drawn for a tank
func turretTip(t game.TankView) vec2 {
	reach := t.Radius * 1.5
	return vec2{t.X + math.Cos(t.TurretAngle)*reach, t.Y + math.Sin(t.TurretAngle)*reach}
}

// drawTank draws the hull, the turret and a health bar when damaged
func drawTank(screen *ebiten.Image, t game.TankView) {
	hull := []vec2{{-t.Radius, -t.Radius * 0.8}, {t.Radius, -t.Radius * 0.8}, {t.Radius, t.Radius * 0.8}, {-t.Radius, t.Radius * 0.8}}
	for i, p := range hull {
		p = rotatePoint(p, t.Angle)
		hull[i] = vec2{t.X + p.x, t.Y + p.y}
	}
	vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), float32(t.Radius), darken(t.Color, 0.6), true)
	polyline(screen, hull, 2, t.Color)

	tip := turretTip(t)
	vector.StrokeLine(screen, float32(t.X), float32(t.Y), float32(tip.x), float32(tip.y), turretWidth, glow(t.Color, 0.3), true)
	vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), float32(t.Radius*0.45), t.Color, true)

	if t.Health < t.MaxHealth && t.MaxHealth > 0 {
		barWidth := t.Radius * 2
		barX := t.X - barWidth/2
		barY := t.Y - t.Radius - healthBarH - 6
		vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barWidth), healthBarH, healthBarBack, true)
		healthWidth := barWidth * float64(t.Health) / float64(t.MaxHealth)
		vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(healthWidth), healthBarH, healthBarFront, true)
	}
}

func drawProjectile(screen *ebiten.Image, p game.ProjectileView) {
	x, y := float32(p.X), float32(p.Y)
	switch p.Shape {
	case game.ShapeStar:
		polyline(screen, starPoints(p.X, p.Y, p.Radius, p.Angle), 2, p.Color)
	case game.ShapeHeart:
		drawHeart(screen, p.X, p.Y, p.Radius, p.Color)
	case game.ShapeLine:
		dx := math.Cos(p.Angle) * p.Radius * 2
		dy := math.Sin(p.Angle) * p.Radius * 2
		vector.StrokeLine(screen, x-float32(dx), y-float32(dy), x+float32(dx), y+float32(dy), 3, p.Color, true)
	default:
		vector.DrawFilledCircle(screen, x, y, float32(p.Radius), p.Color, true)
	}
}

// drawHeart draws two lobes and a point below them
func drawHeart(screen *ebiten.Image, cx, cy, size float64, clr color.Color) {
	lobe := size * 0.5
	vector.DrawFilledCircle(screen, float32(cx-lobe*0.5), float32(cy-lobe*0.4), float32(lobe*0.6), clr, true)
	vector.DrawFilledCircle(screen, float32(cx+lobe*0.5), float32(cy-lobe*0.4), float32(lobe*0.6), clr, true)
	left := vec2{cx - lobe*1.05, cy - lobe*0.2}
	right := vec2{cx + lobe*1.05, cy - lobe*0.2}
	bottom := vec2{cx, cy + lobe}
	polyline(screen, []vec2{left, right, bottom}, float32(lobe*0.5), clr)
}

func drawPickup(screen *ebiten.Image, p game.PickupView) {
	y := p.Y + math.Sin(p.FloatOffset)*pickupBobRange
	pulse := (math.Sin(p.FloatOffset*2) + 1) / 2

	vector.StrokeCircle(screen, float32(p.X), float32(y), float32(p.Radius), 2, glow(p.Color, pulse*0.5), true)
	switch p.Kind {
	case game.PickupFirstAid:
		arm := float32(p.Radius * 0.6)
		thick := float32(p.Radius * 0.35)
		vector.DrawFilledRect(screen, float32(p.X)-arm, float32(y)-thick/2, arm*2, thick, p.Color, true)
		vector.DrawFilledRect(screen, float32(p.X)-thick/2, float32(y)-arm, thick, arm*2, p.Color, true)
	default:
		cfg := game.GetBulletKindConfig(p.Bullet)
		drawProjectile(screen, game.ProjectileView{
			X:      p.X,
			Y:      y,
			Radius: p.Radius * 0.5,
			Angle:  -math.Pi / 2,
			Shape:  cfg.Shape,
			Color:  p.Color,
		})
	}
}
