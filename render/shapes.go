package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
)

type vec2 struct {
	x, y float64
}

// rotatePoint rotates a point around the origin by the given angle (in radians)
func rotatePoint(p vec2, angle float64) vec2 {
	sinA := math.Sin(angle)
	cosA := math.Cos(angle)
	return vec2{
		x: p.x*cosA - p.y*sinA,
		y: p.x*sinA + p.y*cosA,
	}
}

// starPoints returns the outline of a five-pointed star, alternating outer
// and inner vertices, starting at the tip that points along angle.
func starPoints(cx, cy, radius, angle float64) []vec2 {
	pts := make([]vec2, 0, 10)
	inner := radius * 0.45
	for i := 0; i < 10; i++ {
		r := radius
		if i%2 == 1 {
			r = inner
		}
		p := rotatePoint(vec2{r, 0}, angle+float64(i)*math.Pi/5)
		pts = append(pts, vec2{cx + p.x, cy + p.y})
	}
	return pts
}

// polyline strokes a closed outline
func polyline(dst *ebiten.Image, pts []vec2, width float32, clr color.Color) {
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		vector.StrokeLine(dst, float32(a.x), float32(a.y), float32(b.x), float32(b.y), width, clr, true)
	}
}

// fade applies alpha to c. Alpha is clamped to [0, 1].
func fade(c color.RGBA, alpha float64) color.NRGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * alpha)}
}

var white = colorful.Color{R: 1, G: 1, B: 1}

// glow brightens c toward white by t in [0, 1]
func glow(c color.RGBA, t float64) color.Color {
	base, _ := colorful.MakeColor(c)
	return base.BlendRgb(white, math.Max(0, math.Min(1, t))).Clamped()
}

// darken mixes c toward black by t in [0, 1]
func darken(c color.RGBA, t float64) color.Color {
	base, _ := colorful.MakeColor(c)
	return base.BlendRgb(colorful.Color{}, math.Max(0, math.Min(1, t))).Clamped()
}
