package termui

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var background = colorful.Color{R: 0x0a / 255.0, G: 0x0a / 255.0, B: 0x1a / 255.0}

// toTcell converts an RGBA color, ignoring alpha
func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// faded blends c over the background by alpha in [0, 1]
func faded(c color.RGBA, alpha float64) tcell.Color {
	fg, _ := colorful.MakeColor(c)
	r, g, b := background.BlendRgb(fg, max(0, min(1, alpha))).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
