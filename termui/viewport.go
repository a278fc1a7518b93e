package termui

import "neontanks/game"

// hudRows is the number of rows kept free at the bottom for the status line
const hudRows = 1

// Viewport maps playfield pixels onto terminal cells. The whole playfield is
// squeezed into the terminal, so cells are not square.
type Viewport struct {
	Bounds     game.Bounds
	Cols, Rows int
}

// NewViewport fits bounds into a cols x rows terminal
func NewViewport(bounds game.Bounds, cols, rows int) Viewport {
	return Viewport{Bounds: bounds, Cols: max(cols, 1), Rows: max(rows-hudRows, 1)}
}

// ToCell returns the cell for a playfield point and whether it is on screen
func (v Viewport) ToCell(x, y float64) (int, int, bool) {
	if x < 0 || y < 0 || x >= v.Bounds.Width || y >= v.Bounds.Height {
		return 0, 0, false
	}
	cx := int(x / v.Bounds.Width * float64(v.Cols))
	cy := int(y / v.Bounds.Height * float64(v.Rows))
	return cx, cy, true
}

// ToPlayfield returns the playfield point at the center of a cell
func (v Viewport) ToPlayfield(cx, cy int) (float64, float64) {
	x := (float64(cx) + 0.5) * v.Bounds.Width / float64(v.Cols)
	y := (float64(cy) + 0.5) * v.Bounds.Height / float64(v.Rows)
	return game.Clamp(x, 0, v.Bounds.Width), game.Clamp(y, 0, v.Bounds.Height)
}

// CellWidth returns the playfield width of one column
func (v Viewport) CellWidth() float64 {
	return v.Bounds.Width / float64(v.Cols)
}
