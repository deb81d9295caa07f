package core

import "math"

// Viewport maps world coordinates onto a rectangle of screen cells.
type Viewport struct {
	Left, Top  int // Top-left cell of the mapped area
	Cols, Rows int // Size of the mapped area in cells
	WorldW     float64
	WorldH     float64
}

// NewViewport creates a viewport of cols×rows cells at (left, top) showing a
// worldW×worldH world.
func NewViewport(left, top, cols, rows int, worldW, worldH float64) Viewport {
	return Viewport{Left: left, Top: top, Cols: Max(cols, 1), Rows: Max(rows, 1), WorldW: worldW, WorldH: worldH}
}

// Cell returns the screen cell containing world point (x, y).
func (v Viewport) Cell(x, y float64) (int, int) {
	cx := v.Left + int(math.Floor(x/v.WorldW*float64(v.Cols)))
	cy := v.Top + int(math.Floor(y/v.WorldH*float64(v.Rows)))
	return cx, cy
}

// Span returns the first column and the width in cells covered by the world
// interval [x, x+w). Anything visible covers at least one cell.
func (v Viewport) Span(x, w float64) (int, int) {
	start := int(math.Floor(x / v.WorldW * float64(v.Cols)))
	end := int(math.Ceil((x + w) / v.WorldW * float64(v.Cols)))
	if end <= start {
		end = start + 1
	}
	return v.Left + start, end - start
}

// Inside reports whether a cell lies within the mapped area.
func (v Viewport) Inside(cx, cy int) bool {
	return cx >= v.Left && cx < v.Left+v.Cols && cy >= v.Top && cy < v.Top+v.Rows
}
