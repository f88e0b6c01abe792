package core

// Viewport projects a logical playing field onto the terminal cell grid.
// Games simulate in field units (e.g. 800x600) and render through a
// Viewport, so simulation constants do not depend on terminal size.
type Viewport struct {
	FieldW, FieldH   int // Logical field size
	ScreenW, ScreenH int // Terminal size in cells
	Top              int // Rows reserved above the field (HUD)
	Bottom           int // Rows reserved below the field (footer)
}

// NewViewport creates a viewport for the given field and screen sizes.
func NewViewport(fieldW, fieldH, screenW, screenH int) Viewport {
	return Viewport{FieldW: fieldW, FieldH: fieldH, ScreenW: screenW, ScreenH: screenH}
}

// Rows returns how many screen rows are available for the field.
func (v Viewport) Rows() int {
	return Max(v.ScreenH-v.Top-v.Bottom, 1)
}

// X maps a field x-coordinate to a screen column.
func (v Viewport) X(x int) int {
	if v.FieldW <= 0 {
		return 0
	}
	return floorDiv(x*v.ScreenW, v.FieldW)
}

// Y maps a field y-coordinate to a screen row.
func (v Viewport) Y(y int) int {
	if v.FieldH <= 0 {
		return v.Top
	}
	return v.Top + floorDiv(y*v.Rows(), v.FieldH)
}

// Rect maps a field rectangle to screen cells.
// Any rectangle with a positive area covers at least one cell.
func (v Viewport) Rect(r Rect) Rect {
	x0, y0 := v.X(r.X), v.Y(r.Y)
	x1, y1 := v.X(r.Right()), v.Y(r.Bottom())

	out := NewRect(x0, y0, x1-x0, y1-y0)
	if r.W > 0 && out.W < 1 {
		out.W = 1
	}
	if r.H > 0 && out.H < 1 {
		out.H = 1
	}
	return out
}

// floorDiv divides rounding toward negative infinity, so entities partly
// off-field map to negative cells instead of snapping onto column zero.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
