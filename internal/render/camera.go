package render

import (
	"math"

	"survivors/internal/vec"
)

// World units covered by one terminal cell. Cells are about twice as tall as
// they are wide, so rows cover twice the distance of columns.
const (
	UnitsPerColumn = 10.0
	UnitsPerRow    = 20.0
)

// Camera translates between world coordinates and screen coordinates.
// World Y points up; screen rows count down.
type Camera struct {
	Center     vec.Vec2
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on c.
func NewCamera(c vec.Vec2, viewW, viewH int) *Camera {
	return &Camera{Center: c, ViewWidth: viewW, ViewHeight: viewH}
}

// WorldToScreen converts a world position to the cell containing it.
// visible is false when the cell falls outside the viewport.
func (c *Camera) WorldToScreen(p vec.Vec2) (sx, sy int, visible bool) {
	sx = c.ViewWidth/2 + int(math.Round((p.X-c.Center.X)/UnitsPerColumn))
	sy = c.ViewHeight/2 - int(math.Round((p.Y-c.Center.Y)/UnitsPerRow))
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts a cell back to the world position at its center.
func (c *Camera) ScreenToWorld(sx, sy int) vec.Vec2 {
	return vec.Vec2{
		X: c.Center.X + float64(sx-c.ViewWidth/2)*UnitsPerColumn,
		Y: c.Center.Y - float64(sy-c.ViewHeight/2)*UnitsPerRow,
	}
}

// Cells returns the screen span a world box covers, at least one cell.
func (c *Camera) Cells(r vec.Rect) (x0, y0, x1, y1 int) {
	x0, y0, _ = c.WorldToScreen(vec.Vec2{X: r.Left(), Y: r.Top()})
	x1, y1, _ = c.WorldToScreen(vec.Vec2{X: r.Right(), Y: r.Bottom()})
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return
}
