package render

import "math"

// Camera translates between world coordinates and screen coordinates.
// World X is multiplied by 2 because emoji occupy 2 terminal columns.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on (cx, cy).
func NewCamera(cx, cy float64, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cy)
	return c
}

// Resize changes the viewport without moving the offset.
func (c *Camera) Resize(viewW, viewH int) {
	c.ViewWidth, c.ViewHeight = viewW, viewH
}

// Center repositions the camera so that world position (cx, cy) is in the middle.
func (c *Camera) Center(cx, cy float64) {
	c.OffsetX = cell(cx) - (c.ViewWidth/2)/2
	c.OffsetY = cell(cy) - c.ViewHeight/2
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy). Positions are
// rounded to the nearest cell; world Y grows upward, screen rows grow down.
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy int, visible bool) {
	sx = (cell(wx) - c.OffsetX) * 2
	sy = c.ViewHeight - 1 - (cell(wy) - c.OffsetY)
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

func cell(v float64) int {
	return int(math.Round(v))
}
