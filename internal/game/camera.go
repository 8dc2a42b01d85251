package game

// Camera pan speed in screen pixels per second.
const (
	CameraPanSpeed  = 360.0
	CameraFastSpeed = 560.0
)

// Camera is the screen-space offset of the world origin. Offsets are floats
// so slow pans accumulate fractional pixels across frames.
type Camera struct {
	X float64
	Y float64
}

// Pan shifts the camera by (dx, dy) screen pixels.
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx
	c.Y += dy
}

// CenterOn positions the camera so the cell's diamond centre lands on the
// given screen point (typically the centre of the playable safe rect).
func (c *Camera) CenterOn(cell Cell, screenX, screenY float64) {
	cx, cy := CellCenter(cell)
	c.X = screenX - float64(cx)
	c.Y = screenY - float64(cy)
}

// ToScreen converts world coordinates to screen coordinates.
func (c *Camera) ToScreen(wx, wy int) (int, int) {
	return wx + int(c.X), wy + int(c.Y)
}

// ToWorld converts screen coordinates back to world coordinates.
func (c *Camera) ToWorld(sx, sy float64) (float64, float64) {
	return sx - c.X, sy - c.Y
}
