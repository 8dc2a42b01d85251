package game

// Isometric tile metrics. The world is a fixed diamond grid; every marker,
// click and camera offset goes through the same two conversions below so the
// coordinate system stays consistent across packages.
const (
	TileW = 64
	TileH = 32

	GridW = 40
	GridH = 40
)

// IsoOriginX shifts the isometric world right so world X never goes
// negative. Without the shift, cells with gy > gx project to negative X and
// the rounding in IsoToGrid drifts by one cell near the axis.
const (
	IsoOriginX = (GridH - 1) * (TileW / 2)
	IsoOriginY = 0
)

// Cell is a grid coordinate.
type Cell struct {
	X int
	Y int
}

// InBounds reports whether the cell lies on the grid.
func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < GridW && c.Y >= 0 && c.Y < GridH
}

// Clamp returns the cell clamped onto the grid.
func (c Cell) Clamp() Cell {
	if c.X < 0 {
		c.X = 0
	}
	if c.X >= GridW {
		c.X = GridW - 1
	}
	if c.Y < 0 {
		c.Y = 0
	}
	if c.Y >= GridH {
		c.Y = GridH - 1
	}
	return c
}

// Chebyshev returns the chessboard distance to other. Portal adjacency and
// spawn rings use this metric.
func (c Cell) Chebyshev(other Cell) int {
	dx := c.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := c.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// GridToIso converts a grid cell to isometric world coordinates. The result
// is the top-left corner of the tile's bounding box; the drawable diamond
// spans TileW x TileH from there.
func GridToIso(c Cell) (int, int) {
	isoX := (c.X-c.Y)*(TileW/2) + IsoOriginX
	isoY := (c.X+c.Y)*(TileH/2) + IsoOriginY
	return isoX, isoY
}

// CellCenter returns the world coordinates of the tile's diamond centre.
func CellCenter(c Cell) (int, int) {
	ix, iy := GridToIso(c)
	return ix + TileW/2, iy + TileH/2
}

// IsoToGrid is the inverse of GridToIso for arbitrary world coordinates,
// rounding to the nearest cell. Callers clamp the result before using it.
func IsoToGrid(ix, iy float64) Cell {
	ix -= IsoOriginX
	iy -= IsoOriginY
	gx := (ix/(TileW/2) + iy/(TileH/2)) / 2
	gy := (iy/(TileH/2) - ix/(TileW/2)) / 2
	return Cell{X: roundToInt(gx), Y: roundToInt(gy)}
}

func roundToInt(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
