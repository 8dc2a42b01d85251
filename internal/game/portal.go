package game

// Portal is the map's wave trigger. It carries its own clock so the client
// can pulse the marker without touching global time.
type Portal struct {
	Cell   Cell
	Active bool

	clock float64
}

// NewPortal creates an active portal on the given cell.
func NewPortal(at Cell) *Portal {
	return &Portal{Cell: at, Active: true}
}

// Update advances the pulse clock.
func (p *Portal) Update(dt float64) {
	p.clock += dt
}

// Clock returns seconds since the portal was created.
func (p *Portal) Clock() float64 {
	return p.clock
}

// Adjacent reports whether the cell is on or next to the portal
// (Chebyshev distance at most 1).
func (p *Portal) Adjacent(c Cell) bool {
	return p.Cell.Chebyshev(c) <= 1
}
