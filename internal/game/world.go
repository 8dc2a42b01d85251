package game

// World holds the static map state: blocked cells and named landmarks.
type World struct {
	Blocked   map[Cell]struct{}
	Landmarks []Landmark
}

const defaultRockCount = 120

// NewWorld generates the map deterministically from the seed: scattered
// impassable rocks, plus the portal landmark at the grid centre. The 3x3
// neighbourhood around the portal is always cleared so the portal can be
// reached regardless of the seed.
func NewWorld(seed int64) *World {
	rng := seededRNG(seed, "world")

	w := &World{Blocked: make(map[Cell]struct{}, defaultRockCount)}
	for i := 0; i < defaultRockCount; i++ {
		c := Cell{X: rng.IntN(GridW), Y: rng.IntN(GridH)}
		w.Blocked[c] = struct{}{}
	}

	portal := Cell{X: GridW / 2, Y: GridH / 2}
	w.Landmarks = []Landmark{{Name: LandmarkPortal, Cell: portal}}
	w.clearAround(portal)

	return w
}

func (w *World) clearAround(c Cell) {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			n := Cell{X: c.X + dx, Y: c.Y + dy}
			if n.InBounds() {
				delete(w.Blocked, n)
			}
		}
	}
}

// IsBlocked reports whether the cell is impassable. Out-of-bounds cells
// count as blocked.
func (w *World) IsBlocked(c Cell) bool {
	if !c.InBounds() {
		return true
	}
	_, bad := w.Blocked[c]
	return bad
}

// Portal returns the portal landmark cell.
func (w *World) Portal() Cell {
	c, _ := w.LandmarkCell(LandmarkPortal)
	return c
}
