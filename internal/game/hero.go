package game

// Seconds the hero spends on each tile while following a path.
const heroStepInterval = 0.10

// Hero is the player-controlled actor. Movement is tile-discrete: the hero
// teleports one cell along its path every heroStepInterval seconds.
type Hero struct {
	Cell  Cell
	HP    int
	MP    int
	Level int
	Gold  int

	path      []Cell
	stepTimer float64
}

// NewHero places a hero with starting stats on the given cell.
func NewHero(at Cell) *Hero {
	return &Hero{Cell: at, HP: 100, MP: 50, Level: 1}
}

// SetPath replaces the hero's current path. A leading cell equal to the
// hero's position is dropped so the first tick moves rather than idles.
func (h *Hero) SetPath(p []Cell) {
	if len(p) > 0 && p[0] == h.Cell {
		p = p[1:]
	}
	h.path = p
}

// Path returns the remaining cells the hero will walk through.
func (h *Hero) Path() []Cell {
	return h.path
}

// ClearPath drops any pending movement.
func (h *Hero) ClearPath() {
	h.path = nil
	h.stepTimer = 0
}

// Moving reports whether the hero still has path left to walk.
func (h *Hero) Moving() bool {
	return len(h.path) > 0
}

// Update advances path following by dt seconds.
func (h *Hero) Update(dt float64) {
	if len(h.path) == 0 {
		return
	}

	h.stepTimer -= dt
	if h.stepTimer > 0 {
		return
	}

	h.Cell = h.path[0]
	h.path = h.path[1:]
	h.stepTimer = heroStepInterval
}
