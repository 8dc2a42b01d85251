package game

import "testing"

func TestHeroSetPathDropsCurrentCell(t *testing.T) {
	h := NewHero(Cell{X: 2, Y: 2})
	h.SetPath([]Cell{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 4, Y: 2}})
	if len(h.Path()) != 2 {
		t.Fatalf("expected leading current cell to be dropped, path %v", h.Path())
	}
}

func TestHeroWalksOneCellPerInterval(t *testing.T) {
	h := NewHero(Cell{X: 0, Y: 0})
	h.SetPath([]Cell{{X: 1, Y: 0}, {X: 2, Y: 0}})

	// First update moves immediately.
	h.Update(0.01)
	if h.Cell != (Cell{X: 1, Y: 0}) {
		t.Fatalf("expected first step on first update, at %v", h.Cell)
	}

	// The step interval has to elapse before the next move.
	h.Update(0.05)
	if h.Cell != (Cell{X: 1, Y: 0}) {
		t.Fatalf("hero moved before the step interval elapsed, at %v", h.Cell)
	}
	h.Update(0.06)
	if h.Cell != (Cell{X: 2, Y: 0}) {
		t.Fatalf("expected second step after interval, at %v", h.Cell)
	}
	if h.Moving() {
		t.Fatalf("expected path to be exhausted")
	}
}

func TestHeroClearPath(t *testing.T) {
	h := NewHero(Cell{X: 0, Y: 0})
	h.SetPath([]Cell{{X: 1, Y: 0}})
	h.ClearPath()
	if h.Moving() {
		t.Fatalf("expected no pending movement after ClearPath")
	}
	h.Update(1.0)
	if h.Cell != (Cell{X: 0, Y: 0}) {
		t.Fatalf("hero moved with a cleared path, at %v", h.Cell)
	}
}

func TestNewHeroStartingStats(t *testing.T) {
	h := NewHero(Cell{X: 5, Y: 5})
	if h.HP != 100 || h.MP != 50 || h.Level != 1 || h.Gold != 0 {
		t.Fatalf("unexpected starting stats: %+v", h)
	}
}
