package game

import "testing"

func TestNewWorldDeterministic(t *testing.T) {
	a := NewWorld(7)
	b := NewWorld(7)
	if len(a.Blocked) != len(b.Blocked) {
		t.Fatalf("same seed gave different rock counts: %d vs %d", len(a.Blocked), len(b.Blocked))
	}
	for c := range a.Blocked {
		if _, ok := b.Blocked[c]; !ok {
			t.Fatalf("same seed disagreed on cell %v", c)
		}
	}
}

func TestNewWorldClearsPortalNeighbourhood(t *testing.T) {
	w := NewWorld(7)
	portal := w.Portal()
	if portal != (Cell{X: GridW / 2, Y: GridH / 2}) {
		t.Fatalf("portal not at grid centre: %v", portal)
	}
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			c := Cell{X: portal.X + dx, Y: portal.Y + dy}
			if w.IsBlocked(c) {
				t.Fatalf("portal neighbourhood cell %v is blocked", c)
			}
		}
	}
}

func TestIsBlockedOutOfBounds(t *testing.T) {
	w := NewWorld(7)
	if !w.IsBlocked(Cell{X: -1, Y: 0}) || !w.IsBlocked(Cell{X: 0, Y: GridH}) {
		t.Fatalf("expected out-of-bounds cells to count as blocked")
	}
}

func TestFindLandmarkExactAndFuzzy(t *testing.T) {
	w := NewWorld(7)

	mark, ok := w.FindLandmark("Portal")
	if !ok || mark.Name != LandmarkPortal {
		t.Fatalf("exact lookup failed: %v %v", mark, ok)
	}

	mark, ok = w.FindLandmark("protal")
	if !ok || mark.Name != LandmarkPortal {
		t.Fatalf("fuzzy lookup should tolerate a transposition: %v %v", mark, ok)
	}

	if _, ok := w.FindLandmark("waterfall"); ok {
		t.Fatalf("unrelated name should not match any landmark")
	}
	if _, ok := w.FindLandmark("  "); ok {
		t.Fatalf("blank name should not match")
	}
}
