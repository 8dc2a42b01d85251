package game

import "testing"

func TestGridToIsoOriginShiftKeepsXNonNegative(t *testing.T) {
	for y := 0; y < GridH; y++ {
		for x := 0; x < GridW; x++ {
			ix, _ := GridToIso(Cell{X: x, Y: y})
			if ix < 0 {
				t.Fatalf("cell (%d,%d) projected to negative world X %d", x, y, ix)
			}
		}
	}
}

func TestIsoToGridInvertsGridToIso(t *testing.T) {
	for y := 0; y < GridH; y += 3 {
		for x := 0; x < GridW; x += 3 {
			want := Cell{X: x, Y: y}
			cx, cy := CellCenter(want)
			got := IsoToGrid(float64(cx), float64(cy))
			if got != want {
				t.Fatalf("round trip for %v gave %v", want, got)
			}
		}
	}
}

func TestIsoToGridSnapsNearbyPoints(t *testing.T) {
	want := Cell{X: 12, Y: 7}
	cx, cy := CellCenter(want)
	for _, off := range [][2]float64{{-6, -3}, {6, 3}, {-6, 3}, {6, -3}} {
		got := IsoToGrid(float64(cx)+off[0], float64(cy)+off[1])
		if got != want {
			t.Fatalf("point offset %v from centre of %v resolved to %v", off, want, got)
		}
	}
}

func TestCellClamp(t *testing.T) {
	got := Cell{X: -3, Y: GridH + 10}.Clamp()
	if got != (Cell{X: 0, Y: GridH - 1}) {
		t.Fatalf("clamp gave %v", got)
	}
}

func TestChebyshev(t *testing.T) {
	a := Cell{X: 5, Y: 5}
	if d := a.Chebyshev(Cell{X: 6, Y: 4}); d != 1 {
		t.Fatalf("expected diagonal neighbour distance 1, got %d", d)
	}
	if d := a.Chebyshev(Cell{X: 9, Y: 6}); d != 4 {
		t.Fatalf("expected distance 4, got %d", d)
	}
}
