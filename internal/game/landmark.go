package game

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// LandmarkPortal is the only landmark built-in maps always carry.
const LandmarkPortal = "portal"

// Landmark is a named cell on the map used as a teleport and spawn anchor.
type Landmark struct {
	Name string
	Cell Cell
}

// LandmarkCell resolves a landmark by exact name (case-insensitive).
func (w *World) LandmarkCell(name string) (Cell, bool) {
	name = strings.TrimSpace(strings.ToLower(name))
	for _, l := range w.Landmarks {
		if l.Name == name {
			return l.Cell, true
		}
	}
	return Cell{}, false
}

// FindLandmark resolves a landmark by name, tolerating typos. Exact match
// wins; otherwise the nearest name within a length-scaled Levenshtein limit
// is accepted, so "protal" still lands on "portal" while unrelated words do
// not match anything.
func (w *World) FindLandmark(name string) (Landmark, bool) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return Landmark{}, false
	}
	for _, l := range w.Landmarks {
		if l.Name == name {
			return l, true
		}
	}

	best := Landmark{}
	bestDist := -1
	for _, l := range w.Landmarks {
		dist := levenshtein.ComputeDistance(name, l.Name)
		if dist > levenshteinLimit(len(l.Name)) {
			continue
		}
		if bestDist == -1 || dist < bestDist {
			best = l
			bestDist = dist
		}
	}
	return best, bestDist >= 0
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
