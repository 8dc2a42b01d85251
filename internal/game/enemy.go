package game

import "math/rand/v2"

// Enemy HP is rolled uniformly from [minEnemyHP, maxEnemyHP). The client's
// HP bars normalise against maxEnemyHP.
const (
	minEnemyHP = 6
	MaxEnemyHP = 14

	waveSize          = 7
	waveSpawnRadius   = 4
	waveSpawnAttempts = 40
)

// Enemy is a hostile actor. Combat is not implemented yet, so an enemy is
// just a cell and a health pool for the client to draw.
type Enemy struct {
	Cell Cell
	HP   int
}

// SpawnWave rolls up to waveSize enemies onto walkable cells within
// waveSpawnRadius of origin, never on the hero's cell. Placement gives up
// after waveSpawnAttempts rolls, so a heavily blocked neighbourhood yields a
// smaller wave rather than looping forever. Returns the enemies spawned.
func SpawnWave(rng *rand.Rand, w *World, origin, hero Cell) []Enemy {
	var spawned []Enemy
	for i := 0; i < waveSpawnAttempts; i++ {
		c := Cell{
			X: origin.X + rng.IntN(2*waveSpawnRadius+1) - waveSpawnRadius,
			Y: origin.Y + rng.IntN(2*waveSpawnRadius+1) - waveSpawnRadius,
		}
		if !c.InBounds() || w.IsBlocked(c) || c == hero {
			continue
		}
		spawned = append(spawned, Enemy{
			Cell: c,
			HP:   minEnemyHP + rng.IntN(MaxEnemyHP-minEnemyHP),
		})
		if len(spawned) >= waveSize {
			break
		}
	}
	return spawned
}
