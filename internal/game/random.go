package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// seededRNG derives an independent PCG stream from the seed and a stream
// salt, so world generation and wave spawning never walk the same sequence.
func seededRNG(seed int64, salt string) *rand.Rand {
	// Non-cryptographic PRNG is intentional for reproducible worlds.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, salt+"/a"), seedWord(seed, salt+"/b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
