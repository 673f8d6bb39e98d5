package flappy

import (
	"math/rand"
	"time"
)

// newRNG returns the game's random source. All spawn, drop and ambient
// draws come from it, so a fixed seed replays the same world.
// Seed 0 picks a time-based seed.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// uniform returns a draw from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// chance returns true with probability p.
func chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}
