// Package randutil holds the range helpers every generation stage uses on
// its explicit *rand.Rand.
package randutil

import "math/rand"

// New returns a generator seeded with seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Derive returns an independent generator seeded from the next value of
// parent. Stages that take a derived generator can be re-rolled without
// shifting the draws of the stages after them.
func Derive(parent *rand.Rand) *rand.Rand {
	return New(parent.Int63())
}

// Uniform returns a float in [lo, hi).
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// Between returns an int in [lo, hi], both inclusive. If hi < lo it
// returns lo.
func Between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// Chance reports true with probability p.
func Chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}
