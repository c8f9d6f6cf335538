package binning

// RNG utilities for trial randomness. Each trial owns an independent
// *rand.Rand derived from (Seed, trial index). math/rand.Rand is not
// goroutine-safe, so streams are never shared: the driver derives one
// per trial before handing it to a worker.

import (
	"math/rand"
	"time"
)

// runSeed resolves the base seed for a run: 0 means "independent run",
// seeded from the clock; any other value is used verbatim.
func runSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// deriveSeed mixes a base seed and a trial index into a decorrelated
// 64-bit seed using the SplitMix64 finalizer (Vigna 2014). Sequential
// trial indices would otherwise produce correlated math/rand streams.
func deriveSeed(base int64, trial uint64) int64 {
	x := uint64(base) ^ (trial + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// trialRNG returns the deterministic stream for one trial of a run.
// Trial 0 is the stream Iterate uses, which keeps Bin(Iterations=1)
// identical to a direct Iterate call under the same seed.
func trialRNG(base int64, trial uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(base, trial)))
}
