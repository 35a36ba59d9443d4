// Package pointgen - RNG utilities.
//
// Goals:
//   - Determinism: same seed ⇒ identical points across platforms.
//   - No time-based sources hidden anywhere; callers that want fresh
//     randomness pass a time-derived seed explicitly.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Use DeriveSeed to give each
//     worker its own stream instead of sharing one *rand.Rand.
package pointgen

import "math/rand"

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream number into a new seed with a
// SplitMix64 finalizer, so nearby stream numbers give unrelated streams.
// Use it to hand one seed per verification round or worker.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// unit draws from (0,1]. Reciprocal kinds divide by it, so 0 must never
// come out.
func unit(r *rand.Rand) float64 {
	return 1 - r.Float64()
}
