// SPDX-License-Identifier: MIT
// Package: planar/pointgen
//
// options.go — functional options for the generators.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package pointgen

import "math/rand"

// Option customizes a generator call by mutating genConfig before use.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*genConfig)

// WithSeed draws from a fresh *rand.Rand seeded with seed.
// Seed 0 means the default stream, so the zero value stays reproducible.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand draws from r. Consecutive calls sharing r continue one stream.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pointgen: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithMaxAttempts sets the retry budget of GenerateDistinct. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("pointgen: WithMaxAttempts(n<1)")
	}
	return func(c *genConfig) {
		c.maxAttempts = n
	}
}

// WithRetryHook registers fn to be called by GenerateDistinct each time a
// draw is discarded for containing coincident points; attempt counts from 1.
// Panics on nil.
func WithRetryHook(fn func(attempt int)) Option {
	if fn == nil {
		panic("pointgen: WithRetryHook(nil)")
	}
	return func(c *genConfig) {
		c.onRetry = fn
	}
}
