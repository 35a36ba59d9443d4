// SPDX-License-Identifier: MIT
// Package: planar/pointgen
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng         = rngFromSeed(0) (the default stream)
//   • maxAttempts = DefaultMaxAttempts
//   • onRetry     = no-op

package pointgen

import "math/rand"

// genConfig aggregates all knobs used by the generators.
// It is passed by value (immutable to callers).
type genConfig struct {
	// RNG for coordinate draws; never nil after newConfig.
	rng *rand.Rand
	// Retry budget for GenerateDistinct (≥1).
	maxAttempts int
	// Called after each discarded draw; no-op by default.
	onRetry func(attempt int)
}

// newConfig constructs a config with deterministic defaults and applies all
// options in order (last wins).
func newConfig(opts ...Option) genConfig {
	cfg := genConfig{
		rng:         nil,
		maxAttempts: DefaultMaxAttempts,
		onRetry:     func(int) {},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}
