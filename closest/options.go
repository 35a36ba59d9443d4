// SPDX-License-Identifier: MIT
// Package: planar/closest
//
// options.go — functional options for Solve.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and PANIC on meaningless inputs;
//     the algorithm itself never panics on user input.
//   • newConfig applies options in order (last wins) over fixed defaults.

package closest

// DefaultThreshold is the brute-force cut-off used when WithThreshold is not
// given. With 0 only single-point subproblems stop recursing.
const DefaultThreshold = 0

// Option customizes a Solve call.
type Option func(*config)

// config is the resolved, immutable view of all options.
type config struct {
	threshold int
	stats     *Stats
}

// newConfig starts from the defaults and applies opts in order.
func newConfig(opts ...Option) config {
	cfg := config{
		threshold: DefaultThreshold,
		stats:     nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithThreshold sets the subproblem size at or below which the brute-force
// scan is used instead of recursing. Any value yields the same distance;
// only the running time changes. Panics if t < 0.
func WithThreshold(t int) Option {
	if t < 0 {
		panic("closest: WithThreshold(t<0)")
	}
	return func(c *config) {
		c.threshold = t
	}
}

// WithStats makes Solve add its instrumentation counters to s.
// s is not reset first, so one Stats may accumulate several calls.
// Panics on nil.
func WithStats(s *Stats) Option {
	if s == nil {
		panic("closest: WithStats(nil)")
	}
	return func(c *config) {
		c.stats = s
	}
}
