// Package pointgen generates deterministic point sets for exercising and
// benchmarking the closest package.
//
// The package offers:
//
//   - Distributions (Kind), each drawing u, v from (0,1]:
//     – Uniform:          (u, v)
//     – Reciprocal:       (1/u, 1/v)        heavy-tailed, spread over decades
//     – XAxis / YAxis:    (u, 0) / (0, v)   all points on one axis
//     – XAxisReciprocal / YAxisReciprocal:  (1/u, 0) / (0, 1/v)
//     – IntegerX / IntegerY: (i, 0) / (0, i) evenly spaced on one axis
//     – Diagonal:         (i, i)
//     – Quadratic:        (u², v²)          clustered towards the origin
//     – InverseQuadratic: (1/u², 1/v²)
//   - Configuration primitives (functional options):
//     – WithSeed:        reproducible stream from a seed.
//     – WithRand:        caller-owned *rand.Rand (shared stream).
//     – WithMaxAttempts: retry budget for GenerateDistinct.
//   - Helpers:
//     – HasCoincident:   detects two points with identical coordinates.
//     – DeriveSeed:      independent per-round seeds from one parent seed.
//
// Guarantees:
//
//   - Determinism: same kind, n and seed ⇒ identical points on every platform.
//   - Every coordinate is finite (u, v are never 0).
//   - Fast-fail on meaningless option values via panics in option constructors;
//     generators themselves return sentinel errors.
//
// Complexity: O(n) per Generate; O(n log n) for HasCoincident.
package pointgen
