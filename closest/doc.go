// Package closest finds the closest pair of points in the plane, exactly,
// with the classic O(n log n) divide-and-conquer algorithm and an O(n²)
// brute-force reference that it always agrees with.
//
// 🚀 What does it compute?
//
//	Given n points p0..p(n-1), the minimum squared Euclidean distance
//	min |pi − pj|² over all i < j, and (via Solve) one pair attaining it.
//	Fewer than two points have no pair: the result is +Inf.
//
// ✨ Key features:
//   - two index orderings (by X and by Y) are sorted once and then split
//     stably at every level; no re-sorting during the recursion
//   - axis roles swap at each level, so the array sorted by the "other"
//     axis becomes the next level's primary ordering
//   - squared distances throughout; one square root at the very end
//   - strict total order (coordinate, other coordinate, index) so halves
//     are exactly ⌊n/2⌋ and n−⌊n/2⌋ even with duplicate coordinates
//   - configurable brute-force cut-off (WithThreshold)
//   - optional instrumentation of the strip scan (WithStats)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/planar/closest"
//
//	pts := []closest.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 1, Y: 1}}
//	d2, err := closest.ClosestPairSquaredDistance(pts, 0)
//	// d2 == 2, closest.Distance(d2) == 1.4142…
//
//	res, err := closest.Solve(pts, closest.WithThreshold(3))
//	// res.Pair == closest.Pair{I: 0, J: 2}
//
// Performance:
//
//   - Time:   O(n log n) for points in general position.
//   - Memory: O(n log n) auxiliary index buffers (one pair per level).
//
// Limitation: the strip scan relies on a packing bound. Many coincident or
// near-coincident points inside one strip make a single inner scan O(m),
// and the whole strip step O(m²) in the worst case. Stats.MaxStripScan
// exposes this.
//
// Errors:
//   - ErrInvalidInput  — a coordinate is NaN or ±Inf.
//   - ErrBadThreshold  — negative threshold passed to ClosestPairSquaredDistance.
//
// The package performs no I/O and keeps no global state; every call works
// on its own immutable PointSet and is deterministic.
package closest
