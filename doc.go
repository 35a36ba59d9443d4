// Package planar is a small toolkit for proximity queries on planar point
// sets, built around an exact O(n log n) closest-pair search.
//
// 🚀 What is in planar?
//
//	• closest/  — divide-and-conquer closest pair plus a brute-force oracle,
//	              with search counters (Stats) and a brute-force cutoff
//	• pointgen/ — deterministic test distributions (uniform, reciprocal,
//	              axis-aligned, integer, diagonal, quadratic...)
//	• pointio/  — plain "x y" text format, optionally zstd or lz4 compressed
//	• cmd/closest — CLI: generate or load a set, solve, verify in parallel
//
// ✨ Guarantees:
//
//   - Exact: the reported squared distance equals the brute-force minimum
//     bit for bit; both paths share one distance kernel.
//   - Deterministic: same input and options give the same result; point
//     generators are seeded explicitly (seed 0 selects a fixed stream).
//   - Validated: non-finite coordinates are rejected up front.
//
// Quick example:
//
//	d2, err := closest.ClosestPairSquaredDistance(
//		[]closest.Point{{0, 0}, {3, 4}, {1, 1}}, 0)
//	// d2 == 2
//
//	go get github.com/katalvlaran/planar/closest
package planar
