// SPDX-License-Identifier: MIT
// Package: planar/pointgen
//
// generate.go — point-set generators.
//
// Contract:
//   • Generate(kind, n, opts...) returns exactly n finite points.
//   • Two coordinates are drawn for every point, even by kinds that use one
//     or none, so the stream position after n points is the same for all kinds.
//   • No panics; sentinel errors only.

package pointgen

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/planar/closest"
)

// Generate returns n points drawn from kind.
//
// Errors:
//   - ErrBadSize     — n < 0.
//   - ErrUnknownKind — kind is not a known distribution.
//
// Complexity: O(n) time, O(n) space.
func Generate(kind Kind, n int, opts ...Option) ([]closest.Point, error) {
	if err := validate(MethodGenerate, kind, n); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	return generate(kind, n, cfg.rng), nil
}

// GenerateDistinct is Generate with the coincident-point check: a draw that
// contains two identical points is thrown away and drawn again from the same
// stream, up to the configured number of attempts.
//
// Errors: those of Generate, plus ErrConstructFailed when every attempt
// produced coincident points.
func GenerateDistinct(kind Kind, n int, opts ...Option) ([]closest.Point, error) {
	if err := validate(MethodGenerateDistinct, kind, n); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	pts, err := retryDistinct(cfg.maxAttempts, func() []closest.Point {
		return generate(kind, n, cfg.rng)
	}, cfg.onRetry)
	if err != nil {
		return nil, genErrorf(MethodGenerateDistinct, err, "%s n=%d", kind, n)
	}

	return pts, nil
}

// retryDistinct calls draw until it returns a set without coincident points,
// at most attempts times, reporting each discarded draw to onRetry.
func retryDistinct(attempts int, draw func() []closest.Point, onRetry func(int)) ([]closest.Point, error) {
	var i int
	for i = 0; i < attempts; i++ {
		pts := draw()
		if !HasCoincident(pts) {
			return pts, nil
		}
		onRetry(i + 1)
	}

	return nil, fmt.Errorf("coincident points after %d attempts: %w", attempts, ErrConstructFailed)
}

// HasCoincident reports whether two points share both coordinates.
//
// Complexity: O(n log n) time, O(n) space (sorts a copy).
func HasCoincident(points []closest.Point) bool {
	if len(points) < 2 {
		return false
	}
	cp := append([]closest.Point(nil), points...)
	sort.Slice(cp, func(i, j int) bool {
		if cp[i].X != cp[j].X {
			return cp[i].X < cp[j].X
		}
		return cp[i].Y < cp[j].Y
	})

	var i int
	for i = 1; i < len(cp); i++ {
		if cp[i] == cp[i-1] {
			return true
		}
	}

	return false
}

func validate(method string, kind Kind, n int) error {
	if n < 0 {
		return genErrorf(method, ErrBadSize, "n=%d", n)
	}
	if !kind.Valid() {
		return genErrorf(method, ErrUnknownKind, "%s", kind)
	}

	return nil
}

// generate fills n points from r; kind and n are already validated.
func generate(kind Kind, n int, r *rand.Rand) []closest.Point {
	out := make([]closest.Point, n)

	var (
		i    int
		u, v float64
		fi   float64
	)
	for i = 0; i < n; i++ {
		u = unit(r)
		v = unit(r)
		fi = float64(i)

		switch kind {
		case Uniform:
			out[i] = closest.Point{X: u, Y: v}
		case Reciprocal:
			out[i] = closest.Point{X: 1 / u, Y: 1 / v}
		case XAxis:
			out[i] = closest.Point{X: u, Y: 0}
		case YAxis:
			out[i] = closest.Point{X: 0, Y: v}
		case XAxisReciprocal:
			out[i] = closest.Point{X: 1 / u, Y: 0}
		case YAxisReciprocal:
			out[i] = closest.Point{X: 0, Y: 1 / v}
		case IntegerX:
			out[i] = closest.Point{X: fi, Y: 0}
		case IntegerY:
			out[i] = closest.Point{X: 0, Y: fi}
		case Diagonal:
			out[i] = closest.Point{X: fi, Y: fi}
		case Quadratic:
			out[i] = closest.Point{X: u * u, Y: v * v}
		case InverseQuadratic:
			out[i] = closest.Point{X: 1 / (u * u), Y: 1 / (v * v)}
		}
	}

	return out
}
