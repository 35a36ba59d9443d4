// SPDX-License-Identifier: MIT
// Package: planar/closest
//
// errors.go — sentinel errors for the closest package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Context (offending index, value) is attached with %w at the call site.
//   • Algorithms never panic on user input. The single panic in this package
//     is the partition-size assertion, which signals a broken comparator.

package closest

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates a point with a NaN or ±Inf coordinate.
	// The comparator is not a total order on NaN, so such input is rejected
	// before any ordering is built.
	ErrInvalidInput = errors.New("closest: non-finite coordinate")

	// ErrBadThreshold indicates a negative brute-force threshold.
	ErrBadThreshold = errors.New("closest: threshold must be non-negative")

	// ErrPartitionInvariant marks a split whose halves are not exactly
	// ⌊n/2⌋ and n−⌊n/2⌋. It is only ever carried by a panic.
	ErrPartitionInvariant = errors.New("closest: partition size invariant violated")
)

// invalidPointError wraps ErrInvalidInput with the index and value of the bad point.
func invalidPointError(i int, p Point) error {
	return fmt.Errorf("point %d (%v, %v): %w", i, p.X, p.Y, ErrInvalidInput)
}
