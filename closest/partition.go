package closest

import "fmt"

// partition splits bySecondary, which is sorted along a.Other(), into the
// points that precede pivot along a (left) and the rest (right).
//
// The split is stable: each half keeps its order along a.Other(), so it
// is directly usable as the next level's primary ordering.
//
// Since pivot sits at position ⌊n/2⌋ of the ordering along a and less is a
// strict total order, left holds exactly ⌊n/2⌋ points. Any other size means
// the comparator is broken; that is a defect, reported by panic.
//
// Complexity: O(n) time, O(n) space for the two fresh slices.
func partition(ps *PointSet, bySecondary []int, pivot int, a Axis) (left, right []int) {
	n := len(bySecondary)
	mid := n / 2
	left = make([]int, 0, mid)
	right = make([]int, 0, n-mid)

	for _, p := range bySecondary {
		if less(ps, p, pivot, a) {
			left = append(left, p)
		} else {
			right = append(right, p)
		}
	}

	if len(left) != mid || len(right) != n-mid {
		panic(fmt.Errorf("split of %d points along %s gave %d/%d, want %d/%d: %w",
			n, a, len(left), len(right), mid, n-mid, ErrPartitionInvariant))
	}

	return left, right
}
