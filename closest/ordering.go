package closest

import "sort"

// less reports whether point p precedes point q along axis a.
//
// Order keys, in turn:
//  1. coordinate on a,
//  2. coordinate on a.Other(),
//  3. index.
//
// The index key makes this a strict total order even for coincident
// points; the exact half sizes in partition depend on it.
// Inputs are finite (PointSet guarantees it), so == and < are well defined.
func less(ps *PointSet, p, q int, a Axis) bool {
	pa, qa := ps.coord(p, a), ps.coord(q, a)
	if pa != qa {
		return pa < qa
	}
	o := a.Other()
	po, qo := ps.coord(p, o), ps.coord(q, o)
	if po != qo {
		return po < qo
	}

	return p < q
}

// newOrdering returns the indices 0..n-1 sorted by less along a.
// Called only at the top level; the recursion never sorts again.
//
// Complexity: O(n log n) time, O(n) space.
func newOrdering(ps *PointSet, a Axis) []int {
	ord := make([]int, ps.Len())
	var i int
	for i = range ord {
		ord[i] = i
	}
	sort.Slice(ord, func(x, y int) bool {
		return less(ps, ord[x], ord[y], a)
	})

	return ord
}

// isOrdered reports whether ord is strictly increasing under less along a.
func isOrdered(ps *PointSet, ord []int, a Axis) bool {
	var i int
	for i = 1; i < len(ord); i++ {
		if !less(ps, ord[i-1], ord[i], a) {
			return false
		}
	}

	return true
}
