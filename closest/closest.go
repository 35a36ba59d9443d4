package closest

import "math"

// Closest pair — divide and conquer
//
// Description:
//
//	Finds the minimum squared distance among n points in O(n log n),
//	keeping two index orderings (one per axis) in step through the
//	recursion instead of re-sorting.
//
// Algorithm Outline (one level, primary axis a, secondary a.Other()):
//  1. size ≤ 1 → +Inf (no pair); size ≤ threshold → brute force.
//  2. mid = size/2, pivot = byPrimary[mid].
//  3. Stable split of bySecondary around pivot → left (mid), right (size−mid).
//  4. Recurse on (left, byPrimary[:mid]) and (right, byPrimary[mid:]) with
//     the roles swapped: the halves of bySecondary are sorted along
//     a.Other(), which is the next level's primary axis, and the halves of
//     byPrimary are sorted along a, its secondary axis.
//  5. best = min of both halves; delta = sqrt(best).
//  6. Strip: points of bySecondary within delta of the pivot along a.
//  7. Bounded scan of the strip (see scanStrip) may lower best.
//
// Complexity:
//
//	Time   = O(n log n) in general position, O(n²) worst case (clusters)
//	Memory = O(n log n) auxiliary, O(log n) depth
//
// Errors:
//   - ErrInvalidInput — NaN/±Inf coordinate.
//   - ErrBadThreshold — negative threshold (ClosestPairSquaredDistance only).

// ClosestPairSquaredDistance returns the squared distance of the closest pair
// of points, or +Inf if there are fewer than two. Subproblems of size at most
// threshold are solved by brute force; the result does not depend on it.
// On error the distance is NaN.
func ClosestPairSquaredDistance(points []Point, threshold int) (float64, error) {
	if threshold < 0 {
		return math.NaN(), ErrBadThreshold
	}
	res, err := Solve(points, WithThreshold(threshold))
	if err != nil {
		return math.NaN(), err
	}

	return res.Dist2, nil
}

// ClosestPairBruteForce is the O(n²) reference: same contract as
// ClosestPairSquaredDistance, computed by scanning all pairs.
func ClosestPairBruteForce(points []Point) (float64, error) {
	res, err := BruteForce(points)
	if err != nil {
		return math.NaN(), err
	}

	return res.Dist2, nil
}

// Solve validates points and runs the divide-and-conquer search.
//
// Example:
//
//	res, err := Solve(pts, WithThreshold(8))
//	if err != nil {
//	  // handle ErrInvalidInput
//	}
//	if res.Found {
//	  fmt.Println(res.Pair, res.Distance())
//	}
func Solve(points []Point, opts ...Option) (Result, error) {
	ps, err := NewPointSet(points)
	if err != nil {
		return Result{}, err
	}

	return SolvePointSet(ps, opts...), nil
}

// SolvePointSet runs the divide-and-conquer search on an already validated
// PointSet. It cannot fail.
func SolvePointSet(ps *PointSet, opts ...Option) Result {
	cfg := newConfig(opts...)
	s := &solver{ps: ps, threshold: cfg.threshold, stats: cfg.stats}
	if s.stats == nil {
		s.stats = &Stats{}
	}

	byX := newOrdering(ps, AxisX)
	byY := newOrdering(ps, AxisY)
	d, pair := s.closest(byX, byY, AxisX, 0)

	return newResult(d, pair)
}

// BruteForce validates points and scans every pair.
func BruteForce(points []Point) (Result, error) {
	ps, err := NewPointSet(points)
	if err != nil {
		return Result{}, err
	}

	return BruteForcePointSet(ps), nil
}

// BruteForcePointSet scans every pair of an already validated PointSet.
func BruteForcePointSet(ps *PointSet) Result {
	idx := make([]int, ps.Len())
	var i int
	for i = range idx {
		idx[i] = i
	}
	d, pair := bruteForce(ps, idx)

	return newResult(d, pair)
}

func newResult(d float64, pair Pair) Result {
	if math.IsInf(d, 1) {
		return Result{Dist2: d, Pair: noPair, Found: false}
	}

	return Result{Dist2: d, Pair: pair, Found: true}
}

// solver carries the per-call state of one Solve: the immutable points and
// the resolved options. It holds no orderings; those live on the stack of
// each recursive call.
type solver struct {
	ps        *PointSet
	threshold int
	stats     *Stats
}

// closest returns the squared distance of the closest pair among the points
// of byPrimary. byPrimary and bySecondary hold the same indices, sorted
// along a and a.Other() respectively.
func (s *solver) closest(byPrimary, bySecondary []int, a Axis, depth int) (float64, Pair) {
	st := s.stats
	st.Calls++
	if depth > st.MaxDepth {
		st.MaxDepth = depth
	}

	size := len(byPrimary)
	if size <= 1 {
		return math.Inf(1), noPair
	}
	if size <= s.threshold {
		st.BruteForceCalls++
		return bruteForce(s.ps, byPrimary)
	}

	mid := size / 2
	pivot := byPrimary[mid]

	// Halves of bySecondary become the next primary orderings; halves of
	// byPrimary the next secondary ones.
	left, right := partition(s.ps, bySecondary, pivot, a)
	d1, p1 := s.closest(left, byPrimary[:mid], a.Other(), depth+1)
	d2, p2 := s.closest(right, byPrimary[mid:], a.Other(), depth+1)

	best, pair := d1, p1
	if d2 < best {
		best, pair = d2, p2
	}

	x0 := s.ps.coord(pivot, a)
	strip := collectStrip(s.ps, bySecondary, x0, math.Sqrt(best), a)

	return scanStrip(s.ps, strip, a, best, pair, st)
}
