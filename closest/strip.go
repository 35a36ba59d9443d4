package closest

import "math"

// collectStrip returns, in the order of bySecondary, every point whose
// coordinate along a lies in [x0−delta, x0+delta]. With delta = +Inf
// every point qualifies.
//
// Complexity: O(n) time, O(m) space for the m points kept.
func collectStrip(ps *PointSet, bySecondary []int, x0, delta float64, a Axis) []int {
	var strip []int
	lo, hi := x0-delta, x0+delta
	for _, p := range bySecondary {
		x := ps.coord(p, a)
		if x >= lo && x <= hi {
			strip = append(strip, p)
		}
	}

	return strip
}

// scanStrip looks for a pair in strip closer than best.
//
// For each strip[i] the inner loop walks forward while the gap along
// a.Other() is at most delta, where delta = sqrt(best) on entry; strip is
// sorted along a.Other(), so the first larger gap ends the walk. delta is
// not shrunk when best improves.
//
// With distinct points at most 7 comparisons happen per i. Coincident
// points make delta 0 and an inner walk covers every copy of strip[i], up to
// the whole strip.
//
// Complexity: O(m) for general position, O(m²) worst case.
func scanStrip(ps *PointSet, strip []int, a Axis, best float64, pair Pair, st *Stats) (float64, Pair) {
	delta := math.Sqrt(best)
	o := a.Other()
	st.StripPoints += len(strip)

	var (
		i, j  int
		d     float64
		loops int
	)
	for i = 0; i < len(strip)-1; i++ {
		yi := ps.coord(strip[i], o)
		loops = 0
		for j = i + 1; j < len(strip); j++ {
			if ps.coord(strip[j], o)-yi > delta {
				break
			}
			d = ps.dist2(strip[i], strip[j])
			if d < best {
				best = d
				pair = newPair(strip[i], strip[j])
			}
			loops++
		}
		st.StripComparisons += loops
		if loops > st.MaxStripScan {
			st.MaxStripScan = loops
		}
	}

	return best, pair
}
