package closest

import "math"

// bruteForce scans every unordered pair of idx and returns the smallest
// squared distance together with the pair attaining it. For len(idx) < 2
// it returns (+Inf, noPair).
//
// Only a strictly smaller distance replaces the current best, so among
// ties the first pair in scan order wins.
//
// Complexity: O(m²) time, O(1) extra space.
func bruteForce(ps *PointSet, idx []int) (float64, Pair) {
	best := math.Inf(1)
	pair := noPair

	var (
		i, j int
		d    float64
	)
	for i = 0; i < len(idx)-1; i++ {
		for j = i + 1; j < len(idx); j++ {
			d = ps.dist2(idx[i], idx[j])
			if d < best {
				best = d
				pair = newPair(idx[i], idx[j])
			}
		}
	}

	return best, pair
}
