package closest_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/planar/closest"
	"github.com/katalvlaran/planar/pointgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uniformPoints returns n points drawn uniformly from the unit square.
func uniformPoints(n int, seed int64) []closest.Point {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]closest.Point, n)
	for i := range pts {
		pts[i] = closest.Point{X: rng.Float64(), Y: rng.Float64()}
	}

	return pts
}

// gridPoints returns n points with small integer coordinates (many ties, exact arithmetic).
func gridPoints(n, side int, seed int64) []closest.Point {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]closest.Point, n)
	for i := range pts {
		pts[i] = closest.Point{X: float64(rng.Intn(side)), Y: float64(rng.Intn(side))}
	}

	return pts
}

// mustBrute returns the oracle answer or fails the test.
func mustBrute(t *testing.T, pts []closest.Point) float64 {
	t.Helper()
	d, err := closest.ClosestPairBruteForce(pts)
	require.NoError(t, err)

	return d
}

// mustFast returns the divide-and-conquer answer or fails the test.
func mustFast(t *testing.T, pts []closest.Point, threshold int) float64 {
	t.Helper()
	d, err := closest.ClosestPairSquaredDistance(pts, threshold)
	require.NoError(t, err)

	return d
}

// TestClosest_Scenarios covers the hand-checked inputs.
func TestClosest_Scenarios(t *testing.T) {
	cases := []struct {
		name      string
		points    []closest.Point
		threshold int
		want      float64
	}{
		{"triangle", []closest.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 1, Y: 1}}, 0, 2},
		{"coincident pair", []closest.Point{{X: 0, Y: 0}, {X: 0, Y: 0}}, 0, 0},
		{"collinear on x", []closest.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}, 0, 1},
		{"two points", []closest.Point{{X: 0, Y: 0}, {X: 5, Y: 5}}, 0, 50},
		{"collinear on y", []closest.Point{{X: 0, Y: 9}, {X: 0, Y: 3}, {X: 0, Y: 5}, {X: 0, Y: 0}}, 0, 4},
		{"negative coordinates", []closest.Point{{X: -3, Y: -3}, {X: 4, Y: 4}, {X: -1, Y: -2}}, 0, 5},
		{"brute threshold", []closest.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 1, Y: 1}}, 3, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mustFast(t, tc.points, tc.threshold)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want, mustBrute(t, tc.points), "oracle")
		})
	}

	// The Euclidean distance is one square root away.
	d := mustFast(t, []closest.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 1, Y: 1}}, 0)
	assert.InDelta(t, math.Sqrt2, closest.Distance(d), 1e-15)
}

// TestClosest_FewerThanTwo returns +Inf without error.
func TestClosest_FewerThanTwo(t *testing.T) {
	for _, pts := range [][]closest.Point{nil, {}, {{X: 1, Y: 2}}} {
		d := mustFast(t, pts, 0)
		assert.True(t, math.IsInf(d, 1), "fast path: %v", pts)
		assert.True(t, math.IsInf(mustBrute(t, pts), 1), "oracle: %v", pts)

		res, err := closest.Solve(pts)
		require.NoError(t, err)
		assert.False(t, res.Found)
		assert.Equal(t, closest.Pair{I: -1, J: -1}, res.Pair)
		assert.True(t, math.IsInf(res.Distance(), 1))
	}
}

// TestClosest_InvalidInput rejects NaN and ±Inf before doing any work.
func TestClosest_InvalidInput(t *testing.T) {
	bad := []float64{math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, v := range bad {
		pts := []closest.Point{{X: 0, Y: 0}, {X: 1, Y: v}, {X: 2, Y: 2}}

		d, err := closest.ClosestPairSquaredDistance(pts, 0)
		assert.ErrorIs(t, err, closest.ErrInvalidInput)
		assert.Contains(t, err.Error(), "point 1")
		assert.True(t, math.IsNaN(d), "no usable distance on error")

		d, err = closest.ClosestPairBruteForce(pts)
		assert.ErrorIs(t, err, closest.ErrInvalidInput)
		assert.True(t, math.IsNaN(d))

		_, err = closest.NewPointSet([]closest.Point{{X: v, Y: 0}})
		assert.ErrorIs(t, err, closest.ErrInvalidInput)
	}
}

// TestClosest_BadThreshold rejects negative thresholds with a sentinel.
func TestClosest_BadThreshold(t *testing.T) {
	d, err := closest.ClosestPairSquaredDistance([]closest.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, -1)
	assert.ErrorIs(t, err, closest.ErrBadThreshold)
	assert.True(t, math.IsNaN(d), "must not read as coincident points")
}

// TestClosest_OracleAgreement compares against brute force for every
// threshold in [0, n] on random sets of many sizes.
func TestClosest_OracleAgreement(t *testing.T) {
	for n := 2; n <= 40; n++ {
		for _, pts := range [][]closest.Point{uniformPoints(n, int64(n)), gridPoints(n, 6, int64(n))} {
			want := mustBrute(t, pts)
			for th := 0; th <= n; th++ {
				require.Equal(t, want, mustFast(t, pts, th), "n=%d threshold=%d", n, th)
			}
		}
	}
}

// TestClosest_OracleAllDistributions runs every generator distribution,
// including the axis-degenerate and heavy-tailed ones.
func TestClosest_OracleAllDistributions(t *testing.T) {
	for _, kind := range pointgen.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			for _, n := range []int{2, 3, 17, 256} {
				pts, err := pointgen.Generate(kind, n, pointgen.WithSeed(int64(n)+11))
				require.NoError(t, err)

				want := mustBrute(t, pts)
				for _, th := range []int{0, 1, 4, 32} {
					assert.Equal(t, want, mustFast(t, pts, th), "n=%d threshold=%d", n, th)
				}
			}
		})
	}
}

// TestClosest_UniformThousandExact requires bit-exact agreement on 1000
// uniform points; both paths share the same arithmetic.
func TestClosest_UniformThousandExact(t *testing.T) {
	pts := uniformPoints(1000, 2014)
	assert.Equal(t, mustBrute(t, pts), mustFast(t, pts, 0))
}

// TestClosest_ZeroIffCoincident checks non-negativity and the zero condition.
func TestClosest_ZeroIffCoincident(t *testing.T) {
	distinct := []closest.Point{{X: 0, Y: 0}, {X: 0, Y: 1e-9}, {X: 1, Y: 1}, {X: 2, Y: 0}}
	d := mustFast(t, distinct, 0)
	assert.Greater(t, d, 0.0)

	withDup := append(append([]closest.Point(nil), distinct...), closest.Point{X: 1, Y: 1})
	assert.Equal(t, 0.0, mustFast(t, withDup, 0))

	for seed := int64(1); seed <= 20; seed++ {
		pts := gridPoints(30, 40, seed)
		got := mustFast(t, pts, 0)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Equal(t, pointgen.HasCoincident(pts), got == 0, "seed=%d", seed)
	}
}

// TestClosest_TranslationInvariance shifts integer points by integer vectors
// so the arithmetic stays exact.
func TestClosest_TranslationInvariance(t *testing.T) {
	pts := gridPoints(64, 50, 3)
	base := mustFast(t, pts, 0)

	for _, v := range []closest.Point{{X: 7, Y: -3}, {X: -1000, Y: 250}, {X: 0, Y: 1 << 20}} {
		moved := make([]closest.Point, len(pts))
		for i, p := range pts {
			moved[i] = closest.Point{X: p.X + v.X, Y: p.Y + v.Y}
		}
		assert.Equal(t, base, mustFast(t, moved, 0), "shift %v", v)
	}
}

// TestClosest_ScaleCovariance scales by powers of two, which is exact.
func TestClosest_ScaleCovariance(t *testing.T) {
	pts := uniformPoints(200, 5)
	base := mustFast(t, pts, 0)

	for _, s := range []float64{0.25, 2, 1024} {
		scaled := make([]closest.Point, len(pts))
		for i, p := range pts {
			scaled[i] = closest.Point{X: p.X * s, Y: p.Y * s}
		}
		assert.Equal(t, base*s*s, mustFast(t, scaled, 0), "scale %v", s)
	}
}

// TestClosest_PermutationInvariance shuffles the input order.
func TestClosest_PermutationInvariance(t *testing.T) {
	pts := uniformPoints(300, 9)
	base := mustFast(t, pts, 2)

	rng := rand.New(rand.NewSource(99))
	for round := 0; round < 5; round++ {
		perm := append([]closest.Point(nil), pts...)
		rng.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
		assert.Equal(t, base, mustFast(t, perm, 2), "round %d", round)
	}
}

// TestClosest_Deterministic repeats the same call and expects identical bits.
func TestClosest_Deterministic(t *testing.T) {
	pts := uniformPoints(500, 77)
	first, err := closest.Solve(pts, closest.WithThreshold(3))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := closest.Solve(pts, closest.WithThreshold(3))
		require.NoError(t, err)
		assert.Equal(t, math.Float64bits(first.Dist2), math.Float64bits(again.Dist2))
		assert.Equal(t, first.Pair, again.Pair)
	}
}

// TestSolve_PairAttainsDistance checks the reported indices.
func TestSolve_PairAttainsDistance(t *testing.T) {
	pts := uniformPoints(400, 21)
	res, err := closest.Solve(pts)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Less(t, res.Pair.I, res.Pair.J)

	p, q := pts[res.Pair.I], pts[res.Pair.J]
	dx, dy := q.X-p.X, q.Y-p.Y
	assert.Equal(t, res.Dist2, dx*dx+dy*dy)

	ref, err := closest.BruteForce(pts)
	require.NoError(t, err)
	assert.Equal(t, ref.Dist2, res.Dist2)

	small, err := closest.Solve([]closest.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 1, Y: 1}})
	require.NoError(t, err)
	assert.Equal(t, closest.Pair{I: 0, J: 2}, small.Pair)
}

// TestSolve_InputNotRetained mutates the caller's slice after building a PointSet.
func TestSolve_InputNotRetained(t *testing.T) {
	pts := []closest.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	ps, err := closest.NewPointSet(pts)
	require.NoError(t, err)
	pts[1] = closest.Point{X: 1, Y: 0}

	assert.Equal(t, 100.0, closest.SolvePointSet(ps).Dist2)
	assert.Equal(t, closest.Point{X: 10, Y: 0}, ps.At(1))
	assert.Equal(t, 2, ps.Len())
}

// TestStats_GeneralPosition keeps every inner strip scan within the packing bound.
func TestStats_GeneralPosition(t *testing.T) {
	var st closest.Stats
	_, err := closest.Solve(uniformPoints(2000, 31), closest.WithStats(&st))
	require.NoError(t, err)

	assert.LessOrEqual(t, st.MaxStripScan, 7)
	assert.Positive(t, st.StripComparisons)
	assert.Zero(t, st.BruteForceCalls, "default threshold never brute-forces")
	// depth is ⌈log2 n⌉ for the default threshold
	assert.Equal(t, 11, st.MaxDepth)
	assert.Equal(t, 2*2000-1, st.Calls, "binary recursion down to single points")
}

// TestStats_BruteForceCutoff counts delegated subproblems.
func TestStats_BruteForceCutoff(t *testing.T) {
	var st closest.Stats
	_, err := closest.Solve(uniformPoints(64, 4), closest.WithThreshold(8), closest.WithStats(&st))
	require.NoError(t, err)

	// 64 → 32 → 16 → 8: eight leaves of size 8.
	assert.Equal(t, 8, st.BruteForceCalls)
	assert.Equal(t, 3, st.MaxDepth)
}

// TestStats_ClusteredDegradation documents the worst case: with all points
// coincident the strip at the root holds everything and one inner scan walks
// the whole strip. The answer stays exact.
func TestStats_ClusteredDegradation(t *testing.T) {
	const n = 256
	pts := make([]closest.Point, n)
	for i := range pts {
		pts[i] = closest.Point{X: 0.5, Y: 0.5}
	}

	var st closest.Stats
	res, err := closest.Solve(pts, closest.WithStats(&st))
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Dist2)

	assert.Equal(t, n-1, st.MaxStripScan, "one inner scan covers the whole root strip")
	assert.GreaterOrEqual(t, st.StripComparisons, n*(n-1)/2, "root strip alone is quadratic")
}

// TestStats_CollinearCluster stacks groups of coincident points on one
// vertical line. Every point lands in the root strip and each inner scan
// walks its whole group, past the general-position bound.
func TestStats_CollinearCluster(t *testing.T) {
	const groups, copies = 10, 16
	pts := make([]closest.Point, 0, groups*copies)
	for g := 0; g < groups; g++ {
		for c := 0; c < copies; c++ {
			pts = append(pts, closest.Point{X: 0.5, Y: 0.25 + float64(g)*1e-6})
		}
	}

	var st closest.Stats
	res, err := closest.Solve(pts, closest.WithStats(&st))
	require.NoError(t, err)
	assert.Equal(t, mustBrute(t, pts), res.Dist2)
	assert.Equal(t, 0.0, res.Dist2)

	assert.Greater(t, st.MaxStripScan, 7)
	assert.Equal(t, copies-1, st.MaxStripScan, "a scan stops at the next group")
	assert.GreaterOrEqual(t, st.StripComparisons, groups*copies*(copies-1)/2, "root strip alone")

	// Distinct points on the same line keep the bound.
	var line closest.Stats
	for i := range pts {
		pts[i].Y = 0.25 + float64(i)*1e-6
	}
	_, err = closest.Solve(pts, closest.WithStats(&line))
	require.NoError(t, err)
	assert.LessOrEqual(t, line.MaxStripScan, 7)
}
