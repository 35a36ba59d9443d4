package closest

import (
	"math"
)

// Point is a location in the plane. Inside the algorithm a point is always
// referred to by its index in a PointSet, never by value, so two points with
// identical coordinates are still distinct points.
type Point struct {
	X float64
	Y float64
}

// Axis selects which coordinate plays the primary role at a recursion level.
//
//   - AxisX — order by X, ties by Y, then by index.
//   - AxisY — order by Y, ties by X, then by index.
//
// The roles swap at every recursive call.
type Axis int

const (
	// AxisX makes X the primary coordinate.
	AxisX Axis = iota

	// AxisY makes Y the primary coordinate.
	AxisY
)

// Other returns the axis with the opposite role.
func (a Axis) Other() Axis {
	if a == AxisX {
		return AxisY
	}

	return AxisX
}

// String implements fmt.Stringer.
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}

	return "y"
}

// PointSet is an immutable, indexable sequence of finite points.
// It is built once by NewPointSet and never mutated afterwards, so it may
// be shared freely between calls and goroutines.
type PointSet struct {
	points []Point
}

// NewPointSet copies points into a new PointSet.
// Returns an error wrapping ErrInvalidInput if any coordinate is NaN or ±Inf.
//
// Complexity: O(n) time, O(n) space.
func NewPointSet(points []Point) (*PointSet, error) {
	cp := make([]Point, len(points))
	var i int
	for i = range points {
		if !finite(points[i].X) || !finite(points[i].Y) {
			return nil, invalidPointError(i, points[i])
		}
		cp[i] = points[i]
	}

	return &PointSet{points: cp}, nil
}

// Len returns the number of points.
func (ps *PointSet) Len() int { return len(ps.points) }

// At returns the point with index i. It panics if i is out of range,
// like a slice index.
func (ps *PointSet) At(i int) Point { return ps.points[i] }

// coord returns the coordinate of point i along axis a.
func (ps *PointSet) coord(i int, a Axis) float64 {
	if a == AxisX {
		return ps.points[i].X
	}

	return ps.points[i].Y
}

// dist2 returns the squared Euclidean distance between points i and j.
// Every path (brute force, strip scan) goes through this one function, so
// the same pair always yields a bit-identical value.
func (ps *PointSet) dist2(i, j int) float64 {
	p, q := ps.points[i], ps.points[j]
	dx := q.X - p.X
	dy := q.Y - p.Y

	return dx*dx + dy*dy
}

// Pair identifies two points of a PointSet by index, with I < J.
type Pair struct {
	I int
	J int
}

// noPair is the Pair reported when fewer than two points exist.
var noPair = Pair{I: -1, J: -1}

// newPair orders the indices so that I < J.
func newPair(i, j int) Pair {
	if i > j {
		i, j = j, i
	}

	return Pair{I: i, J: j}
}

// Result is the outcome of Solve or BruteForce.
type Result struct {
	// Dist2 is the squared distance of the closest pair, or +Inf if Found is false.
	Dist2 float64

	// Pair holds the indices of one closest pair; {-1, -1} if Found is false.
	// When several pairs tie, which one is reported depends on the algorithm,
	// but Dist2 never does.
	Pair Pair

	// Found is false when the input has fewer than two points.
	Found bool
}

// Distance returns the Euclidean distance of the closest pair (+Inf if none).
func (r Result) Distance() float64 {
	return Distance(r.Dist2)
}

// Stats records how much work one Solve call did. The strip counters make
// the degradation on clustered or collinear inputs observable.
type Stats struct {
	// Calls counts invocations of the recursive procedure, base cases included.
	Calls int

	// BruteForceCalls counts subproblems delegated to the brute-force scan.
	BruteForceCalls int

	// MaxDepth is the deepest recursion level reached (root is 0).
	MaxDepth int

	// StripPoints is the total number of strip candidates over all levels.
	StripPoints int

	// StripComparisons counts distance evaluations in the strip scans.
	StripComparisons int

	// MaxStripScan is the largest number of comparisons made by one outer
	// iteration of a strip scan. For points in general position it stays
	// at most 7.
	MaxStripScan int
}

// Distance converts a squared distance to a Euclidean distance.
// +Inf (no pair) stays +Inf.
func Distance(dist2 float64) float64 {
	return math.Sqrt(dist2)
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
