package pointgen

import (
	"strconv"
	"strings"
)

// Kind selects a point distribution. The numeric values are stable and
// match the -type flag of cmd/closest.
type Kind int

const (
	// Uniform draws (u, v).
	Uniform Kind = iota
	// Reciprocal draws (1/u, 1/v).
	Reciprocal
	// XAxis draws (u, 0).
	XAxis
	// YAxis draws (0, v).
	YAxis
	// XAxisReciprocal draws (1/u, 0).
	XAxisReciprocal
	// YAxisReciprocal draws (0, 1/v).
	YAxisReciprocal
	// IntegerX places point i at (i, 0).
	IntegerX
	// IntegerY places point i at (0, i).
	IntegerY
	// Diagonal places point i at (i, i).
	Diagonal
	// Quadratic draws (u², v²).
	Quadratic
	// InverseQuadratic draws (1/u², 1/v²).
	InverseQuadratic

	numKinds
)

var kindNames = [numKinds]string{
	Uniform:          "uniform",
	Reciprocal:       "reciprocal",
	XAxis:            "x-axis",
	YAxis:            "y-axis",
	XAxisReciprocal:  "x-axis-reciprocal",
	YAxisReciprocal:  "y-axis-reciprocal",
	IntegerX:         "integer-x",
	IntegerY:         "integer-y",
	Diagonal:         "diagonal",
	Quadratic:        "quadratic",
	InverseQuadratic: "inverse-quadratic",
}

// NumKinds is the number of distributions.
const NumKinds = int(numKinds)

// Kinds returns all distributions in numeric order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}

	return out
}

// Valid reports whether k is a known distribution.
func (k Kind) Valid() bool {
	return k >= 0 && k < numKinds
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if !k.Valid() {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// ParseKind accepts a distribution name ("uniform", "x-axis", ...) or its
// number ("0".."10"). Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if k := Kind(n); k.Valid() {
			return k, nil
		}
		return 0, genErrorf(MethodParseKind, ErrUnknownKind, "%d out of [0,%d]", n, NumKinds-1)
	}
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}

	return 0, genErrorf(MethodParseKind, ErrUnknownKind, "%q", s)
}
