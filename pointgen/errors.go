// SPDX-License-Identifier: MIT
// Package: planar/pointgen
//
// errors.go — sentinel errors for the pointgen package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with genErrorf (method prefix + %w).
//   • Generators never panic; option constructors do (WithX(...)).

package pointgen

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative number of points.
var ErrBadSize = errors.New("pointgen: invalid size")

// ErrUnknownKind indicates a Kind outside the known distributions, or an
// unparseable kind name.
var ErrUnknownKind = errors.New("pointgen: unknown distribution")

// ErrConstructFailed indicates GenerateDistinct used up its attempts and every
// draw still contained coincident points (e.g. n larger than the number of
// representable distinct values).
var ErrConstructFailed = errors.New("pointgen: construction failed")

// genErrorf prefixes a sentinel with the method name and formatted detail,
// keeping the sentinel reachable through errors.Is.
func genErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
