package pointio

import "errors"

var (
	// ErrBadLine indicates a line that is not two numbers separated by white space.
	// Returned wrapped with the 1-based line number.
	ErrBadLine = errors.New("pointio: malformed line")

	// ErrUnknownCodec indicates an unsupported compression name.
	ErrUnknownCodec = errors.New("pointio: unknown codec")
)
