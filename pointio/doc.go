// Package pointio reads and writes point sets as plain text, one point per
// line, optionally compressed.
//
// Format:
//
//	# comment lines and blank lines are ignored
//	0.25 0.75
//	1e-3 42
//
// Each line holds the X and Y coordinate separated by white space. Values
// are written in the shortest form that parses back to the same float64,
// so Write followed by Read reproduces the input bit for bit.
//
// Compression is chosen by file extension in ReadFile/WriteFile:
//
//	.zst, .zstd  — zstd (github.com/klauspost/compress/zstd)
//	.lz4         — lz4 frame (github.com/pierrec/lz4/v4)
//	anything else — uncompressed
//
// pointio checks syntax only. Non-finite values such as "NaN" or "Inf"
// parse fine here and are rejected later by closest.NewPointSet.
package pointio
