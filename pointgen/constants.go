// Package pointgen defines shared constants used by the generators.
package pointgen

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodGenerate is the canonical name for Generate.
	MethodGenerate = "Generate"
	// MethodGenerateDistinct is the canonical name for GenerateDistinct.
	MethodGenerateDistinct = "GenerateDistinct"
	// MethodParseKind is the canonical name for ParseKind.
	MethodParseKind = "ParseKind"
)

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

// DefaultMaxAttempts bounds how many fresh draws GenerateDistinct makes
// before giving up with ErrConstructFailed.
const DefaultMaxAttempts = 16

// defaultSeed is the stream used when no seed is given, or the seed is 0.
const defaultSeed int64 = 1
