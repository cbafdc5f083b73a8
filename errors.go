package gfx

import "errors"

// Errors reported by the tessellation and draw-call layer. All geometry
// in this package is pure computation; every error here signals a caller
// mistake, never a transient condition.
var (
	// ErrStepConflict is returned when both an explicit angular delta and
	// an explicit arc-length step are supplied for ellipse tessellation.
	ErrStepConflict = errors.New("gfx: only one of Delta and Step may be set")

	// ErrTooFewSides is returned when a polygon is requested with fewer
	// than three sides.
	ErrTooFewSides = errors.New("gfx: ngon requires at least 3 sides")

	// ErrArityMismatch is returned for a malformed draw call whose color
	// sequence length disagrees with its vertex count, or whose vertex
	// sequence is not a whole number of (x, y) pairs.
	ErrArityMismatch = errors.New("gfx: vertex and color arity mismatch")
)
