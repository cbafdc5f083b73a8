package gfx

import "math"

// Tessellation turns smooth shapes into straight-segment approximations.
// The walk is the classic angle sweep: emit (cx + cos(a)*rx, cy + sin(a)*ry)
// from the start angle through one full revolution inclusive, so the loop
// is closed by revisiting the starting direction.

// autoChord is the target chord length, in world units, used to derive the
// angular step when the caller supplies neither a step nor a delta.
const autoChord = 32.0

// maxStepAngle caps the angular step at Pi/16 per segment, so even tiny
// shapes are approximated by at least 32 segments.
const maxStepAngle = math.Pi / 16

// minRadius is the floor applied to degenerate radii so that step
// derivation never divides by zero; zero-size shapes degrade to a minimal
// visible dot instead of failing.
const minRadius = 0.01

// EllipseOptions control how densely an ellipse is tessellated.
// The zero value selects automatic stepping. The sign of Delta and Step
// is ignored; only the magnitude controls density.
type EllipseOptions struct {
	// Delta is an explicit angular step in radians. Mutually exclusive
	// with Step.
	Delta float64

	// Step is a target segment (chord) length in world units from which
	// the angular step is derived. Mutually exclusive with Delta.
	Step float64

	// Dashed halves the point density by advancing two steps per emitted
	// vertex. This is an approximation, not true dash gaps.
	Dashed bool
}

// stepAngle resolves the angular step for the given radii, or reports a
// configuration conflict when both overrides are set.
func (o EllipseOptions) stepAngle(xrad, yrad float64) (float64, error) {
	if o.Delta != 0 && o.Step != 0 {
		return 0, ErrStepConflict
	}
	if o.Delta != 0 {
		return math.Abs(o.Delta), nil
	}
	chord := math.Abs(o.Step)
	if chord == 0 {
		chord = autoChord
	}
	rad := math.Max((xrad+yrad)/2, minRadius)
	sin := math.Min(chord/(2*rad), 1)
	return math.Min(2*math.Asin(sin), maxStepAngle), nil
}

// EllipseVertices tessellates the ellipse inscribed in the bounding box
// (x1, y1)-(x2, y2) into an ordered vertex sequence. The same sequence
// serves as a closed outline (line loop) or a filled approximation
// (triangle fan pivoting on the first emitted vertex, which lies on the
// rim rather than at the center).
func EllipseVertices(x1, y1, x2, y2 float64, opts EllipseOptions) (VertexSeq, error) {
	xrad := math.Abs(x2-x1) / 2
	yrad := math.Abs(y2-y1) / 2
	cx := (x1 + x2) / 2
	cy := (y1 + y2) / 2

	da, err := opts.stepAngle(xrad, yrad)
	if err != nil {
		return nil, err
	}
	inc := da
	if opts.Dashed {
		inc = 2 * da
	}

	size := int(TwoPi/inc) + 2
	if size < 0 {
		size = 0
	}
	verts := make(VertexSeq, 0, 2*size)
	for a := 0.0; a <= TwoPi; a += inc {
		sin, cos := math.Sincos(a)
		verts = verts.Append(cx+cos*xrad, cy+sin*yrad)
	}
	return verts, nil
}

// CircleVertices tessellates a circle of radius r centered at (cx, cy)
// with automatic stepping. It is the equal-radii ellipse special case.
func CircleVertices(cx, cy, r float64) VertexSeq {
	verts, _ := EllipseVertices(cx-r, cy-r, cx+r, cy+r, EllipseOptions{})
	return verts
}

// NgonVertices generates the vertices of a regular polygon with the given
// center, circumradius, side count and starting angle. The walk covers a
// full revolution inclusive, so the first vertex is revisited and the
// sequence closes on itself. Fewer than three sides is a caller error.
func NgonVertices(cx, cy, r float64, sides int, startAngle float64) (VertexSeq, error) {
	if sides < 3 {
		return nil, ErrTooFewSides
	}
	da := TwoPi / float64(sides)
	verts := make(VertexSeq, 0, 2*(sides+1))
	for a := startAngle; a <= TwoPi+startAngle; a += da {
		sin, cos := math.Sincos(a)
		verts = verts.Append(cx+cos*r, cy+sin*r)
	}
	return verts, nil
}
