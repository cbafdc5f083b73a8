package gfx

import "fmt"

// Primitive identifies how a vertex sequence is to be interpreted by the
// rendering collaborator.
type Primitive int

// Primitive kinds, mirroring the classic immediate-mode set.
const (
	// PrimPoints draws one point per vertex.
	PrimPoints Primitive = iota
	// PrimLines draws a disconnected segment per vertex pair.
	PrimLines
	// PrimLineLoop connects consecutive vertices edge to edge and closes
	// the last vertex back to the first.
	PrimLineLoop
	// PrimTriangleFan fills triangles that all share the first vertex.
	PrimTriangleFan
	// PrimQuads draws a quadrilateral per group of four vertices.
	PrimQuads
	// PrimPolygon fills a single convex polygon outline.
	PrimPolygon
)

// String returns the primitive name for diagnostics.
func (p Primitive) String() string {
	switch p {
	case PrimPoints:
		return "points"
	case PrimLines:
		return "lines"
	case PrimLineLoop:
		return "line_loop"
	case PrimTriangleFan:
		return "triangle_fan"
	case PrimQuads:
		return "quads"
	case PrimPolygon:
		return "polygon"
	default:
		return fmt.Sprintf("primitive(%d)", int(p))
	}
}

// VertexSeq is a flat, ordered sequence of (x, y) coordinate pairs in
// drawing order. A sequence of n vertices has length 2*n. Sequences are
// produced fresh per call and never mutated after return; ownership
// transfers to the caller.
type VertexSeq []float32

// Count returns the number of vertices in the sequence.
func (v VertexSeq) Count() int {
	return len(v) / 2
}

// Append adds one vertex to the sequence, truncating to float32.
func (v VertexSeq) Append(x, y float64) VertexSeq {
	return append(v, float32(x), float32(y))
}

// ColorSeq is a flat, ordered sequence of RGBA quadruples parallel to a
// VertexSeq: one 4-component color per vertex, components in [0, 1].
// An empty ColorSeq means the target's default or current color applies.
type ColorSeq []float32

// Count returns the number of per-vertex colors in the sequence.
func (c ColorSeq) Count() int {
	return len(c) / 4
}

// DrawCall is one unit of work handed to a rendering Target: an intended
// primitive kind plus the vertex data that realizes it.
type DrawCall struct {
	Primitive Primitive
	Verts     VertexSeq
	Colors    ColorSeq // optional; empty means default color
}

// Validate reports whether the call is well formed: the vertex sequence
// must be a whole number of coordinate pairs and, when a color sequence
// is present, its length must match the vertex count exactly. A
// mismatch is a malformed draw call, never silently truncated or padded.
func (d DrawCall) Validate() error {
	if len(d.Verts)%2 != 0 {
		return fmt.Errorf("%w: %d coordinates is not a whole number of pairs", ErrArityMismatch, len(d.Verts))
	}
	if len(d.Colors) == 0 {
		return nil
	}
	if d.Colors.Count() != d.Verts.Count() || len(d.Colors)%4 != 0 {
		return fmt.Errorf("%w: %d vertices but %d color components", ErrArityMismatch, d.Verts.Count(), len(d.Colors))
	}
	return nil
}

// Target is the rendering collaborator: it owns the drawing surface and
// turns draw calls into visible output. Implementations sequence access
// to their own surface; the geometry layer holds no state of its own and
// a single Target is always passed explicitly, never implied by ambient
// context.
type Target interface {
	Draw(DrawCall) error
}
