package gfx

// Immediate-mode drawing helpers. Each helper expands a shape request
// into a vertex sequence and submits it to the explicitly supplied
// Target in a single draw call. Nothing is retained between calls.

// Line draws a single segment. An empty colors sequence uses the
// target's current color; otherwise colors must hold one color per
// endpoint.
func Line(t Target, x1, y1, x2, y2 float64, colors ColorSeq) error {
	return t.Draw(DrawCall{
		Primitive: PrimLines,
		Verts:     VertexSeq{float32(x1), float32(y1), float32(x2), float32(y2)},
		Colors:    colors,
	})
}

// LineLoop draws a closed outline through the given vertices.
func LineLoop(t Target, verts VertexSeq, colors ColorSeq) error {
	return t.Draw(DrawCall{Primitive: PrimLineLoop, Verts: verts, Colors: colors})
}

// Points draws one point per vertex.
func Points(t Target, verts VertexSeq, colors ColorSeq) error {
	return t.Draw(DrawCall{Primitive: PrimPoints, Verts: verts, Colors: colors})
}

// Polygon fills a single convex polygon.
func Polygon(t Target, verts VertexSeq, colors ColorSeq) error {
	return t.Draw(DrawCall{Primitive: PrimPolygon, Verts: verts, Colors: colors})
}

// Quad fills one quadrilateral from four vertices.
func Quad(t Target, verts VertexSeq, colors ColorSeq) error {
	return t.Draw(DrawCall{Primitive: PrimQuads, Verts: verts, Colors: colors})
}

// Rect fills the axis-aligned rectangle spanned by two corners.
func Rect(t Target, x1, y1, x2, y2 float64) error {
	return t.Draw(DrawCall{
		Primitive: PrimQuads,
		Verts: VertexSeq{
			float32(x1), float32(y1),
			float32(x1), float32(y2),
			float32(x2), float32(y2),
			float32(x2), float32(y1),
		},
	})
}

// RectOutline draws the outline of the axis-aligned rectangle spanned by
// two corners, given in any order.
func RectOutline(t Target, x1, y1, x2, y2 float64) error {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return t.Draw(DrawCall{
		Primitive: PrimLineLoop,
		Verts: VertexSeq{
			float32(x1), float32(y1),
			float32(x1), float32(y2),
			float32(x2), float32(y2),
			float32(x2), float32(y1),
		},
	})
}

// Ellipse fills the ellipse inscribed in the given bounding box as a
// triangle fan.
func Ellipse(t Target, x1, y1, x2, y2 float64) error {
	verts, err := EllipseVertices(x1, y1, x2, y2, EllipseOptions{})
	if err != nil {
		return err
	}
	return t.Draw(DrawCall{Primitive: PrimTriangleFan, Verts: verts})
}

// EllipseOutline draws the ellipse inscribed in the given bounding box as
// a closed line loop.
func EllipseOutline(t Target, x1, y1, x2, y2 float64) error {
	verts, err := EllipseVertices(x1, y1, x2, y2, EllipseOptions{})
	if err != nil {
		return err
	}
	return t.Draw(DrawCall{Primitive: PrimLineLoop, Verts: verts})
}

// Circle fills a circle of radius r centered at (cx, cy).
func Circle(t Target, cx, cy, r float64) error {
	return Ellipse(t, cx-r, cy-r, cx+r, cy+r)
}

// CircleOutline draws the outline of a circle of radius r centered at
// (cx, cy).
func CircleOutline(t Target, cx, cy, r float64) error {
	return EllipseOutline(t, cx-r, cy-r, cx+r, cy+r)
}

// Ngon fills a regular polygon as a triangle fan.
func Ngon(t Target, cx, cy, r float64, sides int, startAngle float64) error {
	verts, err := NgonVertices(cx, cy, r, sides, startAngle)
	if err != nil {
		return err
	}
	return t.Draw(DrawCall{Primitive: PrimTriangleFan, Verts: verts})
}

// NgonOutline draws a regular polygon as a closed line loop.
func NgonOutline(t Target, cx, cy, r float64, sides int, startAngle float64) error {
	verts, err := NgonVertices(cx, cy, r, sides, startAngle)
	if err != nil {
		return err
	}
	return t.Draw(DrawCall{Primitive: PrimLineLoop, Verts: verts})
}

// Grid draws an axis-aligned grid over the rectangle at (x, y), with
// lines snapped to multiples of GridSpacing.
func Grid(t Target, x, y, width, height float64) error {
	return t.Draw(DrawCall{
		Primitive: PrimLines,
		Verts:     GridVertices(x, y, width, height, GridSpacing),
	})
}

// Beam draws a light beam as a triangle fan of the given uniform color.
func Beam(t Target, source Point, length, width, direction float64, c RGBA) error {
	verts := BeamVertices(source, length, width, direction)
	return t.Draw(DrawCall{
		Primitive: PrimTriangleFan,
		Verts:     verts,
		Colors:    c.Repeat(verts.Count()),
	})
}

// Dot draws a filled sensor-LED style dot of the given uniform color.
func Dot(t Target, center Point, radius float64, c RGBA) error {
	verts := DotVertices(center, radius)
	return t.Draw(DrawCall{
		Primitive: PrimPoints,
		Verts:     verts,
		Colors:    c.Repeat(verts.Count()),
	})
}
