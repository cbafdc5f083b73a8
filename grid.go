package gfx

import "math"

// GridSpacing is the fixed world-unit spacing between grid lines.
const GridSpacing = 50.0

// GridVertices generates endpoint pairs (PrimLines layout) for an
// axis-aligned grid covering the rectangle at (x, y) with the given width
// and height. The first line in each direction is snapped down to the
// nearest multiple of spacing at or below the requested origin, so the
// same world lines light up regardless of viewport offset.
func GridVertices(x, y, width, height, spacing float64) VertexSeq {
	xEnd := x + width
	yEnd := y + height
	x0 := x - floorMod(x, spacing)
	y0 := y - floorMod(y, spacing)

	var verts VertexSeq
	for gx := x0; gx < xEnd; gx += spacing {
		verts = verts.Append(gx, y)
		verts = verts.Append(gx, y+height)
	}
	for gy := y0; gy < yEnd; gy += spacing {
		verts = verts.Append(x, gy)
		verts = verts.Append(x+width, gy)
	}
	return verts
}

// floorMod is the remainder of a/b with the sign of b, so snapping works
// for negative origins as well.
func floorMod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
