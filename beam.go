package gfx

import "math"

// BeamVertices generates a triangle fan approximating a light beam: the
// fan pivots on the source and sweeps an arc of the given angular width
// centered on direction, one rim vertex per whole degree. Rim vertices
// point away from the walked angle (the beam shines back toward the
// source), matching the simulator's light-ray rendering.
func BeamVertices(source Point, length, width, direction float64) VertexSeq {
	degStart := int((direction - width/2) * 180 / math.Pi)
	degStop := int((direction + width/2) * 180 / math.Pi)

	rim := degStop - degStart
	if rim < 0 {
		rim = 0
	}
	verts := make(VertexSeq, 0, 2*(rim+1))
	verts = verts.Append(source.X, source.Y)
	for deg := degStart; deg < degStop; deg++ {
		a := float64(deg) * math.Pi / 180
		sin, cos := math.Sincos(a)
		verts = verts.Append(source.X-length*cos, source.Y-length*sin)
	}
	return verts
}

// DotVertices generates a filled dot as concentric point rings, the way
// the simulator draws sensor LEDs. Rings shrink from the given radius to
// one unit, each carrying a point count proportional to its radius.
func DotVertices(center Point, radius float64) VertexSeq {
	var verts VertexSeq
	for r := int(radius); r >= 1; r-- {
		n := int(100 * float64(r) / radius)
		for i := 0; i < n; i++ {
			a := float64(i) / float64(n) * TwoPi
			sin, cos := math.Sincos(a)
			verts = verts.Append(center.X+float64(r)*cos, center.Y+float64(r)*sin)
		}
	}
	return verts
}
