package gfx

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// SoftwareTarget is a CPU rendering collaborator: it consumes draw calls
// and rasterizes them into a Pixmap. Filled primitives go through the
// x/image vector rasterizer; points and line primitives use a plain
// integer walk, one pixel wide.
type SoftwareTarget struct {
	pix   *Pixmap
	color RGBA
}

// NewSoftwareTarget creates a software target with a fresh transparent
// pixmap of the given dimensions. The current color starts as white.
func NewSoftwareTarget(width, height int) *SoftwareTarget {
	return &SoftwareTarget{
		pix:   NewPixmap(width, height),
		color: White,
	}
}

// Pixmap returns the drawing surface.
func (t *SoftwareTarget) Pixmap() *Pixmap { return t.pix }

// SetColor sets the current color, used by draw calls that carry no
// color sequence.
func (t *SoftwareTarget) SetColor(c RGBA) { t.color = c }

// Draw rasterizes one draw call. Malformed calls (see DrawCall.Validate)
// are rejected before any pixel is touched.
func (t *SoftwareTarget) Draw(call DrawCall) error {
	if err := call.Validate(); err != nil {
		return err
	}
	n := call.Verts.Count()
	if n == 0 {
		return nil
	}
	Logger().Debug("software draw",
		"primitive", call.Primitive.String(), "vertices", n)

	switch call.Primitive {
	case PrimPoints:
		for i := 0; i < n; i++ {
			x, y := call.Verts[2*i], call.Verts[2*i+1]
			t.pix.SetPixel(round(x), round(y), t.vertexColor(call, i))
		}
	case PrimLines:
		for i := 0; i+1 < n; i += 2 {
			t.drawSegment(call, i, i+1)
		}
	case PrimLineLoop:
		for i := 0; i < n; i++ {
			t.drawSegment(call, i, (i+1)%n)
		}
	case PrimTriangleFan, PrimPolygon:
		t.fillPath(call.Verts, t.vertexColor(call, 0))
	case PrimQuads:
		for i := 0; i+3 < n; i += 4 {
			t.fillPath(call.Verts[2*i:2*i+8], t.vertexColor(call, i))
		}
	}
	return nil
}

// vertexColor picks the color for vertex i: the call's per-vertex color
// when a sequence is present, the current color otherwise.
func (t *SoftwareTarget) vertexColor(call DrawCall, i int) RGBA {
	if len(call.Colors) == 0 {
		return t.color
	}
	return RGBA{
		R: float64(call.Colors[4*i]),
		G: float64(call.Colors[4*i+1]),
		B: float64(call.Colors[4*i+2]),
		A: float64(call.Colors[4*i+3]),
	}
}

// drawSegment walks the segment between vertices i and j one pixel at a
// time. Per-vertex colors are not interpolated; the first endpoint's
// color wins.
func (t *SoftwareTarget) drawSegment(call DrawCall, i, j int) {
	c := t.vertexColor(call, i)
	x0 := float64(call.Verts[2*i])
	y0 := float64(call.Verts[2*i+1])
	dx := float64(call.Verts[2*j]) - x0
	dy := float64(call.Verts[2*j+1]) - y0

	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		t.pix.SetPixel(round(float32(x0)), round(float32(y0)), c)
		return
	}
	for s := 0; s <= steps; s++ {
		f := float64(s) / float64(steps)
		t.pix.SetPixel(
			int(math.Round(x0+dx*f)),
			int(math.Round(y0+dy*f)),
			c,
		)
	}
}

// fillPath fills the closed polygon through verts with a uniform color.
// Fans emitted by the tessellators trace convex rims, for which the
// outline fill and the per-triangle fill coincide.
func (t *SoftwareTarget) fillPath(verts VertexSeq, c RGBA) {
	if verts.Count() < 3 {
		return
	}
	z := vector.NewRasterizer(t.pix.Width(), t.pix.Height())
	z.MoveTo(verts[0], verts[1])
	for i := 1; i < verts.Count(); i++ {
		z.LineTo(verts[2*i], verts[2*i+1])
	}
	z.ClosePath()
	z.Draw(t.pix, t.pix.Bounds(), image.NewUniform(c.Color()), image.Point{})
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}
