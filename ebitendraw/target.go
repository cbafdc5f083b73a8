// Package ebitendraw adapts gfx draw calls to ebiten: vertex sequences
// are triangulated into vertex/index lists and submitted through
// DrawTriangles against a white source image.
package ebitendraw

import (
	"errors"
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/robosim/gfx"
)

// ErrTooManyVertices is returned when accumulated geometry would
// overflow the uint16 index space of DrawTriangles. Flush and retry.
var ErrTooManyVertices = errors.New("ebitendraw: draw call overflows index space, flush first")

// DrawTriangles samples a source image per vertex; a single white pixel
// makes the vertex colors come through unchanged. The 3x3 image with a
// 1x1 sub-image avoids bleeding at the texel edges.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Target accumulates triangulated draw calls and flushes them to an
// ebiten image once per frame. It implements gfx.Target.
type Target struct {
	verts   []ebiten.Vertex
	indices []uint16

	color     gfx.RGBA
	lineWidth float32
	pointSize float32
	antialias bool
}

// New creates an ebiten target with white current color, one-pixel
// lines and one-pixel points.
func New() *Target {
	return &Target{
		color:     gfx.White,
		lineWidth: 1,
		pointSize: 1,
	}
}

// SetColor sets the current color, used by draw calls that carry no
// color sequence.
func (t *Target) SetColor(c gfx.RGBA) { t.color = c }

// SetLineWidth sets the width used when expanding line primitives into
// triangles.
func (t *Target) SetLineWidth(w float32) { t.lineWidth = w }

// SetAntiAlias toggles anti-aliased triangle submission.
func (t *Target) SetAntiAlias(on bool) { t.antialias = on }

// Draw triangulates one draw call into the pending vertex/index lists.
// Nothing reaches the screen until Flush.
func (t *Target) Draw(call gfx.DrawCall) error {
	if err := call.Validate(); err != nil {
		return err
	}
	n := call.Verts.Count()
	if n == 0 {
		return nil
	}
	// Worst case is point/line expansion: four vertices per input vertex.
	if len(t.verts)+4*n+4 > 1<<16 {
		return ErrTooManyVertices
	}
	gfx.Logger().Debug("ebiten draw",
		"primitive", call.Primitive.String(), "vertices", n)

	switch call.Primitive {
	case gfx.PrimPoints:
		for i := 0; i < n; i++ {
			t.appendPoint(t.vertexAt(call, i))
		}
	case gfx.PrimLines:
		for i := 0; i+1 < n; i += 2 {
			t.appendSegment(t.vertexAt(call, i), t.vertexAt(call, i+1))
		}
	case gfx.PrimLineLoop:
		for i := 0; i < n; i++ {
			t.appendSegment(t.vertexAt(call, i), t.vertexAt(call, (i+1)%n))
		}
	case gfx.PrimTriangleFan, gfx.PrimPolygon:
		t.appendFan(call, 0, n)
	case gfx.PrimQuads:
		for i := 0; i+3 < n; i += 4 {
			t.appendFan(call, i, 4)
		}
	}
	return nil
}

// Flush submits all pending triangles to dst and resets the buffers.
func (t *Target) Flush(dst *ebiten.Image) {
	if len(t.indices) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: t.antialias}
	dst.DrawTriangles(t.verts, t.indices, whiteSubImage, op)
	t.verts = t.verts[:0]
	t.indices = t.indices[:0]
}

// Pending returns the accumulated vertex and index lists. The slices are
// owned by the target and valid until the next Draw or Flush.
func (t *Target) Pending() ([]ebiten.Vertex, []uint16) {
	return t.verts, t.indices
}

// vertexAt builds the ebiten vertex for vertex i of a call, applying the
// per-vertex color when present and the current color otherwise.
func (t *Target) vertexAt(call gfx.DrawCall, i int) ebiten.Vertex {
	v := ebiten.Vertex{
		DstX: call.Verts[2*i],
		DstY: call.Verts[2*i+1],
		SrcX: 1,
		SrcY: 1,
	}
	if len(call.Colors) == 0 {
		v.ColorR = float32(t.color.R)
		v.ColorG = float32(t.color.G)
		v.ColorB = float32(t.color.B)
		v.ColorA = float32(t.color.A)
		return v
	}
	v.ColorR = call.Colors[4*i]
	v.ColorG = call.Colors[4*i+1]
	v.ColorB = call.Colors[4*i+2]
	v.ColorA = call.Colors[4*i+3]
	return v
}

// appendFan triangulates count vertices starting at first as a fan
// sharing the first vertex: (0, i, i+1) for each successive pair.
func (t *Target) appendFan(call gfx.DrawCall, first, count int) {
	if count < 3 {
		return
	}
	base := uint16(len(t.verts))
	for i := 0; i < count; i++ {
		t.verts = append(t.verts, t.vertexAt(call, first+i))
	}
	for i := 1; i < count-1; i++ {
		t.indices = append(t.indices, base, base+uint16(i), base+uint16(i+1))
	}
}

// appendSegment expands a segment into a thin quad perpendicular to its
// direction. Zero-length segments degrade to points.
func (t *Target) appendSegment(a, b ebiten.Vertex) {
	dx := b.DstX - a.DstX
	dy := b.DstY - a.DstY
	length := math32.Hypot(dx, dy)
	if length == 0 {
		t.appendPoint(a)
		return
	}
	half := t.lineWidth / 2
	nx := -dy / length * half
	ny := dx / length * half

	base := uint16(len(t.verts))
	t.verts = append(t.verts,
		offsetVertex(a, nx, ny),
		offsetVertex(b, nx, ny),
		offsetVertex(b, -nx, -ny),
		offsetVertex(a, -nx, -ny),
	)
	t.indices = append(t.indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}

// appendPoint expands one vertex into a pointSize quad centered on it.
func (t *Target) appendPoint(v ebiten.Vertex) {
	half := t.pointSize / 2
	base := uint16(len(t.verts))
	t.verts = append(t.verts,
		offsetVertex(v, -half, -half),
		offsetVertex(v, half, -half),
		offsetVertex(v, half, half),
		offsetVertex(v, -half, half),
	)
	t.indices = append(t.indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}

func offsetVertex(v ebiten.Vertex, dx, dy float32) ebiten.Vertex {
	v.DstX += dx
	v.DstY += dy
	return v
}
