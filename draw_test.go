package gfx

import (
	"errors"
	"testing"
)

// recordTarget captures validated draw calls for inspection.
type recordTarget struct {
	calls []DrawCall
}

func (r *recordTarget) Draw(call DrawCall) error {
	if err := call.Validate(); err != nil {
		return err
	}
	r.calls = append(r.calls, call)
	return nil
}

func (r *recordTarget) last(t *testing.T) DrawCall {
	t.Helper()
	if len(r.calls) == 0 {
		t.Fatal("no draw call recorded")
	}
	return r.calls[len(r.calls)-1]
}

func TestLine(t *testing.T) {
	rec := &recordTarget{}
	if err := Line(rec, 1, 2, 3, 4, nil); err != nil {
		t.Fatalf("Line: %v", err)
	}
	call := rec.last(t)
	if call.Primitive != PrimLines {
		t.Errorf("primitive = %v, want lines", call.Primitive)
	}
	want := VertexSeq{1, 2, 3, 4}
	for i := range want {
		if call.Verts[i] != want[i] {
			t.Errorf("verts = %v, want %v", call.Verts, want)
			break
		}
	}
}

func TestLine_ColorArityEnforced(t *testing.T) {
	rec := &recordTarget{}
	err := Line(rec, 0, 0, 1, 1, ColorSeq{1, 0, 0, 1})
	if !errors.Is(err, ErrArityMismatch) {
		t.Errorf("one color for two endpoints: err = %v, want ErrArityMismatch", err)
	}
	if len(rec.calls) != 0 {
		t.Error("malformed call reached the target")
	}
}

func TestShapeHelpers_PrimitiveKinds(t *testing.T) {
	tests := []struct {
		name string
		draw func(Target) error
		want Primitive
	}{
		{"Ellipse", func(tg Target) error { return Ellipse(tg, 0, 0, 10, 10) }, PrimTriangleFan},
		{"EllipseOutline", func(tg Target) error { return EllipseOutline(tg, 0, 0, 10, 10) }, PrimLineLoop},
		{"Circle", func(tg Target) error { return Circle(tg, 5, 5, 5) }, PrimTriangleFan},
		{"CircleOutline", func(tg Target) error { return CircleOutline(tg, 5, 5, 5) }, PrimLineLoop},
		{"Ngon", func(tg Target) error { return Ngon(tg, 0, 0, 5, 6, 0) }, PrimTriangleFan},
		{"NgonOutline", func(tg Target) error { return NgonOutline(tg, 0, 0, 5, 6, 0) }, PrimLineLoop},
		{"Rect", func(tg Target) error { return Rect(tg, 0, 0, 4, 4) }, PrimQuads},
		{"RectOutline", func(tg Target) error { return RectOutline(tg, 4, 4, 0, 0) }, PrimLineLoop},
		{"Grid", func(tg Target) error { return Grid(tg, 0, 0, 100, 100) }, PrimLines},
		{"Beam", func(tg Target) error { return Beam(tg, Pt(0, 0), 10, 0.3, 0, White) }, PrimTriangleFan},
		{"Dot", func(tg Target) error { return Dot(tg, Pt(0, 0), 4, White) }, PrimPoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordTarget{}
			if err := tt.draw(rec); err != nil {
				t.Fatalf("draw: %v", err)
			}
			if got := rec.last(t).Primitive; got != tt.want {
				t.Errorf("primitive = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectOutline_NormalizesCorners(t *testing.T) {
	rec := &recordTarget{}
	if err := RectOutline(rec, 10, 8, 2, 4); err != nil {
		t.Fatalf("RectOutline: %v", err)
	}
	verts := rec.last(t).Verts
	if verts[0] != 2 || verts[1] != 4 {
		t.Errorf("first corner = (%v, %v), want normalized (2, 4)", verts[0], verts[1])
	}
}

func TestNgon_PropagatesSideCountError(t *testing.T) {
	rec := &recordTarget{}
	if err := Ngon(rec, 0, 0, 5, 2, 0); !errors.Is(err, ErrTooFewSides) {
		t.Errorf("err = %v, want ErrTooFewSides", err)
	}
	if len(rec.calls) != 0 {
		t.Error("invalid ngon reached the target")
	}
}

func TestBeam_UniformColorPerVertex(t *testing.T) {
	rec := &recordTarget{}
	c := RGBA{R: 1, G: 1, B: 0, A: 0.6}
	if err := Beam(rec, Pt(0, 0), 20, 0.5, 1.0, c); err != nil {
		t.Fatalf("Beam: %v", err)
	}
	call := rec.last(t)
	if call.Colors.Count() != call.Verts.Count() {
		t.Fatalf("colors for %d of %d vertices", call.Colors.Count(), call.Verts.Count())
	}
	for i := 0; i < call.Colors.Count(); i++ {
		if call.Colors[4*i+3] != 0.6 {
			t.Errorf("vertex %d alpha = %v, want 0.6", i, call.Colors[4*i+3])
		}
	}
}
