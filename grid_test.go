package gfx

import "testing"

type segment struct {
	x1, y1, x2, y2 float32
}

func seqSegments(t *testing.T, v VertexSeq) []segment {
	t.Helper()
	if len(v)%4 != 0 {
		t.Fatalf("vertex sequence of %d coords is not whole segments", len(v))
	}
	segs := make([]segment, 0, len(v)/4)
	for i := 0; i+3 < len(v); i += 4 {
		segs = append(segs, segment{v[i], v[i+1], v[i+2], v[i+3]})
	}
	return segs
}

func TestGridVertices_SnapsBelowOrigin(t *testing.T) {
	segs := seqSegments(t, GridVertices(5, 5, 100, 100, 50))

	var verticalX, horizontalY []float32
	for _, s := range segs {
		switch {
		case s.x1 == s.x2:
			verticalX = append(verticalX, s.x1)
		case s.y1 == s.y2:
			horizontalY = append(horizontalY, s.y1)
		default:
			t.Errorf("grid emitted a non-axis-aligned segment %+v", s)
		}
	}

	wantLines := []float32{0, 50, 100}
	if len(verticalX) != len(wantLines) {
		t.Fatalf("vertical lines at %v, want %v", verticalX, wantLines)
	}
	for i, want := range wantLines {
		if verticalX[i] != want {
			t.Errorf("vertical line %d at x=%v, want %v (snapped below origin)", i, verticalX[i], want)
		}
		if horizontalY[i] != want {
			t.Errorf("horizontal line %d at y=%v, want %v (snapped below origin)", i, horizontalY[i], want)
		}
	}
}

func TestGridVertices_SpansFullExtent(t *testing.T) {
	segs := seqSegments(t, GridVertices(5, 5, 100, 100, 50))
	for _, s := range segs {
		if s.x1 == s.x2 { // vertical
			if s.y1 != 5 || s.y2 != 105 {
				t.Errorf("vertical segment %+v does not span [5, 105]", s)
			}
		} else {
			if s.x1 != 5 || s.x2 != 105 {
				t.Errorf("horizontal segment %+v does not span [5, 105]", s)
			}
		}
	}
}

func TestGridVertices_NegativeOrigin(t *testing.T) {
	segs := seqSegments(t, GridVertices(-5, -5, 20, 20, 50))

	var verticalX []float32
	for _, s := range segs {
		if s.x1 == s.x2 {
			verticalX = append(verticalX, s.x1)
		}
	}
	want := []float32{-50, 0}
	if len(verticalX) != len(want) {
		t.Fatalf("vertical lines at %v, want %v", verticalX, want)
	}
	for i := range want {
		if verticalX[i] != want[i] {
			t.Errorf("vertical line %d at x=%v, want %v", i, verticalX[i], want[i])
		}
	}
}

func TestGridVertices_AlignedOriginKeepsFirstLine(t *testing.T) {
	segs := seqSegments(t, GridVertices(100, 0, 100, 50, 50))
	var verticalX []float32
	for _, s := range segs {
		if s.x1 == s.x2 {
			verticalX = append(verticalX, s.x1)
		}
	}
	want := []float32{100, 150}
	if len(verticalX) != len(want) {
		t.Fatalf("vertical lines at %v, want %v", verticalX, want)
	}
	for i := range want {
		if verticalX[i] != want[i] {
			t.Errorf("vertical line %d at x=%v, want %v", i, verticalX[i], want[i])
		}
	}
}
