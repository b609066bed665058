package poly

import (
	"errors"
	"slices"
	"testing"
)

func TestNewPathSetImplicit(t *testing.T) {
	verts := []Point{{0, 0}, {1, 0}, {1, 1}}
	set, err := NewPathSet(Polygon{Vertices: verts}, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(set) != 1 || !set[0].Closed || !slices.Equal(set[0].Points, verts) {
		t.Errorf("NewPathSet() = %+v, want one closed polyline", set)
	}
	verts[0].X = 5
	if set[0].Points[0].X != 0 {
		t.Error("NewPathSet() shares the vertex buffer")
	}

	empty, err := NewPathSet(Polygon{}, true)
	if err != nil || empty != nil {
		t.Errorf("empty NewPathSet() = %v, %v", empty, err)
	}
}

func TestNewPathSetPath(t *testing.T) {
	verts := []Point{{0, 0}, {1, 0}, {1, 1}, {5, 5}, {6, 5}}

	closed, err := NewPathSet(NewPolygon(verts, []uint32{0, 1, 1, 2, 2, 0}, Path), false)
	if err != nil {
		t.Fatal(err)
	}
	if len(closed) != 1 || !closed[0].Closed || len(closed[0].Points) != 3 {
		t.Errorf("closed chain = %+v, want one closed polyline of 3 points", closed)
	}

	open, err := NewPathSet(NewPolygon(verts, []uint32{0, 1, 1, 2, 3, 4}, Path), true)
	if err != nil {
		t.Fatal(err)
	}
	if len(open) != 2 || open[0].Closed || open[1].Closed {
		t.Fatalf("split chains = %+v, want two open polylines", open)
	}
	if !slices.Equal(open[1].Points, []Point{{5, 5}, {6, 5}}) {
		t.Errorf("second chain = %v", open[1].Points)
	}
	if got := open.Len(); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}
}

func TestNewPathSetLoopThenTail(t *testing.T) {
	verts := []Point{{0, 0}, {1, 0}, {1, 1}, {-1, -1}}

	// The loop 0-1-2-0 is followed by an edge leaving vertex 0 again.
	set, err := NewPathSet(NewPolygon(verts, []uint32{0, 1, 1, 2, 2, 0, 0, 3}, Path), false)
	if err != nil {
		t.Fatal(err)
	}
	if len(set) != 2 {
		t.Fatalf("got %d polylines, want 2: %+v", len(set), set)
	}
	if !set[0].Closed || !slices.Equal(set[0].Points, verts[:3]) {
		t.Errorf("first = %+v, want closed loop over vertices 0, 1, 2", set[0])
	}
	if set[1].Closed || !slices.Equal(set[1].Points, []Point{{0, 0}, {-1, -1}}) {
		t.Errorf("second = %+v, want open chain 0-3", set[1])
	}
}

func TestNewPathSetErrors(t *testing.T) {
	verts := make([]Point, 3)
	if _, err := NewPathSet(NewPolygon(verts, []uint32{0, 1, 2}, Solid), false); !errors.Is(err, ErrWrongKind) {
		t.Errorf("Solid error = %v, want ErrWrongKind", err)
	}
	if _, err := NewPathSet(NewPolygon(verts, []uint32{0, 7}, Path), false); !errors.Is(err, ErrIndexRange) {
		t.Errorf("out of range error = %v, want ErrIndexRange", err)
	}
}
