package poly

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestNewPolygonCopies(t *testing.T) {
	verts := []Point{{0, 0}, {1, 0}, {0, 1}}
	idx := []uint32{0, 1, 2}
	p := NewPolygon(verts, idx, Solid)

	verts[0] = Point{X: 99, Y: 99}
	idx[0] = 7
	if p.Vertices[0] != (Point{}) || p.Indices[0] != 0 {
		t.Error("NewPolygon() shares caller buffers")
	}

	c := p.Clone()
	c.Vertices[1].X = 5
	c.Indices[1] = 2
	if p.Vertices[1].X != 1 || p.Indices[1] != 1 {
		t.Error("Clone() shares buffers with the original")
	}
}

func TestPolygonSet(t *testing.T) {
	p := NewPolygon([]Point{{0, 0}, {1, 0}, {0, 1}}, []uint32{0, 1, 2}, Solid)
	p.Set([]Point{{2, 2}})
	if p.Kind != Implicit || len(p.Indices) != 0 || len(p.Vertices) != 1 {
		t.Errorf("after Set() polygon = %+v, want one Implicit vertex", p)
	}

	idx := []uint32{0, 0}
	p.SetIndices(idx, Path)
	idx[1] = 3
	if p.Kind != Path || p.Indices[1] != 0 {
		t.Errorf("SetIndices() did not copy: %+v", p)
	}
	if p.Empty() {
		t.Error("Empty() = true for a polygon with vertices")
	}
}

func TestPolygonValidate(t *testing.T) {
	verts := []Point{{0, 0}, {1, 0}, {0, 1}}
	tests := []struct {
		name string
		p    Polygon
		want error
	}{
		{"valid solid", NewPolygon(verts, []uint32{0, 1, 2}, Solid), nil},
		{"valid implicit", NewPolygon(verts, nil, Implicit), nil},
		{"implicit with indices", NewPolygon(verts, []uint32{0}, Implicit), ErrMalformedIndices},
		{"odd path", NewPolygon(verts, []uint32{0, 1, 2}, Path), ErrMalformedIndices},
		{"out of range", NewPolygon(verts, []uint32{0, 1, 3}, Solid), ErrIndexRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
			var pe *PreconditionError
			if !errors.As(err, &pe) || pe.Op != "Validate" {
				t.Errorf("Validate() error %T is not a *PreconditionError for Validate", err)
			}
		})
	}
}

func TestPolygonIndexFormat(t *testing.T) {
	small := Polygon{Vertices: make([]Point, 10), Indices: []uint32{0, 1, 2}, Kind: Solid}
	if got := small.IndexFormat(); got != gputypes.IndexFormatUint16 {
		t.Errorf("IndexFormat() = %v, want Uint16", got)
	}
	if got := small.IndexBytes(); got != 6 {
		t.Errorf("IndexBytes() = %d, want 6", got)
	}

	large := Polygon{Vertices: make([]Point, 70000), Indices: []uint32{0, 1, 69999}, Kind: Solid}
	if got := large.IndexFormat(); got != gputypes.IndexFormatUint32 {
		t.Errorf("IndexFormat() = %v, want Uint32", got)
	}
	if got := large.IndexBytes(); got != 12 {
		t.Errorf("IndexBytes() = %d, want 12", got)
	}
}

func TestPreconditionError(t *testing.T) {
	err := precondition("Traverse", ErrUnsupported, "interior traversal of path geometry")
	want := "Traverse: poly: unsupported configuration (interior traversal of path geometry)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrUnsupported) {
		t.Error("errors.Is(err, ErrUnsupported) = false")
	}

	bare := precondition("Index", ErrWrongKind, "")
	if got := bare.Error(); got != "Index: poly: unsupported geometry kind" {
		t.Errorf("Error() = %q", got)
	}
}
