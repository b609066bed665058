package poly

import (
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/gputypes"
)

// Polygon is a vertex list, an index buffer and the kind that tells how to
// read the indices. It is the unit passed between every component.
//
// Constructors and setters copy their arguments; a Polygon never shares
// buffers with the caller.
type Polygon struct {
	Vertices []Point
	Indices  []uint32
	Kind     GeometryKind
}

// NewPolygon returns a polygon holding copies of vertices and indices.
func NewPolygon(vertices []Point, indices []uint32, kind GeometryKind) Polygon {
	return Polygon{
		Vertices: slices.Clone(vertices),
		Indices:  slices.Clone(indices),
		Kind:     kind,
	}
}

// Set replaces the vertices with a copy and clears the indices, making the
// polygon Implicit.
func (p *Polygon) Set(vertices []Point) {
	p.Vertices = slices.Clone(vertices)
	p.Indices = nil
	p.Kind = Implicit
}

// SetIndices replaces the index buffer with a copy and sets its kind.
func (p *Polygon) SetIndices(indices []uint32, kind GeometryKind) {
	p.Indices = slices.Clone(indices)
	p.Kind = kind
}

// Clone returns a deep copy of p.
func (p Polygon) Clone() Polygon {
	return NewPolygon(p.Vertices, p.Indices, p.Kind)
}

// Empty reports whether p has no vertices.
func (p Polygon) Empty() bool {
	return len(p.Vertices) == 0
}

// Validate checks that the index buffer fits the kind and that every index
// addresses a vertex.
func (p Polygon) Validate() error {
	if !p.Kind.Matches(p.Indices) {
		return precondition("Validate", ErrMalformedIndices,
			fmt.Sprintf("%d indices for %s geometry", len(p.Indices), p.Kind))
	}
	n := len(p.Vertices)
	for i, idx := range p.Indices {
		if int(idx) >= n {
			return precondition("Validate", ErrIndexRange,
				fmt.Sprintf("index %d at position %d, %d vertices", idx, i, n))
		}
	}
	return nil
}

// IndexFormat returns the narrowest GPU index format able to address every
// vertex of p.
func (p Polygon) IndexFormat() gputypes.IndexFormat {
	if len(p.Vertices) <= math.MaxUint16+1 {
		return gputypes.IndexFormatUint16
	}
	return gputypes.IndexFormatUint32
}

// IndexBytes returns the byte size of the index buffer in the format
// reported by IndexFormat.
func (p Polygon) IndexBytes() int {
	return len(p.Indices) * int(p.IndexFormat().Size())
}
