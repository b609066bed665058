package poly

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/poly/internal/triangulate"
)

// GeometryKind tells how the index buffer of a Polygon is read.
type GeometryKind int

const (
	// Implicit geometry has no indices. Its shape follows vertex order.
	Implicit GeometryKind = iota
	// Points treats every index as a separate point.
	Points
	// Path treats consecutive index pairs as line segments.
	Path
	// Solid treats consecutive index triples as triangles.
	Solid
)

// String returns the lower-case kind name.
func (k GeometryKind) String() string {
	switch k {
	case Implicit:
		return "implicit"
	case Points:
		return "points"
	case Path:
		return "path"
	case Solid:
		return "solid"
	default:
		return fmt.Sprintf("GeometryKind(%d)", int(k))
	}
}

// ParseGeometryKind returns the kind with the given name, ignoring case.
func ParseGeometryKind(name string) (GeometryKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "implicit", "":
		return Implicit, nil
	case "points":
		return Points, nil
	case "path":
		return Path, nil
	case "solid":
		return Solid, nil
	}
	return Implicit, fmt.Errorf("poly: unknown geometry kind %q", name)
}

// Topology returns the GPU primitive topology that draws this kind.
// Implicit geometry has no topology and reports false.
func (k GeometryKind) Topology() (gputypes.PrimitiveTopology, bool) {
	switch k {
	case Points:
		return gputypes.PrimitiveTopologyPointList, true
	case Path:
		return gputypes.PrimitiveTopologyLineList, true
	case Solid:
		return gputypes.PrimitiveTopologyTriangleList, true
	}
	return 0, false
}

// Matches reports whether indices have a valid shape for this kind.
// Only the length is checked; indices are not compared to any vertex count.
func (k GeometryKind) Matches(indices []uint32) bool {
	switch k {
	case Implicit:
		return len(indices) == 0
	case Points:
		return true
	case Path:
		return len(indices) >= 2 && len(indices)%2 == 0
	case Solid:
		return len(indices) >= 3 && len(indices)%3 == 0
	}
	return false
}

// Categorize guesses the kind of an index buffer.
//
// The checks run in a fixed order: empty is Implicit, a linked chain of
// segments (each pair starts where the previous one ended) is Path, then a
// multiple of three is Solid, a multiple of two is Path, and anything else
// is Points. [0 1 1 2 2 0] is therefore a Path, not a triangle.
func Categorize(indices []uint32) GeometryKind {
	n := len(indices)
	switch {
	case n == 0:
		return Implicit
	case linked(indices):
		return Path
	case n%3 == 0:
		return Solid
	case n%2 == 0:
		return Path
	}
	return Points
}

// linked reports whether indices form a chain of connected segment pairs.
func linked(indices []uint32) bool {
	if len(indices) < 2 || len(indices)%2 != 0 {
		return false
	}
	for k := 1; k+1 < len(indices); k += 2 {
		if indices[k] != indices[k+1] {
			return false
		}
	}
	return true
}

// Index generates the canonical index buffer of this kind for a bare vertex
// list.
//
// Points numbers every vertex. Path joins consecutive vertices into an open
// line list; callers append the closing pair themselves. Solid triangulates
// the vertices as a simple polygon. Self-intersecting outlines give
// undefined triangles.
func (k GeometryKind) Index(vertices []Point) ([]uint32, error) {
	n := len(vertices)
	switch k {
	case Implicit:
		return []uint32{}, nil
	case Points:
		out := make([]uint32, n)
		for i := range out {
			out[i] = uint32(i)
		}
		return out, nil
	case Path:
		if n < 2 {
			return []uint32{}, nil
		}
		out := make([]uint32, 0, 2*(n-1))
		for i := 1; i < n; i++ {
			out = append(out, uint32(i-1), uint32(i))
		}
		return out, nil
	case Solid:
		ring := make([]triangulate.Point, n)
		for i, v := range vertices {
			ring[i] = triangulate.Point{X: v.X, Y: v.Y}
		}
		out, err := triangulate.Simple(ring)
		if err != nil {
			return out, fmt.Errorf("poly: triangulate %d vertices: %w", n, err)
		}
		if out == nil {
			out = []uint32{}
		}
		Logger().Debug("poly: triangulated", "vertices", n, "triangles", len(out)/3)
		return out, nil
	}
	return nil, precondition("Index", ErrWrongKind, k.String())
}
