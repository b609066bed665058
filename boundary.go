package poly

import (
	"errors"
	"slices"

	"github.com/ctessum/geom"

	"github.com/gogpu/poly/internal/mesh"
)

// Exterior returns the sorted vertex indices that lie on the boundary of p.
//
// For Solid geometry a vertex is interior when the triangles around it form
// a closed fan, and exterior otherwise. For Path and Points geometry every
// referenced vertex is exterior. For Implicit geometry every vertex is.
func (p Polygon) Exterior() ([]uint32, error) {
	switch p.Kind {
	case Implicit:
		return identity(len(p.Vertices)), nil
	case Points, Path:
		out := slices.Clone(p.Indices)
		slices.Sort(out)
		return slices.Compact(out), nil
	case Solid:
		g, err := p.graph("Exterior")
		if err != nil {
			return nil, err
		}
		return g.Exterior(), nil
	}
	return nil, precondition("Exterior", ErrWrongKind, p.Kind.String())
}

// Boundaries returns the connected boundary components of p as ordered
// vertex loops. A loop does not repeat its first vertex.
//
// Solid geometry is detriangulated: the outer outline and every hole of
// every disjoint piece come back as separate loops, in no guaranteed order.
// Path geometry is split into its continuous chains. Points geometry gives
// one component per index, and Implicit geometry a single loop over all
// vertices.
func (p Polygon) Boundaries() ([][]uint32, error) {
	switch p.Kind {
	case Implicit:
		if len(p.Vertices) == 0 {
			return nil, nil
		}
		return [][]uint32{identity(len(p.Vertices))}, nil
	case Points:
		out := make([][]uint32, len(p.Indices))
		for i, idx := range p.Indices {
			out[i] = []uint32{idx}
		}
		return out, nil
	case Path:
		if len(p.Indices)%2 != 0 {
			return nil, precondition("Boundaries", ErrMalformedIndices, "odd path index count")
		}
		return chains(p.Indices), nil
	case Solid:
		g, err := p.graph("Boundaries")
		if err != nil {
			return nil, err
		}
		loops := g.Loops()
		Logger().Debug("poly: detriangulated",
			"triangles", g.Len(),
			"loops", len(loops))
		return loops, nil
	}
	return nil, precondition("Boundaries", ErrWrongKind, p.Kind.String())
}

// chains splits a line list into components. A component ends where the
// next segment does not start at the previous end, or where it starts back
// at the component's first vertex.
func chains(indices []uint32) [][]uint32 {
	var out [][]uint32
	var cur []uint32
	for i := 0; i+1 < len(indices); i += 2 {
		a, b := indices[i], indices[i+1]
		if len(cur) == 0 || indices[i-1] != a || a == cur[0] {
			if len(cur) > 0 {
				out = append(out, cur)
			}
			cur = []uint32{a}
		}
		if b != cur[0] {
			cur = append(cur, b)
		}
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

func (p Polygon) graph(op string) (*mesh.Graph, error) {
	g, err := mesh.NewGraph(p.Indices)
	switch {
	case errors.Is(err, mesh.ErrDegenerate):
		return nil, precondition(op, ErrDegenerateTriangle, err.Error())
	case errors.Is(err, mesh.ErrMalformed):
		return nil, precondition(op, ErrMalformedIndices, err.Error())
	case err != nil:
		return nil, err
	}
	return g, nil
}

func identity(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = uint32(i)
	}
	return out
}

// Outline returns the boundary loops of p as a geom.Polygon, one ring per
// loop. Points geometry has no outline.
func (p Polygon) Outline() (geom.Polygon, error) {
	if p.Kind == Points {
		return nil, precondition("Outline", ErrWrongKind, p.Kind.String())
	}
	loops, err := p.Boundaries()
	if err != nil {
		return nil, err
	}
	out := make(geom.Polygon, 0, len(loops))
	for _, loop := range loops {
		ring := make(geom.Path, len(loop))
		for i, idx := range loop {
			if int(idx) >= len(p.Vertices) {
				return nil, precondition("Outline", ErrIndexRange, "")
			}
			v := p.Vertices[idx]
			ring[i] = geom.Point{X: v.X, Y: v.Y}
		}
		out = append(out, ring)
	}
	return out, nil
}

// Area returns the area enclosed by the outline of p, with holes
// subtracted.
func (p Polygon) Area() (float64, error) {
	outline, err := p.Outline()
	if err != nil {
		return 0, err
	}
	return outline.Area(), nil
}

// Bounds returns the axis-aligned extent of the vertices of p.
func (p Polygon) Bounds() *geom.Bounds {
	ring := make(geom.Path, len(p.Vertices))
	for i, v := range p.Vertices {
		ring[i] = geom.Point{X: v.X, Y: v.Y}
	}
	return geom.Polygon{ring}.Bounds()
}
