package poly

import (
	"fmt"
	"slices"
)

// TraversalMode selects the wireframe that Traverse produces.
type TraversalMode int

const (
	// TraversalNone produces no edges.
	TraversalNone TraversalMode = iota
	// TraversalOpen joins consecutive boundary vertices.
	TraversalOpen
	// TraversalClosed joins consecutive boundary vertices and closes
	// every loop.
	TraversalClosed
	// TraversalInterior draws every triangle edge once. Solid only.
	TraversalInterior
)

func (m TraversalMode) String() string {
	switch m {
	case TraversalNone:
		return "none"
	case TraversalOpen:
		return "open"
	case TraversalClosed:
		return "closed"
	case TraversalInterior:
		return "interior"
	default:
		return fmt.Sprintf("TraversalMode(%d)", int(m))
	}
}

// Traverse returns a Path wireframe of p over a copy of its vertices.
//
// For Implicit and Path geometry the open and closed modes walk each chain
// in order. For Solid geometry both modes trace the detriangulated boundary
// loops, which are always closed. Interior mode needs Solid geometry.
func Traverse(p Polygon, mode TraversalMode) (Polygon, error) {
	out := Polygon{Vertices: slices.Clone(p.Vertices), Kind: Path}

	if mode == TraversalNone {
		return out, nil
	}
	if mode == TraversalInterior && p.Kind != Solid {
		return Polygon{}, precondition("Traverse", ErrUnsupported,
			fmt.Sprintf("%s traversal of %s geometry", mode, p.Kind))
	}

	switch p.Kind {
	case Implicit, Path:
		chains, err := p.Boundaries()
		if err != nil {
			return Polygon{}, err
		}
		for _, c := range chains {
			out.Indices = appendLoop(out.Indices, c, mode == TraversalClosed && len(c) > 2)
		}
	case Solid:
		if mode == TraversalInterior {
			g, err := p.graph("Traverse")
			if err != nil {
				return Polygon{}, err
			}
			for _, e := range g.Edges() {
				out.Indices = append(out.Indices, e.A, e.B)
			}
			break
		}
		loops, err := p.Boundaries()
		if err != nil {
			return Polygon{}, err
		}
		for _, l := range loops {
			out.Indices = appendLoop(out.Indices, l, len(l) > 2)
		}
	default:
		return Polygon{}, precondition("Traverse", ErrWrongKind, p.Kind.String())
	}
	return out, nil
}

// appendLoop appends the segments joining consecutive vertices of loop,
// plus the closing segment if closed is set.
func appendLoop(indices, loop []uint32, closed bool) []uint32 {
	for i := 1; i < len(loop); i++ {
		indices = append(indices, loop[i-1], loop[i])
	}
	if closed {
		indices = append(indices, loop[len(loop)-1], loop[0])
	}
	return indices
}
