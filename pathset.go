package poly

import "slices"

// Polyline is one continuous run of points.
type Polyline struct {
	Points []Point
	Closed bool
}

// PathSet is the extruder input: independent polylines stroked with the
// same settings.
type PathSet []Polyline

// NewPathSet splits p into polylines.
//
// Implicit geometry becomes a single polyline over all vertices, closed if
// closed is set. Path geometry is split at every discontinuity; each chain
// is closed when it ends on the index it started from, and closed is
// ignored. Other kinds cannot be stroked.
func NewPathSet(p Polygon, closed bool) (PathSet, error) {
	switch p.Kind {
	case Implicit:
		if len(p.Vertices) == 0 {
			return nil, nil
		}
		return PathSet{{Points: slices.Clone(p.Vertices), Closed: closed}}, nil
	case Path:
		if len(p.Indices) == 0 {
			return nil, nil
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		return splitPath(p), nil
	}
	return nil, precondition("NewPathSet", ErrWrongKind, p.Kind.String())
}

func splitPath(p Polygon) PathSet {
	var out PathSet
	var chain []uint32
	flush := func() {
		if len(chain) == 0 {
			return
		}
		line := Polyline{Closed: len(chain) > 2 && chain[0] == chain[len(chain)-1]}
		if line.Closed {
			chain = chain[:len(chain)-1]
		}
		line.Points = make([]Point, len(chain))
		for i, idx := range chain {
			line.Points[i] = p.Vertices[idx]
		}
		out = append(out, line)
		chain = nil
	}

	for i := 0; i+1 < len(p.Indices); i += 2 {
		a, b := p.Indices[i], p.Indices[i+1]
		// A chain back at its start is a closed loop, even when the next
		// edge leaves from the same vertex.
		closed := len(chain) > 2 && chain[0] == chain[len(chain)-1]
		if len(chain) == 0 || chain[len(chain)-1] != a || closed {
			flush()
			chain = append(chain, a)
		}
		chain = append(chain, b)
	}
	flush()
	return out
}

// Len returns the total number of points across all polylines.
func (s PathSet) Len() int {
	n := 0
	for _, l := range s {
		n += len(l.Points)
	}
	return n
}
