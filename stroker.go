package poly

import "slices"

// Stroker is implemented by Extruder and RobustExtruder.
type Stroker interface {
	Set(points []Point, closed bool)
	SetPolygon(p Polygon, closed bool) error
	SetPaths(paths PathSet)
	Calculate(width float64) error
	Calculated() bool
	Polygon() Polygon
	Reset()
}

// strokeState is the input, settings and result shared by both extruders.
type strokeState struct {
	paths      PathSet
	opts       extrudeOptions
	output     Polygon
	calculated bool
}

func newStrokeState(opts []ExtrudeOption) strokeState {
	s := strokeState{opts: defaultExtrudeOptions()}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s
}

// Set replaces the input with a single polyline.
func (s *strokeState) Set(points []Point, closed bool) {
	s.paths = PathSet{{Points: slices.Clone(points), Closed: closed}}
	s.invalidate()
}

// SetPolygon replaces the input with the polylines of p. Only Implicit and
// Path geometry can be stroked. For Path geometry, closed is ignored and
// each chain is closed when it ends where it started.
func (s *strokeState) SetPolygon(p Polygon, closed bool) error {
	paths, err := NewPathSet(p, closed)
	if err != nil {
		return err
	}
	s.paths = paths
	s.invalidate()
	return nil
}

// SetPaths replaces the input with a copy of paths.
func (s *strokeState) SetPaths(paths PathSet) {
	s.paths = make(PathSet, len(paths))
	for i, l := range paths {
		s.paths[i] = Polyline{Points: slices.Clone(l.Points), Closed: l.Closed}
	}
	s.invalidate()
}

// SetJoint sets the joint style.
func (s *strokeState) SetJoint(j JointStyle) {
	s.opts.joint = j
	s.invalidate()
}

// SetCap sets the cap style.
func (s *strokeState) SetCap(c CapStyle) {
	s.opts.cap = c
	s.invalidate()
}

// SetPrecision sets the number of triangles in round joints and caps.
func (s *strokeState) SetPrecision(n int) {
	s.opts.precision = max(n, 1)
	s.invalidate()
}

// Joint returns the joint style.
func (s *strokeState) Joint() JointStyle { return s.opts.joint }

// Cap returns the cap style.
func (s *strokeState) Cap() CapStyle { return s.opts.cap }

// Calculated reports whether a result is available for the current input.
func (s *strokeState) Calculated() bool { return s.calculated }

// Polygon returns a copy of the stroked geometry. It is empty until
// Calculate succeeds.
func (s *strokeState) Polygon() Polygon { return s.output.Clone() }

// Reset clears the input and the result. Settings are kept.
func (s *strokeState) Reset() {
	s.paths = nil
	s.invalidate()
}

func (s *strokeState) invalidate() {
	s.output = Polygon{Kind: Solid}
	s.calculated = false
}
