package poly

// DefaultPrecision is the number of triangles in a round joint or cap.
const DefaultPrecision = 10

// DefaultResolution is the grid scale used by RobustExtruder: coordinates
// are kept to 1/8 of a unit.
const DefaultResolution = 8

// DefaultMitreLimit is the longest mitre drawn before beveling, measured
// from the joint vertex in multiples of half the stroke width.
const DefaultMitreLimit = 2

// ExtrudeOption configures an Extruder or RobustExtruder.
//
// Example:
//
//	e := poly.NewExtruder(
//	    poly.WithJoint(poly.JointRound),
//	    poly.WithCap(poly.CapSquare),
//	)
type ExtrudeOption func(*extrudeOptions)

// extrudeOptions holds the stroke settings shared by both extruders.
type extrudeOptions struct {
	joint      JointStyle
	cap        CapStyle
	precision  int
	resolution float64
	mitreLimit float64
}

func defaultExtrudeOptions() extrudeOptions {
	return extrudeOptions{
		joint:      JointNone,
		cap:        CapNone,
		precision:  DefaultPrecision,
		resolution: DefaultResolution,
		mitreLimit: DefaultMitreLimit,
	}
}

// WithJoint sets the joint style.
func WithJoint(j JointStyle) ExtrudeOption {
	return func(o *extrudeOptions) {
		o.joint = j
	}
}

// WithCap sets the cap style.
func WithCap(c CapStyle) ExtrudeOption {
	return func(o *extrudeOptions) {
		o.cap = c
	}
}

// WithPrecision sets the number of triangles in round joints and caps.
// Values below 1 are raised to 1.
func WithPrecision(n int) ExtrudeOption {
	return func(o *extrudeOptions) {
		o.precision = max(n, 1)
	}
}

// WithResolution sets the grid scale of RobustExtruder. Higher values keep
// more precision but shrink the coordinate range that fits the grid.
// Non-positive values are ignored. Extruder ignores this option.
func WithResolution(res float64) ExtrudeOption {
	return func(o *extrudeOptions) {
		if res > 0 {
			o.resolution = res
		}
	}
}

// WithMitreLimit sets the longest mitre drawn, measured from the joint
// vertex in multiples of half the stroke width. Longer mitres are beveled.
// RobustExtruder treats limits below 2 as 2.
func WithMitreLimit(limit float64) ExtrudeOption {
	return func(o *extrudeOptions) {
		o.mitreLimit = limit
	}
}
