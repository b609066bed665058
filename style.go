package poly

import (
	"fmt"
	"strings"
)

// JointStyle selects the geometry inserted where two stroke segments meet.
type JointStyle int

const (
	// JointNone leaves a gap on the outer side of each corner.
	// RobustExtruder has no gapped corners and strokes it like JointSquare.
	JointNone JointStyle = iota
	// JointSquare closes the corner with a single bevel triangle.
	// RobustExtruder instead cuts the corner square at half the stroke
	// width from the vertex, which covers slightly more.
	JointSquare
	// JointMitre extends the outer edges until they meet. Mitres longer
	// than the mitre limit (see WithMitreLimit) are beveled.
	JointMitre
	// JointRound fills the corner with a circular fan.
	JointRound
)

// String returns the name used by ParseJointStyle.
func (j JointStyle) String() string {
	switch j {
	case JointNone:
		return "none"
	case JointSquare:
		return "bevel"
	case JointMitre:
		return "mitre"
	case JointRound:
		return "round"
	default:
		return fmt.Sprintf("JointStyle(%d)", int(j))
	}
}

// ParseJointStyle maps "mitre", "bevel" and "round" to their styles.
// The empty string and "none" give JointNone.
func ParseJointStyle(name string) (JointStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return JointNone, nil
	case "bevel", "square":
		return JointSquare, nil
	case "mitre", "miter":
		return JointMitre, nil
	case "round":
		return JointRound, nil
	}
	return JointNone, fmt.Errorf("poly: unknown joint style %q", name)
}

// CapStyle selects the geometry at the free ends of an open path.
type CapStyle int

const (
	// CapNone ends the stroke flush with the endpoint.
	CapNone CapStyle = iota
	// CapSquare adds a stroke-width square centred on the endpoint, so the
	// stroke extends half its width past it, as SVG square line caps do.
	// It is not a full width square appended beyond the endpoint.
	CapSquare
	// CapRound ends the stroke with a half disc.
	CapRound
)

// String returns the name used by ParseCapStyle.
func (c CapStyle) String() string {
	switch c {
	case CapNone:
		return "none"
	case CapSquare:
		return "square"
	case CapRound:
		return "round"
	default:
		return fmt.Sprintf("CapStyle(%d)", int(c))
	}
}

// ParseCapStyle maps "square" and "round" to their styles. The empty string
// and "none" give CapNone.
func ParseCapStyle(name string) (CapStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "butt":
		return CapNone, nil
	case "square":
		return CapSquare, nil
	case "round":
		return CapRound, nil
	}
	return CapNone, fmt.Errorf("poly: unknown cap style %q", name)
}
