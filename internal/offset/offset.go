// Package offset computes the outline of a stroked polyline as a set of
// non-overlapping contours.
//
// Input coordinates live on an integer grid (see Quantize). Each polyline
// is offset by half the stroke width with go.clipper, which also unions
// the swept pieces and arranges the result into a tree of outers, holes
// and islands.
package offset

import (
	"errors"
	"fmt"
	"math"

	clipper "github.com/ctessum/go.clipper"
)

// MaxCoord is the largest grid coordinate magnitude accepted. Offset
// vertices then stay below 2^28, inside the range where the clipper keeps
// edge products in int64 instead of switching to 128-bit arithmetic.
const MaxCoord = 1 << 26

// Errors returned by this package.
var (
	// ErrRange is returned when a scaled coordinate exceeds MaxCoord.
	ErrRange = errors.New("offset: coordinate out of range")

	// ErrFailed is returned when the clipper cannot build the outline.
	ErrFailed = errors.New("offset: union failed")
)

// Join selects the geometry inserted where two segments meet.
type Join int

const (
	// JoinNone adds nothing at corners. The clipper always closes the
	// outer side of a corner, so this strokes like JoinBevel.
	JoinNone Join = iota
	// JoinBevel cuts the outer corner square, at Delta from the vertex.
	JoinBevel
	// JoinMiter extends the outer edges until they meet, up to MiterLimit.
	JoinMiter
	// JoinRound fills the outer corner with a circular arc.
	JoinRound
)

// Cap selects the geometry at the free ends of an open path.
type Cap int

const (
	// CapButt ends the stroke flush with the endpoint.
	CapButt Cap = iota
	// CapSquare extends the stroke by Delta past the endpoint.
	CapSquare
	// CapRound ends the stroke with a half disc.
	CapRound
)

// Path is a polyline on the integer grid.
type Path struct {
	Points clipper.Path
	Closed bool
}

// Options configures Stroke.
type Options struct {
	Join Join
	Cap  Cap

	// Delta is half the stroke width in grid units.
	Delta float64

	// MiterLimit is the longest allowed miter, in multiples of Delta.
	// Longer miters are squared off. Values below 2 are treated as 2.
	MiterLimit float64

	// ArcSteps is the number of segments in a half circle of a round
	// joint or cap.
	ArcSteps int
}

// Quantize scales (x, y) by res and rounds it to the grid.
func Quantize(x, y, res float64) (*clipper.IntPoint, error) {
	qx, qy := math.Round(x*res), math.Round(y*res)
	if math.IsNaN(qx) || math.IsNaN(qy) || math.Abs(qx) > MaxCoord || math.Abs(qy) > MaxCoord {
		return nil, fmt.Errorf("%w: (%g, %g) at resolution %g", ErrRange, x, y, res)
	}
	return &clipper.IntPoint{X: clipper.CInt(qx), Y: clipper.CInt(qy)}, nil
}

// Stroke returns the outline tree of each path. Children of a tree are
// outer contours; their children are holes, and so on.
//
// Paths with fewer than two distinct points give an empty tree.
func Stroke(paths []Path, opt Options) ([]*clipper.PolyTree, error) {
	if opt.ArcSteps < 1 {
		opt.ArcSteps = 1
	}
	if opt.MiterLimit < 2 {
		opt.MiterLimit = 2
	}

	out := make([]*clipper.PolyTree, 0, len(paths))
	for i, path := range paths {
		tree, err := strokePath(path, opt)
		if err != nil {
			return nil, fmt.Errorf("path %d: %w", i, err)
		}
		slogger().Debug("offset: stroked path",
			"path", i,
			"points", len(path.Points),
			"outers", tree.ChildCount(),
			"contours", tree.Total())
		out = append(out, tree)
	}
	return out, nil
}

// strokePath offsets one path. Panics raised inside the clipper are
// reported as ErrFailed.
func strokePath(path Path, opt Options) (tree *clipper.PolyTree, err error) {
	pts := dedupe(path.Points, path.Closed)
	if len(pts) < 2 || opt.Delta <= 0 {
		return clipper.NewPolyTree(), nil
	}

	defer func() {
		if r := recover(); r != nil {
			slogger().Warn("offset: clipper panicked", "points", len(pts), "panic", r)
			tree, err = nil, fmt.Errorf("%w: %v", ErrFailed, r)
		}
	}()

	co := clipper.NewClipperOffset()
	co.MiterLimit = opt.MiterLimit
	co.ArcTolerance = arcTolerance(opt.Delta, opt.ArcSteps)
	co.AddPath(pts, joinType(opt.Join), endType(opt.Cap, path.Closed && len(pts) > 2))
	return co.Execute2(opt.Delta), nil
}

// arcTolerance returns the largest distance between an arc and its chords
// that gives steps chords per half circle of radius delta.
func arcTolerance(delta float64, steps int) float64 {
	return delta * (1 - math.Cos(math.Pi/float64(2*steps)))
}

func joinType(j Join) clipper.JoinType {
	switch j {
	case JoinMiter:
		return clipper.JtMiter
	case JoinRound:
		return clipper.JtRound
	}
	return clipper.JtSquare
}

func endType(c Cap, closed bool) clipper.EndType {
	if closed {
		return clipper.EtClosedLine
	}
	switch c {
	case CapSquare:
		return clipper.EtOpenSquare
	case CapRound:
		return clipper.EtOpenRound
	}
	return clipper.EtOpenButt
}

// dedupe copies pts without consecutive duplicates. For closed paths a last
// point equal to the first is dropped too. The clipper only strips
// duplicates that share a pointer.
func dedupe(pts clipper.Path, closed bool) clipper.Path {
	out := make(clipper.Path, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1].X == p.X && out[len(out)-1].Y == p.Y {
			continue
		}
		out = append(out, &clipper.IntPoint{X: p.X, Y: p.Y})
	}
	if closed && len(out) > 1 && out[0].X == out[len(out)-1].X && out[0].Y == out[len(out)-1].Y {
		out = out[:len(out)-1]
	}
	return out
}
