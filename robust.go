package poly

import (
	"errors"
	"fmt"
	"math"

	clipper "github.com/ctessum/go.clipper"

	"github.com/gogpu/poly/internal/offset"
	"github.com/gogpu/poly/internal/triangulate"
)

// RobustExtruder strokes polylines into Solid geometry without overlapping
// triangles.
//
// The stroke outline of each polyline is computed on an integer grid with a
// boolean union, then triangulated with its holes. The result is slower to
// build than Extruder's but safe for translucent fills. Coordinates are
// quantized to 1/resolution units.
type RobustExtruder struct {
	strokeState
}

// NewRobustExtruder returns a robust extruder with the given settings.
func NewRobustExtruder(opts ...ExtrudeOption) *RobustExtruder {
	return &RobustExtruder{strokeState: newStrokeState(opts)}
}

// SetResolution sets the grid scale. Non-positive values are ignored.
func (e *RobustExtruder) SetResolution(res float64) {
	if res > 0 {
		e.opts.resolution = res
		e.invalidate()
	}
}

// Resolution returns the grid scale.
func (e *RobustExtruder) Resolution() float64 { return e.opts.resolution }

// Calculate strokes the input with the given width.
//
// It fails with ErrCoordinateRange when a scaled coordinate leaves the
// grid, and with ErrOffsetFailed when the outline cannot be built or
// triangulated. On error the previous result is kept.
func (e *RobustExtruder) Calculate(width float64) error {
	if width < 0 || math.IsNaN(width) {
		return precondition("RobustExtruder.Calculate", ErrNegativeWidth, fmt.Sprintf("width %g", width))
	}
	res := e.opts.resolution
	if res <= 0 {
		res = DefaultResolution
	}

	delta := width / 2 * res
	if delta > offset.MaxCoord {
		return fmt.Errorf("%w: width %g", ErrCoordinateRange, width)
	}

	paths := make([]offset.Path, 0, len(e.paths))
	for _, l := range e.paths {
		pts := make(clipper.Path, len(l.Points))
		for i, p := range l.Points {
			q, err := offset.Quantize(p.X, p.Y, res)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrCoordinateRange, err)
			}
			pts[i] = q
		}
		paths = append(paths, offset.Path{Points: pts, Closed: l.Closed})
	}

	trees, err := offset.Stroke(paths, offset.Options{
		Join:       offsetJoin(e.opts.joint),
		Cap:        offsetCap(e.opts.cap),
		Delta:      delta,
		MiterLimit: e.opts.mitreLimit,
		ArcSteps:   max(e.opts.precision, 1),
	})
	if err != nil {
		if errors.Is(err, offset.ErrFailed) {
			return fmt.Errorf("%w: %w", ErrOffsetFailed, err)
		}
		return err
	}

	out := Polygon{Kind: Solid}
	for i, tree := range trees {
		for _, outer := range tree.Childs() {
			if err := emitOutline(&out, outer, 1/res); err != nil {
				return fmt.Errorf("%w: path %d: %w", ErrOffsetFailed, i, err)
			}
		}
	}

	e.output = out
	e.calculated = true
	Logger().Debug("poly: extruded robustly",
		"paths", len(paths),
		"width", width,
		"resolution", res,
		"vertices", len(out.Vertices),
		"triangles", len(out.Indices)/3)
	return nil
}

// triangulateOutline triangulates an outer ring with holes.
var triangulateOutline = triangulate.Polygon

// emitOutline triangulates an outer contour with its holes and appends the
// result to out, then recurses into islands inside the holes.
func emitOutline(out *Polygon, n *clipper.PolyNode, scale float64) error {
	outer := ringOf(n.Contour())
	holes := make([][]triangulate.Point, 0, n.ChildCount())
	for _, h := range n.Childs() {
		if h.IsHole() {
			holes = append(holes, ringOf(h.Contour()))
		}
	}

	idx, err := triangulateOutline(outer, holes)
	if err != nil {
		return fmt.Errorf("outline of %d points with %d holes: %w", len(outer), len(holes), err)
	}

	base := uint32(len(out.Vertices))
	for _, p := range outer {
		out.Vertices = append(out.Vertices, Point{X: p.X * scale, Y: p.Y * scale})
	}
	for _, h := range holes {
		for _, p := range h {
			out.Vertices = append(out.Vertices, Point{X: p.X * scale, Y: p.Y * scale})
		}
	}
	for _, i := range idx {
		out.Indices = append(out.Indices, base+i)
	}

	for _, h := range n.Childs() {
		for _, island := range h.Childs() {
			if err := emitOutline(out, island, scale); err != nil {
				return err
			}
		}
	}
	return nil
}

// ringOf converts a contour, still in grid units, for the triangulator.
func ringOf(c clipper.Path) []triangulate.Point {
	out := make([]triangulate.Point, len(c))
	for i, p := range c {
		out[i] = triangulate.Point{X: float64(p.X), Y: float64(p.Y)}
	}
	return out
}

func offsetJoin(j JointStyle) offset.Join {
	switch j {
	case JointSquare:
		return offset.JoinBevel
	case JointMitre:
		return offset.JoinMiter
	case JointRound:
		return offset.JoinRound
	}
	return offset.JoinNone
}

func offsetCap(c CapStyle) offset.Cap {
	switch c {
	case CapSquare:
		return offset.CapSquare
	case CapRound:
		return offset.CapRound
	}
	return offset.CapButt
}
