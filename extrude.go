package poly

import (
	"fmt"
	"math"
)

// Extruder strokes polylines into Solid geometry by building one rectangle
// per segment plus joint and cap triangles.
//
// It is fast and allocates its output once, but triangles overlap at
// joints, so the result suits opaque fills only. Use RobustExtruder for
// overlap-free geometry. An Extruder is not safe for concurrent use.
type Extruder struct {
	strokeState
}

// NewExtruder returns an extruder with the given settings.
func NewExtruder(opts ...ExtrudeOption) *Extruder {
	return &Extruder{strokeState: newStrokeState(opts)}
}

// Calculate strokes the input with the given width. Empty input gives an
// empty result. A negative width is rejected.
func (e *Extruder) Calculate(width float64) error {
	if width < 0 || math.IsNaN(width) {
		return precondition("Extruder.Calculate", ErrNegativeWidth, fmt.Sprintf("width %g", width))
	}
	e.opts.precision = max(e.opts.precision, 1)

	lines := make([]Polyline, 0, len(e.paths))
	nv, ni := 0, 0
	for _, l := range e.paths {
		pts, closed := cleanPolyline(l.Points, l.Closed)
		v, i := extrusionSize(len(pts), closed, e.opts.joint, e.opts.cap, e.opts.precision)
		nv += v
		ni += i
		lines = append(lines, Polyline{Points: pts, Closed: closed})
	}

	w := &meshWriter{
		verts: make([]Point, nv),
		idx:   make([]uint32, ni),
		opts:  e.opts,
		half:  width / 2,
	}
	for _, l := range lines {
		w.polyline(l.Points, l.Closed)
	}

	e.output = Polygon{Vertices: w.verts[:w.vc], Indices: w.idx[:w.ic], Kind: Solid}
	e.calculated = true
	Logger().Debug("poly: extruded",
		"paths", len(lines),
		"width", width,
		"joint", e.opts.joint,
		"cap", e.opts.cap,
		"vertices", w.vc,
		"triangles", w.ic/3)
	return nil
}

// ExtrusionSize returns the vertex and index counts Extruder produces for
// one polyline. Mitre joints between parallel segments or beyond the mitre
// limit emit less.
func ExtrusionSize(points []Point, closed bool, joint JointStyle, capStyle CapStyle, precision int) (vertices, indices int) {
	pts, closed := cleanPolyline(points, closed)
	return extrusionSize(len(pts), closed, joint, capStyle, max(precision, 1))
}

// cleanPolyline drops consecutive duplicates and a closing point equal to
// the first. Paths with fewer than three distinct points are never closed.
func cleanPolyline(points []Point, closed bool) ([]Point, bool) {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if n := len(out); n > 0 && out[n-1] == p {
			continue
		}
		out = append(out, p)
	}
	if closed && len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out, closed && len(out) > 2
}

func extrusionSize(n int, closed bool, joint JointStyle, capStyle CapStyle, precision int) (int, int) {
	if n < 2 {
		return 0, 0
	}
	segments, joints, caps := n-1, n-2, 2
	if closed {
		segments, joints, caps = n, n, 0
	}

	v, i := 4*segments, 6*segments
	switch joint {
	case JointSquare:
		i += 3 * joints
	case JointMitre:
		v += joints
		i += 6 * joints
	case JointRound:
		v += precision * joints
		i += 3 * precision * joints
	}
	switch capStyle {
	case CapSquare:
		v += 2 * caps
		i += 6 * caps
	case CapRound:
		v += precision * caps
		i += 3 * precision * caps
	}
	return v, i
}

// segmentRect is the stroke rectangle of one segment. Its corners are, in
// order, start-left, start-right, end-right and end-left.
type segmentRect struct {
	base uint32
	dir  Point
}

func (r segmentRect) startLeft() uint32  { return r.base }
func (r segmentRect) startRight() uint32 { return r.base + 1 }
func (r segmentRect) endRight() uint32   { return r.base + 2 }
func (r segmentRect) endLeft() uint32    { return r.base + 3 }

// meshWriter writes stroke geometry into preallocated buffers.
type meshWriter struct {
	verts  []Point
	idx    []uint32
	vc, ic int
	opts   extrudeOptions
	half   float64
}

func (w *meshWriter) vertex(p Point) uint32 {
	w.verts[w.vc] = p
	w.vc++
	return uint32(w.vc - 1)
}

func (w *meshWriter) triangle(a, b, c uint32) {
	w.idx[w.ic] = a
	w.idx[w.ic+1] = b
	w.idx[w.ic+2] = c
	w.ic += 3
}

func (w *meshWriter) polyline(pts []Point, closed bool) {
	n := len(pts)
	if n < 2 {
		return
	}
	segments := n - 1
	if closed {
		segments = n
	}

	var first, prev segmentRect
	for i := 0; i < segments; i++ {
		cur := w.rect(pts[i], pts[(i+1)%n])
		if i == 0 {
			first = cur
		} else {
			w.joint(prev, cur, pts[i])
		}
		prev = cur
	}

	if closed {
		// The last joint turns from the closing segment back into the first.
		w.joint(prev, first, pts[0])
		return
	}
	w.startCap(first, pts[0])
	w.endCap(prev, pts[n-1])
}

func (w *meshWriter) rect(a, b Point) segmentRect {
	angle := b.Sub(a).Angle()
	sin, cos := math.Sincos(angle)
	dir := Point{X: cos, Y: sin}
	n := dir.Perp().Mul(w.half)

	r := segmentRect{base: uint32(w.vc), dir: dir}
	w.vertex(a.Add(n))
	w.vertex(a.Sub(n))
	w.vertex(b.Sub(n))
	w.vertex(b.Add(n))
	w.triangle(r.startLeft(), r.startRight(), r.endRight())
	w.triangle(r.startLeft(), r.endRight(), r.endLeft())
	return r
}

// joint fills the outer side of the corner at p between prev and cur.
func (w *meshWriter) joint(prev, cur segmentRect, p Point) {
	cross := prev.dir.Cross(cur.dir)

	// A left turn opens the gap on the right side.
	outer1, outer2, inner1 := prev.endLeft(), cur.startLeft(), prev.endRight()
	if cross > 0 {
		outer1, outer2, inner1 = prev.endRight(), cur.startRight(), prev.endLeft()
	}

	switch w.opts.joint {
	case JointSquare:
		w.triangle(inner1, outer1, outer2)
	case JointMitre:
		if math.Abs(cross) < 1e-12 {
			return
		}
		p1, p2 := w.verts[outer1], w.verts[outer2]
		t := p2.Sub(p1).Cross(cur.dir) / cross
		tip := p1.Add(prev.dir.Mul(t))
		w.triangle(inner1, outer1, outer2)
		if tip.Distance(p) > w.opts.mitreLimit*w.half {
			return
		}
		m := w.vertex(tip)
		w.triangle(outer1, m, outer2)
	case JointRound:
		u1, u2 := w.verts[outer1].Sub(p), w.verts[outer2].Sub(p)
		w.fan(p, outer1, outer2, math.Atan2(u1.Cross(u2), u1.Dot(u2)))
	}
}

// fan adds a triangle fan around center from vertex from to vertex to,
// sweeping theta radians in opts.precision steps.
func (w *meshWriter) fan(center Point, from, to uint32, theta float64) {
	steps := w.opts.precision
	c := w.vertex(center)
	u := w.verts[from].Sub(center)
	last := from
	for k := 1; k < steps; k++ {
		next := w.vertex(center.Add(u.Rotate(theta * float64(k) / float64(steps))))
		w.triangle(c, last, next)
		last = next
	}
	w.triangle(c, last, to)
}

func (w *meshWriter) startCap(r segmentRect, p Point) {
	switch w.opts.cap {
	case CapSquare:
		e := r.dir.Mul(-w.half)
		left := w.vertex(w.verts[r.startLeft()].Add(e))
		right := w.vertex(w.verts[r.startRight()].Add(e))
		w.triangle(r.startLeft(), r.startRight(), right)
		w.triangle(r.startLeft(), right, left)
	case CapRound:
		w.fan(p, r.startRight(), r.startLeft(), -math.Pi)
	}
}

func (w *meshWriter) endCap(r segmentRect, p Point) {
	switch w.opts.cap {
	case CapSquare:
		e := r.dir.Mul(w.half)
		left := w.vertex(w.verts[r.endLeft()].Add(e))
		right := w.vertex(w.verts[r.endRight()].Add(e))
		w.triangle(r.endRight(), r.endLeft(), left)
		w.triangle(r.endRight(), left, right)
	case CapRound:
		w.fan(p, r.endLeft(), r.endRight(), -math.Pi)
	}
}
