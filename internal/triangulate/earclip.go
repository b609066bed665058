package triangulate

import (
	"errors"
	"math"
	"sort"
)

// ErrIncomplete is returned when part of the polygon could not be clipped.
// The indices returned alongside it cover the part that was triangulated.
var ErrIncomplete = errors.New("triangulate: polygon could not be fully triangulated")

// Point is a 2D vertex (internal copy to avoid an import cycle).
type Point struct {
	X, Y float64
}

// node is one vertex of the working ring.
type node struct {
	i          uint32
	x, y       float64
	prev, next *node
	steiner    bool
}

// clipper holds the output of one triangulation call.
type clipper struct {
	indices []uint32
	failed  bool
}

// Polygon triangulates outer with the given holes and returns three indices
// per triangle. Vertices are numbered outer first, then every hole in order.
// Rings with fewer than three points produce no triangles.
func Polygon(outer []Point, holes [][]Point) ([]uint32, error) {
	if len(outer) < 3 {
		return nil, nil
	}

	total := len(outer)
	for _, h := range holes {
		total += len(h)
	}
	c := &clipper{indices: make([]uint32, 0, 3*(total-2+2*len(holes)))}

	outerNode := linkedList(outer, 0, true)
	if outerNode == nil || outerNode.next == outerNode.prev {
		return nil, nil
	}
	if len(holes) > 0 {
		outerNode = eliminateHoles(holes, uint32(len(outer)), outerNode)
	}

	c.earcutLinked(outerNode, 0)
	if c.failed {
		return c.indices, ErrIncomplete
	}
	return c.indices, nil
}

// Simple triangulates a single ring. It is shorthand for Polygon(ring, nil).
func Simple(ring []Point) ([]uint32, error) {
	return Polygon(ring, nil)
}

func (c *clipper) emit(a, b, d uint32) {
	if a == b || b == d || a == d {
		return
	}
	c.indices = append(c.indices, a, b, d)
}

// earcutLinked clips ears from the ring starting at ear. pass selects the
// fallback applied when a full lap finds no ear.
func (c *clipper) earcutLinked(ear *node, pass int) {
	if ear == nil {
		return
	}

	stop := ear
	for ear.prev != ear.next {
		prev, next := ear.prev, ear.next

		if isEar(ear) {
			c.emit(prev.i, ear.i, next.i)
			removeNode(ear)

			// Skipping the next vertex leads to fewer sliver triangles.
			ear = next.next
			stop = next.next
			continue
		}

		ear = next
		if ear != stop {
			continue
		}

		switch pass {
		case 0:
			c.earcutLinked(filterPoints(ear, nil), 1)
		case 1:
			c.earcutLinked(c.cureLocalIntersections(filterPoints(ear, nil)), 2)
		default:
			c.splitEarcut(ear)
		}
		return
	}
}

// isEar reports whether ear forms a convex corner with no other ring
// vertex inside the triangle it spans.
func isEar(ear *node) bool {
	a, b, d := ear.prev, ear, ear.next
	if area(a, b, d) >= 0 {
		return false // reflex
	}

	for p := ear.next.next; p != ear.prev; p = p.next {
		if sameXY(p, a) || sameXY(p, b) || sameXY(p, d) {
			continue
		}
		if pointInTriangle(a.x, a.y, b.x, b.y, d.x, d.y, p.x, p.y) && area(p.prev, p, p.next) >= 0 {
			return false
		}
	}
	return true
}

// cureLocalIntersections removes small self-intersections of the form
// a-p-p.next-b where a-p crosses p.next-b.
func (c *clipper) cureLocalIntersections(start *node) *node {
	if start == nil {
		return nil
	}
	p := start
	for {
		a, b := p.prev, p.next.next
		if !sameXY(a, b) && intersects(a, p, p.next, b) && locallyInside(a, b) && locallyInside(b, a) {
			c.emit(a.i, p.i, b.i)
			removeNode(p)
			removeNode(p.next)
			p, start = b, b
		}
		p = p.next
		if p == start {
			break
		}
	}
	return filterPoints(p, nil)
}

// splitEarcut splits the ring along the first valid diagonal and clips both halves.
func (c *clipper) splitEarcut(start *node) {
	a := start
	for {
		for b := a.next.next; b != a.prev; b = b.next {
			if a.i != b.i && isValidDiagonal(a, b) {
				d := splitPolygon(a, b)
				a = filterPoints(a, a.next)
				d = filterPoints(d, d.next)
				c.earcutLinked(a, 0)
				c.earcutLinked(d, 0)
				return
			}
		}
		a = a.next
		if a == start {
			break
		}
	}
	if ringArea(start) != 0 {
		c.failed = true
	}
}

// linkedList builds a circular ring from pts. clockwise selects the
// orientation the ring is linked in (see signedArea).
func linkedList(pts []Point, base uint32, clockwise bool) *node {
	var last *node
	if clockwise == (signedArea(pts) > 0) {
		for k, p := range pts {
			last = insertNode(base+uint32(k), p, last)
		}
	} else {
		for k := len(pts) - 1; k >= 0; k-- {
			last = insertNode(base+uint32(k), pts[k], last)
		}
	}
	if last != nil && sameXY(last, last.next) {
		removeNode(last)
		last = last.next
	}
	return last
}

// eliminateHoles links every hole into the outer ring through a bridge.
func eliminateHoles(holes [][]Point, base uint32, outer *node) *node {
	queue := make([]*node, 0, len(holes))
	for _, h := range holes {
		if len(h) == 0 {
			continue
		}
		list := linkedList(h, base, false)
		base += uint32(len(h))
		if list == nil {
			continue
		}
		if list == list.next {
			list.steiner = true
		}
		queue = append(queue, leftmost(list))
	}

	sort.SliceStable(queue, func(i, j int) bool {
		if queue[i].x != queue[j].x {
			return queue[i].x < queue[j].x
		}
		return queue[i].y < queue[j].y
	})

	for _, h := range queue {
		outer = eliminateHole(h, outer)
	}
	return outer
}

func eliminateHole(hole, outer *node) *node {
	bridge := findHoleBridge(hole, outer)
	if bridge == nil {
		return outer
	}
	bridgeReverse := splitPolygon(bridge, hole)
	filterPoints(bridgeReverse, bridgeReverse.next)
	return filterPoints(bridge, bridge.next)
}

// findHoleBridge finds an outer ring vertex that can be connected to the
// hole's leftmost vertex without crossing any edge.
func findHoleBridge(hole, outer *node) *node {
	p := outer
	hx, hy := hole.x, hole.y
	qx := math.Inf(-1)
	var m *node

	// Find the segment crossed by a ray from the hole point to the left.
	for {
		if hy <= p.y && hy >= p.next.y && p.next.y != p.y {
			x := p.x + (hy-p.y)*(p.next.x-p.x)/(p.next.y-p.y)
			if x <= hx && x > qx {
				qx = x
				m = p.next
				if p.x < p.next.x {
					m = p
				}
				if x == hx {
					return m
				}
			}
		}
		p = p.next
		if p == outer {
			break
		}
	}
	if m == nil {
		return nil
	}

	// Among vertices inside the triangle (hole point, crossing, m) pick the
	// one with the smallest angle to the ray.
	stop := m
	mx, my := m.x, m.y
	tanMin := math.Inf(1)
	p = m
	for {
		ax, cx := qx, hx
		if hy < my {
			ax, cx = hx, qx
		}
		if hx >= p.x && p.x >= mx && hx != p.x && pointInTriangle(ax, hy, mx, my, cx, hy, p.x, p.y) {
			tan := math.Abs(hy-p.y) / (hx - p.x)
			if locallyInside(p, hole) &&
				(tan < tanMin || (tan == tanMin && (p.x > m.x || (p.x == m.x && sectorContainsSector(m, p))))) {
				m = p
				tanMin = tan
			}
		}
		p = p.next
		if p == stop {
			break
		}
	}
	return m
}

func sectorContainsSector(m, p *node) bool {
	return area(m.prev, m, p.prev) < 0 && area(p.next, m, m.next) < 0
}

// filterPoints removes duplicate and collinear vertices between start and end.
func filterPoints(start, end *node) *node {
	if start == nil {
		return nil
	}
	if end == nil {
		end = start
	}

	p := start
	for {
		again := false
		if !p.steiner && (sameXY(p, p.next) || area(p.prev, p, p.next) == 0) {
			removeNode(p)
			p = p.prev
			end = p
			if p == p.next {
				break
			}
			again = true
		} else {
			p = p.next
		}
		if !again && p == end {
			break
		}
	}
	return end
}

func isValidDiagonal(a, b *node) bool {
	if a.next.i == b.i || a.prev.i == b.i || intersectsPolygon(a, b) {
		return false
	}
	if locallyInside(a, b) && locallyInside(b, a) && middleInside(a, b) &&
		(area(a.prev, a, b.prev) != 0 || area(a, b.prev, b) != 0) {
		return true
	}
	return sameXY(a, b) && area(a.prev, a, a.next) > 0 && area(b.prev, b, b.next) > 0
}

func intersectsPolygon(a, b *node) bool {
	p := a
	for {
		if p.i != a.i && p.next.i != a.i && p.i != b.i && p.next.i != b.i && intersects(p, p.next, a, b) {
			return true
		}
		p = p.next
		if p == a {
			return false
		}
	}
}

func locallyInside(a, b *node) bool {
	if area(a.prev, a, a.next) < 0 {
		return area(a, b, a.next) >= 0 && area(a, a.prev, b) >= 0
	}
	return area(a, b, a.prev) < 0 || area(a, a.next, b) < 0
}

func middleInside(a, b *node) bool {
	p := a
	inside := false
	px, py := (a.x+b.x)/2, (a.y+b.y)/2
	for {
		if (p.y > py) != (p.next.y > py) && p.next.y != p.y &&
			px < (p.next.x-p.x)*(py-p.y)/(p.next.y-p.y)+p.x {
			inside = !inside
		}
		p = p.next
		if p == a {
			return inside
		}
	}
}

func intersects(p1, q1, p2, q2 *node) bool {
	o1 := sign(area(p1, q1, p2))
	o2 := sign(area(p1, q1, q2))
	o3 := sign(area(p2, q2, p1))
	o4 := sign(area(p2, q2, q1))

	switch {
	case o1 != o2 && o3 != o4:
		return true
	case o1 == 0 && onSegment(p1, p2, q1):
		return true
	case o2 == 0 && onSegment(p1, q2, q1):
		return true
	case o3 == 0 && onSegment(p2, p1, q2):
		return true
	case o4 == 0 && onSegment(p2, q1, q2):
		return true
	}
	return false
}

// onSegment reports whether q lies within the bounding box of segment pr.
func onSegment(p, q, r *node) bool {
	return q.x <= math.Max(p.x, r.x) && q.x >= math.Min(p.x, r.x) &&
		q.y <= math.Max(p.y, r.y) && q.y >= math.Min(p.y, r.y)
}

// splitPolygon connects a and b with a diagonal. The ring is split in two;
// the returned node belongs to the second ring.
func splitPolygon(a, b *node) *node {
	a2 := &node{i: a.i, x: a.x, y: a.y}
	b2 := &node{i: b.i, x: b.x, y: b.y}
	an, bp := a.next, b.prev

	a.next = b
	b.prev = a

	a2.next = an
	an.prev = a2

	b2.next = a2
	a2.prev = b2

	bp.next = b2
	b2.prev = bp

	return b2
}

func insertNode(i uint32, p Point, last *node) *node {
	n := &node{i: i, x: p.X, y: p.Y}
	if last == nil {
		n.prev, n.next = n, n
		return n
	}
	n.next = last.next
	n.prev = last
	last.next.prev = n
	last.next = n
	return n
}

func removeNode(p *node) {
	p.next.prev = p.prev
	p.prev.next = p.next
}

func leftmost(start *node) *node {
	p, best := start, start
	for {
		if p.x < best.x || (p.x == best.x && p.y < best.y) {
			best = p
		}
		p = p.next
		if p == start {
			return best
		}
	}
}

// area is twice the signed area of triangle pqr; negative for a
// counter-clockwise (y-up) corner.
func area(p, q, r *node) float64 {
	return (q.y-p.y)*(r.x-q.x) - (q.x-p.x)*(r.y-q.y)
}

// signedArea is twice the shoelace area of pts, positive when the ring is
// counter-clockwise in a y-up frame.
func signedArea(pts []Point) float64 {
	sum := 0.0
	j := len(pts) - 1
	for i := range pts {
		sum += (pts[j].X - pts[i].X) * (pts[i].Y + pts[j].Y)
		j = i
	}
	return sum
}

func ringArea(start *node) float64 {
	sum := 0.0
	p := start
	for {
		sum += (p.prev.x - p.x) * (p.y + p.prev.y)
		p = p.next
		if p == start {
			return sum
		}
	}
}

func pointInTriangle(ax, ay, bx, by, cx, cy, px, py float64) bool {
	return (cx-px)*(ay-py) >= (ax-px)*(cy-py) &&
		(ax-px)*(by-py) >= (bx-px)*(ay-py) &&
		(bx-px)*(cy-py) >= (cx-px)*(by-py)
}

func sameXY(a, b *node) bool {
	return a.x == b.x && a.y == b.y
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
