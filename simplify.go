package poly

import (
	"math"
	"slices"
)

// DefaultTolerance is the simplification tolerance used by NewSimplifier.
// It suits touch or mouse input in pixel units.
const DefaultTolerance = 1.0

// Simplifier reduces a point sequence with the Douglas-Peucker algorithm.
//
// The result is always an order-preserving subsequence of the input that
// keeps the first and last points. A Simplifier is not safe for concurrent
// use.
type Simplifier struct {
	input      []Point
	output     []Point
	calculated bool
}

// NewSimplifier returns a simplifier holding a copy of points.
func NewSimplifier(points []Point) *Simplifier {
	s := &Simplifier{}
	s.Set(points)
	return s
}

// Set replaces the input with a copy of points and clears any result.
func (s *Simplifier) Set(points []Point) {
	s.input = slices.Clone(points)
	s.output = nil
	s.calculated = false
}

// Reset clears the input and the result.
func (s *Simplifier) Reset() {
	s.input = nil
	s.output = nil
	s.calculated = false
}

// Calculate simplifies the input. Points closer than epsilon to the chord
// of their span are dropped. A negative epsilon is treated as zero.
func (s *Simplifier) Calculate(epsilon float64) {
	s.output = Simplify(s.input, epsilon)
	s.calculated = true
	Logger().Debug("poly: simplified",
		"epsilon", epsilon,
		"in", len(s.input),
		"out", len(s.output))
}

// Calculated reports whether Calculate has run since the last Set or Reset.
func (s *Simplifier) Calculated() bool { return s.calculated }

// Points returns a copy of the simplified points.
func (s *Simplifier) Points() []Point { return slices.Clone(s.output) }

// Polygon returns the simplified points as Implicit geometry.
func (s *Simplifier) Polygon() Polygon {
	return Polygon{Vertices: slices.Clone(s.output), Kind: Implicit}
}

// Simplify returns the Douglas-Peucker reduction of points.
func Simplify(points []Point, epsilon float64) []Point {
	if len(points) == 0 {
		return nil
	}
	if epsilon < 0 {
		epsilon = 0
	}
	keep := reduce(points, epsilon, 0, len(points)-1, make([]int, 0, len(points)))
	out := make([]Point, len(keep))
	for i, k := range keep {
		out[i] = points[k]
	}
	return out
}

// reduce appends to keep the indices retained from points[start:end+1].
func reduce(points []Point, epsilon float64, start, end int, keep []int) []int {
	if end <= start+1 {
		return keepIndex(keepIndex(keep, start), end)
	}

	a, b := points[start], points[end]
	if a == b {
		// A closed span: restart from the first point that moved away.
		for i := start + 1; i < end; i++ {
			if points[i] != a {
				return reduce(points, epsilon, i, end, keepIndex(keep, start))
			}
		}
		return keepIndex(keepIndex(keep, start), end)
	}

	chord := b.Sub(a)
	length := chord.Length()
	split, worst := start, -1.0
	for i := start + 1; i < end; i++ {
		d := math.Abs(chord.Cross(points[i].Sub(a))) / length
		if d > worst {
			split, worst = i, d
		}
	}
	if worst <= epsilon {
		return keepIndex(keepIndex(keep, start), end)
	}

	keep = reduce(points, epsilon, start, split, keep)
	return reduce(points, epsilon, split, end, keep)
}

func keepIndex(keep []int, i int) []int {
	if n := len(keep); n > 0 && keep[n-1] == i {
		return keep
	}
	return append(keep, i)
}
