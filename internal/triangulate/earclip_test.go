package triangulate

import (
	"errors"
	"math"
	"testing"
)

func square(x, y, size float64) []Point {
	return []Point{
		{X: x, Y: y},
		{X: x + size, Y: y},
		{X: x + size, Y: y + size},
		{X: x, Y: y + size},
	}
}

func triangleArea(pts []Point, indices []uint32) float64 {
	sum := 0.0
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := pts[indices[i]], pts[indices[i+1]], pts[indices[i+2]]
		sum += math.Abs((b.X-a.X)*(c.Y-a.Y)-(b.Y-a.Y)*(c.X-a.X)) / 2
	}
	return sum
}

func TestSimple(t *testing.T) {
	tests := []struct {
		name      string
		ring      []Point
		triangles int
		area      float64
	}{
		{"triangle", []Point{{0, 0}, {4, 0}, {0, 3}}, 1, 6},
		{"square ccw", square(0, 0, 10), 2, 100},
		{"square cw", []Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}}, 2, 100},
		{"concave L", []Point{{0, 0}, {4, 0}, {4, 1}, {1, 1}, {1, 4}, {0, 4}}, 4, 7},
		{"hexagon", []Point{{2, 0}, {4, 1}, {4, 3}, {2, 4}, {0, 3}, {0, 1}}, 4, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			indices, err := Simple(tt.ring)
			if err != nil {
				t.Fatalf("Simple() error = %v", err)
			}
			if got := len(indices) / 3; got != tt.triangles {
				t.Errorf("triangles = %d, want %d", got, tt.triangles)
			}
			if got := triangleArea(tt.ring, indices); math.Abs(got-tt.area) > 1e-9 {
				t.Errorf("area = %v, want %v", got, tt.area)
			}
			for _, idx := range indices {
				if int(idx) >= len(tt.ring) {
					t.Fatalf("index %d out of range", idx)
				}
			}
		})
	}
}

func TestSimpleTooSmall(t *testing.T) {
	for _, ring := range [][]Point{nil, {{0, 0}}, {{0, 0}, {1, 1}}} {
		indices, err := Simple(ring)
		if err != nil || len(indices) != 0 {
			t.Errorf("Simple(%v) = %v, %v; want empty, nil", ring, indices, err)
		}
	}
}

func TestPolygonWithHole(t *testing.T) {
	outer := square(0, 0, 10)
	hole := square(3, 3, 4)
	all := append(append([]Point{}, outer...), hole...)

	indices, err := Polygon(outer, [][]Point{hole})
	if err != nil {
		t.Fatalf("Polygon() error = %v", err)
	}
	if got := len(indices) / 3; got != 8 {
		t.Errorf("triangles = %d, want 8", got)
	}
	if got := triangleArea(all, indices); math.Abs(got-84) > 1e-9 {
		t.Errorf("area = %v, want 84", got)
	}

	used := make(map[uint32]bool)
	for i := 0; i < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if a == b || b == c || a == c {
			t.Errorf("degenerate triangle %v", indices[i:i+3])
		}
		used[a], used[b], used[c] = true, true, true
	}
	if len(used) != 8 {
		t.Errorf("used %d distinct vertices, want 8", len(used))
	}
}

func TestPolygonTwoHoles(t *testing.T) {
	outer := []Point{{0, 0}, {20, 0}, {20, 10}, {0, 10}}
	holes := [][]Point{square(2, 2, 4), square(12, 2, 4)}
	all := append(append(append([]Point{}, outer...), holes[0]...), holes[1]...)

	indices, err := Polygon(outer, holes)
	if errors.Is(err, ErrIncomplete) {
		t.Fatal("Polygon() left part of the ring unclipped")
	}
	if err != nil {
		t.Fatalf("Polygon() error = %v", err)
	}
	if got := triangleArea(all, indices); math.Abs(got-(200-32)) > 1e-9 {
		t.Errorf("area = %v, want 168", got)
	}
}

func TestCollinearPointsFiltered(t *testing.T) {
	ring := []Point{{0, 0}, {5, 0}, {10, 0}, {10, 10}, {0, 10}}
	indices, err := Simple(ring)
	if err != nil {
		t.Fatalf("Simple() error = %v", err)
	}
	if got := triangleArea(ring, indices); math.Abs(got-100) > 1e-9 {
		t.Errorf("area = %v, want 100", got)
	}
}
