package mesh

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/poly/internal/triangulate"
)

// fan returns a closed fan of n triangles around center vertex n.
func fan(n int) []uint32 {
	var idx []uint32
	c := uint32(n)
	for i := 0; i < n; i++ {
		idx = append(idx, c, uint32(i), uint32((i+1)%n))
	}
	return idx
}

func sorted(v []uint32) []uint32 {
	out := slices.Clone(v)
	slices.Sort(out)
	return out
}

func TestNewGraphErrors(t *testing.T) {
	if _, err := NewGraph([]uint32{0, 1}); !errors.Is(err, ErrMalformed) {
		t.Errorf("NewGraph(len 2) error = %v, want ErrMalformed", err)
	}
	if _, err := NewGraph([]uint32{0, 1, 2, 3, 3, 4}); !errors.Is(err, ErrDegenerate) {
		t.Errorf("NewGraph(repeated index) error = %v, want ErrDegenerate", err)
	}
}

func TestNewGraphDeduplicates(t *testing.T) {
	g, err := NewGraph([]uint32{0, 1, 2, 2, 1, 0, 1, 2, 3})
	if err != nil {
		t.Fatalf("NewGraph() error = %v", err)
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}
	if got := g.Key(1); got != (Key{1, 2, 3}) {
		t.Errorf("Key(1) = %v, want [1 2 3]", got)
	}
	if got := g.Neighbors(0); len(got) != 1 || got[0] != 1 {
		t.Errorf("Neighbors(0) = %v, want [1]", got)
	}
}

func TestTransition(t *testing.T) {
	g, err := NewGraph(fan(6))
	if err != nil {
		t.Fatal(err)
	}
	// Every triangle has two neighbors containing the center.
	for tri := 0; tri < g.Len(); tri++ {
		if g.Transition(tri, 6) {
			t.Errorf("Transition(%d, center) = true, want false", tri)
		}
	}

	// Opening the fan makes its two end triangles transitions.
	g, err = NewGraph(fan(6)[:15])
	if err != nil {
		t.Fatal(err)
	}
	for tri := 0; tri < g.Len(); tri++ {
		want := tri == 0 || tri == g.Len()-1
		if got := g.Transition(tri, 6); got != want {
			t.Errorf("Transition(%d, center) = %v, want %v", tri, got, want)
		}
	}
}

func TestExterior(t *testing.T) {
	tests := []struct {
		name    string
		indices []uint32
		want    []uint32
	}{
		{"single triangle", []uint32{0, 1, 2}, []uint32{0, 1, 2}},
		{"square", []uint32{0, 1, 2, 0, 2, 3}, []uint32{0, 1, 2, 3}},
		{"closed fan", fan(6), []uint32{0, 1, 2, 3, 4, 5}},
		{"open fan", fan(6)[:15], []uint32{0, 1, 2, 3, 4, 5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGraph(tt.indices)
			if err != nil {
				t.Fatal(err)
			}
			if got := g.Exterior(); !slices.Equal(got, tt.want) {
				t.Errorf("Exterior() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoopsSimple(t *testing.T) {
	tests := []struct {
		name    string
		indices []uint32
		want    []uint32
	}{
		{"single triangle", []uint32{0, 1, 2}, []uint32{0, 1, 2}},
		{"square", []uint32{0, 1, 2, 0, 2, 3}, []uint32{0, 1, 2, 3}},
		{"closed fan", fan(8), []uint32{0, 1, 2, 3, 4, 5, 6, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGraph(tt.indices)
			if err != nil {
				t.Fatal(err)
			}
			loops := g.Loops()
			if len(loops) != 1 {
				t.Fatalf("Loops() returned %d loops, want 1: %v", len(loops), loops)
			}
			if got := sorted(loops[0]); !slices.Equal(got, tt.want) {
				t.Errorf("loop vertices = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoopsOrdered(t *testing.T) {
	g, err := NewGraph([]uint32{0, 1, 2, 0, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	loops := g.Loops()
	if len(loops) != 1 || !slices.Equal(loops[0], []uint32{0, 1, 2, 3}) {
		t.Errorf("Loops() = %v, want [[0 1 2 3]]", loops)
	}
}

func TestLoopsWithHole(t *testing.T) {
	outer := []triangulate.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	hole := []triangulate.Point{{X: 3, Y: 3}, {X: 7, Y: 3}, {X: 7, Y: 7}, {X: 3, Y: 7}}
	indices, err := triangulate.Polygon(outer, [][]triangulate.Point{hole})
	if err != nil {
		t.Fatal(err)
	}

	g, err := NewGraph(indices)
	if err != nil {
		t.Fatal(err)
	}
	loops := g.Loops()
	if len(loops) != 2 {
		t.Fatalf("Loops() returned %d loops, want 2: %v", len(loops), loops)
	}

	var got [][]uint32
	for _, l := range loops {
		got = append(got, sorted(l))
	}
	slices.SortFunc(got, func(a, b []uint32) int { return int(a[0]) - int(b[0]) })
	if !slices.Equal(got[0], []uint32{0, 1, 2, 3}) || !slices.Equal(got[1], []uint32{4, 5, 6, 7}) {
		t.Errorf("loops = %v, want outer [0 1 2 3] and hole [4 5 6 7]", got)
	}

	if ext := g.Exterior(); len(ext) != 8 {
		t.Errorf("Exterior() = %v, want all 8 vertices", ext)
	}
}

func TestLoopsDisjoint(t *testing.T) {
	g, err := NewGraph([]uint32{0, 1, 2, 3, 4, 5, 3, 5, 6})
	if err != nil {
		t.Fatal(err)
	}
	if loops := g.Loops(); len(loops) != 2 {
		t.Errorf("Loops() returned %d loops, want 2: %v", len(loops), loops)
	}
}

func TestLoopsPinched(t *testing.T) {
	// Two triangles touching at vertex 2 only.
	g, err := NewGraph([]uint32{0, 1, 2, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	total := 0
	for _, l := range g.Loops() {
		total += len(l)
	}
	if total != 6 {
		t.Errorf("loops visit %d vertices, want 6 (shared vertex in both)", total)
	}
}

func TestEdges(t *testing.T) {
	g, err := NewGraph([]uint32{0, 1, 2, 0, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	want := []Edge{{0, 1}, {1, 2}, {0, 2}, {2, 3}, {0, 3}}
	if got := g.Edges(); !slices.Equal(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}
	if !g.Boundary(Edge{0, 1}) || g.Boundary(Edge{0, 2}) {
		t.Error("Boundary() misclassified the square's edges")
	}
}
