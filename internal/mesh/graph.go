// Package mesh builds the triangle adjacency graph of a solid index buffer
// and recovers boundary information from it.
//
// Triangles are identified by their sorted vertex triple, so the same
// triangle listed twice (in any winding) is a single node. Two triangles are
// neighbors when they share exactly one edge. Adjacency is derived from an
// edge to triangle map built in one pass over the buffer.
//
// A graph is built for one call and discarded; nothing is cached between
// calls.
package mesh

import (
	"errors"
	"fmt"
)

// Errors returned while building a Graph.
var (
	// ErrDegenerate is returned for a triangle that repeats a vertex index.
	ErrDegenerate = errors.New("mesh: degenerate triangle")

	// ErrMalformed is returned when the index count is not a multiple of 3.
	ErrMalformed = errors.New("mesh: index count not a multiple of 3")
)

// Edge is an undirected edge stored with its smaller index first.
type Edge struct {
	A, B uint32
}

// MakeEdge returns the canonical edge between a and b.
func MakeEdge(a, b uint32) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Key is the sorted vertex triple that identifies a triangle.
type Key [3]uint32

func makeKey(a, b, c uint32) Key {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return Key{a, b, c}
}

// Has reports whether v is one of the triangle's vertices.
func (k Key) Has(v uint32) bool {
	return k[0] == v || k[1] == v || k[2] == v
}

// node is one triangle of the dual graph.
type node struct {
	key Key
	// wound keeps the winding of the first occurrence in the buffer.
	wound     [3]uint32
	neighbors []int
}

// Graph is the dual graph of a triangle mesh.
type Graph struct {
	nodes []node
	edges map[Edge][]int
	// order lists edges by first appearance, for deterministic iteration.
	order []Edge
}

// NewGraph builds the dual graph of a triangle list.
func NewGraph(indices []uint32) (*Graph, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: got %d indices", ErrMalformed, len(indices))
	}

	n := len(indices) / 3
	g := &Graph{
		nodes: make([]node, 0, n),
		edges: make(map[Edge][]int, n*2),
	}
	seen := make(map[Key]int, n)

	for t := 0; t < n; t++ {
		a, b, c := indices[3*t], indices[3*t+1], indices[3*t+2]
		if a == b || b == c || a == c {
			return nil, fmt.Errorf("%w: triangle %d is (%d, %d, %d)", ErrDegenerate, t, a, b, c)
		}
		key := makeKey(a, b, c)
		if _, dup := seen[key]; dup {
			continue
		}
		id := len(g.nodes)
		seen[key] = id
		g.nodes = append(g.nodes, node{key: key, wound: [3]uint32{a, b, c}})

		for _, e := range [3]Edge{MakeEdge(a, b), MakeEdge(b, c), MakeEdge(c, a)} {
			list, ok := g.edges[e]
			if !ok {
				g.order = append(g.order, e)
			}
			g.edges[e] = append(list, id)
		}
	}

	for _, e := range g.order {
		tris := g.edges[e]
		for i := 0; i < len(tris); i++ {
			for j := i + 1; j < len(tris); j++ {
				g.nodes[tris[i]].neighbors = append(g.nodes[tris[i]].neighbors, tris[j])
				g.nodes[tris[j]].neighbors = append(g.nodes[tris[j]].neighbors, tris[i])
			}
		}
	}
	return g, nil
}

// Len returns the number of distinct triangles.
func (g *Graph) Len() int { return len(g.nodes) }

// Key returns the sorted triple of triangle t.
func (g *Graph) Key(t int) Key { return g.nodes[t].key }

// Neighbors returns the triangles sharing an edge with t.
func (g *Graph) Neighbors(t int) []int { return g.nodes[t].neighbors }

// Boundary reports whether e belongs to exactly one triangle.
func (g *Graph) Boundary(e Edge) bool { return len(g.edges[e]) == 1 }

// Transition reports whether triangle t is the first or last triangle of
// the fan around v, that is whether at most one neighbor also contains v.
func (g *Graph) Transition(t int, v uint32) bool {
	count := 0
	for _, n := range g.nodes[t].neighbors {
		if g.nodes[n].key.Has(v) {
			count++
		}
	}
	return count <= 1
}

// Edges returns every distinct edge once, in order of first appearance.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.order))
	copy(out, g.order)
	return out
}

// across returns the triangle on the other side of e from t, or -1.
func (g *Graph) across(e Edge, t int) int {
	for _, o := range g.edges[e] {
		if o != t {
			return o
		}
	}
	return -1
}

// third returns the vertex of t that is neither a nor b.
func (g *Graph) third(t int, a, b uint32) uint32 {
	for _, v := range g.nodes[t].key {
		if v != a && v != b {
			return v
		}
	}
	return a
}
