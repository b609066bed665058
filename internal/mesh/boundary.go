package mesh

import "slices"

// Exterior returns the sorted vertices that lie on a boundary of the mesh.
//
// A vertex is interior when the triangles around it close into a full fan,
// in which case it has exactly as many distinct neighbor vertices as it has
// triangles. Every other vertex is exterior.
func (g *Graph) Exterior() []uint32 {
	count := make(map[uint32]int)
	adjacent := make(map[uint32]map[uint32]struct{})

	for i := range g.nodes {
		k := g.nodes[i].key
		for j, v := range k {
			count[v]++
			set := adjacent[v]
			if set == nil {
				set = make(map[uint32]struct{}, 6)
				adjacent[v] = set
			}
			set[k[(j+1)%3]] = struct{}{}
			set[k[(j+2)%3]] = struct{}{}
		}
	}

	var out []uint32
	for v, c := range count {
		if len(adjacent[v]) != c {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out
}

// fanStep marks a triangle already rotated through for a given vertex.
type fanStep struct {
	t int
	v uint32
}

// Loops returns the ordered boundary loops of the mesh.
//
// Seeds are boundary edges taken in triangle order, using each triangle's
// own winding. From a seed the walk turns around the current vertex through
// the triangles that share it until it reaches the transition triangle of
// that fan, whose other edge at the vertex is again a boundary edge, and
// continues along that edge. A walk ends when it returns to its first vertex
// or reaches an edge already used by some loop. Loops do not repeat their
// first vertex at the end.
func (g *Graph) Loops() [][]uint32 {
	used := make(map[Edge]bool)
	var loops [][]uint32

	for t := range g.nodes {
		w := g.nodes[t].wound
		for i := 0; i < 3; i++ {
			u, v := w[i], w[(i+1)%3]
			e := MakeEdge(u, v)
			if used[e] || !g.Boundary(e) {
				continue
			}
			loops = append(loops, g.walk(t, u, v, used))
		}
	}
	return loops
}

func (g *Graph) walk(t int, start, v uint32, used map[Edge]bool) []uint32 {
	used[MakeEdge(start, v)] = true
	loop := []uint32{start}
	visited := make(map[fanStep]bool)

	prev, cur := start, v
	for cur != start {
		loop = append(loop, cur)
		next, tri, ok := g.rotate(t, cur, prev, visited)
		if !ok {
			break
		}
		e := MakeEdge(cur, next)
		if used[e] {
			break
		}
		used[e] = true
		prev, cur, t = cur, next, tri
	}
	return loop
}

// rotate turns around v starting in triangle t, which was entered along
// edge (v, from). It returns the far vertex of the next boundary edge at v
// and the triangle holding it.
func (g *Graph) rotate(t int, v, from uint32, visited map[fanStep]bool) (uint32, int, bool) {
	for {
		step := fanStep{t: t, v: v}
		if visited[step] {
			return 0, 0, false
		}
		visited[step] = true

		x := g.third(t, v, from)
		e := MakeEdge(v, x)
		if g.Boundary(e) {
			return x, t, true
		}
		next := g.across(e, t)
		if next < 0 {
			return x, t, true
		}
		from, t = x, next
	}
}
