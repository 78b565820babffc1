package core

// Arc is one directed half of an undirected edge as stored in an
// AdjacencyArray: a neighbor vertex and the weight of the edge to it.
// The meaning of Weight (resistance or conductance) is fixed by whichever
// builder produced the array.
type Arc struct {
	To     int
	Weight float64
}

// AdjacencyArray is a CSR-style, immutable neighbor index: arcs of vertex
// v occupy Arcs[Offsets[v]:Offsets[v+1]]. Every undirected edge (u,v,w)
// contributes one Arc to both u's and v's range, so len(Arcs) == 2*m.
//
// Built once from an EdgeList and never mutated afterward; this is the
// representation Dijkstra's fallback tree builder and
// tree.NewFromEdgeList's BFS walk the graph with, since both only need
// fast neighbor iteration.
type AdjacencyArray struct {
	Offsets []int
	Arcs    []Arc
}

// BuildAdjacencyArrayR builds an AdjacencyArray from a resistance edge
// list, storing resistances as arc weights.
func BuildAdjacencyArrayR(el EdgeList[EdgeR]) AdjacencyArray {
	return buildAdjacencyArray(el.N, len(el.Edges), func(i int) (int, int, float64) {
		e := el.Edges[i]
		return e.U, e.V, e.R
	})
}

// BuildAdjacencyArrayC builds an AdjacencyArray from a conductance edge
// list, storing conductances as arc weights.
func BuildAdjacencyArrayC(el EdgeList[EdgeC]) AdjacencyArray {
	return buildAdjacencyArray(el.N, len(el.Edges), func(i int) (int, int, float64) {
		e := el.Edges[i]
		return e.U, e.V, e.C
	})
}

// buildAdjacencyArray performs the shared two-pass CSR construction:
// count degrees, prefix-sum into Offsets, then scatter arcs into place.
func buildAdjacencyArray(n, m int, at func(i int) (u, v int, w float64)) AdjacencyArray {
	degree := make([]int, n+1)
	for i := 0; i < m; i++ {
		u, v, _ := at(i)
		degree[u]++
		degree[v]++
	}

	offsets := make([]int, n+1)
	for v := 0; v < n; v++ {
		offsets[v+1] = offsets[v] + degree[v]
	}

	arcs := make([]Arc, offsets[n])
	cursor := make([]int, n)
	copy(cursor, offsets[:n])
	for i := 0; i < m; i++ {
		u, v, w := at(i)
		arcs[cursor[u]] = Arc{To: v, Weight: w}
		cursor[u]++
		arcs[cursor[v]] = Arc{To: u, Weight: w}
		cursor[v]++
	}

	return AdjacencyArray{Offsets: offsets, Arcs: arcs}
}

// Neighbors returns the arc slice for vertex v. Callers must not retain a
// mutated slice past the AdjacencyArray's lifetime.
func (a AdjacencyArray) Neighbors(v int) []Arc {
	return a.Arcs[a.Offsets[v]:a.Offsets[v+1]]
}

// N returns the number of vertices.
func (a AdjacencyArray) N() int {
	return len(a.Offsets) - 1
}
