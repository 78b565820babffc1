package core

// AdjacencyMap is a mutable, per-vertex neighbor→conductance map. It is
// the augmented-tree representation built by sampler.Sample (tree edges
// plus the stretch-sampled off-tree edges) and consumed by
// mindegree.NewSolver, whose elimination loop repeatedly removes the
// minimum-degree vertex via RemoveVertex.
//
// Conductances are additive: adding an edge that already exists sums the
// conductances, matching parallel-edge combination for a Laplacian.
type AdjacencyMap struct {
	neighbors []map[int]float64
}

// NewAdjacencyMap returns an AdjacencyMap on n vertices with no edges.
func NewAdjacencyMap(n int) *AdjacencyMap {
	m := &AdjacencyMap{neighbors: make([]map[int]float64, n)}
	for v := range m.neighbors {
		m.neighbors[v] = make(map[int]float64)
	}
	return m
}

// N returns the number of vertices still present (including isolated
// ones created by RemoveVertex).
func (m *AdjacencyMap) N() int {
	return len(m.neighbors)
}

// AddEdge inserts conductance c between u and v, summing with any
// existing u–v conductance. u and v must be distinct, in-range vertices.
func (m *AdjacencyMap) AddEdge(u, v int, c float64) {
	if u == v {
		return
	}
	m.neighbors[u][v] += c
	m.neighbors[v][u] += c
}

// Neighbors returns the live neighbor→conductance map of v. The returned
// map is owned by the AdjacencyMap; callers must not mutate it directly,
// use AddEdge/RemoveVertex instead.
func (m *AdjacencyMap) Neighbors(v int) map[int]float64 {
	return m.neighbors[v]
}

// Degree returns the number of live neighbors of v.
func (m *AdjacencyMap) Degree(v int) int {
	return len(m.neighbors[v])
}

// RemoveVertex detaches v from the graph: every neighbor's entry for v is
// deleted, and v's own neighbor map is returned so the caller (the
// min-degree eliminator) can read it one last time before it is
// discarded. v's slot is left as an empty map rather than compacted, so
// vertex indices never shift.
func (m *AdjacencyMap) RemoveVertex(v int) map[int]float64 {
	old := m.neighbors[v]
	for u := range old {
		delete(m.neighbors[u], v)
	}
	m.neighbors[v] = make(map[int]float64)
	return old
}
