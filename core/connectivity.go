package core

// dsu is a disjoint-set (union-find) structure over dense vertex indices
// [0,n), used by tree builders to fail fast with ErrGraphDisconnected
// before doing any real work. Adapted from the teacher's Kruskal
// disjoint-set (prim_kruskal/kruskal.go): union by rank, path compression
// on find, same as there, but array-indexed instead of map-indexed since
// vertices here are already dense integers.
type dsu struct {
	parent []int
	rank   []int
}

func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

func (d *dsu) find(u int) int {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}
	return u
}

func (d *dsu) union(u, v int) {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return
	}
	if d.rank[ru] < d.rank[rv] {
		ru, rv = rv, ru
	}
	d.parent[rv] = ru
	if d.rank[ru] == d.rank[rv] {
		d.rank[ru]++
	}
}

func (d *dsu) components() int {
	count := 0
	for i := range d.parent {
		if d.find(i) == i {
			count++
		}
	}
	return count
}

// IsConnectedR reports whether the n-vertex graph described by el (via
// its edges, ignoring weight) has exactly one connected component. n == 0
// and n == 1 are trivially connected.
func IsConnectedR(el EdgeList[EdgeR]) bool {
	if el.N <= 1 {
		return true
	}
	d := newDSU(el.N)
	for _, e := range el.Edges {
		d.union(e.U, e.V)
	}
	return d.components() == 1
}

// IsConnectedArray reports whether an AdjacencyArray's underlying graph
// is a single connected component.
func IsConnectedArray(a AdjacencyArray) bool {
	n := a.N()
	if n <= 1 {
		return true
	}
	d := newDSU(n)
	for v := 0; v < n; v++ {
		for _, arc := range a.Neighbors(v) {
			d.union(v, arc.To)
		}
	}
	return d.components() == 1
}
