package mindegree

// nbr is a snapshot of one neighbor's conductance at the moment its
// partner vertex was eliminated — the stored "row" the two substitution
// passes replay.
type nbr struct {
	to     int
	weight float64
}

// heapItem is a (vertex, degree-at-push-time) pair for the lazy
// decrease/increase-key priority queue, mirroring the nodeItem/nodePQ
// pattern used for Dijkstra's tentative distances: a popped item is
// stale, and skipped, whenever its recorded degree no longer matches
// the vertex's current degree.
type heapItem struct {
	vertex int
	degree int
}

type minDegreeHeap []heapItem

func (h minDegreeHeap) Len() int { return len(h) }

func (h minDegreeHeap) Less(i, j int) bool {
	if h[i].degree != h[j].degree {
		return h[i].degree < h[j].degree
	}
	return h[i].vertex < h[j].vertex
}

func (h minDegreeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *minDegreeHeap) Push(x any) {
	*h = append(*h, x.(heapItem))
}

func (h *minDegreeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Solver holds a minimum-degree elimination factorization of a
// connected weighted graph's Laplacian, ready for repeated Solve calls
// against different right-hand sides.
type Solver struct {
	n         int
	order     []int
	neighbors [][]nbr
	diag      []float64
	last      int
}

// N reports the number of vertices the solver was built for.
func (s *Solver) N() int { return s.n }
