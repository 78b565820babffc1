package mindegree

import (
	"container/heap"
	"sort"

	"github.com/amguinto/treepcg/core"
)

// NewSolver factors the Laplacian implied by aug (conductance-weighted
// AdjacencyMap) via minimum-degree elimination, consuming aug in the
// process — callers that need the original structure afterwards should
// pass a copy.
//
// Elimination repeatedly removes the current minimum-degree vertex
// (ties broken by smaller id; a degree-1 leaf is always the global
// minimum when one exists, so leaves are eliminated first with no
// special-casing needed), folding its neighbors into a re-weighted
// clique — the star-mesh transform / Schur complement — until a single
// ungrounded vertex remains.
//
// Returns ErrSingularSystem if an isolated vertex turns up before the
// single final vertex, which only happens when aug was disconnected.
func NewSolver(aug *core.AdjacencyMap) (*Solver, error) {
	n := aug.N()

	eliminated := make([]bool, n)
	order := make([]int, 0, n)
	neighborsRecorded := make([][]nbr, 0, n)
	diag := make([]float64, 0, n)

	h := &minDegreeHeap{}
	heap.Init(h)
	for v := 0; v < n; v++ {
		heap.Push(h, heapItem{vertex: v, degree: aug.Degree(v)})
	}

	remaining := n
	for remaining > 1 {
		if h.Len() == 0 {
			return nil, ErrSingularSystem
		}
		item := heap.Pop(h).(heapItem)
		v := item.vertex
		if eliminated[v] {
			continue
		}
		curDegree := aug.Degree(v)
		if curDegree != item.degree {
			continue // stale entry, v's degree has since changed
		}
		if curDegree == 0 {
			return nil, ErrSingularSystem
		}

		live := aug.Neighbors(v)
		snapshot := make([]nbr, 0, len(live))
		for to, w := range live {
			snapshot = append(snapshot, nbr{to: to, weight: w})
		}
		sort.Slice(snapshot, func(i, j int) bool { return snapshot[i].to < snapshot[j].to })

		d := 0.0
		for _, e := range snapshot {
			d += e.weight
		}

		for i := 0; i < len(snapshot); i++ {
			for j := i + 1; j < len(snapshot); j++ {
				a, b := snapshot[i], snapshot[j]
				aug.AddEdge(a.to, b.to, a.weight*b.weight/d)
			}
		}
		aug.RemoveVertex(v)

		eliminated[v] = true
		order = append(order, v)
		neighborsRecorded = append(neighborsRecorded, snapshot)
		diag = append(diag, d)
		remaining--

		for _, e := range snapshot {
			heap.Push(h, heapItem{vertex: e.to, degree: aug.Degree(e.to)})
		}
	}

	last := -1
	for v := 0; v < n; v++ {
		if !eliminated[v] {
			last = v
			break
		}
	}
	if last == -1 {
		last = 0 // n == 0, nothing to solve
	}

	return &Solver{n: n, order: order, neighbors: neighborsRecorded, diag: diag, last: last}, nil
}

// Solve returns x satisfying Lx = b for the Laplacian this Solver
// factored, with the gauge freedom (L's null space is the constant
// vector) fixed by pinning the last-remaining vertex's potential to 0.
//
// The forward pass propagates each eliminated vertex's accumulated
// right-hand side into its recorded neighbors, in elimination order;
// the backward pass then recovers x in reverse elimination order via
//
//	x_v = (b_v + Σ w(v,a)·x_a) / degree(v)
//
// summed over v's recorded neighbors, all of which are either the
// grounded last vertex or were eliminated after v and so already have
// a known x value.
func (s *Solver) Solve(b []float64) ([]float64, error) {
	if len(b) != s.n {
		return nil, core.ErrDimensionMismatch
	}

	rhs := append([]float64(nil), b...)
	for i, v := range s.order {
		for _, e := range s.neighbors[i] {
			rhs[e.to] += (e.weight / s.diag[i]) * rhs[v]
		}
	}

	x := make([]float64, s.n)
	x[s.last] = 0
	for i := len(s.order) - 1; i >= 0; i-- {
		v := s.order[i]
		sum := rhs[v]
		for _, e := range s.neighbors[i] {
			sum += e.weight * x[e.to]
		}
		x[v] = sum / s.diag[i]
	}

	return x, nil
}
