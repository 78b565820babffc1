package mindegree

import (
	"sort"

	"github.com/amguinto/treepcg/core"
	"github.com/amguinto/treepcg/tree"
)

// TreeSolver solves Lx = b exactly, in O(n), for the Laplacian of a pure
// tree — the special case spec §2 calls out separately from the general
// augmented-tree pipeline, since TreeSolver needs no elimination queue
// at all: processing vertices by decreasing depth is already a valid
// post-order (every child strictly deeper than its parent), and by
// increasing depth a valid pre-order.
type TreeSolver struct {
	t        tree.TreeR
	children [][]int
	order    []int // vertices by decreasing depth (leaves-first)
}

// NewTreeSolver prepares t for repeated Solve calls.
func NewTreeSolver(t tree.TreeR) *TreeSolver {
	n := t.N()
	children := make([][]int, n)
	for v := 0; v < n; v++ {
		if v == t.Root {
			continue
		}
		p := t.Vertices[v].Parent
		children[p] = append(children[p], v)
	}

	order := make([]int, n)
	for v := range order {
		order[v] = v
	}
	sort.Slice(order, func(i, j int) bool { return t.Depth(order[i]) > t.Depth(order[j]) })

	return &TreeSolver{t: t, children: children, order: order}
}

// Solve returns x satisfying Lx = b for the tree's Laplacian, with the
// root's potential pinned at 0 as the gauge fix.
//
// Post-order (leaves to root): S(v) accumulates b over v's subtree — the
// net demand that must flow up the single edge from v to its parent.
// Pre-order (root to leaves): Ohm's law on that edge gives
// x(v) = x(parent) + R(v,parent)·S(v).
func (s *TreeSolver) Solve(b []float64) ([]float64, error) {
	n := s.t.N()
	if len(b) != n {
		return nil, core.ErrDimensionMismatch
	}

	subtreeSum := append([]float64(nil), b...)
	for _, v := range s.order {
		if v == s.t.Root {
			continue
		}
		p := s.t.Vertices[v].Parent
		subtreeSum[p] += subtreeSum[v]
	}

	x := make([]float64, n)
	for i := len(s.order) - 1; i >= 0; i-- {
		v := s.order[i]
		if v == s.t.Root {
			x[v] = 0
			continue
		}
		p := s.t.Vertices[v].Parent
		x[v] = x[p] + s.t.Vertices[v].ParentR*subtreeSum[v]
	}

	return x, nil
}
