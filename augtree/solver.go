package augtree

import (
	"fmt"

	"github.com/amguinto/treepcg/akpw"
	"github.com/amguinto/treepcg/core"
	"github.com/amguinto/treepcg/mindegree"
	"github.com/amguinto/treepcg/numeric"
	"github.com/amguinto/treepcg/pcg"
	"github.com/amguinto/treepcg/rng"
	"github.com/amguinto/treepcg/sampler"
	"github.com/amguinto/treepcg/stretch"
	"github.com/amguinto/treepcg/tree"
)

// AugTreePCG runs the full augmented-tree-preconditioned CG pipeline
// against es's Laplacian: build a low-stretch spanning tree (akpw),
// score the remaining edges by stretch against it, sample a subset of
// them into an augmented-tree structure (sampler), factor that
// structure (mindegree) and use it as the PCG preconditioner (pcg) for
// the original system Lx = b.
//
// b must sum to zero — the consistency condition for a singular
// Laplacian system — and have length es.N.
func AugTreePCG(es core.EdgeList[core.EdgeR], b []float64, opts Options) (x []float64, iters int, err error) {
	if len(b) != es.N {
		return nil, 0, fmt.Errorf("%w: rhs length %d, graph has %d vertices", core.ErrDimensionMismatch, len(b), es.N)
	}

	r := rng.New(opts.Seed)

	treeEdges, err := akpw.AKPW(es, r)
	if err != nil {
		return nil, 0, fmt.Errorf("augtree: building spanning tree: %w", err)
	}

	t, err := tree.NewFromEdgeList(treeEdges, opts.Root)
	if err != nil {
		return nil, 0, fmt.Errorf("augtree: rooting spanning tree: %w", err)
	}

	offTree, err := splitOffTree(es, treeEdges)
	if err != nil {
		return nil, 0, fmt.Errorf("augtree: splitting off-tree edges: %w", err)
	}

	strs := make([]float64, len(offTree.Edges))
	if err := stretch.ComputeStretch(t, offTree, strs); err != nil {
		return nil, 0, fmt.Errorf("augtree: computing stretch: %w", err)
	}

	aug, err := sampler.Sample(treeEdges, offTree, strs, r, opts.samplerOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("augtree: sampling off-tree edges: %w", err)
	}

	precond, err := mindegree.NewSolver(aug)
	if err != nil {
		return nil, 0, fmt.Errorf("augtree: factoring preconditioner: %w", err)
	}

	matvec := func(v, out []float64) error {
		return numeric.MultiplyR(1, es, v, 0, make([]float64, es.N), out)
	}

	return pcg.NewSolver(matvec, precond, opts.PCG).Solve(b)
}

// splitOffTree returns the edges of es not selected into treeEdges,
// handling parallel edges by removing one es occurrence per matching
// tree edge rather than all of them.
func splitOffTree(es, treeEdges core.EdgeList[core.EdgeR]) (core.EdgeList[core.EdgeR], error) {
	used := make(map[[2]int]int, len(treeEdges.Edges))
	for _, e := range treeEdges.Edges {
		used[canon(e.U, e.V)]++
	}

	offTree := core.NewEdgeListR(es.N)
	for _, e := range es.Edges {
		key := canon(e.U, e.V)
		if used[key] > 0 {
			used[key]--
			continue
		}
		if err := core.AddR(&offTree, e.U, e.V, e.R); err != nil {
			return core.EdgeList[core.EdgeR]{}, err
		}
	}
	return offTree, nil
}

func canon(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}
