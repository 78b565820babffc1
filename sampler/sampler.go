package sampler

import (
	"fmt"

	"github.com/amguinto/treepcg/core"
	"github.com/amguinto/treepcg/rng"
)

// Sample builds the augmented-tree AdjacencyMap: every tree edge is
// inserted as a conductance edge, then each off-tree edge i is included
// independently with probability min(1, C·k·strs[i]/Σstrs), drawn from r
// in off-tree-edge order so a fixed seed fixes which edges are added.
//
// Returns core.ErrDimensionMismatch if len(strs) != len(offTree.Edges),
// and ErrInvalidK if opts.K <= 0.
func Sample(treeEdges, offTree core.EdgeList[core.EdgeR], strs []float64, r *rng.RNG, opts Options) (*core.AdjacencyMap, error) {
	if opts.K <= 0 {
		return nil, ErrInvalidK
	}
	if len(strs) != len(offTree.Edges) {
		return nil, fmt.Errorf("%w: %d stretches for %d off-tree edges", core.ErrDimensionMismatch, len(strs), len(offTree.Edges))
	}

	n := treeEdges.N
	aug := core.NewAdjacencyMap(n)
	for _, e := range treeEdges.Edges {
		aug.AddEdge(e.U, e.V, 1/e.R)
	}

	total := 0.0
	for _, s := range strs {
		total += s
	}
	if total == 0 {
		return aug, nil
	}

	multiplier := opts.Multiplier
	if multiplier <= 0 {
		multiplier = DefaultMultiplier
	}

	for i, e := range offTree.Edges {
		p := multiplier * float64(opts.K) * strs[i] / total
		if p > 1 {
			p = 1
		}
		if r.Float64() < p {
			aug.AddEdge(e.U, e.V, 1/e.R)
		}
	}

	return aug, nil
}
