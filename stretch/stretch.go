package stretch

import (
	"fmt"

	"github.com/amguinto/treepcg/core"
	"github.com/amguinto/treepcg/tree"
)

// ComputeStretch fills out[i] with the stretch of offTree.Edges[i]
// against t, for every i. out must have the same length as
// offTree.Edges; ComputeStretch does not allocate it.
//
// Returns core.ErrDimensionMismatch if len(out) != len(offTree.Edges).
func ComputeStretch(t tree.TreeR, offTree core.EdgeList[core.EdgeR], out []float64) error {
	if len(out) != len(offTree.Edges) {
		return fmt.Errorf("%w: out has %d slots, need %d", core.ErrDimensionMismatch, len(out), len(offTree.Edges))
	}

	for i, e := range offTree.Edges {
		out[i] = treePathResistance(t, e.U, e.V) / e.R
	}
	return nil
}

// treePathResistance sums parent-edge resistances along the unique
// tree path between u and v via a pairwise LCA walk: step the deeper
// vertex up until both are level, then step both up together until they
// coincide.
func treePathResistance(t tree.TreeR, u, v int) float64 {
	total := 0.0

	for t.Depth(u) > t.Depth(v) {
		total += t.Vertices[u].ParentR
		u = t.Vertices[u].Parent
	}
	for t.Depth(v) > t.Depth(u) {
		total += t.Vertices[v].ParentR
		v = t.Vertices[v].Parent
	}
	for u != v {
		total += t.Vertices[u].ParentR
		u = t.Vertices[u].Parent
		total += t.Vertices[v].ParentR
		v = t.Vertices[v].Parent
	}

	return total
}
