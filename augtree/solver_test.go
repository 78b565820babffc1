package augtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amguinto/treepcg/augtree"
	"github.com/amguinto/treepcg/core"
	"github.com/amguinto/treepcg/numeric"
)

// gridGraph builds a rows x cols grid with unit resistances, vertex
// (i,j) indexed as i*cols+j.
func gridGraph(t *testing.T, rows, cols int) core.EdgeList[core.EdgeR] {
	t.Helper()
	n := rows * cols
	el := core.NewEdgeListR(n)
	id := func(i, j int) int { return i*cols + j }
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j+1 < cols {
				require.NoError(t, core.AddR(&el, id(i, j), id(i, j+1), 1))
			}
			if i+1 < rows {
				require.NoError(t, core.AddR(&el, id(i, j), id(i+1, j), 1))
			}
		}
	}
	return el
}

// completeBinaryTree builds a tree on 2^depth-1 vertices, unit
// resistances, vertex 0 as the root and vertex i's parent at (i-1)/2.
func completeBinaryTree(t *testing.T, depth int) core.EdgeList[core.EdgeR] {
	t.Helper()
	n := (1 << depth) - 1
	el := core.NewEdgeListR(n)
	for i := 1; i < n; i++ {
		require.NoError(t, core.AddR(&el, (i-1)/2, i, 1))
	}
	return el
}

func residualNorm(t *testing.T, es core.EdgeList[core.EdgeR], x, b []float64) float64 {
	t.Helper()
	out := make([]float64, es.N)
	require.NoError(t, numeric.MultiplyR(1, es, x, 0, make([]float64, es.N), out))
	maxAbs := 0.0
	for i := range out {
		d := out[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > maxAbs {
			maxAbs = d
		}
	}
	return maxAbs
}

func TestAugTreePCGSmallGrid(t *testing.T) {
	const rows, cols = 4, 4
	es := gridGraph(t, rows, cols)
	b := make([]float64, rows*cols)
	b[0] = 1
	b[rows*cols-1] = -1

	opts := augtree.DefaultOptions(2, 42)
	x, iters, err := augtree.AugTreePCG(es, b, opts)
	require.NoError(t, err)
	assert.Greater(t, iters, 0)
	assert.Less(t, residualNorm(t, es, x, b), 1e-5)
}

func TestAugTreePCGCompleteBinaryTree(t *testing.T) {
	es := completeBinaryTree(t, 8) // 255 vertices, already a tree
	n := es.N
	b := make([]float64, n)
	b[0] = 1
	b[n-1] = -1

	opts := augtree.DefaultOptions(1, 7)
	x, iters, err := augtree.AugTreePCG(es, b, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, iters) // the preconditioner is the tree itself: exact in one step
	assert.Less(t, residualNorm(t, es, x, b), 1e-6)
}

func TestAugTreePCGGridWithChords(t *testing.T) {
	const rows, cols = 6, 6
	es := gridGraph(t, rows, cols)
	// a handful of chords turns the grid into a genuinely non-tree graph
	require.NoError(t, core.AddR(&es, 0, rows*cols-1, 2))
	require.NoError(t, core.AddR(&es, 5, 30, 3))
	require.NoError(t, core.AddR(&es, 1, 34, 1.5))

	n := es.N
	b := make([]float64, n)
	b[0] = 1
	b[n-1] = -1

	opts := augtree.DefaultOptions(4, 99)
	opts.PCG.MaxIters = 2000
	x, iters, err := augtree.AugTreePCG(es, b, opts)
	require.NoError(t, err)
	assert.Greater(t, iters, 0)
	assert.Less(t, residualNorm(t, es, x, b), 1e-4)
}

func TestAugTreePCGRejectsDimensionMismatch(t *testing.T) {
	es := gridGraph(t, 3, 3)
	_, _, err := augtree.AugTreePCG(es, []float64{1, 2}, augtree.DefaultOptions(1, 1))
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)
}
