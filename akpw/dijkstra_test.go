package akpw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amguinto/treepcg/akpw"
	"github.com/amguinto/treepcg/core"
)

func TestDijkstraTreeOnGrid(t *testing.T) {
	el := grid2D(t, 4, 4)
	adj := core.BuildAdjacencyArrayR(el)

	tr, err := akpw.DijkstraTree(adj, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, tr.Root)
	assert.Equal(t, el.N, tr.N())

	// Root path of the farthest corner should accumulate exactly its
	// shortest-path distance (unit weights, Manhattan distance 6 for a
	// 4x4 grid corner to corner).
	path := tr.RootPath(15)
	assert.InDelta(t, 6.0, path[len(path)-1].CumulativeR, 1e-9)
}

func TestDijkstraTreeDisconnected(t *testing.T) {
	el := core.NewEdgeListR(3)
	require.NoError(t, core.AddR(&el, 0, 1, 1))
	adj := core.BuildAdjacencyArrayR(el)

	_, err := akpw.DijkstraTree(adj, 0)
	assert.ErrorIs(t, err, core.ErrGraphDisconnected)
}

func TestDijkstraTreeRootOutOfRange(t *testing.T) {
	el := grid2D(t, 2, 2)
	adj := core.BuildAdjacencyArrayR(el)
	_, err := akpw.DijkstraTree(adj, 99)
	assert.ErrorIs(t, err, core.ErrMalformedEdge)
}
