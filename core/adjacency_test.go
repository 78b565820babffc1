package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amguinto/treepcg/core"
)

func triangleR(t *testing.T) core.EdgeList[core.EdgeR] {
	t.Helper()
	el := core.NewEdgeListR(3)
	require.NoError(t, core.AddR(&el, 0, 1, 1))
	require.NoError(t, core.AddR(&el, 1, 2, 2))
	require.NoError(t, core.AddR(&el, 2, 0, 3))
	return el
}

func TestAdjacencyArrayCSRShape(t *testing.T) {
	a := core.BuildAdjacencyArrayR(triangleR(t))
	require.Equal(t, 3, a.N())
	assert.Len(t, a.Arcs, 6) // 2*m

	for v := 0; v < 3; v++ {
		assert.Len(t, a.Neighbors(v), 2, "every vertex of a triangle has degree 2")
	}
}

func TestAdjacencyMapAddAndCombine(t *testing.T) {
	m := core.NewAdjacencyMap(3)
	m.AddEdge(0, 1, 2.0)
	m.AddEdge(0, 1, 3.0) // parallel edge sums
	m.AddEdge(0, 0, 5.0) // self-loop ignored

	assert.InDelta(t, 5.0, m.Neighbors(0)[1], 1e-12)
	assert.InDelta(t, 5.0, m.Neighbors(1)[0], 1e-12)
	assert.Equal(t, 0, m.Degree(2))
}

func TestAdjacencyMapRemoveVertex(t *testing.T) {
	m := core.NewAdjacencyMap(3)
	m.AddEdge(0, 1, 1.0)
	m.AddEdge(1, 2, 2.0)

	removed := m.RemoveVertex(1)
	assert.Len(t, removed, 2)
	assert.Equal(t, 0, m.Degree(1))
	_, ok := m.Neighbors(0)[1]
	assert.False(t, ok, "neighbor's back-reference to the removed vertex must be gone")
	_, ok = m.Neighbors(2)[1]
	assert.False(t, ok)
}
