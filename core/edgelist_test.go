package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amguinto/treepcg/core"
)

func TestEdgeListAddRValidation(t *testing.T) {
	el := core.NewEdgeListR(3)

	require.NoError(t, core.AddR(&el, 0, 1, 2.0))
	assert.Len(t, el.Edges, 1)

	assert.ErrorIs(t, core.AddR(&el, 0, 0, 1.0), core.ErrMalformedEdge, "self-loop")
	assert.ErrorIs(t, core.AddR(&el, 0, 5, 1.0), core.ErrMalformedEdge, "out of range")
	assert.ErrorIs(t, core.AddR(&el, 0, 1, 0), core.ErrMalformedEdge, "non-positive resistance")
	assert.ErrorIs(t, core.AddR(&el, 0, 1, -1), core.ErrMalformedEdge, "negative resistance")
}

func TestToConductanceRoundTrip(t *testing.T) {
	el := core.NewEdgeListR(2)
	require.NoError(t, core.AddR(&el, 0, 1, 4.0))

	c := core.ToConductance(el)
	require.Len(t, c.Edges, 1)
	assert.InDelta(t, 0.25, c.Edges[0].C, 1e-12)

	back := core.ToResistance(c)
	assert.InDelta(t, 4.0, back.Edges[0].R, 1e-12)
}

func TestNormalizeScalesToUnitMinimum(t *testing.T) {
	el := core.NewEdgeListR(3)
	require.NoError(t, core.AddR(&el, 0, 1, 4.0))
	require.NoError(t, core.AddR(&el, 1, 2, 2.0))

	scale := core.Normalize(&el)
	assert.Equal(t, 2.0, scale)
	assert.InDelta(t, 2.0, el.Edges[0].R, 1e-12)
	assert.InDelta(t, 1.0, el.Edges[1].R, 1e-12)

	min := el.Edges[0].R
	for _, e := range el.Edges {
		if e.R < min {
			min = e.R
		}
	}
	assert.InDelta(t, 1.0, min, 1e-12)
}

func TestNormalizeEmptyIsNoOp(t *testing.T) {
	el := core.NewEdgeListR(0)
	assert.Equal(t, 1.0, core.Normalize(&el))
}

func TestCombineRules(t *testing.T) {
	assert.InDelta(t, 1.0, core.CombineResistance(2, 2), 1e-12) // two 2Ω in parallel -> 1Ω
	assert.InDelta(t, 4.0, core.CombineConductance(1.5, 2.5), 1e-12)
}
