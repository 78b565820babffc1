package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amguinto/treepcg/core"
	"github.com/amguinto/treepcg/numeric"
)

func fourCycle(t *testing.T) core.EdgeList[core.EdgeC] {
	t.Helper()
	el := core.NewEdgeListC(4)
	require.NoError(t, core.AddC(&el, 0, 1, 1))
	require.NoError(t, core.AddC(&el, 1, 2, 1))
	require.NoError(t, core.AddC(&el, 2, 3, 1))
	require.NoError(t, core.AddC(&el, 3, 0, 1))
	return el
}

func TestMultiplyCIsLinear(t *testing.T) {
	el := fourCycle(t)
	x1 := []float64{1, 0, -1, 0}
	x2 := []float64{0, 1, 0, -1}
	zero := make([]float64, 4)

	out1 := make([]float64, 4)
	require.NoError(t, numeric.MultiplyC(1, el, x1, 0, zero, out1))
	out2 := make([]float64, 4)
	require.NoError(t, numeric.MultiplyC(1, el, x2, 0, zero, out2))

	sum := make([]float64, 4)
	for i := range x1 {
		sum[i] = x1[i] + x2[i]
	}
	outSum := make([]float64, 4)
	require.NoError(t, numeric.MultiplyC(1, el, sum, 0, zero, outSum))

	for i := range outSum {
		assert.InDelta(t, out1[i]+out2[i], outSum[i], 1e-12)
	}
}

func TestMultiplyCRowsSumToZero(t *testing.T) {
	el := fourCycle(t)
	x := []float64{3, 1, -2, 5}
	zero := make([]float64, 4)
	out := make([]float64, 4)
	require.NoError(t, numeric.MultiplyC(1, el, x, 0, zero, out))

	total := 0.0
	for _, v := range out {
		total += v
	}
	assert.InDelta(t, 0, total, 1e-12)
}

func TestMultiplyCBetaAccumulates(t *testing.T) {
	el := fourCycle(t)
	x := []float64{1, 0, -1, 0}
	y := []float64{10, 20, 30, 40}
	out := make([]float64, 4)
	require.NoError(t, numeric.MultiplyC(2, el, x, 3, y, out))

	bare := make([]float64, 4)
	require.NoError(t, numeric.MultiplyC(2, el, x, 0, make([]float64, 4), bare))

	for i := range out {
		assert.InDelta(t, bare[i]+3*y[i], out[i], 1e-12)
	}
}

func TestMultiplyRUsesInverseResistance(t *testing.T) {
	el := core.NewEdgeListR(2)
	require.NoError(t, core.AddR(&el, 0, 1, 4))

	x := []float64{1, 0}
	zero := make([]float64, 2)
	out := make([]float64, 2)
	require.NoError(t, numeric.MultiplyR(1, el, x, 0, zero, out))

	assert.InDelta(t, 0.25, out[0], 1e-12)
	assert.InDelta(t, -0.25, out[1], 1e-12)
}

func TestMultiplyCDimensionMismatch(t *testing.T) {
	el := fourCycle(t)
	err := numeric.MultiplyC(1, el, []float64{1, 2}, 0, make([]float64, 4), make([]float64, 4))
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)
}
