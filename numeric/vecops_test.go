package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amguinto/treepcg/numeric"
)

func TestDot(t *testing.T) {
	assert.InDelta(t, 32, numeric.Dot([]float64{1, 2, 3}, []float64{4, 5, 6}), 1e-12)
}

func TestAddScaled(t *testing.T) {
	dst := []float64{1, 1, 1}
	numeric.AddScaled(dst, 2, []float64{1, 2, 3})
	assert.Equal(t, []float64{3, 5, 7}, dst)
}

func TestNorm(t *testing.T) {
	assert.InDelta(t, 5, numeric.Norm([]float64{3, 4}), 1e-12)
}

func TestScale(t *testing.T) {
	dst := []float64{1, -2, 3}
	numeric.Scale(2, dst)
	assert.Equal(t, []float64{2, -4, 6}, dst)
}

func TestNormZeroVector(t *testing.T) {
	assert.True(t, math.Abs(numeric.Norm([]float64{0, 0, 0})) < 1e-12)
}
