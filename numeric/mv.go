package numeric

import (
	"fmt"

	"github.com/amguinto/treepcg/core"
)

// MultiplyC computes out = alpha*L*x + beta*y for the Laplacian L
// implied by el's conductances, where L's action on x is, for every
// edge (u, v, c): out_u += c*(x_u - x_v), out_v -= c*(x_u - x_v) (the
// symmetric counterpart at v).
//
// x, y and out must each have length el.N; out may alias y (the common
// "accumulate into y" call shape) but must not alias x, since edges are
// processed in an unspecified order and a shared buffer would read
// partially-updated values.
func MultiplyC(alpha float64, el core.EdgeList[core.EdgeC], x []float64, beta float64, y, out []float64) error {
	return multiply(alpha, el.N, len(el.Edges), func(i int) (u, v int, c float64) {
		e := el.Edges[i]
		return e.U, e.V, e.C
	}, x, beta, y, out)
}

// MultiplyR is MultiplyC for a resistance-form edge list, using 1/R as
// the per-edge conductance.
func MultiplyR(alpha float64, el core.EdgeList[core.EdgeR], x []float64, beta float64, y, out []float64) error {
	return multiply(alpha, el.N, len(el.Edges), func(i int) (u, v int, c float64) {
		e := el.Edges[i]
		return e.U, e.V, 1 / e.R
	}, x, beta, y, out)
}

func multiply(alpha float64, n, m int, at func(i int) (u, v int, c float64), x []float64, beta float64, y, out []float64) error {
	if len(x) != n || len(y) != n || len(out) != n {
		return fmt.Errorf("%w: vectors must have length %d", core.ErrDimensionMismatch, n)
	}

	for i := range out {
		out[i] = beta * y[i]
	}
	for i := 0; i < m; i++ {
		u, v, c := at(i)
		flow := alpha * c * (x[u] - x[v])
		out[u] += flow
		out[v] -= flow
	}
	return nil
}
