package gio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/amguinto/treepcg/core"
)

// WriteMatrixMarket writes el's Laplacian as a Matrix Market coordinate
// real symmetric file: the off-diagonal entries are -1/R for each edge,
// one triangle only (the format's symmetric storage convention implies
// the mirror), plus the diagonal degree entries.
func WriteMatrixMarket(w io.Writer, el core.EdgeList[core.EdgeR]) error {
	bw := bufio.NewWriter(w)

	diag := make([]float64, el.N)
	for _, e := range el.Edges {
		c := 1 / e.R
		diag[e.U] += c
		diag[e.V] += c
	}

	nonZeros := len(el.Edges) + el.N
	if _, err := fmt.Fprintln(bw, "%%MatrixMarket matrix coordinate real symmetric"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "%d %d %d\n", el.N, el.N, nonZeros); err != nil {
		return err
	}

	for v := 0; v < el.N; v++ {
		if _, err := fmt.Fprintf(bw, "%d %d %.17g\n", v+1, v+1, diag[v]); err != nil {
			return err
		}
	}
	for _, e := range el.Edges {
		row, col := e.U+1, e.V+1
		if row < col {
			row, col = col, row
		}
		if _, err := fmt.Fprintf(bw, "%d %d %.17g\n", row, col, -1/e.R); err != nil {
			return err
		}
	}

	return bw.Flush()
}
