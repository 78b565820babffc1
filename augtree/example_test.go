package augtree_test

import (
	"fmt"

	"github.com/amguinto/treepcg/augtree"
	"github.com/amguinto/treepcg/core"
)

// Example solves a 4-cycle's Laplacian end to end through the full
// augmented-tree-preconditioned pipeline.
func Example() {
	el := core.NewEdgeListR(4)
	core.AddR(&el, 0, 1, 1)
	core.AddR(&el, 1, 2, 1)
	core.AddR(&el, 2, 3, 1)
	core.AddR(&el, 3, 0, 1)

	x, _, err := augtree.AugTreePCG(el, []float64{1, 0, -1, 0}, augtree.DefaultOptions(1, 1))
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.4f\n", x[0]-x[2])
	// Output: 1.0000
}
