package core_test

import (
	"fmt"

	"github.com/amguinto/treepcg/core"
)

// A 3-cycle built from resistances, converted to an adjacency array for
// fast neighbor iteration.
func Example() {
	el := core.NewEdgeListR(3)
	_ = core.AddR(&el, 0, 1, 1)
	_ = core.AddR(&el, 1, 2, 1)
	_ = core.AddR(&el, 2, 0, 1)

	adj := core.BuildAdjacencyArrayR(el)
	fmt.Println(len(adj.Neighbors(0)))
	// Output: 2
}
