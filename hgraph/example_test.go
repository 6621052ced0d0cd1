package hgraph_test

import (
	"fmt"

	"github.com/hyperpart/hyperpart/hgraph"
)

// ExampleHypergraph_CutWeight builds a 4-vertex, 2-edge hypergraph, assigns
// a 2-way partition that cuts exactly one of the two edges, and prints the
// resulting cut weight.
func ExampleHypergraph_CutWeight() {
	h, err := hgraph.NewHypergraph(4, [][]hgraph.NodeID{
		{0, 1, 2}, // internal to block 0 once assigned below
		{2, 3},    // spans both blocks
	}, nil, nil, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	h.SetBlock(0, 0)
	h.SetBlock(1, 0)
	h.SetBlock(2, 0)
	h.SetBlock(3, 1)

	fmt.Println("cut weight:", h.CutWeight())
	// Output: cut weight: 1
}
