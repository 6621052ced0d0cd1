package initpart_test

import (
	"testing"

	"github.com/hyperpart/hyperpart/hgraph"
)

// sevenNodeFixture builds the canonical 7-vertex, 4-edge hypergraph used
// throughout the package tests: e0={0,2}, e1={0,1,3,4}, e2={3,4,6},
// e3={2,5,6}, every node and edge weight 1, configured for k blocks.
func sevenNodeFixture(t *testing.T, k int) *hgraph.Hypergraph {
	t.Helper()

	pins := [][]hgraph.NodeID{
		{0, 2},
		{0, 1, 3, 4},
		{3, 4, 6},
		{2, 5, 6},
	}
	h, err := hgraph.NewHypergraph(7, pins, nil, nil, k)
	if err != nil {
		t.Fatalf("sevenNodeFixture: %v", err)
	}

	return h
}

// ringFixture builds a hypergraph of n nodes arranged in a ring, each
// 3-node window forming a hyperedge — enough structure for a BFS-grown
// partitioner to produce a balanced k-way partition without degenerating
// into isolated components.
func ringFixture(t *testing.T, n, k int) *hgraph.Hypergraph {
	t.Helper()

	var pins [][]hgraph.NodeID
	for i := 0; i < n; i++ {
		pins = append(pins, []hgraph.NodeID{
			hgraph.NodeID(i),
			hgraph.NodeID((i + 1) % n),
			hgraph.NodeID((i + 2) % n),
		})
	}
	h, err := hgraph.NewHypergraph(n, pins, nil, nil, k)
	if err != nil {
		t.Fatalf("ringFixture: %v", err)
	}

	return h
}
