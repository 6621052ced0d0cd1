// File: methods_clone.go
// Role: non-mutating construction of induced sub-hypergraphs, the data-model
// primitive RecursiveBisection needs to build each internal node's
// sub-instance.
//
// Grounded on lvlath's core.InducedSubgraph: keep only the requested
// vertices and only the edges whose pins survive in enough numbers to
// remain a hyperedge. The source Hypergraph is never mutated.
package hgraph

// InducedSubhypergraph returns a new Hypergraph, configured for k blocks,
// containing only the nodes in keep (order preserved) and, for each
// original edge, the projection of its pins onto keep — dropped entirely
// if fewer than 2 pins survive (a hyperedge needs at least 2 pins; see
// ErrDegenerateEdge). Node and edge weights are carried over unchanged. k
// need not equal h.K(): RecursiveBisection always asks for k=2 regardless
// of how many blocks the parent hypergraph was configured for.
//
// The returned mapping satisfies: sub-hypergraph node i corresponds to
// original node mapping[i]. The result's nodes all start Unassigned,
// regardless of their block in h.
//
// Complexity: O(N + sum of edge sizes).
func InducedSubhypergraph(h *Hypergraph, keep []NodeID, k int) (*Hypergraph, []NodeID, error) {
	mapping := make([]NodeID, len(keep))
	copy(mapping, keep)

	origToSub := make(map[NodeID]NodeID, len(keep))
	for i, v := range keep {
		origToSub[v] = NodeID(i)
	}

	nodeWeight := make([]int64, len(keep))
	for i, v := range keep {
		nodeWeight[i] = h.NodeWeight(v)
	}

	var pins [][]NodeID
	var edgeWeight []int64
	seen := make(map[EdgeID]bool)
	for _, v := range keep {
		for _, e := range h.incident[v] {
			if seen[e] {
				continue
			}
			seen[e] = true

			src := h.edges[e].pins
			projected := make([]NodeID, 0, len(src))
			for _, p := range src {
				if sub, ok := origToSub[p]; ok {
					projected = append(projected, sub)
				}
			}
			if len(projected) < 2 {
				continue
			}
			pins = append(pins, projected)
			edgeWeight = append(edgeWeight, h.edges[e].weight)
		}
	}

	sub, err := NewHypergraph(len(keep), pins, nodeWeight, edgeWeight, k)
	if err != nil {
		return nil, nil, err
	}

	return sub, mapping, nil
}
