package hgraph

import "sort"

// NumNodes returns the number of nodes in the hypergraph.
// Complexity: O(1).
func (h *Hypergraph) NumNodes() int { return len(h.nodeWeight) }

// InitialNumNodes returns the node count of the dense id space the
// hypergraph was constructed with. This module never contracts nodes, so
// it always equals NumNodes(); the distinction is kept because the
// enclosing multilevel partitioner (out of scope here) does contract and
// later restore nodes, and consumers written against this interface should
// not assume the two are interchangeable in general.
// Complexity: O(1).
func (h *Hypergraph) InitialNumNodes() int { return h.NumNodes() }

// NumEdges returns the number of hyperedges.
// Complexity: O(1).
func (h *Hypergraph) NumEdges() int { return len(h.edges) }

// K returns the number of blocks this hypergraph was configured for.
// Complexity: O(1).
func (h *Hypergraph) K() int { return h.k }

// Nodes returns all node ids in ascending order.
// Complexity: O(N).
func (h *Hypergraph) Nodes() []NodeID {
	out := make([]NodeID, h.NumNodes())
	for i := range out {
		out[i] = NodeID(i)
	}

	return out
}

// Edges returns all edge ids in ascending order.
// Complexity: O(M).
func (h *Hypergraph) Edges() []EdgeID {
	out := make([]EdgeID, h.NumEdges())
	for i := range out {
		out[i] = EdgeID(i)
	}

	return out
}

// IncidentEdges returns the ids of edges containing v, in the order v was
// first registered as a pin of each (construction order). The returned
// slice is owned by the caller's copy, not shared backing.
// Complexity: O(degree(v)).
func (h *Hypergraph) IncidentEdges(v NodeID) []EdgeID {
	src := h.incident[v]
	out := make([]EdgeID, len(src))
	copy(out, src)

	return out
}

// Pins returns the pin list of edge e, in construction order.
// Complexity: O(|e|).
func (h *Hypergraph) Pins(e EdgeID) []NodeID {
	src := h.edges[e].pins
	out := make([]NodeID, len(src))
	copy(out, src)

	return out
}

// NodeWeight returns the weight of node v.
// Complexity: O(1).
func (h *Hypergraph) NodeWeight(v NodeID) int64 { return h.nodeWeight[v] }

// EdgeWeight returns the weight of edge e.
// Complexity: O(1).
func (h *Hypergraph) EdgeWeight(e EdgeID) int64 { return h.edges[e].weight }

// TotalWeight returns the sum of all node weights.
// Complexity: O(1).
func (h *Hypergraph) TotalWeight() int64 { return h.totalWeight }

// Block returns v's current block, or Unassigned.
// Complexity: O(1).
func (h *Hypergraph) Block(v NodeID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.block[v]
}

// PartWeight returns the total node weight currently assigned to block p.
// Complexity: O(1).
func (h *Hypergraph) PartWeight(p int) int64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.partWeight[p]
}

// PartSize returns the number of nodes currently assigned to block p.
// Complexity: O(1).
func (h *Hypergraph) PartSize(p int) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.partSize[p]
}

// PinCountInBlock returns |{v in pins(e) : Block(v) == p}|.
// Complexity: O(1).
func (h *Hypergraph) PinCountInBlock(e EdgeID, p int) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.edges[e].pinCountInBlock[p]
}

// Connectivity returns the number of distinct (non-Unassigned) blocks
// touching edge e.
// Complexity: O(1).
func (h *Hypergraph) Connectivity(e EdgeID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.edges[e].connectivity()
}

// ConnectivitySet returns, in ascending order, the blocks touching edge e.
// Complexity: O(connectivity(e) log connectivity(e)).
func (h *Hypergraph) ConnectivitySet(e EdgeID) []int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]int, 0, len(h.edges[e].blockTouched))
	for p := range h.edges[e].blockTouched {
		out = append(out, p)
	}
	sort.Ints(out)

	return out
}

// CutWeight returns the sum of weights of edges whose connectivity exceeds
// one — the hyperedge-cut objective. Maintained incrementally by
// SetBlock/ChangeBlock; see InitializeNumCutHyperedges to force a full
// recompute.
// Complexity: O(1).
func (h *Hypergraph) CutWeight() int64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.cutWeight
}

// Imbalance returns max_p PartWeight(p) / (TotalWeight()/k) - 1.
// Complexity: O(k).
func (h *Hypergraph) Imbalance() float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var maxW int64
	for _, w := range h.partWeight {
		if w > maxW {
			maxW = w
		}
	}
	avg := float64(h.totalWeight) / float64(h.k)
	if avg == 0 {
		return 0
	}

	return float64(maxW)/avg - 1
}
