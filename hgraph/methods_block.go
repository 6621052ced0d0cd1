// File: methods_block.go
// Role: block-assignment mutators and the bulk reset/recompute pair that
// keeps PinCountInBlock/Connectivity/CutWeight consistent with the block
// assignment.
//
// Invariant: block(v) is changed ONLY by SetBlock, ChangeBlock and the
// bulk ResetPartition. Every other accessor treats block, PartWeight,
// PartSize and each edge's derived counters as read-only.
package hgraph

import "fmt"

// SetBlock places previously-unassigned node v into block p.
//
// v must currently be Unassigned; violating that is a programmer error
// (the caller's contract, not a balance outcome) and panics, mirroring
// kahypar's ASSERT(_hg.partID(hn) == unassigned_part, ...) for the same
// precondition.
//
// Complexity: O(degree(v)).
func (h *Hypergraph) SetBlock(v NodeID, p int) {
	if p < 0 || p >= h.k {
		panic(fmt.Sprintf("hgraph: SetBlock(%d, %d): block out of range [0,%d)", v, p, h.k))
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.block[v] != Unassigned {
		panic(fmt.Sprintf("hgraph: SetBlock(%d, %d): node already assigned to block %d", v, p, h.block[v]))
	}

	h.block[v] = p
	h.partWeight[p] += h.nodeWeight[v]
	h.partSize[p]++
	for _, e := range h.incident[v] {
		h.touchBlock(e, p, +1)
	}
}

// ChangeBlock moves v from block `from` to block `to`.
//
// v must currently be in `from`; violating that panics for the same reason
// SetBlock's precondition violation does.
//
// Complexity: O(degree(v)).
func (h *Hypergraph) ChangeBlock(v NodeID, from, to int) {
	if to < 0 || to >= h.k {
		panic(fmt.Sprintf("hgraph: ChangeBlock(%d, %d, %d): target block out of range [0,%d)", v, from, to, h.k))
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.block[v] != from {
		panic(fmt.Sprintf("hgraph: ChangeBlock(%d, %d, %d): node is actually in block %d", v, from, to, h.block[v]))
	}
	if from == to {
		return
	}

	h.block[v] = to
	h.partWeight[from] -= h.nodeWeight[v]
	h.partWeight[to] += h.nodeWeight[v]
	h.partSize[from]--
	h.partSize[to]++
	for _, e := range h.incident[v] {
		h.touchBlock(e, from, -1)
		h.touchBlock(e, to, +1)
	}
}

// touchBlock adjusts edge e's pinCountInBlock[p] and blockTouched set by
// delta (+1 or -1), maintaining cutWeight incrementally as e's connectivity
// crosses the 1/2 boundary. Must be called with mu held.
func (h *Hypergraph) touchBlock(e EdgeID, p int, delta int) {
	ed := &h.edges[e]
	before := ed.connectivity()

	ed.pinCountInBlock[p] += delta
	if ed.pinCountInBlock[p] == 0 {
		delete(ed.blockTouched, p)
	} else if delta > 0 && ed.pinCountInBlock[p] == delta {
		ed.blockTouched[p] = 0
	}

	after := ed.connectivity()
	if before <= 1 && after > 1 {
		h.cutWeight += ed.weight
	} else if before > 1 && after <= 1 {
		h.cutWeight -= ed.weight
	}
}

// ResetPartition assigns every node to unassignedBlock if it lies in
// [0, k), otherwise to Unassigned, and rebuilds every derived counter from
// scratch.
//
// Complexity: O(N + sum of edge sizes).
func (h *Hypergraph) ResetPartition(unassignedBlock int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	target := Unassigned
	if unassignedBlock >= 0 && unassignedBlock < h.k {
		target = unassignedBlock
	}

	for p := 0; p < h.k; p++ {
		h.partWeight[p] = 0
		h.partSize[p] = 0
	}
	for i := range h.edges {
		ed := &h.edges[i]
		for p := range ed.pinCountInBlock {
			ed.pinCountInBlock[p] = 0
		}
		ed.blockTouched = make(map[int]int)
	}
	h.cutWeight = 0

	for v := range h.block {
		h.block[v] = Unassigned
	}
	if target != Unassigned {
		for v := range h.block {
			h.block[v] = target
			h.partWeight[target] += h.nodeWeight[v]
			h.partSize[target]++
		}
		for i := range h.edges {
			ed := &h.edges[i]
			for range ed.pins {
				ed.pinCountInBlock[target]++
			}
			if len(ed.pins) > 0 {
				ed.blockTouched[target] = ed.pinCountInBlock[target]
			}
		}
	}
}

// InitializeNumCutHyperedges recomputes the cached cut weight from the
// current per-edge connectivity counters. SetBlock/ChangeBlock already
// maintain this incrementally; this entry point exists for callers that
// bulk-mutate blocks outside those two methods (there currently are none
// inside this module) and for parity with the external interface contract.
//
// Complexity: O(M).
func (h *Hypergraph) InitializeNumCutHyperedges() {
	h.mu.Lock()
	defer h.mu.Unlock()

	var cut int64
	for i := range h.edges {
		if h.edges[i].connectivity() > 1 {
			cut += h.edges[i].weight
		}
	}
	h.cutWeight = cut
}
