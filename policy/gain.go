package policy

import "github.com/hyperpart/hyperpart/hgraph"

// FMGain is the classic Fiduccia-Mattheyses gain: the net reduction in cut
// weight from moving v out of its current block s into target.
//
//	gain(v, target) = sum_{e in I(v), pinCountInBlock(e,s)=1} w(e)
//	                - sum_{e in I(v), pinCountInBlock(e,target)=0} w(e)
//
// When v is currently Unassigned, s is understood as a block that no edge
// can have pinCountInBlock(e,s)==1 for, so the first term is always zero.
type FMGain struct{}

// Gain implements GainPolicy.
func (FMGain) Gain(h *hgraph.Hypergraph, v hgraph.NodeID, target int) int64 {
	source := h.Block(v)

	var gain int64
	for _, e := range h.IncidentEdges(v) {
		w := h.EdgeWeight(e)
		if source != hgraph.Unassigned && h.PinCountInBlock(e, source) == 1 {
			gain += w
		}
		if h.PinCountInBlock(e, target) == 0 {
			gain -= w
		}
	}

	return gain
}

// DeltaGainUpdate implements GainPolicy.
func (f FMGain) DeltaGainUpdate(h *hgraph.Hypergraph, pq GreedyPQ, v hgraph.NodeID, visited []bool) {
	deltaGainUpdate(h, pq, v, visited, f.Gain)
}

// MaxPinGain favors moves that land v next to the most already-placed
// pins of target: gain(v,target) = sum_{e in I(v)} pinCountInBlock(e,target).
type MaxPinGain struct{}

// Gain implements GainPolicy.
func (MaxPinGain) Gain(h *hgraph.Hypergraph, v hgraph.NodeID, target int) int64 {
	var gain int64
	for _, e := range h.IncidentEdges(v) {
		gain += int64(h.PinCountInBlock(e, target))
	}

	return gain
}

// DeltaGainUpdate implements GainPolicy.
func (m MaxPinGain) DeltaGainUpdate(h *hgraph.Hypergraph, pq GreedyPQ, v hgraph.NodeID, visited []bool) {
	deltaGainUpdate(h, pq, v, visited, m.Gain)
}

// MaxNetGain counts incident edges that already touch target at all,
// ignoring how many pins: gain(v,target) = |{e in I(v) : pinCountInBlock(e,target) > 0}|.
type MaxNetGain struct{}

// Gain implements GainPolicy.
func (MaxNetGain) Gain(h *hgraph.Hypergraph, v hgraph.NodeID, target int) int64 {
	var gain int64
	for _, e := range h.IncidentEdges(v) {
		if h.PinCountInBlock(e, target) > 0 {
			gain++
		}
	}

	return gain
}

// DeltaGainUpdate implements GainPolicy.
func (m MaxNetGain) DeltaGainUpdate(h *hgraph.Hypergraph, pq GreedyPQ, v hgraph.NodeID, visited []bool) {
	deltaGainUpdate(h, pq, v, visited, m.Gain)
}

// deltaGainUpdate is shared by every GainPolicy: after v has moved, every
// pin of every edge incident to v may have had its gain toward some block
// change, because the pin-count counters those gains are computed from
// just changed. Each such w is recomputed, for every block its queue
// entry exists in, exactly once.
func deltaGainUpdate(
	h *hgraph.Hypergraph,
	pq GreedyPQ,
	v hgraph.NodeID,
	visited []bool,
	gain func(*hgraph.Hypergraph, hgraph.NodeID, int) int64,
) {
	for _, e := range h.IncidentEdges(v) {
		for _, w := range h.Pins(e) {
			if w == v || visited[w] {
				continue
			}
			visited[w] = true

			for p := 0; p < pq.NumBlocks(); p++ {
				if pq.Contains(p, w) {
					pq.UpdateKey(p, w, gain(h, w, p))
				}
			}
		}
	}
}
