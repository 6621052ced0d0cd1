package policy

import (
	"math/rand"

	"github.com/hyperpart/hyperpart/hgraph"
)

// RandomStartNode selects uniformly among the nodes currently in the
// unassigned block.
type RandomStartNode struct{}

// SelectStartNode implements StartNodeSelector.
func (RandomStartNode) SelectStartNode(h *hgraph.Hypergraph, unassigned int, rng *rand.Rand) (hgraph.NodeID, bool) {
	candidates := blockMembers(h, unassigned)
	if len(candidates) == 0 {
		return 0, false
	}

	return candidates[rng.Intn(len(candidates))], true
}

// BFSFarthestStartNode spreads seeds apart: the first seed (nothing chosen
// yet) is picked uniformly at random; every later seed is the node, still
// in the unassigned block, with the greatest BFS hop distance, through
// shared hyperedges, from the set of already-chosen nodes. Ties are
// broken by the lowest node id so a fixed rng seed reproduces a fixed
// sequence.
type BFSFarthestStartNode struct{}

// SelectStartNode implements StartNodeSelector.
func (BFSFarthestStartNode) SelectStartNode(h *hgraph.Hypergraph, unassigned int, rng *rand.Rand) (hgraph.NodeID, bool) {
	candidates := blockMembers(h, unassigned)
	if len(candidates) == 0 {
		return 0, false
	}

	sources := nonMembers(h, unassigned)
	if len(sources) == 0 {
		return candidates[rng.Intn(len(candidates))], true
	}

	dist := bfsDistances(h, sources)

	best := candidates[0]
	bestDist := dist[best]
	for _, v := range candidates[1:] {
		if dist[v] > bestDist {
			best, bestDist = v, dist[v]
		}
	}

	return best, true
}

// FixedSequenceStartNode replays a pre-programmed sequence of start nodes,
// skipping any entry that has already left the unassigned block by the
// time it is reached. It exists to make partitioner runs deterministic in
// tests, mirroring kahypar's test-only start-node policy.
type FixedSequenceStartNode struct {
	Sequence []hgraph.NodeID
	next     int
}

// SelectStartNode implements StartNodeSelector.
func (f *FixedSequenceStartNode) SelectStartNode(h *hgraph.Hypergraph, unassigned int, _ *rand.Rand) (hgraph.NodeID, bool) {
	for f.next < len(f.Sequence) {
		v := f.Sequence[f.next]
		f.next++
		if h.Block(v) == unassigned {
			return v, true
		}
	}

	candidates := blockMembers(h, unassigned)
	if len(candidates) == 0 {
		return 0, false
	}

	return candidates[0], true
}

func blockMembers(h *hgraph.Hypergraph, block int) []hgraph.NodeID {
	var out []hgraph.NodeID
	for _, v := range h.Nodes() {
		if h.Block(v) == block {
			out = append(out, v)
		}
	}

	return out
}

func nonMembers(h *hgraph.Hypergraph, block int) []hgraph.NodeID {
	var out []hgraph.NodeID
	for _, v := range h.Nodes() {
		if h.Block(v) != block {
			out = append(out, v)
		}
	}

	return out
}

// bfsDistances runs a multi-source BFS over the hypergraph's underlying
// graph (two nodes adjacent iff they co-occur as pins of some edge),
// returning the hop distance from the nearest source for every node.
// Unreachable nodes get NumNodes(h), the largest distance no node can
// legitimately have, so they still sort as "farthest".
func bfsDistances(h *hgraph.Hypergraph, sources []hgraph.NodeID) []int {
	n := h.NumNodes()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = n
	}

	queue := make([]hgraph.NodeID, 0, len(sources))
	for _, s := range sources {
		if dist[s] == n {
			dist[s] = 0
			queue = append(queue, s)
		}
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, e := range h.IncidentEdges(v) {
			for _, w := range h.Pins(e) {
				if dist[w] == n {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
			}
		}
	}

	return dist
}
