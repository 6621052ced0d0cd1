package policy

import (
	"math/rand"

	"github.com/hyperpart/hyperpart/hgraph"
)

// StartNodeSelector picks the seed vertex a growing partitioner expands
// from. Implementations may consult rng for tie-breaking or sampling but
// must not retain it.
type StartNodeSelector interface {
	// SelectStartNode returns a node currently in block unassigned to
	// seed growth from, and false if none remains. unassigned need not
	// be hgraph.Unassigned: when a partitioner run starts every vertex
	// in a concrete block (Config.UnassignedBlock >= 0), that block id
	// is what "not yet chosen" means for the duration of seed selection.
	SelectStartNode(h *hgraph.Hypergraph, unassigned int, rng *rand.Rand) (hgraph.NodeID, bool)
}

// GainPolicy scores candidate moves for the greedy hypergraph growing
// partitioner and keeps its priority queues consistent after a move is
// applied.
type GainPolicy interface {
	// Gain returns the score of moving v into block target, given the
	// hypergraph's current block assignment (v may currently be
	// Unassigned or in any block, including target itself).
	Gain(h *hgraph.Hypergraph, v hgraph.NodeID, target int) int64

	// DeltaGainUpdate is called immediately after v has been moved
	// (Block(v) already reflects the move). It recomputes the queue key
	// of every vertex w that is a pin of some edge incident to v and
	// currently holds an entry in pq, for every block that entry exists
	// in. visited is a caller-owned bit-set, sized NumNodes(h), that this
	// call sets for each w it touches; the caller clears it before the
	// next move. A given w is touched at most once per call even if
	// reachable via more than one shared edge.
	DeltaGainUpdate(h *hgraph.Hypergraph, pq GreedyPQ, v hgraph.NodeID, visited []bool)
}

// GreedyPQ is the narrow view of the greedy partitioner's k per-block
// priority queues that DeltaGainUpdate needs. initpart's queue
// implementation satisfies this structurally.
type GreedyPQ interface {
	NumBlocks() int
	Contains(block int, v hgraph.NodeID) bool
	UpdateKey(block int, v hgraph.NodeID, newKey int64)
}

// BlockQueues is the narrow view of the greedy partitioner's k per-block
// queues that a QueueSelector needs to pick which one to service next.
type BlockQueues interface {
	NumBlocks() int
	Empty(block int) bool
	// TopGain returns the best (highest) key currently queued for block,
	// and false if the queue is empty.
	TopGain(block int) (int64, bool)
}

// QueueSelector decides which of the k per-block queues the greedy
// partitioner should pop from next. Unlike StartNodeSelector and
// GainPolicy, a selector may carry its own cursor state (round-robin
// position, exhausted-block tracking) — that state belongs to the
// selection strategy, not to the hypergraph, so a fresh selector value is
// expected per partitioner run.
type QueueSelector interface {
	// Next returns the block to service next, and false if every queue
	// is empty.
	Next(bq BlockQueues) (block int, ok bool)
}
