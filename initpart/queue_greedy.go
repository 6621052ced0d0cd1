package initpart

import (
	"container/heap"

	"github.com/hyperpart/hyperpart/hgraph"
)

// greedyEntry is one (vertex, gain) pair queued for a single block.
// index tracks its position in that block's heap so UpdateKey and Remove
// can run in O(log n) via heap.Fix/heap.Remove instead of a linear scan —
// the same bookkeeping prim_kruskal's edgePQ keeps for its own Fix calls.
type greedyEntry struct {
	v     hgraph.NodeID
	gain  int64
	index int
}

// blockHeap is a max-heap of greedyEntry ordered by gain, ties broken by
// the lower vertex id so pop order is deterministic. It implements
// heap.Interface directly, generalizing prim_kruskal's edgePQ (a min-heap
// with no decrease-key support) to support UpdateKey and Remove as well.
type blockHeap []*greedyEntry

func (h blockHeap) Len() int { return len(h) }
func (h blockHeap) Less(i, j int) bool {
	if h[i].gain != h[j].gain {
		return h[i].gain > h[j].gain
	}
	return h[i].v < h[j].v
}
func (h blockHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *blockHeap) Push(x any) {
	e := x.(*greedyEntry)
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *blockHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	e.index = -1

	return e
}

// GreedyQueue is the Greedy Hypergraph Growing partitioner's set of k
// per-block priority queues keyed by gain. A vertex may hold an entry in
// more than one block's queue at once — one per block it was found
// eligible for when first discovered — until it is assigned, at which
// point RemoveFromAll drops every remaining entry for it.
type GreedyQueue struct {
	heaps  []*blockHeap
	lookup []map[hgraph.NodeID]*greedyEntry
}

// NewGreedyQueue builds an empty GreedyQueue with k per-block queues.
func NewGreedyQueue(k int) *GreedyQueue {
	q := &GreedyQueue{
		heaps:  make([]*blockHeap, k),
		lookup: make([]map[hgraph.NodeID]*greedyEntry, k),
	}
	for p := 0; p < k; p++ {
		bh := blockHeap{}
		q.heaps[p] = &bh
		q.lookup[p] = make(map[hgraph.NodeID]*greedyEntry)
	}

	return q
}

// NumBlocks implements policy.GreedyPQ and policy.BlockQueues.
func (q *GreedyQueue) NumBlocks() int { return len(q.heaps) }

// Empty reports whether block p's queue holds no entries.
func (q *GreedyQueue) Empty(p int) bool { return q.heaps[p].Len() == 0 }

// Contains implements policy.GreedyPQ.
func (q *GreedyQueue) Contains(p int, v hgraph.NodeID) bool {
	_, ok := q.lookup[p][v]
	return ok
}

// InAnyQueue reports whether v currently has an entry in any block's
// queue.
func (q *GreedyQueue) InAnyQueue(v hgraph.NodeID) bool {
	for p := range q.lookup {
		if _, ok := q.lookup[p][v]; ok {
			return true
		}
	}

	return false
}

// Insert adds v to block p's queue with the given gain. It is the
// caller's responsibility to avoid inserting a duplicate (p, v) pair.
func (q *GreedyQueue) Insert(p int, v hgraph.NodeID, gain int64) {
	e := &greedyEntry{v: v, gain: gain}
	heap.Push(q.heaps[p], e)
	q.lookup[p][v] = e
}

// UpdateKey implements policy.GreedyPQ.
func (q *GreedyQueue) UpdateKey(p int, v hgraph.NodeID, newGain int64) {
	e, ok := q.lookup[p][v]
	if !ok {
		return
	}
	e.gain = newGain
	heap.Fix(q.heaps[p], e.index)
}

// Remove drops v's entry from block p's queue, if present.
func (q *GreedyQueue) Remove(p int, v hgraph.NodeID) {
	e, ok := q.lookup[p][v]
	if !ok {
		return
	}
	heap.Remove(q.heaps[p], e.index)
	delete(q.lookup[p], v)
}

// RemoveFromAll drops every entry for v, across every block's queue.
// Called once v has been assigned, since a vertex can no longer be a
// growth candidate once placed.
func (q *GreedyQueue) RemoveFromAll(v hgraph.NodeID) {
	for p := range q.heaps {
		q.Remove(p, v)
	}
}

// Top returns block p's best (vertex, gain) pair without removing it.
func (q *GreedyQueue) Top(p int) (hgraph.NodeID, int64, bool) {
	if q.heaps[p].Len() == 0 {
		return 0, 0, false
	}
	e := (*q.heaps[p])[0]

	return e.v, e.gain, true
}

// TopGain implements policy.BlockQueues.
func (q *GreedyQueue) TopGain(p int) (int64, bool) {
	_, gain, ok := q.Top(p)
	return gain, ok
}

// Pop removes and returns block p's best (vertex, gain) pair.
func (q *GreedyQueue) Pop(p int) (hgraph.NodeID, int64, bool) {
	if q.heaps[p].Len() == 0 {
		return 0, 0, false
	}
	e := heap.Pop(q.heaps[p]).(*greedyEntry)
	delete(q.lookup[p], e.v)

	return e.v, e.gain, true
}
