package initpart

import (
	"context"

	"github.com/hyperpart/hyperpart/hgraph"
	"github.com/hyperpart/hyperpart/policy"
)

// BFS grows k blocks concurrently, one vertex at a time, from k seed
// vertices using k FIFO queues. It is the cheapest of the three
// partitioner families and the one RecursiveBisection most commonly
// drives.
type BFS struct {
	base  *Base
	start policy.StartNodeSelector
}

// NewBFS builds a BFS partitioner around h, using start to pick seeds.
func NewBFS(h *hgraph.Hypergraph, cfg Config, start policy.StartNodeSelector, refiner Refiner) *BFS {
	return &BFS{base: NewBase(h, cfg, refiner), start: start}
}

// Partition implements Partitioner.
func (bp *BFS) Partition(ctx context.Context, k int) error {
	return bp.run(ctx, k)
}

// SetBalanceBounds overrides the balance thresholds the next Bisect call
// uses, instead of deriving them from this hypergraph's own total weight.
// RecursiveBisection uses this to propagate the original epsilon budget
// down through nested sub-instances.
func (bp *BFS) SetBalanceBounds(perfect, upper []int64) {
	bp.base.setBalanceBounds(perfect, upper)
}

// Bisect implements Partitioner.
func (bp *BFS) Bisect(ctx context.Context) error {
	prevK := bp.base.K
	defer bp.base.configureForK(prevK)

	return bp.run(ctx, 2)
}

func (bp *BFS) run(ctx context.Context, k int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b := bp.base
	b.configureForK(k)
	b.resetPartitioning(b.Cfg.UnassignedBlock)

	queues := make([][]hgraph.NodeID, k)
	inQueue := make([][]bool, k)
	enabled := make([]bool, k)
	for p := 0; p < k; p++ {
		inQueue[p] = make([]bool, b.H.NumNodes())
		enabled[p] = true
	}

	for p := 0; p < k; p++ {
		seed, ok := bp.start.SelectStartNode(b.H, b.effectiveUnassigned, b.Rng)
		if !ok || !b.assignHypernodeToPartition(seed, p) {
			enabled[p] = false
			continue
		}
		// The seed is assigned here, not via the main loop's dequeue, so
		// its own incident edges must be explored now — otherwise growth
		// never actually originates at the seed vertex.
		inQueue[p][seed] = true
		pushIncidentHyperedgesIntoQueue(b.H, seed, b.effectiveUnassigned, &queues[p], inQueue[p])
	}
	if b.Cfg.UnassignedBlock >= 0 && b.Cfg.UnassignedBlock < k {
		enabled[b.Cfg.UnassignedBlock] = false
	}

	for anyTrue(enabled) {
		for p := 0; p < k; p++ {
			if !enabled[p] {
				continue
			}
			// A block that has reached its perfect-balance share stops
			// growing voluntarily, even though the looser upper-allowed
			// bound assignHypernodeToPartition enforces would still admit
			// more vertices — this is what lets every block settle near
			// its fair share instead of racing each other up to the hard
			// imbalance ceiling.
			if b.H.PartWeight(p) >= b.PerfectBalanceWeight[p] {
				enabled[p] = false
				continue
			}

			v, found := popNextUnassigned(b, &queues[p])
			if !found {
				cand, ok := b.getUnassignedNode()
				if !ok {
					enabled[p] = false
					continue
				}
				v = cand
				inQueue[p][cand] = true
			}

			pushIncidentHyperedgesIntoQueue(b.H, v, b.effectiveUnassigned, &queues[p], inQueue[p])

			if !b.assignHypernodeToPartition(v, p) && len(queues[p]) == 0 {
				enabled[p] = false
			}
		}
	}

	b.mopUp()
	b.recordCutIfBest()
	b.rollbackToBestCut()

	return b.performFMRefinement()
}

// popNextUnassigned drains queue until it finds an entry still in the
// effective unassigned block, or the queue empties.
func popNextUnassigned(b *Base, queue *[]hgraph.NodeID) (hgraph.NodeID, bool) {
	q := *queue
	for len(q) > 0 {
		v := q[0]
		q = q[1:]
		if b.H.Block(v) == b.effectiveUnassigned {
			*queue = q
			return v, true
		}
	}
	*queue = q

	return 0, false
}

// pushIncidentHyperedgesIntoQueue pushes every pin w, of every edge
// incident to v, that is still in the unassigned block and not already
// marked in inQueue, appending to queue in pin-iteration order and
// marking inQueue[w] as it goes. A pin is pushed at most once across the
// call regardless of how many shared edges it and v have.
func pushIncidentHyperedgesIntoQueue(h *hgraph.Hypergraph, v hgraph.NodeID, unassigned int, queue *[]hgraph.NodeID, inQueue []bool) {
	for _, e := range h.IncidentEdges(v) {
		for _, w := range h.Pins(e) {
			if inQueue[w] {
				continue
			}
			if h.Block(w) != unassigned {
				continue
			}
			inQueue[w] = true
			*queue = append(*queue, w)
		}
	}
}

func anyTrue(bs []bool) bool {
	for _, b := range bs {
		if b {
			return true
		}
	}

	return false
}
