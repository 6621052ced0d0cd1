package initpart

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/hyperpart/hyperpart/hgraph"
)

// Base holds the bookkeeping every partitioner family shares: balance
// thresholds, the rolling cursor used to find unassigned vertices, the
// best-cut snapshot used for rollback, and the RNG every policy reads
// from. It borrows a Hypergraph for the lifetime of a run and never
// outlives it; nothing here survives process restart and nothing here is
// safe for concurrent use by more than one goroutine at a time.
type Base struct {
	H       *hgraph.Hypergraph
	Cfg     Config
	Refiner Refiner
	Rng     *rand.Rand

	// K is the working block count for the current call: hgraph.K() for
	// a Partition(ctx, k) call with k == hgraph.K(), or 2 for a Bisect
	// call (or a Partition(ctx, k) call with k < hgraph.K(), used only
	// internally by blocks [0, k) of a larger hypergraph). It is
	// restored after Bisect returns.
	K                    int
	PerfectBalanceWeight []int64
	UpperAllowedWeight   []int64

	effectiveUnassigned int
	cursor              int

	overridePerfect []int64
	overrideUpper   []int64

	bestCut    int64
	bestBlocks []int
	haveBest   bool
}

// NewBase constructs a Base around h. refiner may be nil, in which case
// PerformFMRefinement is a no-op regardless of Cfg.Refinement.
func NewBase(h *hgraph.Hypergraph, cfg Config, refiner Refiner) *Base {
	if h.NumNodes() == 0 {
		panic("initpart: hypergraph has no nodes")
	}
	if h.K() < 2 {
		panic("initpart: hypergraph configured with fewer than 2 blocks")
	}
	if refiner == nil {
		refiner = NoopRefiner{}
	}

	b := &Base{
		H:       h,
		Cfg:     cfg,
		Refiner: refiner,
		Rng:     rand.New(rand.NewSource(cfg.Seed)),
	}
	b.configureForK(h.K())

	return b
}

// setBalanceBounds installs a one-shot override consumed by the next
// configureForK(len(upper)) call, instead of that call's usual
// TotalWeight-derived thresholds. RecursiveBisection uses this to hand a
// sub-instance's bisection the share of the original epsilon budget its
// covered block range is entitled to, rather than a fresh epsilon derived
// from the sub-instance's own (generally smaller) total weight.
func (b *Base) setBalanceBounds(perfect, upper []int64) {
	b.overridePerfect = perfect
	b.overrideUpper = upper
}

// configureForK sets the working block count and recomputes the per-block
// balance thresholds for it. k must be in [2, hgraph.K()].
func (b *Base) configureForK(k int) {
	if k < 2 || k > b.H.K() {
		panic(fmt.Sprintf("initpart: k=%d out of range for hypergraph configured with %d blocks", k, b.H.K()))
	}

	b.K = k
	if b.overrideUpper != nil && len(b.overrideUpper) == k {
		b.PerfectBalanceWeight = b.overridePerfect
		b.UpperAllowedWeight = b.overrideUpper
		b.overridePerfect, b.overrideUpper = nil, nil
		return
	}

	perfect := make([]int64, k)
	upper := make([]int64, k)
	share := int64(math.Ceil(float64(b.H.TotalWeight()) / float64(k)))
	for p := 0; p < k; p++ {
		perfect[p] = share
		upper[p] = int64(math.Ceil(float64(share) * (1 + b.Cfg.Epsilon)))
	}
	b.PerfectBalanceWeight = perfect
	b.UpperAllowedWeight = upper
}

// resetPartitioning resets every vertex to unassigned (assigning every
// vertex to the resulting block resets all derived counters too) and
// clears the rolling cursor and best-cut snapshot. unassigned is either
// hgraph.Unassigned or a concrete block id every vertex starts in.
func (b *Base) resetPartitioning(unassigned int) {
	b.effectiveUnassigned = unassigned
	b.H.ResetPartition(unassigned)
	b.cursor = 0
	b.haveBest = false
	b.bestCut = 0
	b.bestBlocks = nil
}

// getUnassignedNode returns a vertex currently in the effective
// unassigned block, scanning from a rolling cursor so repeated calls
// return distinct vertices in amortized O(1) while any remain.
func (b *Base) getUnassignedNode() (hgraph.NodeID, bool) {
	n := b.H.NumNodes()
	for i := 0; i < n; i++ {
		v := hgraph.NodeID((b.cursor + i) % n)
		if b.H.Block(v) == b.effectiveUnassigned {
			b.cursor = (int(v) + 1) % n
			return v, true
		}
	}

	return 0, false
}

// assignHypernodeToPartition attempts to place v into block p. It is the
// sole choke point enforcing the balance invariant: it succeeds iff v is
// already in p or partWeight(p) + weight(v) <= upperAllowedWeight[p].
func (b *Base) assignHypernodeToPartition(v hgraph.NodeID, p int) bool {
	cur := b.H.Block(v)
	if cur == p {
		return true
	}
	// PartWeight(p) does not yet include v's weight (cur != p, checked
	// above), so this is the correct pre-move feasibility check.
	if b.H.PartWeight(p)+b.H.NodeWeight(v) > b.UpperAllowedWeight[p] {
		return false
	}

	if cur == hgraph.Unassigned {
		b.H.SetBlock(v, p)
	} else {
		b.H.ChangeBlock(v, cur, p)
	}

	return true
}

// assignHypernodeToPartitionWithMinimumPartitionWeight places v into the
// block of minimum current weight, ties broken by lowest block id. Unlike
// assignHypernodeToPartition this never fails — it is the mop-up used to
// place leftover vertices even when every upper bound is tight.
func (b *Base) assignHypernodeToPartitionWithMinimumPartitionWeight(v hgraph.NodeID) {
	best := 0
	bestW := b.H.PartWeight(0)
	for p := 1; p < b.K; p++ {
		if w := b.H.PartWeight(p); w < bestW {
			best, bestW = p, w
		}
	}

	cur := b.H.Block(v)
	if cur == best {
		return
	}
	if cur == hgraph.Unassigned {
		b.H.SetBlock(v, best)
	} else {
		b.H.ChangeBlock(v, cur, best)
	}
}

// recordCutIfBest snapshots the current block assignment if Rollback is
// enabled and its cut improves on the best seen so far this run.
func (b *Base) recordCutIfBest() {
	if !b.Cfg.Rollback {
		return
	}

	cut := b.H.CutWeight()
	if b.haveBest && cut >= b.bestCut {
		return
	}

	blocks := make([]int, b.H.NumNodes())
	for _, v := range b.H.Nodes() {
		blocks[v] = b.H.Block(v)
	}
	b.bestCut = cut
	b.bestBlocks = blocks
	b.haveBest = true
}

// rollbackToBestCut reverts to the best-cut snapshot recorded by
// recordCutIfBest. A no-op if Rollback is disabled or nothing was ever
// recorded.
func (b *Base) rollbackToBestCut() {
	if !b.Cfg.Rollback || !b.haveBest {
		return
	}

	for _, v := range b.H.Nodes() {
		target := b.bestBlocks[v]
		cur := b.H.Block(v)
		if cur == target {
			continue
		}
		if cur == hgraph.Unassigned {
			b.H.SetBlock(v, target)
		} else {
			b.H.ChangeBlock(v, cur, target)
		}
	}
}

// performFMRefinement delegates to the configured Refiner if Refinement
// is enabled; otherwise a no-op.
func (b *Base) performFMRefinement() error {
	if !b.Cfg.Refinement {
		return nil
	}

	return b.Refiner.Refine(b.H)
}

// getTrulyUnassignedNode is like getUnassignedNode but always looks for
// the sentinel hgraph.Unassigned, regardless of the effective unassigned
// block. When Config.UnassignedBlock is a concrete block, every vertex
// starts (and, for vertices a partitioner never touches, stays) in that
// real block and is never the sentinel — so mopUp, which uses this, is
// correctly a no-op for those vertices instead of relocating them away
// from a block they were already, legitimately, placed in.
func (b *Base) getTrulyUnassignedNode() (hgraph.NodeID, bool) {
	n := b.H.NumNodes()
	for i := 0; i < n; i++ {
		v := hgraph.NodeID((b.cursor + i) % n)
		if b.H.Block(v) == hgraph.Unassigned {
			b.cursor = (int(v) + 1) % n
			return v, true
		}
	}

	return 0, false
}

// mopUp assigns every vertex still at the sentinel hgraph.Unassigned via
// minimum-weight placement. Called by every partitioner family at the end
// of its main loop so no vertex exits unassigned; the fallback-exhaustion
// safety net spec.md's error-handling design calls for.
func (b *Base) mopUp() {
	for {
		v, ok := b.getTrulyUnassignedNode()
		if !ok {
			return
		}
		b.assignHypernodeToPartitionWithMinimumPartitionWeight(v)
	}
}
