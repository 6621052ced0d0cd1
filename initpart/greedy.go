package initpart

import (
	"context"
	"math/rand"

	"github.com/hyperpart/hyperpart/hgraph"
	"github.com/hyperpart/hyperpart/policy"
)

// GreedyGrowing maintains k priority queues keyed by gain, one per block,
// and repeatedly assigns the best-gain vertex from whichever queue the
// queue-selection policy picks next.
type GreedyGrowing struct {
	base       *Base
	start      policy.StartNodeSelector
	gain       policy.GainPolicy
	selFactory func() policy.QueueSelector
}

// NewGreedyGrowing builds a GreedyGrowing partitioner around h. selFactory
// builds a fresh QueueSelector for every run — needed because
// RoundRobinSelector and SequentialSelector carry their own cursor state.
func NewGreedyGrowing(
	h *hgraph.Hypergraph,
	cfg Config,
	start policy.StartNodeSelector,
	gain policy.GainPolicy,
	selFactory func() policy.QueueSelector,
	refiner Refiner,
) *GreedyGrowing {
	return &GreedyGrowing{
		base:       NewBase(h, cfg, refiner),
		start:      start,
		gain:       gain,
		selFactory: selFactory,
	}
}

// Partition implements Partitioner.
func (g *GreedyGrowing) Partition(ctx context.Context, k int) error {
	return g.run(ctx, k)
}

// SetBalanceBounds overrides the balance thresholds the next Bisect call
// uses; see BFS.SetBalanceBounds.
func (g *GreedyGrowing) SetBalanceBounds(perfect, upper []int64) {
	g.base.setBalanceBounds(perfect, upper)
}

// Bisect implements Partitioner.
func (g *GreedyGrowing) Bisect(ctx context.Context) error {
	prevK := g.base.K
	defer g.base.configureForK(prevK)

	return g.run(ctx, 2)
}

func (g *GreedyGrowing) run(ctx context.Context, k int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b := g.base
	nruns := b.Cfg.NRuns
	if nruns < 1 {
		nruns = 1
	}

	// A balance-bounds override set via SetBalanceBounds must apply to
	// every one of the nruns attempts below, not just the first — but
	// configureForK consumes it as a one-shot, since it is also used
	// (without a loop) by BFS and LabelPropagation. Capture it once here
	// and reinstate it before each attempt.
	savedPerfect, savedUpper := b.overridePerfect, b.overrideUpper
	b.overridePerfect, b.overrideUpper = nil, nil

	var bestCut int64
	var bestBlocks []int
	haveBest := false
	baseSeed := b.Cfg.Seed

	for run := 0; run < nruns; run++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if savedUpper != nil {
			b.setBalanceBounds(savedPerfect, savedUpper)
		}
		b.Rng = rand.New(rand.NewSource(baseSeed + int64(run)))
		g.runOnce(k)

		feasible := true
		for p := 0; p < k; p++ {
			if b.H.PartWeight(p) > b.UpperAllowedWeight[p] {
				feasible = false
				break
			}
		}
		cut := b.H.CutWeight()
		if feasible && (!haveBest || cut < bestCut) {
			bestCut = cut
			haveBest = true
			blocks := make([]int, b.H.NumNodes())
			for _, v := range b.H.Nodes() {
				blocks[v] = b.H.Block(v)
			}
			bestBlocks = blocks
		}
	}

	if haveBest {
		applyBlocks(b.H, bestBlocks)
	}

	b.recordCutIfBest()
	b.rollbackToBestCut()

	return b.performFMRefinement()
}

func (g *GreedyGrowing) runOnce(k int) {
	b := g.base
	b.configureForK(k)
	b.resetPartitioning(b.Cfg.UnassignedBlock)

	pq := NewGreedyQueue(k)
	enabled := make([]bool, k)
	for p := 0; p < k; p++ {
		enabled[p] = true
	}

	for p := 0; p < k; p++ {
		seed, ok := g.start.SelectStartNode(b.H, b.effectiveUnassigned, b.Rng)
		if !ok || !b.assignHypernodeToPartition(seed, p) {
			enabled[p] = false
			continue
		}
		g.discoverNeighbors(b, pq, seed, enabled)
	}
	if b.Cfg.UnassignedBlock >= 0 && b.Cfg.UnassignedBlock < k {
		enabled[b.Cfg.UnassignedBlock] = false
	}

	visited := make([]bool, b.H.NumNodes())
	sel := g.selFactory()
	bq := &enabledBlockQueues{pq: pq, enabled: enabled}

	for {
		p, ok := sel.Next(bq)
		if !ok {
			break
		}

		v, _, ok := pq.Pop(p)
		if !ok {
			enabled[p] = false
			continue
		}
		pq.RemoveFromAll(v)

		if b.assignHypernodeToPartition(v, p) {
			for i := range visited {
				visited[i] = false
			}
			g.gain.DeltaGainUpdate(b.H, pq, v, visited)
			g.discoverNeighbors(b, pq, v, enabled)
		} else {
			enabled[p] = false
		}
	}

	b.mopUp()
}

// discoverNeighbors inserts every pin w, of every edge incident to v,
// that is still unassigned and holds no entry in any block's queue yet,
// into every currently-enabled block's queue with its gain toward that
// block.
func (g *GreedyGrowing) discoverNeighbors(b *Base, pq *GreedyQueue, v hgraph.NodeID, enabled []bool) {
	for _, e := range b.H.IncidentEdges(v) {
		for _, w := range b.H.Pins(e) {
			if b.H.Block(w) != b.effectiveUnassigned {
				continue
			}
			if pq.InAnyQueue(w) {
				continue
			}
			for p := 0; p < b.K; p++ {
				if !enabled[p] {
					continue
				}
				pq.Insert(p, w, g.gain.Gain(b.H, w, p))
			}
		}
	}
}

func applyBlocks(h *hgraph.Hypergraph, blocks []int) {
	for _, v := range h.Nodes() {
		target := blocks[v]
		cur := h.Block(v)
		if cur == target {
			continue
		}
		if cur == hgraph.Unassigned {
			h.SetBlock(v, target)
		} else {
			h.ChangeBlock(v, cur, target)
		}
	}
}

// enabledBlockQueues adapts a GreedyQueue plus a per-block enabled flag
// into policy.BlockQueues: a disabled block reads as empty regardless of
// what its queue still holds.
type enabledBlockQueues struct {
	pq      *GreedyQueue
	enabled []bool
}

func (e *enabledBlockQueues) NumBlocks() int { return e.pq.NumBlocks() }

func (e *enabledBlockQueues) Empty(p int) bool {
	return !e.enabled[p] || e.pq.Empty(p)
}

func (e *enabledBlockQueues) TopGain(p int) (int64, bool) {
	if !e.enabled[p] {
		return 0, false
	}

	return e.pq.TopGain(p)
}
