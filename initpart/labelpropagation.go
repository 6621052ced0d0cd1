package initpart

import (
	"context"
	"math"

	"github.com/hyperpart/hyperpart/hgraph"
	"github.com/hyperpart/hyperpart/policy"
)

const (
	lpConnectedNodes = 5
	lpMaxIterations  = 100
	lpMopUpBatch     = 5
)

// LabelPropagation starts every block from a small BFS-grown seed, then
// repeatedly relabels vertices to whichever block gives them the largest
// gain, until a full pass changes nothing.
type LabelPropagation struct {
	base  *Base
	start policy.StartNodeSelector
}

// NewLabelPropagation builds a LabelPropagation partitioner around h.
func NewLabelPropagation(h *hgraph.Hypergraph, cfg Config, start policy.StartNodeSelector, refiner Refiner) *LabelPropagation {
	return &LabelPropagation{base: NewBase(h, cfg, refiner), start: start}
}

// Partition implements Partitioner.
func (lp *LabelPropagation) Partition(ctx context.Context, k int) error {
	return lp.run(ctx, k)
}

// SetBalanceBounds overrides the balance thresholds the next Bisect call
// uses; see BFS.SetBalanceBounds.
func (lp *LabelPropagation) SetBalanceBounds(perfect, upper []int64) {
	lp.base.setBalanceBounds(perfect, upper)
}

// Bisect implements Partitioner.
func (lp *LabelPropagation) Bisect(ctx context.Context) error {
	prevK := lp.base.K
	defer lp.base.configureForK(prevK)

	return lp.run(ctx, 2)
}

func (lp *LabelPropagation) run(ctx context.Context, k int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b := lp.base
	originalUnassigned := b.Cfg.UnassignedBlock
	b.configureForK(k)
	// unassigned_block is forced to -1 for Label Propagation regardless
	// of configuration: every block is grown from scratch.
	b.resetPartitioning(hgraph.Unassigned)

	for i := 0; i < k; i++ {
		seed, ok := lp.start.SelectStartNode(b.H, hgraph.Unassigned, b.Rng)
		if !ok {
			break
		}
		lp.seedAssign(b, seed, i, lpConnectedNodes)
	}

	tmpScores := make([]int64, k)
	validParts := make([]bool, k)
	touched := make([]int, 0, k)
	order := make([]hgraph.NodeID, b.H.NumNodes())
	copy(order, b.H.Nodes())

	for iter := 0; iter < lpMaxIterations; iter++ {
		b.Rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		converged := true
		for _, v := range order {
			bestBlock, _, ok := lp.computeMaxGainMove(b, v, tmpScores, validParts, &touched)
			if !ok {
				continue
			}
			if bestBlock != b.H.Block(v) {
				if b.assignHypernodeToPartition(v, bestBlock) {
					converged = false
				}
			}
		}

		if converged {
			promotedAny := false
			for i := 0; i < lpMopUpBatch; i++ {
				cand, ok := b.getUnassignedNode()
				if !ok {
					break
				}
				b.assignHypernodeToPartitionWithMinimumPartitionWeight(cand)
				promotedAny = true
			}
			if !promotedAny {
				break
			}
		}
	}

	b.mopUp()
	b.effectiveUnassigned = originalUnassigned
	b.recordCutIfBest()
	b.rollbackToBestCut()

	return b.performFMRefinement()
}

// seedAssign grows block target from root via BFS until count vertices
// have been placed: pop a vertex, if it is still unassigned place it and
// push its unassigned incident pins; if the local queue empties before
// count is reached, pull a fresh unassigned vertex from the base and keep
// going. Placement bypasses the balance gate deliberately — the
// partition-state invariant allows temporary imbalance during seed-grow
// phases.
func (lp *LabelPropagation) seedAssign(b *Base, root hgraph.NodeID, target int, count int) {
	queue := []hgraph.NodeID{root}
	assigned := 0

	for assigned < count {
		var v hgraph.NodeID
		if len(queue) > 0 {
			v = queue[0]
			queue = queue[1:]
		} else {
			cand, ok := b.getUnassignedNode()
			if !ok {
				return
			}
			v = cand
		}

		if b.H.Block(v) != hgraph.Unassigned {
			continue
		}

		b.H.SetBlock(v, target)
		assigned++

		for _, e := range b.H.IncidentEdges(v) {
			for _, w := range b.H.Pins(e) {
				if b.H.Block(w) == hgraph.Unassigned {
					queue = append(queue, w)
				}
			}
		}
	}
}

// computeMaxGainMove returns the block maximizing v's gain, subject to
// balance, and whether any valid candidate (including v's current block)
// was found at all. tmpScores and validParts are caller-owned scratch
// space sized b.K, cleared by this call before it returns; touched is a
// reused scratch slice tracking which entries need clearing.
func (lp *LabelPropagation) computeMaxGainMove(
	b *Base,
	v hgraph.NodeID,
	tmpScores []int64,
	validParts []bool,
	touched *[]int,
) (int, int64, bool) {
	s := b.H.Block(v)
	var internalWeight int64

	mark := func(p int) {
		if !validParts[p] {
			validParts[p] = true
			*touched = append(*touched, p)
		}
	}

	for _, e := range b.H.IncidentEdges(v) {
		w := b.H.EdgeWeight(e)
		conn := b.H.Connectivity(e)

		// s = -1 is treated as a fictional pinsInSource of 2 so the
		// single-pin-in-source branch below it never triggers, but this
		// first check still fires whenever e touches exactly one real
		// block (that block then gets the benefit of the doubt as if v
		// were already one of >1 pins there).
		pinsInSource := int64(2)
		if s != hgraph.Unassigned {
			pinsInSource = int64(b.H.PinCountInBlock(e, s))
		}

		if conn == 1 && pinsInSource > 1 {
			t := b.H.ConnectivitySet(e)[0]
			mark(t)
			internalWeight += w
			tmpScores[t] += w
			continue
		}

		for _, t := range b.H.ConnectivitySet(e) {
			mark(t)
			if conn == 2 && s != hgraph.Unassigned && t != s && b.H.PinCountInBlock(e, s) == 1 {
				tmpScores[t] += w
			}
		}
	}

	for _, p := range *touched {
		tmpScores[p] -= internalWeight
	}

	bestBlock := s
	var bestScore int64
	if s == hgraph.Unassigned {
		bestBlock = -1
		bestScore = math.MinInt64
	}
	for p := 0; p < b.K; p++ {
		if !validParts[p] {
			continue
		}
		// Staying in the current block never needs a balance recheck:
		// v's weight is already counted in PartWeight(s).
		if p != s && b.H.PartWeight(p)+b.H.NodeWeight(v) > b.UpperAllowedWeight[p] {
			continue
		}
		if tmpScores[p] > bestScore {
			bestScore = tmpScores[p]
			bestBlock = p
		}
	}

	for _, p := range *touched {
		tmpScores[p] = 0
		validParts[p] = false
	}
	*touched = (*touched)[:0]

	return bestBlock, bestScore, bestBlock != -1
}
