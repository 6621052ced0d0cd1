package initpart

import (
	"context"
	"math"

	"github.com/hyperpart/hyperpart/hgraph"
)

// BoundedBisector is the optional capability a Partitioner exposes to let
// RecursiveBisection hand a sub-instance's bisection the share of the
// original epsilon budget its covered block range is entitled to. Every
// partitioner in this package implements it; a Partitioner that doesn't
// simply bisects each sub-instance under its own epsilon instead.
type BoundedBisector interface {
	SetBalanceBounds(perfect, upper []int64)
}

// RecursiveBisection turns any bisection-capable Partitioner into a k-way
// one, by recursively splitting the block range [0, k) in half and
// bisecting the sub-hypergraph covering each half, until every range has
// width 1.
type RecursiveBisection struct {
	h       *hgraph.Hypergraph
	epsilon float64
	factory func(*hgraph.Hypergraph) Partitioner
}

// NewRecursiveBisection builds a RecursiveBisection driver around h.
// factory builds a fresh bisection-capable Partitioner bound to a given
// (sub-)hypergraph; it is called once per internal node of the split tree.
func NewRecursiveBisection(h *hgraph.Hypergraph, epsilon float64, factory func(*hgraph.Hypergraph) Partitioner) *RecursiveBisection {
	return &RecursiveBisection{h: h, epsilon: epsilon, factory: factory}
}

// Partition assigns every vertex of h a block in [0, k) by recursive
// bisection. The resulting imbalance respects the original epsilon this
// driver was built with, not whatever epsilon the underlying Partitioner
// was otherwise configured with.
func (rb *RecursiveBisection) Partition(ctx context.Context, k int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if k < 2 {
		panic("initpart: RecursiveBisection requires k >= 2")
	}

	rb.h.ResetPartition(hgraph.Unassigned)

	leafPerfect := make([]int64, k)
	leafUpper := make([]int64, k)
	share := int64(math.Ceil(float64(rb.h.TotalWeight()) / float64(k)))
	for p := 0; p < k; p++ {
		leafPerfect[p] = share
		leafUpper[p] = int64(math.Ceil(float64(share) * (1 + rb.epsilon)))
	}

	mapping := make([]hgraph.NodeID, rb.h.NumNodes())
	for i := range mapping {
		mapping[i] = hgraph.NodeID(i)
	}

	return rb.split(ctx, rb.h, mapping, 0, k, leafPerfect, leafUpper)
}

// split partitions sub — whose node i maps back to rb.h's node
// mapping[i] — into the block range [lo, hi) of the original hypergraph.
// leafPerfect and leafUpper hold, for each original block in [lo, hi),
// the perfect-balance and upper-allowed weight it was assigned at the
// root; len(leafPerfect) == len(leafUpper) == hi-lo.
func (rb *RecursiveBisection) split(
	ctx context.Context,
	sub *hgraph.Hypergraph,
	mapping []hgraph.NodeID,
	lo, hi int,
	leafPerfect, leafUpper []int64,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if hi-lo == 1 {
		// The root bisection ran on rb.h itself, so its nodes may already
		// hold block 0 or 1 and must be moved rather than set.
		for _, v := range sub.Nodes() {
			orig := mapping[v]
			if cur := rb.h.Block(orig); cur == hgraph.Unassigned {
				rb.h.SetBlock(orig, lo)
			} else {
				rb.h.ChangeBlock(orig, cur, lo)
			}
		}
		return nil
	}

	mid := lo + (hi-lo)/2
	splitAt := mid - lo

	p := rb.factory(sub)
	if bounded, ok := p.(BoundedBisector); ok {
		bounded.SetBalanceBounds(
			[]int64{sumInt64(leafPerfect[:splitAt]), sumInt64(leafPerfect[splitAt:])},
			[]int64{sumInt64(leafUpper[:splitAt]), sumInt64(leafUpper[splitAt:])},
		)
	}
	if err := p.Bisect(ctx); err != nil {
		return err
	}

	var leftKeep, rightKeep []hgraph.NodeID
	for _, v := range sub.Nodes() {
		if sub.Block(v) == 0 {
			leftKeep = append(leftKeep, v)
		} else {
			rightKeep = append(rightKeep, v)
		}
	}

	leftSub, leftMap, err := hgraph.InducedSubhypergraph(sub, leftKeep, 2)
	if err != nil {
		return err
	}
	rightSub, rightMap, err := hgraph.InducedSubhypergraph(sub, rightKeep, 2)
	if err != nil {
		return err
	}

	leftOrig := translate(mapping, leftMap)
	rightOrig := translate(mapping, rightMap)

	if err := rb.split(ctx, leftSub, leftOrig, lo, mid, leafPerfect[:splitAt], leafUpper[:splitAt]); err != nil {
		return err
	}

	return rb.split(ctx, rightSub, rightOrig, mid, hi, leafPerfect[splitAt:], leafUpper[splitAt:])
}

func translate(mapping, subMap []hgraph.NodeID) []hgraph.NodeID {
	out := make([]hgraph.NodeID, len(subMap))
	for i, v := range subMap {
		out[i] = mapping[v]
	}

	return out
}

func sumInt64(xs []int64) int64 {
	var total int64
	for _, x := range xs {
		total += x
	}

	return total
}
