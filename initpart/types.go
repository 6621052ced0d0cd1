package initpart

import (
	"context"

	"github.com/hyperpart/hyperpart/hgraph"
)

// Partitioner is the contract every initial-partitioning strategy
// implements: produce a k-way or 2-way (bisection) partition of the
// hypergraph it was constructed around, mutating it in place.
type Partitioner interface {
	// Partition assigns every vertex a block in [0, k), overwriting any
	// partition already present. ctx is checked once per run attempt
	// (see Config.NRuns), never inside the inner assignment loop.
	Partition(ctx context.Context, k int) error

	// Bisect is equivalent to Partition(ctx, 2).
	Bisect(ctx context.Context) error
}

// Refiner is the abstract contract of the FM local-search refiner this
// package delegates to when Config.Refinement is set. Given a feasible
// partition it must return one whose cut is no worse and which remains
// feasible; the refiner itself is out of scope here.
type Refiner interface {
	Refine(h *hgraph.Hypergraph) error
}

// NoopRefiner performs no refinement. It is the default Refiner so a
// caller that never enables Config.Refinement need not supply one.
type NoopRefiner struct{}

// Refine implements Refiner.
func (NoopRefiner) Refine(*hgraph.Hypergraph) error { return nil }
