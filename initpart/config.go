package initpart

import "github.com/hyperpart/hyperpart/hgraph"

// Config holds the knobs every partitioner in this package reads. It is
// built once via NewConfig and never mutated afterwards; RecursiveBisection
// leaves it untouched and passes its balance budget to each sub-instance
// through SetBalanceBounds instead.
type Config struct {
	// Epsilon is the balance tolerance: a block may hold up to
	// (1+Epsilon) times its perfectly-balanced share of total weight.
	Epsilon float64
	// Seed drives every RNG this package uses. It is the only lever for
	// reproducing a run.
	Seed int64
	// UnassignedBlock is hgraph.Unassigned (start with every vertex
	// unassigned) or a block id in [0, k) that every vertex starts in,
	// with the partitioner carving the other blocks out of it.
	UnassignedBlock int
	// NRuns is how many independent attempts GreedyGrowing makes,
	// keeping the best feasible cut. Must be >= 1. BFS and
	// LabelPropagation ignore it and always make one attempt.
	NRuns int
	// Rollback enables Base's best-cut snapshot and rollback. Every
	// partitioner takes that snapshot once, at the end of its run after
	// all vertices are placed, so the rollback restores that same final
	// assignment; intermediate assignments during a run are not recorded.
	Rollback bool
	// Refinement enables a final call into the configured Refiner.
	Refinement bool
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithEpsilon sets the balance tolerance.
func WithEpsilon(epsilon float64) Option {
	return func(c *Config) { c.Epsilon = epsilon }
}

// WithSeed sets the RNG seed.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithUnassignedBlock sets the block every vertex starts in, or
// hgraph.Unassigned for "start with nothing placed".
func WithUnassignedBlock(block int) Option {
	return func(c *Config) { c.UnassignedBlock = block }
}

// WithRollback enables best-cut rollback.
func WithRollback(enabled bool) Option {
	return func(c *Config) { c.Rollback = enabled }
}

// WithRefinement enables the final FM-refinement delegation.
func WithRefinement(enabled bool) Option {
	return func(c *Config) { c.Refinement = enabled }
}

// WithNRuns sets how many independent attempts a partitioner makes.
func WithNRuns(n int) Option {
	return func(c *Config) { c.NRuns = n }
}

// NewConfig builds a Config from its defaults (Epsilon 0.03, no seed bias,
// UnassignedBlock hgraph.Unassigned, NRuns 1, Rollback and Refinement off)
// plus the given options, applied in order.
func NewConfig(opts ...Option) Config {
	c := Config{
		Epsilon:         0.03,
		UnassignedBlock: hgraph.Unassigned,
		NRuns:           1,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.NRuns < 1 {
		c.NRuns = 1
	}

	return c
}
