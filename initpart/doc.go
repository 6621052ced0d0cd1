// Package initpart builds an initial k-way partition of a weighted
// hypergraph: three independent partitioner families (BFS seed-growing,
// Label Propagation, Greedy Hypergraph Growing), each sharing the
// bookkeeping in Base, plus RecursiveBisection, which turns any
// bisection-capable partitioner into a k-way one by repeated 2-way splits.
//
// None of the three partitioners claims to find an optimal cut; they
// produce a feasible starting point for a later local-search refiner. The
// only lever for reproducing a run is the configured RNG seed.
package initpart
