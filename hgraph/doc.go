// Package hgraph implements the weighted hypergraph used as the ground
// data structure for initial partitioning.
//
// A Hypergraph holds a fixed set of nodes and hyperedges (nets); node and
// edge identity never changes after construction, only each node's current
// block assignment does. Blocks are integers in [0, k); the sentinel value
// Unassigned (-1) means "not yet placed".
//
// Hypergraph maintains, incrementally as blocks change, the two counters the
// rest of this module depends on:
//
//   - PinCountInBlock(e, p): how many pins of edge e currently sit in block p.
//   - Connectivity(e) / ConnectivitySet(e): how many distinct blocks (and
//     which ones) touch edge e.
//
// These are updated inside SetBlock/ChangeBlock, and rebuilt from scratch
// by ResetPartition; nothing else is allowed to mutate a node's block, so
// the counters can never drift out of sync with the assignment they
// describe.
//
// Hypergraph is safe for concurrent readers, and safe for a single mutating
// caller at a time — the same contract lvlath's core.Graph documents, scaled
// down to the single-threaded usage this module's partitioners make of it.
package hgraph
