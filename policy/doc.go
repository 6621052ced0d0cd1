// Package policy implements the pluggable, stateless strategies the
// initpart partitioners are parameterized by: which vertices to start
// growing from, how to score a candidate move, and which per-block queue
// to service next.
//
// Every policy reads the hgraph.Hypergraph and whatever caller-owned scratch
// space it is handed (a RNG, a bit-set, a priority-queue view); none of
// them retain state of their own about the hypergraph between calls.
// RandomStartNode, BFSFarthestStartNode, GlobalSelector and the gain
// policies hold no state at all and can be shared across partitioner
// instances and goroutines; FixedSequenceStartNode, RoundRobinSelector and
// SequentialSelector advance a cursor of their own on every call and cannot.
package policy
