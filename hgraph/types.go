package hgraph

import (
	"errors"
	"sync"
)

// Unassigned is the sentinel block id meaning "not yet placed".
const Unassigned = -1

// Sentinel errors for hypergraph construction and queries.
var (
	// ErrNoNodes indicates a hypergraph was constructed with zero nodes.
	ErrNoNodes = errors.New("hgraph: numNodes must be > 0")

	// ErrBadK indicates k < 2 was requested somewhere k must be at least 2.
	ErrBadK = errors.New("hgraph: k must be >= 2")

	// ErrDegenerateEdge indicates a hyperedge with fewer than 2 pins was supplied.
	ErrDegenerateEdge = errors.New("hgraph: hyperedge must have at least 2 pins")

	// ErrPinOutOfRange indicates a pin referenced a node id outside [0, numNodes).
	ErrPinOutOfRange = errors.New("hgraph: pin references out-of-range node id")

	// ErrNodeOutOfRange indicates a node id outside [0, NumNodes()) was requested.
	ErrNodeOutOfRange = errors.New("hgraph: node id out of range")

	// ErrEdgeOutOfRange indicates an edge id outside [0, NumEdges()) was requested.
	ErrEdgeOutOfRange = errors.New("hgraph: edge id out of range")

	// ErrBlockOutOfRange indicates a block id outside [0, k) was requested.
	ErrBlockOutOfRange = errors.New("hgraph: block id out of range")
)

// NodeID identifies a hypergraph vertex; dense in [0, NumNodes()).
type NodeID int

// EdgeID identifies a hyperedge; dense in [0, NumEdges()).
type EdgeID int

// edge is the internal representation of a hyperedge: a fixed pin list and
// weight, plus the per-block pin counts and connectivity set derived from
// the current block assignment of its pins.
type edge struct {
	pins   []NodeID
	weight int64

	pinCountInBlock []int       // len == k
	blockTouched    map[int]int // keys: blocks holding at least one pin (0-pin blocks pruned); values are not kept in sync
}

// connectivity reports how many distinct blocks currently touch this edge.
func (e *edge) connectivity() int { return len(e.blockTouched) }

// Hypergraph is a fixed-topology, weighted hypergraph whose node block
// assignments mutate over the lifetime of a partitioning run.
//
// mu guards block, partWeight, partSize and every edge's derived counters;
// the pin lists, weights and incidence lists are immutable after
// NewHypergraph and may be read without holding mu.
type Hypergraph struct {
	mu sync.RWMutex

	k int

	nodeWeight []int64 // len == numNodes
	block      []int   // len == numNodes, current block or Unassigned

	incident [][]EdgeID // per-node list of incident edge ids, pin order

	edges []edge // len == numEdges

	partWeight []int64 // len == k
	partSize   []int   // len == k

	totalWeight int64
	cutWeight   int64 // valid only after InitializeNumCutHyperedges / incremental maintenance
}

// NewHypergraph builds a Hypergraph over numNodes nodes (ids 0..numNodes-1)
// and the given hyperedges, each described by its pin list. nodeWeight and
// edgeWeight may be nil, in which case every node/edge gets weight 1. All
// nodes start Unassigned.
//
// Complexity: O(N + sum of edge sizes).
func NewHypergraph(numNodes int, pins [][]NodeID, nodeWeight []int64, edgeWeight []int64, k int) (*Hypergraph, error) {
	if numNodes <= 0 {
		return nil, ErrNoNodes
	}
	if k < 2 {
		return nil, ErrBadK
	}
	if nodeWeight != nil && len(nodeWeight) != numNodes {
		return nil, errors.New("hgraph: nodeWeight length must equal numNodes")
	}
	if edgeWeight != nil && len(edgeWeight) != len(pins) {
		return nil, errors.New("hgraph: edgeWeight length must equal number of edges")
	}

	h := &Hypergraph{
		k:          k,
		nodeWeight: make([]int64, numNodes),
		block:      make([]int, numNodes),
		incident:   make([][]EdgeID, numNodes),
		edges:      make([]edge, len(pins)),
		partWeight: make([]int64, k),
		partSize:   make([]int, k),
	}
	for v := 0; v < numNodes; v++ {
		h.block[v] = Unassigned
		if nodeWeight != nil {
			h.nodeWeight[v] = nodeWeight[v]
		} else {
			h.nodeWeight[v] = 1
		}
		h.totalWeight += h.nodeWeight[v]
	}

	for i, p := range pins {
		if len(p) < 2 {
			return nil, ErrDegenerateEdge
		}
		cp := make([]NodeID, len(p))
		copy(cp, p)
		w := int64(1)
		if edgeWeight != nil {
			w = edgeWeight[i]
		}
		for _, v := range cp {
			if int(v) < 0 || int(v) >= numNodes {
				return nil, ErrPinOutOfRange
			}
		}
		h.edges[i] = edge{
			pins:            cp,
			weight:          w,
			pinCountInBlock: make([]int, k),
			blockTouched:    make(map[int]int),
		}
		for _, v := range cp {
			h.incident[v] = append(h.incident[v], EdgeID(i))
		}
	}

	return h, nil
}
