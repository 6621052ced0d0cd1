package hgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperpart/hyperpart/hgraph"
)

// fixture builds the 7-vertex, 4-edge hypergraph used throughout spec.md's
// seeded scenarios S1-S5, confirmed against kahypar's
// ABFSBisectionInitialPartionerTest fixture: edges {0,2} {0,1,3,4} {3,4,6}
// {2,5,6}, k=2.
func fixture(t *testing.T) *hgraph.Hypergraph {
	t.Helper()
	h, err := hgraph.NewHypergraph(7, [][]hgraph.NodeID{
		{0, 2},
		{0, 1, 3, 4},
		{3, 4, 6},
		{2, 5, 6},
	}, nil, nil, 2)
	require.NoError(t, err)

	return h
}

func TestNewHypergraphRejectsDegenerateEdges(t *testing.T) {
	_, err := hgraph.NewHypergraph(3, [][]hgraph.NodeID{{0}}, nil, nil, 2)
	assert.ErrorIs(t, err, hgraph.ErrDegenerateEdge)
}

func TestNewHypergraphRejectsBadK(t *testing.T) {
	_, err := hgraph.NewHypergraph(3, [][]hgraph.NodeID{{0, 1}}, nil, nil, 1)
	assert.ErrorIs(t, err, hgraph.ErrBadK)
}

func TestNewHypergraphRejectsOutOfRangePin(t *testing.T) {
	_, err := hgraph.NewHypergraph(2, [][]hgraph.NodeID{{0, 5}}, nil, nil, 2)
	assert.ErrorIs(t, err, hgraph.ErrPinOutOfRange)
}

func TestAllNodesStartUnassigned(t *testing.T) {
	h := fixture(t)
	for _, v := range h.Nodes() {
		assert.Equal(t, hgraph.Unassigned, h.Block(v))
	}
}

func TestSetBlockMaintainsPinCountsAndConnectivity(t *testing.T) {
	h := fixture(t)
	for v := hgraph.NodeID(0); v < 3; v++ {
		h.SetBlock(v, 0)
	}
	for v := hgraph.NodeID(3); v < 7; v++ {
		h.SetBlock(v, 1)
	}

	// edge 0 = {0,2}: both in block 0.
	assert.Equal(t, 2, h.PinCountInBlock(0, 0))
	assert.Equal(t, 0, h.PinCountInBlock(0, 1))
	assert.Equal(t, 1, h.Connectivity(0))

	// edge 1 = {0,1,3,4}: 0,1 in block 0; 3,4 in block 1.
	assert.Equal(t, 2, h.PinCountInBlock(1, 0))
	assert.Equal(t, 2, h.PinCountInBlock(1, 1))
	assert.Equal(t, 2, h.Connectivity(1))
	assert.Equal(t, []int{0, 1}, h.ConnectivitySet(1))

	assert.Equal(t, int64(3), h.PartWeight(0))
	assert.Equal(t, int64(4), h.PartWeight(1))
	assert.Equal(t, 3, h.PartSize(0))
	assert.Equal(t, 4, h.PartSize(1))
}

func TestSetBlockOnAssignedNodePanics(t *testing.T) {
	h := fixture(t)
	h.SetBlock(0, 0)
	assert.Panics(t, func() { h.SetBlock(0, 1) })
}

func TestChangeBlockOnWrongSourcePanics(t *testing.T) {
	h := fixture(t)
	h.SetBlock(0, 0)
	assert.Panics(t, func() { h.ChangeBlock(0, 1, 0) })
}

func TestChangeBlockIsExactInverseOfItself(t *testing.T) {
	h := fixture(t)
	for v := hgraph.NodeID(0); v < 3; v++ {
		h.SetBlock(v, 0)
	}
	for v := hgraph.NodeID(3); v < 7; v++ {
		h.SetBlock(v, 1)
	}

	before := snapshotCounters(h)
	h.ChangeBlock(3, 1, 0)
	h.ChangeBlock(3, 0, 1)
	after := snapshotCounters(h)

	assert.Equal(t, before, after)
}

// counterSnapshot captures every derived counter this package exposes, so
// that a move-then-reverse-move round trip can be asserted bit-exact.
type counterSnapshot struct {
	blocks     []int
	partWeight []int64
	partSize   []int
	pinCounts  [][]int
	cut        int64
}

func snapshotCounters(h *hgraph.Hypergraph) counterSnapshot {
	s := counterSnapshot{cut: h.CutWeight()}
	for _, v := range h.Nodes() {
		s.blocks = append(s.blocks, h.Block(v))
	}
	for p := 0; p < h.K(); p++ {
		s.partWeight = append(s.partWeight, h.PartWeight(p))
		s.partSize = append(s.partSize, h.PartSize(p))
	}
	for _, e := range h.Edges() {
		row := make([]int, h.K())
		for p := 0; p < h.K(); p++ {
			row[p] = h.PinCountInBlock(e, p)
		}
		s.pinCounts = append(s.pinCounts, row)
	}

	return s
}

func TestCutWeightTracksConnectivity(t *testing.T) {
	h := fixture(t)
	assert.Equal(t, int64(0), h.CutWeight())

	for v := hgraph.NodeID(0); v < 3; v++ {
		h.SetBlock(v, 0)
	}
	for v := hgraph.NodeID(3); v < 7; v++ {
		h.SetBlock(v, 1)
	}

	// Cut edges: edge1 {0,1,3,4} spans both blocks, edge3 {2,5,6} spans both.
	// edge0 {0,2} and edge2 {3,4,6} are internal to a single block.
	assert.Equal(t, int64(2), h.CutWeight())

	h.InitializeNumCutHyperedges()
	assert.Equal(t, int64(2), h.CutWeight())
}

func TestResetPartitionToUnassigned(t *testing.T) {
	h := fixture(t)
	h.SetBlock(0, 0)
	h.ResetPartition(hgraph.Unassigned)

	for _, v := range h.Nodes() {
		assert.Equal(t, hgraph.Unassigned, h.Block(v))
	}
	assert.Equal(t, int64(0), h.CutWeight())
	assert.Equal(t, int64(0), h.PartWeight(0))
}

func TestResetPartitionToFixedBlock(t *testing.T) {
	h := fixture(t)
	h.ResetPartition(1)

	for _, v := range h.Nodes() {
		assert.Equal(t, 1, h.Block(v))
	}
	assert.Equal(t, h.TotalWeight(), h.PartWeight(1))
	assert.Equal(t, 7, h.PartSize(1))
	assert.Equal(t, 4, h.PinCountInBlock(1, 1))
}

func TestImbalanceIsZeroWhenBalanced(t *testing.T) {
	h, err := hgraph.NewHypergraph(4, [][]hgraph.NodeID{{0, 1}, {2, 3}}, nil, nil, 2)
	require.NoError(t, err)
	h.SetBlock(0, 0)
	h.SetBlock(1, 0)
	h.SetBlock(2, 1)
	h.SetBlock(3, 1)

	assert.InDelta(t, 0.0, h.Imbalance(), 1e-9)
}

func TestInducedSubhypergraphDropsEdgesWithFewerThanTwoSurvivingPins(t *testing.T) {
	h := fixture(t)
	sub, mapping, err := hgraph.InducedSubhypergraph(h, []hgraph.NodeID{0, 1, 2}, 2)
	require.NoError(t, err)

	assert.Equal(t, []hgraph.NodeID{0, 1, 2}, mapping)
	assert.Equal(t, 3, sub.NumNodes())
	// Only edge {0,2} survives fully (sub ids 0,2); edge {0,1,3,4} keeps
	// only 0,1 (still 2 pins, survives); edges 2 and 3 drop below 2 pins.
	assert.Equal(t, 2, sub.NumEdges())
	for _, v := range sub.Nodes() {
		assert.Equal(t, hgraph.Unassigned, sub.Block(v))
	}
}
