package initpart

import (
	"testing"

	"github.com/hyperpart/hyperpart/hgraph"
)

func sevenNodeGraph(t *testing.T) *hgraph.Hypergraph {
	t.Helper()

	pins := [][]hgraph.NodeID{
		{0, 2},
		{0, 1, 3, 4},
		{3, 4, 6},
		{2, 5, 6},
	}
	h, err := hgraph.NewHypergraph(7, pins, nil, nil, 2)
	if err != nil {
		t.Fatalf("sevenNodeGraph: %v", err)
	}

	return h
}

func TestPushIncidentHyperedgesIntoQueuePinOrder(t *testing.T) {
	h := sevenNodeGraph(t)

	queue := []hgraph.NodeID{0}
	inQueue := make([]bool, h.NumNodes())
	inQueue[0] = true

	pushIncidentHyperedgesIntoQueue(h, 0, hgraph.Unassigned, &queue, inQueue)

	want := []hgraph.NodeID{0, 2, 1, 3, 4}
	if len(queue) != len(want) {
		t.Fatalf("queue = %v, want %v", queue, want)
	}
	for i, v := range want {
		if queue[i] != v {
			t.Fatalf("queue = %v, want %v", queue, want)
		}
	}
}

func TestPushIncidentHyperedgesIntoQueueSkipsAlreadyAssigned(t *testing.T) {
	h := sevenNodeGraph(t)
	h.SetBlock(2, 0)

	queue := []hgraph.NodeID{0}
	inQueue := make([]bool, h.NumNodes())
	inQueue[0] = true

	pushIncidentHyperedgesIntoQueue(h, 0, hgraph.Unassigned, &queue, inQueue)

	for _, v := range queue {
		if v == 2 {
			t.Fatalf("queue %v should not contain already-assigned node 2", queue)
		}
	}
}
