package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hyperpart/hyperpart/hgraph"
)

// readHGR parses a hypergraph in the hMETIS .hgr format: a first line
// "numEdges numNodes [fmt]", followed by one line per edge listing its
// 1-indexed pins (and, when fmt requests it, a leading edge weight), and
// finally, when fmt requests node weights, one weight per node.
//
//	fmt bit 0 (value 1): edges carry a weight.
//	fmt bit 1 (value 10): nodes carry a weight.
func readHGR(r io.Reader, k int) (*hgraph.Hypergraph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	header, err := nextNonCommentLine(sc)
	if err != nil {
		return nil, fmt.Errorf("hgr: reading header: %w", err)
	}
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return nil, fmt.Errorf("hgr: malformed header %q", header)
	}
	numEdges, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("hgr: bad edge count %q: %w", fields[0], err)
	}
	numNodes, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("hgr: bad node count %q: %w", fields[1], err)
	}
	hasEdgeWeights, hasNodeWeights := false, false
	if len(fields) >= 3 {
		switch fields[2] {
		case "1":
			hasEdgeWeights = true
		case "10":
			hasNodeWeights = true
		case "11":
			hasEdgeWeights, hasNodeWeights = true, true
		}
	}

	pins := make([][]hgraph.NodeID, 0, numEdges)
	var edgeWeight []int64
	if hasEdgeWeights {
		edgeWeight = make([]int64, 0, numEdges)
	}

	for i := 0; i < numEdges; i++ {
		line, err := nextNonCommentLine(sc)
		if err != nil {
			return nil, fmt.Errorf("hgr: reading edge %d: %w", i, err)
		}
		parts := strings.Fields(line)
		start := 0
		if hasEdgeWeights {
			if len(parts) == 0 {
				return nil, fmt.Errorf("hgr: edge %d missing weight", i)
			}
			w, err := strconv.ParseInt(parts[0], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("hgr: edge %d bad weight %q: %w", i, parts[0], err)
			}
			edgeWeight = append(edgeWeight, w)
			start = 1
		}

		edgePins := make([]hgraph.NodeID, 0, len(parts)-start)
		for _, tok := range parts[start:] {
			id, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("hgr: edge %d bad pin %q: %w", i, tok, err)
			}
			edgePins = append(edgePins, hgraph.NodeID(id-1))
		}
		pins = append(pins, edgePins)
	}

	var nodeWeight []int64
	if hasNodeWeights {
		nodeWeight = make([]int64, numNodes)
		for v := 0; v < numNodes; v++ {
			line, err := nextNonCommentLine(sc)
			if err != nil {
				return nil, fmt.Errorf("hgr: reading node weight %d: %w", v, err)
			}
			w, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("hgr: node %d bad weight %q: %w", v, line, err)
			}
			nodeWeight[v] = w
		}
	}

	return hgraph.NewHypergraph(numNodes, pins, nodeWeight, edgeWeight, k)
}

func nextNonCommentLine(sc *bufio.Scanner) (string, error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		return line, nil
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
