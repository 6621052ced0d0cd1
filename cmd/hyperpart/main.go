// Command hyperpart computes an initial hypergraph partition from a .hgr
// file and prints (or writes) the resulting block assignment. It is a thin
// demo driver over the initpart package, not part of its public contract.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/hyperpart/hyperpart/hgraph"
	"github.com/hyperpart/hyperpart/initpart"
	"github.com/hyperpart/hyperpart/policy"
)

func main() {
	graphFile := flag.String("graph", "", "Input hypergraph file in hMETIS .hgr format")
	k := flag.Int("k", 2, "Number of blocks")
	method := flag.String("method", "bfs", "Partitioner: bfs, lp (label propagation), or greedy")
	recursive := flag.Bool("recursive", false, "Reach k blocks via recursive bisection instead of one direct k-way call")
	epsilon := flag.Float64("epsilon", 0.03, "Balance tolerance")
	seed := flag.Int64("seed", 0, "RNG seed")
	nruns := flag.Int("nruns", 1, "Independent attempts to keep the best feasible cut (greedy only)")
	rollback := flag.Bool("rollback", false, "Enable the best-cut snapshot and rollback (the snapshot is taken only at the end of a run)")
	refine := flag.Bool("refine", false, "Run FM refinement after initial partitioning")
	startPolicy := flag.String("start", "random", "Start-node policy: random or bfsfar")
	gainPolicy := flag.String("gain", "fm", "Gain policy for greedy: fm, maxpin, or maxnet")
	queuePolicy := flag.String("queue", "roundrobin", "Queue-selection policy for greedy: roundrobin, global, or sequential")
	output := flag.String("output", "", "Write the block assignment here (one block id per line); default stdout")
	verbose := flag.Bool("verbose", false, "Print hypergraph size, cut and balance statistics")

	flag.Parse()

	if *graphFile == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -graph <file.hgr> -k <n> [options]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	file, err := os.Open(*graphFile)
	if err != nil {
		log.Fatalf("hyperpart: opening graph file: %v", err)
	}
	defer file.Close()

	h, err := readHGR(file, *k)
	if err != nil {
		log.Fatalf("hyperpart: %v", err)
	}
	if *verbose {
		fmt.Printf("hypergraph loaded: %d nodes, %d edges, total weight %d\n", h.NumNodes(), h.NumEdges(), h.TotalWeight())
	}

	cfg := initpart.NewConfig(
		initpart.WithEpsilon(*epsilon),
		initpart.WithSeed(*seed),
		initpart.WithNRuns(*nruns),
		initpart.WithRollback(*rollback),
		initpart.WithRefinement(*refine),
	)

	start, err := resolveStartPolicy(*startPolicy)
	if err != nil {
		log.Fatalf("hyperpart: %v", err)
	}
	gain, err := resolveGainPolicy(*gainPolicy)
	if err != nil {
		log.Fatalf("hyperpart: %v", err)
	}
	selFactory, err := resolveQueuePolicy(*queuePolicy)
	if err != nil {
		log.Fatalf("hyperpart: %v", err)
	}

	newPartitioner := func(sub *hgraph.Hypergraph) initpart.Partitioner {
		switch *method {
		case "bfs":
			return initpart.NewBFS(sub, cfg, start, nil)
		case "lp":
			return initpart.NewLabelPropagation(sub, cfg, start, nil)
		case "greedy":
			return initpart.NewGreedyGrowing(sub, cfg, start, gain, selFactory, nil)
		default:
			log.Fatalf("hyperpart: unknown -method %q", *method)
			return nil
		}
	}

	ctx := context.Background()
	if *recursive {
		rb := initpart.NewRecursiveBisection(h, *epsilon, newPartitioner)
		if err := rb.Partition(ctx, *k); err != nil {
			log.Fatalf("hyperpart: %v", err)
		}
	} else {
		if err := newPartitioner(h).Partition(ctx, *k); err != nil {
			log.Fatalf("hyperpart: %v", err)
		}
	}

	if *verbose {
		fmt.Printf("cut weight: %d, imbalance: %.4f\n", h.CutWeight(), h.Imbalance())
		for p := 0; p < *k; p++ {
			fmt.Printf("block %d: %d nodes, weight %d\n", p, h.PartSize(p), h.PartWeight(p))
		}
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("hyperpart: creating output file: %v", err)
		}
		defer f.Close()
		out = f
	}
	for _, v := range h.Nodes() {
		fmt.Fprintln(out, strconv.Itoa(h.Block(v)))
	}
}

func resolveStartPolicy(name string) (policy.StartNodeSelector, error) {
	switch name {
	case "random":
		return policy.RandomStartNode{}, nil
	case "bfsfar":
		return policy.BFSFarthestStartNode{}, nil
	default:
		return nil, fmt.Errorf("unknown -start %q", name)
	}
}

func resolveGainPolicy(name string) (policy.GainPolicy, error) {
	switch name {
	case "fm":
		return policy.FMGain{}, nil
	case "maxpin":
		return policy.MaxPinGain{}, nil
	case "maxnet":
		return policy.MaxNetGain{}, nil
	default:
		return nil, fmt.Errorf("unknown -gain %q", name)
	}
}

func resolveQueuePolicy(name string) (func() policy.QueueSelector, error) {
	switch name {
	case "roundrobin":
		return func() policy.QueueSelector { return &policy.RoundRobinSelector{} }, nil
	case "global":
		return func() policy.QueueSelector { return policy.GlobalSelector{} }, nil
	case "sequential":
		return func() policy.QueueSelector { return &policy.SequentialSelector{} }, nil
	default:
		return nil, fmt.Errorf("unknown -queue %q", name)
	}
}
