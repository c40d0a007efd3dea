package mcb

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mcb/forestindex"
	"github.com/katalvlaran/mcb/graph"
	"github.com/katalvlaran/mcb/sptree"
)

// SVATrees computes a minimum cycle basis with the Horton extraction
// strategy: a pool of candidate cycles over per-source shortest-path trees is
// built once, and each iteration picks the lightest candidate whose parity
// against the current support vector is odd.
//
// With WithSortedCycles the pool is pre-sorted by candidate weight and each
// iteration stops at the first valid candidate.
//
// Emits each basis cycle through out in iteration order and returns the total
// basis weight.
//
// Complexity: O(V · (V + E) log V) preprocessing plus O(csd · V²) scanning
// worst case.
func SVATrees(g *graph.Graph, out Sink, opts ...Option) (float64, error) {
	// 1) Validate inputs and resolve options.
	if g == nil {
		return 0, ErrNilGraph
	}
	if out == nil {
		return 0, ErrNilSink
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Index the graph, initialize supports, build the Horton machinery.
	fi := forestindex.New(g)
	csd := fi.Dim()
	if csd == 0 {
		return 0, nil // forests carry no cycle space
	}
	support := initSupport(csd, cfg.Workers)

	forestOpts := []sptree.Option{sptree.WithWorkers(cfg.Workers)}
	if cfg.SortedCycles {
		forestOpts = append(forestOpts, sptree.WithSortedCycles())
	}
	forest, err := sptree.NewForest(g, forestOpts...)
	if err != nil {
		return 0, err
	}

	// 3) Main loop, serial in k.
	total := 0.0
	for k := 0; k < csd; k++ {
		if cfg.Verbose && k%progressInterval == 0 {
			fmt.Printf("mcb: trees sva at cycle %d of %d\n", k, csd)
		}
		if support[k].IsZero() {
			return 0, fmt.Errorf("%w: index %d", ErrZeroSupport, k)
		}

		// 3a) Shortest odd cycle from the candidate pool.
		flags, _, _ := signedEdgeFlags(g, fi, support[k])
		edges, weight, ok, err := forest.ShortestOddCycle(flags, cfg.Workers)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, fmt.Errorf("%w: iteration %d", ErrCycleMissing, k)
		}

		// 3b) Emit and accumulate.
		out(edges, weight)
		total += weight
		if math.IsInf(total, 1) {
			return 0, ErrWeightOverflow
		}

		// 3c) Restore orthogonality of the remaining support vectors.
		updateSupport(support, k, fi.VectorOf(edges), cfg.Workers)
	}

	return total, nil
}
