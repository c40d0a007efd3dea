package mcb

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mcb/cluster"
	"github.com/katalvlaran/mcb/dijkstra"
	"github.com/katalvlaran/mcb/forestindex"
	"github.com/katalvlaran/mcb/graph"
	"github.com/katalvlaran/mcb/parallel"
)

// SVASigned computes a minimum cycle basis with the signed extraction
// strategy: each iteration interprets the current support vector as a
// signed-edge set and finds the minimum-weight cycle containing an odd number
// of signed edges via per-vertex bidirectional signed searches.
//
// Emits each basis cycle through out in iteration order and returns the total
// basis weight.
//
// Complexity: O(csd · V · (V + E) log V) worst case; pruning against the
// running minimum makes the practical cost far lower.
func SVASigned(g *graph.Graph, out Sink, opts ...Option) (float64, error) {
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

	// 2) Index the graph and initialize the support array.
	fi := forestindex.New(g)
	csd := fi.Dim()
	support := initSupport(csd, cfg.Workers)

	// 3) Main loop, serial in k.
	total := 0.0
	for k := 0; k < csd; k++ {
		if cfg.Verbose && k%progressInterval == 0 {
			fmt.Printf("mcb: signed sva at cycle %d of %d\n", k, csd)
		}
		if support[k].IsZero() {
			return 0, fmt.Errorf("%w: index %d", ErrZeroSupport, k)
		}

		// 3a) Shortest odd cycle against S[k].
		flags, count, sole := signedEdgeFlags(g, fi, support[k])
		var best cluster.MinOddCycle
		var err error
		if count == 1 {
			best, err = singleSignedCycle(g, flags, sole)
		} else {
			best, err = minOddOverVertices(g, flags, 0, g.VertexCount(), cfg.Workers)
		}
		if err != nil {
			return 0, err
		}
		if !best.Exists {
			return 0, fmt.Errorf("%w: iteration %d", ErrCycleMissing, k)
		}

		// 3b) Emit and accumulate.
		out(best.Edges, best.Weight)
		total += best.Weight
		if math.IsInf(total, 1) {
			return 0, ErrWeightOverflow
		}

		// 3c) Restore orthogonality of the remaining support vectors.
		updateSupport(support, k, fi.VectorOf(best.Edges), cfg.Workers)
	}

	return total, nil
}

// singleSignedCycle handles the |signed| = 1 special case: with sole signed
// edge e = (a,b), the minimum odd cycle is e itself plus the shortest a→b
// path avoiding e. The search hides e and runs with equal endpoint signs, so
// the walk's signed parity is even and adding e makes the cycle odd. A
// self-loop degenerates to the empty walk plus the loop.
func singleSignedCycle(g *graph.Graph, signedFlags []bool, e int) (cluster.MinOddCycle, error) {
	ed := g.Edge(e)
	hidden := make([]bool, g.EdgeCount())
	hidden[e] = true

	edges, w, ok, err := dijkstra.Signed(g, dijkstra.SignedOptions{
		Signed:     signedFlags,
		Hidden:     hidden,
		UseHidden:  true,
		Source:     ed.U,
		SourceSign: true,
		Target:     ed.V,
		TargetSign: true,
	})
	if err != nil {
		return cluster.MinOddCycle{}, err
	}
	if !ok {
		return cluster.MinOddCycle{}, nil
	}

	// Close the path with e itself; the path edge set is sorted and cannot
	// contain the hidden edge, so an ordered insert keeps it sorted.
	cycle := insertSorted(edges, e)

	return cluster.MinOddCycle{Edges: cycle, Weight: w + ed.Weight, Exists: true}, nil
}

// minOddOverVertices reduces the per-vertex closed-walk searches over the
// vertex range [vlo, vhi): for each v the minimum odd closed walk at v, then
// the overall minimum under the cluster.Min order. Each chunk passes its
// running minimum as the pruning bound of later searches.
func minOddOverVertices(g *graph.Graph, signedFlags []bool, vlo, vhi, workers int) (cluster.MinOddCycle, error) {
	type leafResult struct {
		best cluster.MinOddCycle
		err  error
	}

	res := parallel.Reduce(vhi-vlo, workers, leafResult{},
		func(lo, hi int) leafResult {
			local := cluster.MinOddCycle{}
			for off := lo; off < hi; off++ {
				v := vlo + off
				edges, w, ok, err := dijkstra.Signed(g, dijkstra.SignedOptions{
					Signed:     signedFlags,
					Source:     v,
					SourceSign: true,
					Target:     v,
					TargetSign: false,
					BoundValid: local.Exists,
					Bound:      local.Weight,
				})
				if err != nil {
					return leafResult{err: err}
				}
				if !ok {
					continue
				}
				local = cluster.Min(local, cluster.MinOddCycle{Edges: edges, Weight: w, Exists: true})
			}

			return leafResult{best: local}
		},
		func(a, b leafResult) leafResult {
			if a.err != nil {
				return a
			}
			if b.err != nil {
				return b
			}

			return leafResult{best: cluster.Min(a.best, b.best)}
		},
	)

	return res.best, res.err
}

// insertSorted inserts e into the ascending slice edges, returning a fresh
// slice.
func insertSorted(edges []int, e int) []int {
	out := make([]int, 0, len(edges)+1)
	placed := false
	for _, x := range edges {
		if !placed && e < x {
			out = append(out, e)
			placed = true
		}
		out = append(out, x)
	}
	if !placed {
		out = append(out, e)
	}

	return out
}
