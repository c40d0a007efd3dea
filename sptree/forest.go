package sptree

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mcb/cluster"
	"github.com/katalvlaran/mcb/forestindex"
	"github.com/katalvlaran/mcb/graph"
	"github.com/katalvlaran/mcb/parallel"
)

// Forest is the full Horton machinery: one shortest-path tree per vertex and
// the pooled candidate cycles of all of them. Trees are read-only after
// construction except for their parity labels, which ShortestOddCycle
// refreshes in a distinct phase before scanning candidates.
type Forest struct {
	g      *graph.Graph
	trees  []*Tree
	cycles []Candidate
	sorted bool
}

// NewForest builds a shortest-path tree rooted at every vertex (in parallel,
// bounded by the Workers hint) and pools their candidate cycles. With Sorted,
// the pool is ordered by candidate weight ascending, ties keeping their
// discovery order. Complexity: O(V · (V + E) log V) construction.
func NewForest(g *graph.Graph, opts ...Option) (*Forest, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.VertexCount()
	f := &Forest{g: g, trees: make([]*Tree, n), sorted: cfg.Sorted}

	// One tree per source vertex; builds are independent, so fan out with a
	// bounded errgroup and keep the result slice indexed by source.
	var eg errgroup.Group
	eg.SetLimit(parallel.Workers(cfg.Workers, n))
	for v := 0; v < n; v++ {
		v := v
		eg.Go(func() error {
			t, err := NewTree(v, g, v)
			if err != nil {
				return fmt.Errorf("sptree: tree %d: %w", v, err)
			}
			f.trees[v] = t

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Pool candidates tree by tree: deterministic order before any sort.
	for _, t := range f.trees {
		f.cycles = append(f.cycles, t.CandidateCycles(g)...)
	}
	if f.sorted {
		sort.SliceStable(f.cycles, func(i, j int) bool {
			return f.cycles[i].Weight < f.cycles[j].Weight
		})
	}

	return f, nil
}

// Trees returns the forest's trees, indexed by source vertex.
func (f *Forest) Trees() []*Tree { return f.trees }

// Candidates returns the pooled candidate cycles.
func (f *Forest) Candidates() []Candidate { return f.cycles }

// SerializableCandidates returns the pool in wire form: each candidate as its
// tree's source vertex plus the dense forest index of its non-tree edge. A
// peer holding the same graph and forest index can rebuild the pool exactly.
func (f *Forest) SerializableCandidates(fi *forestindex.ForestIndex) []cluster.CandidateCycle {
	out := make([]cluster.CandidateCycle, len(f.cycles))
	for i, c := range f.cycles {
		out[i] = cluster.CandidateCycle{
			Source: f.trees[c.Tree].Source(),
			Edge:   fi.Index(c.Edge),
		}
	}

	return out
}

// ShortestOddCycle returns the minimum-weight simple cycle whose edge set has
// odd intersection parity with the signed-edge set, drawn from the candidate
// pool. Returns the cycle's sorted edge indices, its weight, and whether any
// odd candidate survived reconstruction.
//
// Phase one refreshes every tree's parities against signedFlags in parallel.
// Phase two scans the pool: with a sorted pool the first valid candidate is
// the answer (its pooled weight is a lower bound on every later candidate's
// true weight); otherwise a parallel reduce elects the winner under the
// cluster.Min order, each chunk pruning reconstructions against its running
// minimum.
func (f *Forest) ShortestOddCycle(signedFlags []bool, workers int) ([]int, float64, bool, error) {
	if len(signedFlags) != f.g.EdgeCount() {
		return nil, 0, false, fmt.Errorf("%w: got %d want %d", ErrBadFlags, len(signedFlags), f.g.EdgeCount())
	}

	// Phase 1: parity refresh, partitioned over trees.
	parallel.For(len(f.trees), workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			f.trees[i].UpdateParities(signedFlags)
		}
	})

	// Phase 2a: sorted fast path — first valid candidate wins.
	if f.sorted {
		for _, c := range f.cycles {
			if edges, w, ok := BuildCycle(f.g, f.trees, c, signedFlags, false, 0); ok {
				return edges, w, true, nil
			}
		}

		return nil, 0, false, nil
	}

	// Phase 2b: full scan with pruning, reduced under the Min order.
	best := parallel.Reduce(len(f.cycles), workers, cluster.MinOddCycle{},
		func(lo, hi int) cluster.MinOddCycle {
			local := cluster.MinOddCycle{}
			for i := lo; i < hi; i++ {
				edges, w, ok := BuildCycle(f.g, f.trees, f.cycles[i], signedFlags, local.Exists, local.Weight)
				if !ok {
					continue
				}
				local = cluster.Min(local, cluster.MinOddCycle{Edges: edges, Weight: w, Exists: true})
			}

			return local
		},
		cluster.Min,
	)

	return best.Edges, best.Weight, best.Exists, nil
}
