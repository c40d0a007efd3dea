package mcb

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mcb/cluster"
	"github.com/katalvlaran/mcb/forestindex"
	"github.com/katalvlaran/mcb/graph"
)

// SVADistributed computes a minimum cycle basis with the signed strategy
// spread over the ranks of a communicator. All ranks execute the same outer
// loop in lockstep: rank 0 broadcasts the iteration's support vector, every
// rank searches its own vertex stride, the local minima are reduced to rank 0
// under the cluster.Min monoid, and rank 0 emits the winner and updates the
// remaining support vectors.
//
// Only rank 0's sink receives cycles; every rank returns the same total,
// distributed from rank 0 after the loop.
//
// The |signed| = 1 shortcut runs on rank 0 only — the search is a single
// bidirectional Dijkstra, too cheap to be worth distributing — so the other
// ranks skip straight to the next broadcast.
//
// Every rank must call SVADistributed with the same graph and options; a
// structural failure on any rank leaves the world's collectives out of step,
// like an aborted MPI job.
func SVADistributed(g *graph.Graph, out Sink, world cluster.Communicator, opts ...Option) (float64, error) {
	// 1) Validate inputs and resolve options.
	if g == nil {
		return 0, ErrNilGraph
	}
	if out == nil {
		return 0, ErrNilSink
	}
	if world == nil {
		return 0, ErrNilWorld
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	rank := world.Rank()
	root := 0

	// 2) Every rank indexes the graph identically and owns one vertex stride.
	fi := forestindex.New(g)
	csd := fi.Dim()
	support := initSupport(csd, cfg.Workers)

	n := g.VertexCount()
	stride := (n + world.Size() - 1) / world.Size()
	vlo := rank * stride
	vhi := vlo + stride
	if vlo > n {
		vlo = n
	}
	if vhi > n {
		vhi = n
	}

	// 3) Main loop, serial in k and lockstep across ranks.
	total := 0.0
	for k := 0; k < csd; k++ {
		if rank == root && cfg.Verbose && k%progressInterval == 0 {
			fmt.Printf("mcb: distributed sva at cycle %d of %d\n", k, csd)
		}

		// 3a) Share the pivot support vector; non-root support arrays are
		// stale beyond S[k], which is fine — only S[k] is read this turn.
		if err := world.Broadcast(root, support[k]); err != nil {
			return 0, err
		}
		if support[k].IsZero() {
			// Every rank sees the same broadcast vector, so every rank
			// reaches the same verdict and the world aborts consistently.
			return 0, fmt.Errorf("%w: index %d", ErrZeroSupport, k)
		}

		flags, count, sole := signedEdgeFlags(g, fi, support[k])
		var best cluster.MinOddCycle
		if count == 1 {
			if rank == root {
				var err error
				best, err = singleSignedCycle(g, flags, sole)
				if err != nil {
					return 0, err
				}
			}
		} else {
			// 3b) Search the local stride, then elect the global winner.
			local, err := minOddOverVertices(g, flags, vlo, vhi, cfg.Workers)
			if err != nil {
				return 0, err
			}
			wire := cluster.MinOddCycle{
				Edges:  denseEdges(fi, local.Edges),
				Weight: local.Weight,
				Exists: local.Exists,
			}
			global, err := world.ReduceMinOddCycle(root, wire)
			if err != nil {
				return 0, err
			}
			if rank == root {
				best = cluster.MinOddCycle{
					Edges:  graphEdges(fi, global.Edges),
					Weight: global.Weight,
					Exists: global.Exists,
				}
			}
		}

		// 3c) Emit and update on the root only.
		if rank == root {
			if !best.Exists {
				return 0, fmt.Errorf("%w: iteration %d", ErrCycleMissing, k)
			}
			out(best.Edges, best.Weight)
			total += best.Weight
			if math.IsInf(total, 1) {
				return 0, ErrWeightOverflow
			}
			updateSupport(support, k, fi.VectorOf(best.Edges), cfg.Workers)
		}
	}

	// 4) Agree on the total everywhere.
	if err := world.Broadcast(root, &total); err != nil {
		return 0, err
	}

	return total, nil
}
