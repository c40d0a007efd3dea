package mcb

import (
	"math"
	"sort"

	"github.com/katalvlaran/mcb/dijkstra"
	"github.com/katalvlaran/mcb/graph"
	"github.com/katalvlaran/mcb/spanner"
)

// ApproxSVASigned computes an approximate minimum cycle basis: it builds a
// (2k-1)-spanner of g, solves the exact MCB on the spanner with the signed
// strategy, and lifts every edge the spanner dropped back as its own cycle.
// The resulting basis weighs at most (2k-1) times the true minimum.
func ApproxSVASigned(g *graph.Graph, k int, out Sink, opts ...Option) (float64, error) {
	return approxSVA(g, k, out, SVASigned, opts)
}

// ApproxSVATrees is ApproxSVASigned with the Horton strategy as the exact
// core; WithSortedCycles applies to the spanner solve.
func ApproxSVATrees(g *graph.Graph, k int, out Sink, opts ...Option) (float64, error) {
	return approxSVA(g, k, out, SVATrees, opts)
}

// exactDriver is the signature shared by the exact cores.
type exactDriver func(*graph.Graph, Sink, ...Option) (float64, error)

// approxSVA implements the spanner preprocessing shared by both approximate
// drivers.
//
// Every non-spanner edge e = (u,v) contributes the cycle e + shortest
// spanner path u→v; the path weighs at most (2k-1)·w(e) by the stretch
// guarantee, so the cycle weighs at most 2k·w(e). Each such cycle contains its non-spanner edge and nothing else
// outside the spanner, and the spanner's own basis covers the rest, so
// together they form a basis of g's cycle space of dimension
// (|E|-|E_H|) + (|E_H|-|V|+c) = |E|-|V|+c.
func approxSVA(g *graph.Graph, k int, out Sink, exact exactDriver, opts []Option) (float64, error) {
	// 1) Validate inputs (the spanner validates k).
	if g == nil {
		return 0, ErrNilGraph
	}
	if out == nil {
		return 0, ErrNilSink
	}

	// 2) Build the spanner and the membership map back to g.
	h, edgeOf, err := spanner.Greedy(g, k)
	if err != nil {
		return 0, err
	}
	inSpanner := make([]bool, g.EdgeCount())
	for _, e := range edgeOf {
		inSpanner[e] = true
	}

	// 3) Lift the dropped edges. Group them by their U endpoint so one
	// lexicographic Dijkstra per source serves all of them, keeping the
	// lifted paths deterministic.
	total := 0.0
	for u := 0; u < g.VertexCount(); u++ {
		var lifted []int
		needTree := false
		for _, e := range g.Incident(u) {
			if inSpanner[e] || g.Edge(e).U != u {
				continue
			}
			lifted = append(lifted, e)
			if !g.IsLoop(e) {
				needTree = true
			}
		}
		if len(lifted) == 0 {
			continue
		}
		sort.Ints(lifted)

		var dist []float64
		var pred []int
		if needTree {
			if dist, pred, err = dijkstra.Lex(h, u); err != nil {
				return 0, err
			}
		}

		for _, e := range lifted {
			ed := g.Edge(e)
			if ed.U == ed.V {
				// A dropped self-loop lifts to itself.
				out([]int{e}, ed.Weight)
				total += ed.Weight
				continue
			}
			// Walk the spanner path v→u and translate its edges back to g.
			cycle := []int{e}
			v := ed.V
			for pred[v] != -1 {
				he := pred[v]
				cycle = append(cycle, edgeOf[he])
				v = h.Opposite(he, v)
			}
			sort.Ints(cycle)
			weight := ed.Weight + dist[ed.V]
			out(cycle, weight)
			total += weight
		}
	}

	// 4) Exact basis of the spanner, re-emitted in g's edge indices.
	sub, err := exact(h, func(edges []int, weight float64) {
		mapped := make([]int, len(edges))
		for i, he := range edges {
			mapped[i] = edgeOf[he]
		}
		sort.Ints(mapped)
		out(mapped, weight)
	}, opts...)
	if err != nil {
		return 0, err
	}

	total += sub
	if math.IsInf(total, 1) {
		return 0, ErrWeightOverflow
	}

	return total, nil
}
