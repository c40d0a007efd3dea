package mcb

import (
	"sort"

	"github.com/katalvlaran/mcb/forestindex"
	"github.com/katalvlaran/mcb/gf2"
	"github.com/katalvlaran/mcb/graph"
	"github.com/katalvlaran/mcb/parallel"
)

// initSupport builds the initial support array S[i] = {i} for i in [0, csd),
// partitioned over blocked ranges.
func initSupport(csd, workers int) []*gf2.Vector {
	support := make([]*gf2.Vector, csd)
	parallel.For(csd, workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			v, _ := gf2.Singleton(i) // i >= 0 by construction
			support[i] = v
		}
	})

	return support
}

// signedEdgeFlags interprets a support vector as a signed-edge set: per-edge
// flags over graph edge indices, the number of signed edges, and the sole
// signed edge when there is exactly one.
func signedEdgeFlags(g *graph.Graph, fi *forestindex.ForestIndex, s *gf2.Vector) (flags []bool, count, sole int) {
	flags = make([]bool, g.EdgeCount())
	sole = -1
	for _, e := range fi.EdgesOf(s) {
		flags[e] = true
		count++
		sole = e
	}
	if count != 1 {
		sole = -1
	}

	return flags, count, sole
}

// updateSupport restores orthogonality after emitting cycle k: every later
// support vector with odd intersection against the cycle's characteristic
// vector absorbs S[k]. Each S[i] is written only by the range owning i, so
// the blocked partition needs no locks; S[k] itself is only read.
func updateSupport(support []*gf2.Vector, k int, characteristic *gf2.Vector, workers int) {
	rest := len(support) - k - 1
	parallel.For(rest, workers, func(lo, hi int) {
		for off := lo; off < hi; off++ {
			i := k + 1 + off
			if support[i].Dot(characteristic) == 1 {
				support[i].XorAssign(support[k])
			}
		}
	})
}

// denseEdges maps graph edge indices to dense forest indices, sorted
// ascending — the wire encoding of a cycle.
func denseEdges(fi *forestindex.ForestIndex, edges []int) []int {
	out := make([]int, len(edges))
	for i, e := range edges {
		out[i] = fi.Index(e)
	}
	sort.Ints(out)

	return out
}

// graphEdges maps dense forest indices back to graph edge indices, sorted
// ascending.
func graphEdges(fi *forestindex.ForestIndex, dense []int) []int {
	out := make([]int, len(dense))
	for i, d := range dense {
		out[i] = fi.EdgeOf(d)
	}
	sort.Ints(out)

	return out
}
