package sptree

import (
	"math"
	"sort"

	"github.com/katalvlaran/mcb/graph"
)

// BuildCycle reconstructs candidate c against the current signed-edge set.
//
// The candidate survives only if its closed walk is odd — parity(x) XOR
// parity(y) XOR signed(e) — and reconstructs to a simple cycle: walking the
// two tree paths, any repeated edge means the paths overlap and the walk
// degenerates, so the candidate is rejected. The accumulated weight is
// checked against the limit after every edge; a weight equal to the limit is
// kept, strictly above it is rejected, which keeps tie-breaking identical
// across all extraction modes. A non-finite accumulation rejects the
// candidate as well.
//
// Returns the cycle's edge set sorted ascending, its weight, and validity.
// Complexity: O(cycle length · log).
func BuildCycle(g *graph.Graph, trees []*Tree, c Candidate, signedFlags []bool, limitValid bool, limit float64) ([]int, float64, bool) {
	t := trees[c.Tree]
	e := c.Edge
	ed := g.Edge(e)

	// Parity filter: the walk must contain an odd number of signed edges.
	odd := signedFlags[e]
	if ed.U != ed.V {
		odd = t.parity[ed.U] != t.parity[ed.V] != signedFlags[e]
	}
	if !odd {
		return nil, 0, false
	}

	weight := ed.Weight
	if limitValid && weight > limit {
		return nil, 0, false
	}

	// Degenerate 1-cycle: a self-loop is its own reconstruction.
	if ed.U == ed.V {
		return []int{e}, weight, true
	}

	seen := map[int]struct{}{e: {}}

	// Walk both tree paths back to the source, collecting edges. A duplicate
	// insertion means the two paths share an edge: not a simple cycle here.
	for _, start := range [2]int{ed.U, ed.V} {
		v := start
		for t.pred[v] != -1 {
			a := t.pred[v]
			if _, dup := seen[a]; dup {
				return nil, 0, false
			}
			seen[a] = struct{}{}
			weight += g.Weight(a)
			if math.IsInf(weight, 1) || math.IsNaN(weight) {
				return nil, 0, false
			}
			if limitValid && weight > limit {
				return nil, 0, false
			}
			v = g.Opposite(a, v)
		}
	}

	edges := make([]int, 0, len(seen))
	for a := range seen {
		edges = append(edges, a)
	}
	sort.Ints(edges)

	return edges, weight, true
}
