package sptree

import (
	"github.com/katalvlaran/mcb/dijkstra"
	"github.com/katalvlaran/mcb/graph"
)

// Tree is one shortest-path tree, stored as flat per-vertex arrays instead of
// linked nodes: predecessor edge, distance, parity bit, first-in-path label,
// and a CSR children layout for the pre-order traversals. The parity field is
// the only state mutated after construction — refreshed once per outer
// iteration, read for the rest of it.
type Tree struct {
	id     int
	source int

	dist   []float64 // distance from source, +Inf if unreachable
	pred   []int     // predecessor edge index, -1 for source/unreachable
	parity []bool    // path parity against the current signed-edge set
	first  []int     // second vertex on the source→v path; source for itself; -1 unreachable

	// Children in CSR form: the children of v are kids[kidStart[v]:kidStart[v+1]].
	kidStart []int
	kids     []int
}

// NewTree builds the shortest-path tree with the given id rooted at source,
// using the lexicographic Dijkstra so the tree is a deterministic function of
// the graph. Complexity: O((V + E) log V).
func NewTree(id int, g *graph.Graph, source int) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	dist, pred, err := dijkstra.Lex(g, source)
	if err != nil {
		return nil, err
	}

	t := &Tree{
		id:     id,
		source: source,
		dist:   dist,
		pred:   pred,
		parity: make([]bool, len(dist)),
		first:  make([]int, len(dist)),
	}
	t.buildChildren(g)
	t.computeFirstInPath(g)

	return t, nil
}

// ID returns the tree's index in its forest.
func (t *Tree) ID() int { return t.id }

// Source returns the tree's root vertex.
func (t *Tree) Source() int { return t.source }

// Dist returns the tree distance from the source to v.
func (t *Tree) Dist(v int) float64 { return t.dist[v] }

// Pred returns the predecessor edge of v, or -1.
func (t *Tree) Pred(v int) int { return t.pred[v] }

// First returns the first-in-path label of v: the child of the source on the
// source→v tree path, the source for itself, -1 if v is unreachable.
func (t *Tree) First(v int) int { return t.first[v] }

// buildChildren lays the parent→children adjacency out in CSR form.
func (t *Tree) buildChildren(g *graph.Graph) {
	n := len(t.pred)
	count := make([]int, n)
	for v := 0; v < n; v++ {
		if t.pred[v] != -1 {
			count[g.Opposite(t.pred[v], v)]++
		}
	}
	t.kidStart = make([]int, n+1)
	for v := 0; v < n; v++ {
		t.kidStart[v+1] = t.kidStart[v] + count[v]
	}
	t.kids = make([]int, t.kidStart[n])
	fill := make([]int, n)
	copy(fill, t.kidStart[:n])
	for v := 0; v < n; v++ {
		if t.pred[v] != -1 {
			p := g.Opposite(t.pred[v], v)
			t.kids[fill[p]] = v
			fill[p]++
		}
	}
}

// computeFirstInPath assigns first-in-path labels with an iterative pre-order
// walk from the root.
func (t *Tree) computeFirstInPath(g *graph.Graph) {
	for v := range t.first {
		t.first[v] = -1
	}
	t.first[t.source] = t.source

	type frame struct{ v, label int }
	stack := []frame{}
	for _, c := range t.children(t.source) {
		stack = append(stack, frame{v: c, label: c})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		t.first[f.v] = f.label
		for _, c := range t.children(f.v) {
			stack = append(stack, frame{v: c, label: f.label})
		}
	}
}

// UpdateParities recomputes every vertex's path parity against the given
// signed-edge set (flags indexed by graph edge). Root parity is even; a child
// flips its parent's parity exactly when its predecessor edge is signed.
// Complexity: O(V).
func (t *Tree) UpdateParities(signedFlags []bool) {
	t.parity[t.source] = false

	type frame struct {
		v   int
		par bool
	}
	stack := []frame{{v: t.source, par: false}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		t.parity[f.v] = f.par
		for _, c := range t.children(f.v) {
			p := f.par
			if signedFlags[t.pred[c]] {
				p = !p
			}
			stack = append(stack, frame{v: c, par: p})
		}
	}
}

// children returns v's children slice from the CSR layout.
func (t *Tree) children(v int) []int {
	return t.kids[t.kidStart[v]:t.kidStart[v+1]]
}

// CandidateCycles emits the tree's Horton candidates: every non-tree edge
// whose endpoints are reachable and whose shortest paths leave the source
// through different first hops. Self-loops are emitted only by the tree
// rooted at their vertex, so each appears exactly once per forest.
// Complexity: O(E).
func (t *Tree) CandidateCycles(g *graph.Graph) []Candidate {
	var out []Candidate
	for e := 0; e < g.EdgeCount(); e++ {
		ed := g.Edge(e)
		if ed.U == ed.V {
			if ed.U == t.source {
				out = append(out, Candidate{Tree: t.id, Edge: e, Weight: ed.Weight})
			}
			continue
		}
		// A tree edge is the predecessor of exactly one of its endpoints.
		if t.pred[ed.U] == e || t.pred[ed.V] == e {
			continue
		}
		if t.first[ed.U] == -1 || t.first[ed.V] == -1 {
			continue // endpoint unreachable from this source
		}
		if t.first[ed.U] == t.first[ed.V] {
			// Both shortest paths start with the same hop: the closed walk
			// repeats that hop and cannot be a simple cycle.
			continue
		}
		out = append(out, Candidate{
			Tree:   t.id,
			Edge:   e,
			Weight: ed.Weight + t.dist[ed.U] + t.dist[ed.V],
		})
	}

	return out
}
