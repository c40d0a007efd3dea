// Package forestindex fixes a spanning forest of a graph and assigns every
// edge a dense index that separates non-tree edges from tree edges.
//
// Non-tree edges receive indices [0, Dim()) in discovery order; tree edges
// receive indices [Dim(), EdgeCount()). Dim() is the cycle-space dimension
// |E| - |V| + c, where c is the number of connected components. The bijection
// between edges and indices is fixed at construction and queried in O(1) both
// ways.
//
// The forest is grown with a union-find pass over edges in insertion order
// (Kruskal with unit weights): an edge joining two components becomes a tree
// edge, everything else — including every self-loop — is a non-tree edge.
package forestindex

import (
	"github.com/katalvlaran/mcb/gf2"
	"github.com/katalvlaran/mcb/graph"
)

// ForestIndex is the edge↔index bijection induced by a spanning forest.
// It is immutable after New and safe for concurrent reads.
type ForestIndex struct {
	index  []int // graph edge -> dense index
	edgeOf []int // dense index -> graph edge
	csd    int   // cycle-space dimension = number of non-tree edges
	comps  int   // connected components
}

// New builds the index for g. Any spanning forest works; this one grows the
// forest over edges in insertion order so the result is deterministic.
// Complexity: O(E α(V) + V).
func New(g *graph.Graph) *ForestIndex {
	n := g.VertexCount()
	m := g.EdgeCount()

	// Union-find with path compression and union by rank.
	parent := make([]int, n)
	rank := make([]int, n)
	for v := 0; v < n; v++ {
		parent[v] = v
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	// First pass: classify each edge. An edge is a tree edge exactly when it
	// merges two distinct components at the moment it is scanned.
	tree := make([]bool, m)
	treeCount := 0
	for e := 0; e < m; e++ {
		ed := g.Edge(e)
		if ed.U != ed.V && find(ed.U) != find(ed.V) {
			union(ed.U, ed.V)
			tree[e] = true
			treeCount++
		}
	}

	f := &ForestIndex{
		index:  make([]int, m),
		edgeOf: make([]int, m),
		csd:    m - treeCount,
		comps:  n - treeCount,
	}

	// Second pass: non-tree edges take [0, csd) and tree edges [csd, m),
	// both in discovery order.
	next, nextTree := 0, f.csd
	for e := 0; e < m; e++ {
		if tree[e] {
			f.index[e] = nextTree
			f.edgeOf[nextTree] = e
			nextTree++
		} else {
			f.index[e] = next
			f.edgeOf[next] = e
			next++
		}
	}

	return f
}

// Index returns the dense index of graph edge e.
func (f *ForestIndex) Index(e int) int { return f.index[e] }

// EdgeOf returns the graph edge holding dense index i.
func (f *ForestIndex) EdgeOf(i int) int { return f.edgeOf[i] }

// IsTree reports whether graph edge e belongs to the spanning forest.
func (f *ForestIndex) IsTree(e int) bool { return f.index[e] >= f.csd }

// Dim returns the cycle-space dimension |E| - |V| + c.
func (f *ForestIndex) Dim() int { return f.csd }

// Components returns the number of connected components of the indexed graph.
func (f *ForestIndex) Components() int { return f.comps }

// EdgesOf maps a GF(2) vector over dense indices back to graph edge indices,
// in ascending dense-index order.
func (f *ForestIndex) EdgesOf(v *gf2.Vector) []int {
	out := make([]int, 0, v.Size())
	for _, i := range v.Indices() {
		out = append(out, f.edgeOf[i])
	}

	return out
}

// VectorOf returns the characteristic GF(2) vector (over dense indices) of a
// set of graph edges.
func (f *ForestIndex) VectorOf(edges []int) *gf2.Vector {
	ix := make([]int, 0, len(edges))
	for _, e := range edges {
		ix = append(ix, f.index[e])
	}
	// Edge sets carry no duplicates, so FromIndices cannot fail here: indices
	// are dense non-negative by construction.
	v, _ := gf2.FromIndices(ix)

	return v
}
