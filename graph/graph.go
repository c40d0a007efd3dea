package graph

import (
	"fmt"
	"math"
)

// AddVertex appends a new isolated vertex and returns its index.
// Complexity: amortized O(1).
func (g *Graph) AddVertex() int {
	g.inc = append(g.inc, nil)

	return len(g.inc) - 1
}

// AddEdge appends an undirected edge u—v with weight w and returns its index.
//
// Self-loops (u == v) and parallel edges are accepted. The weight must be
// finite and non-negative; anything else is rejected with ErrBadWeight so the
// invalid value cannot poison shortest-path arithmetic later.
//
// Complexity: amortized O(1).
func (g *Graph) AddEdge(u, v int, w float64) (int, error) {
	// 1) Validate endpoints against the current vertex range.
	if u < 0 || u >= len(g.inc) || v < 0 || v >= len(g.inc) {
		return 0, fmt.Errorf("%w: (%d,%d) with %d vertices", ErrVertexRange, u, v, len(g.inc))
	}

	// 2) Validate the weight: negative, NaN and ±Inf are all rejected.
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("%w: %g on (%d,%d)", ErrBadWeight, w, u, v)
	}

	// 3) Record the edge and link it into both incidence lists.
	//    A self-loop appears exactly once in its vertex's list.
	id := len(g.edges)
	g.edges = append(g.edges, Edge{U: u, V: v, Weight: w})
	g.inc[u] = append(g.inc[u], id)
	if u != v {
		g.inc[v] = append(g.inc[v], id)
	}

	return id, nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.inc) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edge returns the edge with the given index. The index must be in
// [0, EdgeCount()); out-of-range indices panic like slice indexing.
func (g *Graph) Edge(e int) Edge { return g.edges[e] }

// Weight returns the weight of edge e.
func (g *Graph) Weight(e int) float64 { return g.edges[e].Weight }

// Incident returns the edge indices touching vertex v in insertion order.
// The returned slice is the graph's internal storage and must not be modified.
func (g *Graph) Incident(v int) []int { return g.inc[v] }

// Opposite returns the endpoint of edge e that is not v. For self-loops it
// returns v itself.
func (g *Graph) Opposite(e, v int) int {
	ed := g.edges[e]
	if ed.U == v {
		return ed.V
	}

	return ed.U
}

// IsLoop reports whether edge e is a self-loop.
func (g *Graph) IsLoop(e int) bool { return g.edges[e].U == g.edges[e].V }
