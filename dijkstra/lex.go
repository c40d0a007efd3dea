package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/mcb/graph"
)

// Lex computes a shortest-path tree from source with lexicographic
// tie-breaking: among equal-distance paths, the one whose predecessor
// edge-index sequence is lexicographically smallest wins. The tie-break makes
// the tree a deterministic function of the graph alone, which the Horton
// candidate machinery depends on.
//
// Returns:
//
//   - dist: per-vertex distance from source (math.Inf(1) if unreachable).
//   - pred: per-vertex predecessor edge index (-1 for source and unreachable).
//
// Complexity: O((V + E) log V) plus O(path length) per equal-distance tie.
func Lex(g *graph.Graph, source int) ([]float64, []int, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, nil, fmt.Errorf("%w: source %d", ErrVertexRange, source)
	}

	// 2) Prepare flat state: distances, predecessor edges, visited flags.
	dist := make([]float64, n)
	pred := make([]int, n)
	for v := 0; v < n; v++ {
		dist[v] = math.Inf(1)
		pred[v] = -1
	}
	visited := make([]bool, n)
	dist[source] = 0

	// 3) Lazy-decrease-key heap seeded with the source.
	h := make(pq, 0, n)
	heap.Init(&h)
	heap.Push(&h, pqItem{node: source, dist: 0})

	// 4) Main loop.
	for h.Len() > 0 {
		item := heap.Pop(&h).(pqItem)
		u := item.node
		if visited[u] {
			continue // stale entry
		}
		visited[u] = true

		for _, e := range g.Incident(u) {
			v := g.Opposite(e, u)
			if v == u {
				continue // self-loops never improve a path
			}
			nd := dist[u] + g.Weight(e)
			switch {
			case nd < dist[v]:
				dist[v] = nd
				pred[v] = e
				heap.Push(&h, pqItem{node: v, dist: nd})
			case nd == dist[v] && !visited[v]:
				// Equal distance: adopt the new predecessor only if the full
				// edge sequence through u is lexicographically smaller.
				if lexLess(g, pred, u, e, v) {
					pred[v] = e
				}
			}
		}
	}

	return dist, pred, nil
}

// lexLess reports whether the path (source → u via pred chain, then edge e)
// precedes the currently recorded path to v in edge-index lexicographic order.
// Only invoked on equal-distance ties, so the walk-back cost stays marginal.
func lexLess(g *graph.Graph, pred []int, u, e, v int) bool {
	a := append(pathSeq(g, pred, u), e)
	b := pathSeq(g, pred, v)
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

// pathSeq returns the edge-index sequence of the recorded path from the
// source to v, in source-to-v order.
func pathSeq(g *graph.Graph, pred []int, v int) []int {
	var rev []int
	for pred[v] != -1 {
		e := pred[v]
		rev = append(rev, e)
		v = g.Opposite(e, v)
	}
	// Reverse in place: the chain was collected v-to-source.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
