// Package spanner builds multiplicative spanners: subgraphs whose shortest
// paths stretch by at most a fixed factor. The approximate MCB drivers trade
// exactness for speed by solving on a (2k-1)-spanner and lifting the removed
// edges back as cycles.
package spanner

import (
	"container/heap"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/mcb/graph"
)

// Sentinel errors for spanner construction.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed in.
	ErrNilGraph = errors.New("spanner: graph is nil")

	// ErrBadStretch indicates a stretch parameter k < 1.
	ErrBadStretch = errors.New("spanner: stretch parameter must be >= 1")
)

// Greedy builds a (2k-1)-spanner of g by the classic greedy rule: scan edges
// by ascending weight and admit an edge exactly when the spanner built so far
// cannot connect its endpoints within (2k-1) times the edge's weight.
//
// Returns the spanner (same vertex set, fresh edge indices) and a mapping
// from spanner edge index to original edge index. Self-loops are never
// admitted: they stretch nothing. The spanner always contains a spanning
// forest of g, so connectivity is preserved.
//
// Complexity: O(E log E) for the scan order plus a bounded Dijkstra per edge.
func Greedy(g *graph.Graph, k int) (*graph.Graph, []int, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if k < 1 {
		return nil, nil, fmt.Errorf("%w: %d", ErrBadStretch, k)
	}

	n := g.VertexCount()
	h, err := graph.New(n)
	if err != nil {
		return nil, nil, err
	}

	// Scan order: weight ascending, insertion order on ties.
	order := make([]int, 0, g.EdgeCount())
	for e := 0; e < g.EdgeCount(); e++ {
		if !g.IsLoop(e) {
			order = append(order, e)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return g.Weight(order[i]) < g.Weight(order[j])
	})

	stretch := float64(2*k - 1)
	edgeOf := make([]int, 0, len(order))
	for _, e := range order {
		ed := g.Edge(e)
		bound := stretch * ed.Weight
		if boundedDistance(h, ed.U, ed.V, bound) <= bound {
			continue // spanner already covers this edge within the stretch
		}
		id, err := h.AddEdge(ed.U, ed.V, ed.Weight)
		if err != nil {
			return nil, nil, err
		}
		if id != len(edgeOf) {
			return nil, nil, fmt.Errorf("spanner: edge index drift at %d", id)
		}
		edgeOf = append(edgeOf, e)
	}

	return h, edgeOf, nil
}

// boundedDistance is a Dijkstra from u capped at bound: exploration stops as
// soon as the frontier exceeds the cap or the target is settled. Returns the
// u→v distance, or +Inf if v is farther than bound.
func boundedDistance(g *graph.Graph, u, v int, bound float64) float64 {
	if u == v {
		return 0
	}
	dist := make(map[int]float64, 16)
	done := make(map[int]bool, 16)
	dist[u] = 0

	h := distHeap{{node: u, dist: 0}}
	heap.Init(&h)
	for h.Len() > 0 {
		it := heap.Pop(&h).(distItem)
		if done[it.node] {
			continue
		}
		if it.dist > bound {
			break
		}
		if it.node == v {
			return it.dist
		}
		done[it.node] = true
		for _, e := range g.Incident(it.node) {
			w := g.Opposite(e, it.node)
			nd := it.dist + g.Weight(e)
			if nd > bound {
				continue
			}
			if cur, ok := dist[w]; !ok || nd < cur {
				dist[w] = nd
				heap.Push(&h, distItem{node: w, dist: nd})
			}
		}
	}

	return math.Inf(1)
}

// distItem and distHeap form the bounded Dijkstra's lazy priority queue.
type distItem struct {
	node int
	dist float64
}

type distHeap []distItem

func (h distHeap) Len() int            { return len(h) }
func (h distHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h distHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x interface{}) { *h = append(*h, x.(distItem)) }
func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}
