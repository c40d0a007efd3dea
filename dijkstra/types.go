// Package dijkstra provides the two shortest-path primitives the MCB drivers
// build on: a lexicographic single-source Dijkstra and a bidirectional signed
// Dijkstra.
//
// This file declares sentinel errors, the signed-search options struct, and
// the shared priority-queue item.
//
// Errors:
//
//	ErrNilGraph       - graph pointer is nil.
//	ErrVertexRange    - a source or target vertex is out of range.
//	ErrBadSignedFlags - a per-edge flag slice has the wrong length.
package dijkstra

import (
	"errors"
)

// Sentinel errors returned by the shortest-path primitives.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexRange indicates a source or target vertex outside the graph.
	ErrVertexRange = errors.New("dijkstra: vertex out of range")

	// ErrBadSignedFlags indicates a per-edge flag slice whose length does not
	// match the graph's edge count.
	ErrBadSignedFlags = errors.New("dijkstra: per-edge flag slice length mismatch")
)

// SignedOptions configures one bidirectional signed search.
//
// The search runs on the parity-doubled graph: each vertex v splits into
// (v, even) and (v, odd), and an edge flips the parity coordinate exactly when
// its Signed flag is set. The walk found runs from (Source, SourceSign) to
// (Target, TargetSign), so its count of signed edges has parity
// SourceSign XOR TargetSign.
//
// Fields:
//
//	Signed     - per-edge sign flags, length EdgeCount (nil means all unsigned).
//	Hidden     - per-edge hidden flags, length EdgeCount; ignored unless UseHidden.
//	UseHidden  - when true, edges with Hidden set are not traversed.
//	Source     - forward root vertex.
//	SourceSign - parity label of the forward root.
//	Target     - forward terminal vertex (may equal Source for closed walks).
//	TargetSign - parity label of the forward terminal.
//	BoundValid - when true, Bound caps the walk weight.
//	Bound      - walks heavier than Bound are pruned; weight == Bound is kept.
type SignedOptions struct {
	Signed     []bool
	Hidden     []bool
	UseHidden  bool
	Source     int
	SourceSign bool
	Target     int
	TargetSign bool
	BoundValid bool
	Bound      float64
}

// pqItem is a lazy-decrease-key heap entry: a node of the (possibly doubled)
// search graph together with the distance it was pushed at. Stale entries are
// skipped on pop.
type pqItem struct {
	node int
	dist float64
}

// pq is a min-heap of pqItem ordered by dist.
type pq []pqItem

func (h pq) Len() int            { return len(h) }
func (h pq) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h pq) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *pq) Push(x interface{}) { *h = append(*h, x.(pqItem)) }
func (h *pq) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
