// Package sptree implements the Horton side of the MCB core: per-source
// shortest-path trees with parity labels, the candidate-cycle pool, and the
// parity-filtered shortest-odd-cycle lookup over it.
//
// This file declares the Candidate type, options, and sentinel errors.
//
// Errors:
//
//	ErrNilGraph - graph pointer is nil.
//	ErrBadFlags - a per-edge flag slice has the wrong length.
package sptree

import (
	"errors"
)

// Sentinel errors for shortest-path-tree construction and lookup.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed in.
	ErrNilGraph = errors.New("sptree: graph is nil")

	// ErrBadFlags indicates a per-edge flag slice whose length does not match
	// the graph's edge count.
	ErrBadFlags = errors.New("sptree: per-edge flag slice length mismatch")
)

// Candidate is one Horton candidate cycle: a non-tree edge of tree Tree,
// closing the two tree paths from its endpoints to the tree's source. Weight
// is w(e) + d(s, x) + d(s, y) — a lower bound on (and for simple candidates
// exactly) the reconstructed cycle weight.
type Candidate struct {
	// Tree is the index of the shortest-path tree the candidate closes over.
	Tree int

	// Edge is the candidate's non-tree edge (graph edge index).
	Edge int

	// Weight is w(Edge) plus both tree distances.
	Weight float64
}

// Options configures Forest construction.
//
//	Workers - concurrency hint for parallel tree construction (0 = GOMAXPROCS).
//	Sorted  - pre-sort the candidate pool by weight ascending, enabling the
//	          first-valid-wins fast path in ShortestOddCycle.
type Options struct {
	Workers int
	Sorted  bool
}

// Option is a functional option for NewForest.
type Option func(*Options)

// WithWorkers sets the concurrency hint for tree construction.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithSortedCycles pre-sorts the candidate pool by weight ascending.
func WithSortedCycles() Option {
	return func(o *Options) { o.Sorted = true }
}

// DefaultOptions returns the default Forest configuration: library-default
// concurrency, unsorted candidate pool.
func DefaultOptions() Options {
	return Options{Workers: 0, Sorted: false}
}
