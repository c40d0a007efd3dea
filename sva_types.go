// Package mcb computes minimum cycle bases of weighted undirected graphs with
// the support-vector algorithm family.
//
// This file declares the result sink, options, and sentinel errors.
//
// Errors:
//
//	ErrNilGraph       - graph pointer is nil.
//	ErrNilSink        - cycle sink is nil.
//	ErrNilWorld       - distributed driver called without a communicator.
//	ErrZeroSupport    - a support vector vanished before its turn.
//	ErrCycleMissing   - no odd cycle found for a non-zero support vector.
//	ErrWeightOverflow - the running basis weight left the finite range.
package mcb

import (
	"errors"
)

// Sentinel errors returned by the drivers.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to a driver.
	ErrNilGraph = errors.New("mcb: graph is nil")

	// ErrNilSink indicates a nil cycle sink was passed to a driver.
	ErrNilSink = errors.New("mcb: cycle sink is nil")

	// ErrNilWorld indicates a nil communicator passed to SVADistributed.
	ErrNilWorld = errors.New("mcb: communicator is nil")

	// ErrZeroSupport indicates a support vector became zero before its
	// iteration. The support array is a basis of the dual space at all times,
	// so this cannot happen on correct inputs; it aborts the whole call.
	ErrZeroSupport = errors.New("mcb: support vector vanished before its turn")

	// ErrCycleMissing indicates the extraction step found no odd cycle even
	// though the support vector was non-zero. Like ErrZeroSupport this is an
	// internal-invariant failure and aborts the call.
	ErrCycleMissing = errors.New("mcb: no odd cycle for non-zero support vector")

	// ErrWeightOverflow indicates the accumulated basis weight became
	// non-finite.
	ErrWeightOverflow = errors.New("mcb: basis weight overflow")
)

// Sink consumes one basis cycle per call: the cycle's edge indices in
// ascending order and its weight. Drivers emit cycles in iteration order and
// never retain the slice after the call.
type Sink func(edges []int, weight float64)

// Cycle is one emitted basis cycle, as collected by Collect.
type Cycle struct {
	// Edges is the cycle's edge-index set, ascending.
	Edges []int

	// Weight is the cycle's total weight.
	Weight float64
}

// Collect returns a Sink appending every emitted cycle to *dst.
func Collect(dst *[]Cycle) Sink {
	return func(edges []int, weight float64) {
		*dst = append(*dst, Cycle{Edges: edges, Weight: weight})
	}
}

// Options configures a driver run.
//
//	Workers      - concurrency hint for the task-parallel phases (0 = GOMAXPROCS).
//	SortedCycles - trees strategy only: pre-sort the Horton candidate pool and
//	               take the first valid candidate per iteration.
//	Verbose      - print a progress line every 250 iterations.
type Options struct {
	Workers      int
	SortedCycles bool
	Verbose      bool
}

// Option is a functional option for the drivers.
type Option func(*Options)

// WithWorkers bounds the intra-process task parallelism. Zero or negative
// means the library default (GOMAXPROCS).
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithSortedCycles enables the sorted-candidate fast path of the trees
// strategy. Ignored by the signed strategy.
func WithSortedCycles() Option {
	return func(o *Options) { o.SortedCycles = true }
}

// WithVerbose prints a progress line every 250 iterations, the way long MCB
// runs are usually watched.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}

// DefaultOptions returns the default driver configuration.
func DefaultOptions() Options {
	return Options{Workers: 0, SortedCycles: false, Verbose: false}
}

// progressInterval is the Verbose reporting stride.
const progressInterval = 250
