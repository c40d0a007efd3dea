// Package cluster provides the distributed layer of the MCB drivers: the
// wire forms of candidate cycles and minimum-odd-cycle results, the
// associative minimum reducer over them, and a Communicator abstraction with
// an in-process implementation.
//
// This file declares the wire types, the reducer, and sentinel errors.
//
// Errors:
//
//	ErrBadWorldSize - non-positive world size passed to NewLocalWorld.
//	ErrBadRoot      - collective root outside [0, Size()).
//	ErrClosed       - collective called on a torn-down world; the in-process
//	                  world has no shutdown and never returns it.
package cluster

import (
	"errors"
)

// Sentinel errors for the cluster layer.
var (
	// ErrBadWorldSize indicates a non-positive size passed to NewLocalWorld.
	ErrBadWorldSize = errors.New("cluster: world size must be positive")

	// ErrBadRoot indicates a collective root outside the world.
	ErrBadRoot = errors.New("cluster: root rank out of range")

	// ErrClosed indicates a collective on a world that was shut down. The
	// in-process world returned by NewLocalWorld cannot be shut down and
	// never returns this error.
	ErrClosed = errors.New("cluster: world is closed")
)

// CandidateCycle is the wire form of a Horton candidate: the source vertex of
// its shortest-path tree and the dense index of its non-tree edge.
type CandidateCycle struct {
	// Source is the root vertex of the candidate's shortest-path tree.
	Source int

	// Edge is the candidate's non-tree edge as a dense forest index.
	Edge int
}

// MinOddCycle is the wire form of a "minimum odd cycle so far" value: an
// ascending edge-index vector, its weight, and a validity bit. The zero value
// (no edges, weight 0, Exists false) is the identity of the Min reducer.
//
// Inside one process the edge indices are graph edge indices; on the wire
// between ranks they are dense forest indices. The reducer never interprets
// them beyond lexicographic comparison, so both encodings reduce identically.
type MinOddCycle struct {
	// Edges is the cycle's edge-index set, sorted ascending.
	Edges []int

	// Weight is the cycle's total weight.
	Weight float64

	// Exists reports whether this value carries a cycle at all.
	Exists bool
}

// Min is the reduction operator over MinOddCycle: prefer the value that
// exists; among two existing values prefer the lower weight; on equal weight
// prefer the lexicographically smaller edge-index vector. The last rule makes
// the reducer a total order on distinct cycles, so every partition of the
// candidate space — across goroutines or across ranks — elects the same
// winner. Associative and commutative, with the zero MinOddCycle as identity.
func Min(a, b MinOddCycle) MinOddCycle {
	if !a.Exists || !b.Exists {
		if a.Exists {
			return a
		}

		return b
	}
	if a.Weight != b.Weight {
		if a.Weight < b.Weight {
			return a
		}

		return b
	}
	if lexLessInts(a.Edges, b.Edges) {
		return a
	}

	return b
}

// lexLessInts reports whether a precedes b in lexicographic order.
func lexLessInts(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
