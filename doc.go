// Package mcb computes a minimum cycle basis (MCB) of a weighted undirected
// graph: a set of simple cycles generating the whole cycle space under
// symmetric difference, of minimum total weight. MCBs show up wherever
// independent cycles matter — electrical network analysis, cyclic structure
// in biology, surface reconstruction.
//
// 🚀 What is mcb?
//
//	The support-vector algorithm (SVA) family with everything it stands on:
//		• Graph primitive: a compact, index-based weighted multigraph
//		• Algebra: sparse GF(2) vectors and spanning-forest edge indexing
//		• Searches: lexicographic Dijkstra, bidirectional signed Dijkstra
//		• Horton machinery: shortest-path-tree forests with parity labels
//		• Drivers: signed, Horton-trees and distributed SVA, exact and
//		  spanner-approximated
//		• Parallelism: blocked-range tasks in-process, broadcast/reduce
//		  collectives across ranks
//
// Overview:
//
//   - The drivers all share the SVA skeleton: keep a basis S[0..N) of the
//     dual cycle space over GF(2), and at step k extract the lightest cycle
//     not orthogonal to S[k], emit it, and fold S[k] into every later
//     support vector that is not orthogonal to the emitted cycle.
//     N = |E| - |V| + c is the cycle-space dimension; the loop is strictly
//     serial in k because each update depends on the cycle just emitted.
//   - SVASigned extracts via per-vertex bidirectional signed Dijkstra: S[k]
//     marks a set of signed edges, and the lightest closed walk with odd
//     signed count is the answer. A lone signed edge short-circuits to one
//     path search.
//   - SVATrees extracts from Horton's candidate pool over per-source
//     shortest-path trees, filtered by parity on the fly; WithSortedCycles
//     turns each iteration into "first valid candidate wins".
//   - SVADistributed spreads the signed strategy over the ranks of a
//     cluster.Communicator: broadcast S[k], search disjoint vertex strides,
//     reduce the local minima to rank 0.
//   - ApproxSVASigned / ApproxSVATrees solve exactly on a (2k-1)-spanner and
//     lift the dropped edges back, for a basis within (2k-1) of optimal.
//
// Determinism:
//
//   - For a fixed graph and options, every driver emits the same ordered
//     cycle list on every run: shortest-path trees break distance ties
//     lexicographically, and every minimum election — across goroutine
//     chunks or across ranks — resolves weight ties by lexicographic
//     edge-index comparison under cluster.Min.
//   - The strategies agree on the total weight on every input; individual
//     cycles may differ only where several minimum bases exist.
//
// Error handling:
//
//   - Invalid inputs surface as sentinel errors before any work starts.
//   - Recoverable extraction failures (pruned or non-simple candidates) are
//     silent sentinels inside an iteration; invariant violations
//     (ErrZeroSupport, ErrCycleMissing, ErrWeightOverflow) abort the call.
//
// Boundary behavior:
//
//   - Forests (N = 0) emit nothing and return 0. A self-loop is a 1-edge
//     cycle; a pair of parallel edges is a 2-edge cycle. Disconnected graphs
//     are handled per component by construction.
//
// Under the hood, everything is organized per concern:
//
//	graph/       — the undirected multigraph all algorithms read through
//	gf2/         — sparse vectors over GF(2)
//	forestindex/ — spanning forest and the edge↔index bijection
//	dijkstra/    — lexicographic and bidirectional signed searches
//	sptree/      — shortest-path-tree forest and Horton candidates
//	parallel/    — blocked-range for/reduce over goroutines
//	cluster/     — wire forms, min-odd-cycle monoid, communicator
//	spanner/     — greedy (2k-1)-spanner for the approximate drivers
//
// Quick ASCII example:
//
//	    A───B
//	    │ ╲ │
//	    C───D
//
//	a unit square with one diagonal of weight 3: cycle space dimension 2,
//	and the minimum basis pairs the square (4) with one triangle (5).
//
// Complexity:
//
//   - SVASigned:  O(N · V · (V + E) log V) worst case, heavily pruned.
//   - SVATrees:   O(V · (V + E) log V) preprocessing + O(N · V²) scanning.
//   - Memory:     O(V²) for the tree forest, O(N²) worst case for supports.
//
//	go get github.com/katalvlaran/mcb
package mcb
