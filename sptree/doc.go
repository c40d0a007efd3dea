// Package sptree implements Horton's candidate machinery for minimum cycle
// bases: per-source shortest-path trees, the pooled candidate cycles they
// induce, and a parity-filtered minimum lookup over the pool.
//
// Overview:
//
//   - A Tree is a shortest-path tree built by the lexicographic Dijkstra, so
//     the whole forest is a deterministic function of the graph. Nodes live
//     in flat per-vertex arrays (predecessor edge, distance, parity,
//     first-in-path) with a CSR children layout; pre-order traversals are an
//     explicit stack over indices, with no linked nodes and no ownership
//     cycles.
//   - A Candidate is (tree, non-tree edge e, ŵ) with ŵ = w(e) + d(s,x) +
//     d(s,y). Candidates whose endpoints leave the source through the same
//     first hop are dropped up front: their closed walk repeats that hop and
//     can never be a simple cycle. Self-loops are their own 1-edge
//     candidates, emitted once per forest by the tree rooted at their vertex.
//   - ShortestOddCycle refreshes parities against the iteration's signed-edge
//     set, then scans the pool for the lightest candidate that passes the
//     parity filter and reconstructs to a simple cycle. Reconstruction prunes
//     against the running minimum ("reject strictly above the limit", so
//     equal-weight ties always reach the tie-breaker) and rejects non-finite
//     accumulations.
//
// Sorted mode:
//
//   - With WithSortedCycles the pool is pre-sorted by ŵ ascending and the
//     first valid candidate is returned immediately: ŵ never exceeds the true
//     reconstructed weight, so no later candidate can beat it.
//
// Concurrency:
//
//   - Tree construction fans out over sources via errgroup. Parity refresh
//     and the candidate scan partition over blocked ranges; each tree's
//     parity array is written only in the refresh phase and read afterwards,
//     so the phases need no locks.
//
// Complexity:
//
//   - NewForest: O(V · (V + E) log V). ShortestOddCycle: O(V² ) per call in
//     the worst case, typically far less under pruning.
package sptree
