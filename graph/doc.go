// Package graph provides the minimal undirected multigraph that the mcb
// algorithms read through.
//
// Overview:
//
//   - Vertices and edges are dense integer indices, assigned in insertion
//     order and stable forever. Algorithms exploit this to keep all per-vertex
//     and per-edge state in flat slices (distance arrays, parity arrays,
//     incidence bitmaps), which is both faster and easier to reason about
//     than map-based storage.
//   - The graph is a true multigraph: parallel edges and self-loops are
//     legal, because both carry cycle-space dimension (a pair of parallel
//     edges is a 2-cycle, a self-loop is a 1-cycle).
//   - Weights are float64, finite and non-negative, validated at AddEdge.
//
// Concurrency:
//
//   - Construction is single-goroutine; after construction the graph is
//     read-only and may be shared freely across goroutines without locks.
//
// Complexity:
//
//   - AddVertex / AddEdge: amortized O(1).
//   - All queries: O(1) (Incident returns a stored slice).
//
// See also:
//
//   - forestindex.ForestIndex: spanning-forest edge classification on top of
//     these indices.
//   - mcb: the minimum-cycle-basis drivers consuming this type.
package graph
