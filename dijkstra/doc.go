// Package dijkstra implements the two shortest-path primitives underneath the
// minimum-cycle-basis drivers.
//
// Overview:
//
//   - Lex is a single-source Dijkstra whose equal-distance ties are broken by
//     the lexicographic order of predecessor edge-index sequences. The
//     resulting shortest-path tree is a pure function of the graph, which is
//     what makes the Horton candidate family well-defined and every run of
//     the trees driver deterministic.
//   - Signed is a bidirectional Dijkstra on the parity-doubled graph: each
//     vertex splits into an even and an odd copy, and edges carrying a sign
//     flag cross between the copies. Searching from (v, even) to (v, odd)
//     yields the minimum closed walk at v containing an odd number of signed
//     edges — the core extraction step of the signed SVA strategy.
//
// Pruning:
//
//   - Signed accepts an optional weight bound. Nodes whose distance from
//     their own side's root exceeds the bound are never pushed, and the whole
//     search stops
//     once the sum of the two frontier distances exceeds the bound. A walk
//     whose weight equals the bound is still reported: accept-on-equal keeps
//     every caller's tie-breaking consistent across extraction strategies.
//
// Determinism:
//
//   - Both searches are deterministic for a fixed graph: heap behavior is a
//     function of the input, Lex resolves distance ties explicitly, and
//     Signed returns a sorted edge set.
//
// Complexity:
//
//   - Lex:    O((V + E) log V), plus a walk-back comparison per distance tie.
//   - Signed: O((V + E) log V) over the doubled graph; the bound usually cuts
//     the explored region drastically because callers pass their running
//     minimum.
package dijkstra
