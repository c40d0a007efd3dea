package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/mcb/graph"
)

// Signed runs a bidirectional Dijkstra on the parity-doubled graph and
// returns the minimum-weight walk from (Source, SourceSign) to
// (Target, TargetSign): the lightest walk whose number of signed edges has
// parity SourceSign XOR TargetSign.
//
// Returns the walk's edge set (sorted ascending, duplicates collapsed), its
// weight, and whether such a walk within the bound exists. With strictly
// positive weights the minimum odd closed walk over all start vertices is
// always edge-simple, so the collapsed set is the walk itself wherever the
// drivers consume a winning result.
//
// Each step expands whichever frontier has the cheaper top entry; the search
// stops as soon as the frontier sum reaches the best meeting weight found, or
// exceeds the pruning bound when one is set.
//
// Complexity: O((V + E) log V) on the doubled graph, usually far less under
// the bound.
func Signed(g *graph.Graph, opt SignedOptions) ([]int, float64, bool, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, 0, false, ErrNilGraph
	}
	n := g.VertexCount()
	m := g.EdgeCount()
	if opt.Source < 0 || opt.Source >= n || opt.Target < 0 || opt.Target >= n {
		return nil, 0, false, fmt.Errorf("%w: source %d target %d", ErrVertexRange, opt.Source, opt.Target)
	}
	if opt.Signed != nil && len(opt.Signed) != m {
		return nil, 0, false, fmt.Errorf("%w: signed", ErrBadSignedFlags)
	}
	if opt.UseHidden && opt.Hidden != nil && len(opt.Hidden) != m {
		return nil, 0, false, fmt.Errorf("%w: hidden", ErrBadSignedFlags)
	}

	// 2) Doubled-graph node ids: 2*vertex + parity bit.
	fs := opt.Source << 1
	if opt.SourceSign {
		fs |= 1
	}
	bs := opt.Target << 1
	if opt.TargetSign {
		bs |= 1
	}
	if fs == bs {
		// The empty walk already satisfies the parity constraint.
		return nil, 0, true, nil
	}

	s := newSignedSearch(g, opt, n)

	// 3) Seed both frontiers.
	s.fwd.seed(fs)
	s.bwd.seed(bs)

	// 4) Alternate expansions until the frontiers prove optimality.
	for {
		tf, okF := s.fwd.top()
		tb, okB := s.bwd.top()
		if !okF || !okB {
			break // one side exhausted: no further meeting possible
		}
		if tf+tb >= s.mu {
			break // best meeting already optimal
		}
		if opt.BoundValid && tf+tb > opt.Bound {
			break // every remaining walk exceeds the pruning bound
		}
		if tf <= tb {
			s.expand(&s.fwd, &s.bwd)
		} else {
			s.expand(&s.bwd, &s.fwd)
		}
	}

	// 5) Harvest the best meeting, if it beats the bound.
	if math.IsInf(s.mu, 1) {
		return nil, 0, false, nil
	}
	if opt.BoundValid && s.mu > opt.Bound {
		return nil, 0, false, nil
	}

	return s.walkEdges(fs, bs), s.mu, true, nil
}

// frontier is one direction of the bidirectional search.
type frontier struct {
	dist    []float64
	pred    []int
	visited []bool
	h       pq
}

func newFrontier(nodes int) frontier {
	f := frontier{
		dist:    make([]float64, nodes),
		pred:    make([]int, nodes),
		visited: make([]bool, nodes),
		h:       make(pq, 0),
	}
	for i := range f.dist {
		f.dist[i] = math.Inf(1)
		f.pred[i] = -1
	}
	heap.Init(&f.h)

	return f
}

func (f *frontier) seed(node int) {
	f.dist[node] = 0
	heap.Push(&f.h, pqItem{node: node, dist: 0})
}

// top discards stale heap entries and returns the next frontier distance.
func (f *frontier) top() (float64, bool) {
	for f.h.Len() > 0 {
		it := f.h[0]
		if f.visited[it.node] {
			heap.Pop(&f.h)
			continue
		}

		return it.dist, true
	}

	return 0, false
}

// signedSearch bundles the shared state of one Signed call.
type signedSearch struct {
	g    *graph.Graph
	opt  SignedOptions
	fwd  frontier
	bwd  frontier
	mu   float64 // best meeting weight so far
	meet int     // doubled node realizing mu, -1 if none
}

func newSignedSearch(g *graph.Graph, opt SignedOptions, n int) *signedSearch {
	return &signedSearch{
		g:    g,
		opt:  opt,
		fwd:  newFrontier(2 * n),
		bwd:  newFrontier(2 * n),
		mu:   math.Inf(1),
		meet: -1,
	}
}

// expand settles the cheapest node of `own`, relaxes its edges, and records
// any improved meeting with the opposite frontier.
func (s *signedSearch) expand(own, other *frontier) {
	item := heap.Pop(&own.h).(pqItem)
	u := item.node
	if own.visited[u] {
		return
	}
	own.visited[u] = true
	s.tryMeet(own, other, u)

	uv := u >> 1     // underlying vertex
	parity := u & 1  // parity coordinate
	d := own.dist[u] // settled distance

	for _, e := range s.g.Incident(uv) {
		if s.opt.UseHidden && s.opt.Hidden != nil && s.opt.Hidden[e] {
			continue
		}
		wv := s.g.Opposite(e, uv)
		p := parity
		if s.opt.Signed != nil && s.opt.Signed[e] {
			p ^= 1
		}
		node := wv<<1 | p
		if node == u {
			continue // unsigned self-loop: no movement in the doubled graph
		}
		nd := d + s.g.Weight(e)
		if s.opt.BoundValid && nd > s.opt.Bound {
			continue // cannot be part of any walk within the bound
		}
		if nd < own.dist[node] {
			own.dist[node] = nd
			own.pred[node] = e
			heap.Push(&own.h, pqItem{node: node, dist: nd})
			s.tryMeet(own, other, node)
		}
	}
}

// tryMeet updates the best meeting weight through doubled node x.
func (s *signedSearch) tryMeet(own, other *frontier, x int) {
	if math.IsInf(other.dist[x], 1) {
		return
	}
	if total := own.dist[x] + other.dist[x]; total < s.mu {
		s.mu = total
		s.meet = x
	}
}

// walkEdges reconstructs the two half-walks through the meeting node and
// returns their union as a sorted edge-index set.
func (s *signedSearch) walkEdges(fs, bs int) []int {
	set := make(map[int]struct{})
	collect(s.g, s.opt.Signed, s.fwd.pred, s.meet, fs, set)
	collect(s.g, s.opt.Signed, s.bwd.pred, s.meet, bs, set)

	edges := make([]int, 0, len(set))
	for e := range set {
		edges = append(edges, e)
	}
	sort.Ints(edges)

	return edges
}

// collect walks a predecessor chain from a doubled node back to its root,
// inserting each traversed edge into set.
func collect(g *graph.Graph, signedFlags []bool, pred []int, from, root int, set map[int]struct{}) {
	cur := from
	for cur != root {
		e := pred[cur]
		if e == -1 {
			break // chain ends at the root
		}
		set[e] = struct{}{}
		v := cur >> 1
		p := cur & 1
		if signedFlags != nil && signedFlags[e] {
			p ^= 1
		}
		cur = g.Opposite(e, v)<<1 | p
	}
}
