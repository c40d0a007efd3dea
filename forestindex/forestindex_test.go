// Package forestindex_test validates the spanning-forest edge classification
// and the dense edge↔index bijection.
package forestindex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcb/forestindex"
	"github.com/katalvlaran/mcb/gf2"
	"github.com/katalvlaran/mcb/graph"
)

// k4 builds the complete graph on 4 vertices with unit weights.
func k4(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(4)
	require.NoError(t, err)
	for u := 0; u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			_, err = g.AddEdge(u, v, 1)
			require.NoError(t, err)
		}
	}

	return g
}

func TestDimension_K4(t *testing.T) {
	fi := forestindex.New(k4(t))
	// |E| - |V| + c = 6 - 4 + 1.
	require.Equal(t, 3, fi.Dim())
	require.Equal(t, 1, fi.Components())
}

func TestDimension_Disconnected(t *testing.T) {
	g, _ := graph.New(6)
	// Two unit triangles sharing nothing.
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}

	fi := forestindex.New(g)
	require.Equal(t, 2, fi.Dim())
	require.Equal(t, 2, fi.Components())
}

func TestSelfLoopsAndParallelEdges_AreNonTree(t *testing.T) {
	g, _ := graph.New(2)
	bridge, _ := g.AddEdge(0, 1, 1)
	dup, _ := g.AddEdge(0, 1, 2)
	loop, _ := g.AddEdge(1, 1, 1)

	fi := forestindex.New(g)
	require.Equal(t, 2, fi.Dim())
	require.True(t, fi.IsTree(bridge))
	require.False(t, fi.IsTree(dup))
	require.False(t, fi.IsTree(loop))
}

func TestBijection_IsStableAndTotal(t *testing.T) {
	g := k4(t)
	fi := forestindex.New(g)

	seen := make(map[int]bool)
	for e := 0; e < g.EdgeCount(); e++ {
		i := fi.Index(e)
		require.False(t, seen[i], "index %d assigned twice", i)
		seen[i] = true
		require.Equal(t, e, fi.EdgeOf(i))
		// Tree edges occupy [Dim, E), non-tree [0, Dim).
		require.Equal(t, i >= fi.Dim(), fi.IsTree(e))
	}
	require.Len(t, seen, g.EdgeCount())
}

func TestVectorConversions(t *testing.T) {
	g := k4(t)
	fi := forestindex.New(g)

	// Round-trip a cycle's edge set through its characteristic vector.
	edges := []int{0, 1, 3}
	vec := fi.VectorOf(edges)
	require.Equal(t, 3, vec.Size())
	back := fi.EdgesOf(vec)
	require.ElementsMatch(t, edges, back)

	require.True(t, fi.VectorOf(nil).IsZero())
	require.Empty(t, fi.EdgesOf(gf2.Zero()))
}

func TestEmptyGraph(t *testing.T) {
	g, _ := graph.New(0)
	fi := forestindex.New(g)
	require.Equal(t, 0, fi.Dim())
	require.Equal(t, 0, fi.Components())
}
