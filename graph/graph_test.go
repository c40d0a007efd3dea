// Package graph_test validates the multigraph primitive: construction errors,
// index stability, incidence bookkeeping, and the multigraph corner cases
// (self-loops, parallel edges) the MCB algorithms rely on.
package graph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcb/graph"
)

func TestNew_NegativeCount(t *testing.T) {
	_, err := graph.New(-1)
	require.ErrorIs(t, err, graph.ErrBadVertexCount)
}

func TestAddEdge_Validation(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)

	_, err = g.AddEdge(0, 2, 1)
	require.ErrorIs(t, err, graph.ErrVertexRange)

	_, err = g.AddEdge(-1, 0, 1)
	require.ErrorIs(t, err, graph.ErrVertexRange)

	_, err = g.AddEdge(0, 1, -0.5)
	require.ErrorIs(t, err, graph.ErrBadWeight)

	_, err = g.AddEdge(0, 1, math.NaN())
	require.ErrorIs(t, err, graph.ErrBadWeight)

	_, err = g.AddEdge(0, 1, math.Inf(1))
	require.ErrorIs(t, err, graph.ErrBadWeight)
}

func TestEdgeIndices_InsertionOrder(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)

	e0, err := g.AddEdge(0, 1, 1)
	require.NoError(t, err)
	e1, err := g.AddEdge(1, 2, 2)
	require.NoError(t, err)

	require.Equal(t, 0, e0)
	require.Equal(t, 1, e1)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 2, g.EdgeCount())
	require.Equal(t, graph.Edge{U: 1, V: 2, Weight: 2}, g.Edge(e1))
}

func TestIncident_And_Opposite(t *testing.T) {
	g, _ := graph.New(3)
	e0, _ := g.AddEdge(0, 1, 1)
	e1, _ := g.AddEdge(0, 2, 1)

	require.Equal(t, []int{e0, e1}, g.Incident(0))
	require.Equal(t, []int{e0}, g.Incident(1))
	require.Equal(t, 1, g.Opposite(e0, 0))
	require.Equal(t, 0, g.Opposite(e0, 1))
}

func TestSelfLoop_AppearsOnceInIncidence(t *testing.T) {
	g, _ := graph.New(1)
	e, err := g.AddEdge(0, 0, 2.5)
	require.NoError(t, err)

	require.True(t, g.IsLoop(e))
	require.Equal(t, []int{e}, g.Incident(0))
	require.Equal(t, 0, g.Opposite(e, 0))
}

func TestParallelEdges_KeepDistinctIndices(t *testing.T) {
	g, _ := graph.New(2)
	e0, _ := g.AddEdge(0, 1, 1)
	e1, _ := g.AddEdge(0, 1, 3)

	require.NotEqual(t, e0, e1)
	require.Equal(t, 1.0, g.Weight(e0))
	require.Equal(t, 3.0, g.Weight(e1))
	require.Equal(t, []int{e0, e1}, g.Incident(0))
}

func TestAddVertex_ExtendsRange(t *testing.T) {
	g, _ := graph.New(0)
	v0 := g.AddVertex()
	v1 := g.AddVertex()

	require.Equal(t, 0, v0)
	require.Equal(t, 1, v1)
	_, err := g.AddEdge(v0, v1, 0)
	require.NoError(t, err)
}
