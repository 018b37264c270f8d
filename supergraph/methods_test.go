package supergraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poligras/supergraph"
)

func TestAddEdgeRejectsDuplicateAndMissingVertex(t *testing.T) {
	g := supergraph.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))

	require.ErrorIs(t, g.AddEdge("a", "c", 1, false), supergraph.ErrVertexNotFound)

	require.NoError(t, g.AddEdge("a", "b", 1, true))
	require.ErrorIs(t, g.AddEdge("a", "b", 2, true), supergraph.ErrEdgeExists)

	e, ok := g.GetEdge("b", "a")
	require.True(t, ok)
	require.Equal(t, int64(1), e.Weight)
}

func TestSetEdgeMutatesBothDirections(t *testing.T) {
	g := supergraph.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddEdge("a", "b", 1, false))

	require.NoError(t, g.SetEdge("a", "b", 5, true))
	e, ok := g.GetEdge("b", "a")
	require.True(t, ok)
	require.Equal(t, int64(5), e.Weight)
	require.True(t, e.Materialized)

	require.ErrorIs(t, g.SetEdge("a", "z", 1, false), supergraph.ErrEdgeNotFound)
}

func TestRemoveVertexDropsIncidentEdges(t *testing.T) {
	g := supergraph.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddVertex("c"))
	require.NoError(t, g.AddEdge("a", "b", 1, true))
	require.NoError(t, g.AddEdge("a", "c", 1, true))
	require.NoError(t, g.AddEdge("a", "a", 1, true))

	require.NoError(t, g.RemoveVertex("a"))
	require.False(t, g.HasVertex("a"))
	require.False(t, g.HasEdge("b", "a"))
	require.False(t, g.HasEdge("c", "a"))
	require.Equal(t, 0, g.EdgeCount())
}

func TestEdgeCountCountsSelfLoopOnceAndPairOnce(t *testing.T) {
	g := supergraph.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddEdge("a", "b", 1, true))
	require.NoError(t, g.AddEdge("a", "a", 2, true))
	require.Equal(t, 2, g.EdgeCount())
}

func TestCloneIsIndependent(t *testing.T) {
	g := supergraph.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddEdge("a", "b", 1, true))

	clone := g.Clone()
	require.NoError(t, clone.SetEdge("a", "b", 9, false))

	orig, ok := g.GetEdge("a", "b")
	require.True(t, ok)
	require.Equal(t, int64(1), orig.Weight)

	cloned, ok := clone.GetEdge("a", "b")
	require.True(t, ok)
	require.Equal(t, int64(9), cloned.Weight)
}
