package reward_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poligras/reward"
	"github.com/katalvlaran/poligras/supergraph"
)

// TestEvaluateTriangleCollapse covers a triangle-collapse scenario:
// K₃ on {1,2,3}, each node its own singleton supernode. Two
// accepted merges should leave one supernode with a materialized self-loop
// of weight 3 and density 1.0.
func TestEvaluateTriangleCollapse(t *testing.T) {
	g := supergraph.NewGraph()
	require.NoError(t, g.AddVertex("1"))
	require.NoError(t, g.AddVertex("2"))
	require.NoError(t, g.AddVertex("3"))
	require.NoError(t, g.AddEdge("1", "2", 1, true))
	require.NoError(t, g.AddEdge("1", "3", 1, true))
	require.NoError(t, g.AddEdge("2", "3", 1, true))

	size := map[string]int64{"1": 1, "2": 1, "3": 1}
	sizeOf := func(x string) int64 { return size[x] }

	delta, patch, err := reward.Evaluate(g, sizeOf, "1", "2")
	require.NoError(t, err)
	require.Equal(t, int64(1), delta)
	require.NoError(t, patch.Apply(g))
	require.NoError(t, g.RemoveVertex("2"))
	size["1"] = 2
	delete(size, "2")

	e13, ok := g.GetEdge("1", "3")
	require.True(t, ok)
	require.Equal(t, int64(2), e13.Weight)
	require.True(t, e13.Materialized)
	loop1, ok := g.GetEdge("1", "1")
	require.True(t, ok)
	require.Equal(t, int64(1), loop1.Weight)
	require.True(t, loop1.Materialized)

	delta, patch, err = reward.Evaluate(g, sizeOf, "1", "3")
	require.NoError(t, err)
	require.Equal(t, int64(1), delta)
	require.NoError(t, patch.Apply(g))
	require.NoError(t, g.RemoveVertex("3"))
	size["1"] = 3
	delete(size, "3")

	require.Equal(t, 1, g.VertexCount())
	loop, ok := g.GetEdge("1", "1")
	require.True(t, ok)
	require.Equal(t, int64(3), loop.Weight)
	require.True(t, loop.Materialized)
	density := float64(loop.Weight) / float64(3*(3-1)/2)
	require.Equal(t, 1.0, density)
}

// TestEvaluateSameSupernodeRejected asserts the guard against merging a
// supernode with itself.
func TestEvaluateSameSupernodeRejected(t *testing.T) {
	g := supergraph.NewGraph()
	require.NoError(t, g.AddVertex("1"))
	_, _, err := reward.Evaluate(g, func(string) int64 { return 1 }, "1", "1")
	require.ErrorIs(t, err, reward.ErrSameSupernode)
}
