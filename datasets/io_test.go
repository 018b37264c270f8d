package datasets_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poligras/datasets"
)

func TestGraphRoundTrip(t *testing.T) {
	g := &datasets.Graph{
		Directed: false,
		Nodes: []string{"1", "2", "3"},
		Edges: []datasets.WeightedEdge{
			{Source: "1", Target: "2", Weight: 1},
			{Source: "2", Target: "3", Weight: 1},
			{Source: "1", Target: "1", Weight: 1},
		},
	}

	path := filepath.Join(t.TempDir(), "g")
	require.NoError(t, datasets.SaveGraph(path, g))

	got, err := datasets.LoadGraph(path)
	require.NoError(t, err)
	require.Equal(t, g, got)
}

func TestLoadGraphMissing(t *testing.T) {
	_, err := datasets.LoadGraph(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, datasets.ErrInputNotFound)
}

func TestLoadFeaturesDimensionMismatch(t *testing.T) {
	g := &datasets.Graph{Nodes: []string{"1", "2", "3"}}
	feat := &datasets.Features{Dim: 1, Rows: [][]float64{{1}, {2}}}

	path := filepath.Join(t.TempDir(), "feat")
	require.NoError(t, datasets.SaveFeatures(path, feat))

	_, err := datasets.LoadFeatures(path, g)
	require.ErrorIs(t, err, datasets.ErrDimensionMismatch)
}

func TestGraphHelpers(t *testing.T) {
	g := &datasets.Graph{
		Directed: false,
		Nodes: []string{"1", "2", "3", "4"},
		Edges: []datasets.WeightedEdge{
			{Source: "1", Target: "2", Weight: 1},
			{Source: "2", Target: "3", Weight: 1},
			{Source: "3", Target: "3", Weight: 1},
		},
	}

	require.ElementsMatch(t, []string{"1", "3"}, g.Neighbors("2"))
	require.True(t, g.HasEdge("2", "1"))
	require.False(t, g.HasEdge("1", "4"))
	require.Equal(t, []string{"3"}, g.SelfLoops())
	require.Equal(t, 1, g.Degree("1"))
	require.Equal(t, 2, g.Degree("2"))
	require.Equal(t, 3, g.Degree("3"))
	require.Equal(t, 2, g.EdgeCount())

	sample := g.Sample(2)
	require.Equal(t, []string{"1", "2"}, sample.Nodes)
	require.Len(t, sample.Edges, 1)
}
