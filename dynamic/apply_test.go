package dynamic_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poligras/dynamic"
	"github.com/katalvlaran/poligras/summary"
)

// startingSummary builds the {A:[1,2,3], B:[4,5,6]} two-supernode summary
// used by the dynamic-promote and dynamic-demote scenarios below: three
// original edges (1,4),(2,5),(3,6) tracked as positives, no superedge yet.
func startingSummary() *summary.Output {
	members := map[string][]string{
		"1": {"1", "2", "3"},
		"4": {"4", "5", "6"},
	}
	nodeToSuper := map[string]string{
		"1": "1", "2": "1", "3": "1",
		"4": "4", "5": "4", "6": "4",
	}
	return &summary.Output{
		Stats: summary.Stats{Initial: summary.InitialStats{Nodes: 6, Edges: 3}},
		Graphs: summary.GraphCollection{
			Summary: summary.SummaryGraph{Nodes: []summary.SummaryNode{{ID: "1", Size: 3}, {ID: "4", Size: 3}}},
		},
		Artifacts: summary.Artifacts{
			Supernodes: summary.SupernodeMembership{Members: members, NodeToSupernode: nodeToSuper},
			Corrections: summary.CorrectionSets{
				Positive: []summary.EdgeRef{{Source: "1", Target: "4"}, {Source: "2", Target: "5"}, {Source: "3", Target: "6"}},
			},
		},
	}
}

// "Dynamic promote": adding (1,5) keeps the pair a non-superedge
// (4/9, not exceeding M/2); adding (2,6) crosses the threshold (5/9) and
// promotes it, leaving 4 negatives.
func TestApplyDynamicPromote(t *testing.T) {
	prev := startingSummary()
	updates := []dynamic.Update{
		{Operation: dynamic.OpAdd, Source: "1", Target: "5"},
		{Operation: dynamic.OpAdd, Source: "2", Target: "6"},
	}

	out, err := dynamic.Apply(prev, false, updates, nil)
	require.NoError(t, err)

	require.Len(t, out.Graphs.Summary.Edges, 1)
	edge := out.Graphs.Summary.Edges[0]
	require.Equal(t, "1", edge.Source)
	require.Equal(t, "4", edge.Target)
	require.Equal(t, float64(5), edge.Weight)
	require.Len(t, out.Artifacts.Corrections.Negative, 4)
	require.Empty(t, out.Artifacts.Corrections.Positive)
}

// "Dynamic demote": starting from the promoted result, removing
// the three original edges one at a time eventually demotes the superedge;
// the end state's corrections match the original positives minus the
// removed edges, regardless of exactly which removal tips the threshold.
func TestApplyDynamicDemote(t *testing.T) {
	prev := startingSummary()
	promoted, err := dynamic.Apply(prev, false, []dynamic.Update{
		{Operation: dynamic.OpAdd, Source: "1", Target: "5"},
		{Operation: dynamic.OpAdd, Source: "2", Target: "6"},
	}, nil)
	require.NoError(t, err)

	demoted, err := dynamic.Apply(promoted, false, []dynamic.Update{
		{Operation: dynamic.OpRemove, Source: "1", Target: "4"},
		{Operation: dynamic.OpRemove, Source: "2", Target: "5"},
		{Operation: dynamic.OpRemove, Source: "3", Target: "6"},
	}, nil)
	require.NoError(t, err)

	require.Empty(t, demoted.Graphs.Summary.Edges)
	require.Empty(t, demoted.Artifacts.Corrections.Negative)
	require.ElementsMatch(t, []summary.EdgeRef{{Source: "1", Target: "5"}, {Source: "2", Target: "6"}}, demoted.Artifacts.Corrections.Positive)
}

// ("Round-trip"): add then remove the same edge
// restores the original corrections and summary edge set.
func TestApplyRoundTrip(t *testing.T) {
	prev := startingSummary()

	added, err := dynamic.Apply(prev, false, []dynamic.Update{{Operation: dynamic.OpAdd, Source: "1", Target: "5"}}, nil)
	require.NoError(t, err)

	roundTripped, err := dynamic.Apply(added, false, []dynamic.Update{{Operation: dynamic.OpRemove, Source: "1", Target: "5"}}, nil)
	require.NoError(t, err)

	require.ElementsMatch(t, prev.Artifacts.Corrections.Positive, roundTripped.Artifacts.Corrections.Positive)
	require.ElementsMatch(t, prev.Artifacts.Corrections.Negative, roundTripped.Artifacts.Corrections.Negative)
	require.ElementsMatch(t, prev.Graphs.Summary.Edges, roundTripped.Graphs.Summary.Edges)
}

func TestApplyRejectsSelfLoop(t *testing.T) {
	prev := startingSummary()
	_, err := dynamic.Apply(prev, false, []dynamic.Update{{Operation: dynamic.OpAdd, Source: "1", Target: "1"}}, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, dynamic.ErrUpdateStreamMalformed))
}

func TestApplyRejectsUnknownEndpoint(t *testing.T) {
	prev := startingSummary()
	_, err := dynamic.Apply(prev, false, []dynamic.Update{{Operation: dynamic.OpAdd, Source: "1", Target: "99"}}, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, dynamic.ErrUpdateStreamMalformed))
}

// Sanity check for a self-pair under a directed graph: a directed
// self-pair counts ordered pairs, not unordered ones.
func TestApplyDirectedSelfPairPossibleEdges(t *testing.T) {
	prev := &summary.Output{
		Artifacts: summary.Artifacts{
			Supernodes: summary.SupernodeMembership{
				Members: map[string][]string{"1": {"1", "2", "3"}},
				NodeToSupernode: map[string]string{"1": "1", "2": "1", "3": "1"},
			},
		},
	}
	// Directed self-pair: M = 3*2 = 6. One present pair out of 6 stays a
	// tracked positive (2*1 <= 6).
	out, err := dynamic.Apply(prev, true, []dynamic.Update{{Operation: dynamic.OpAdd, Source: "1", Target: "2"}}, nil)
	require.NoError(t, err)
	require.Empty(t, out.Graphs.Summary.Edges)
	require.Len(t, out.Artifacts.Corrections.Positive, 1)
}
