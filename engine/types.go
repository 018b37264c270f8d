// Package engine implements the merge engine: the outer/inner loop
// that repeatedly asks the policy network (package policy) to pick a
// candidate pair within each bucket, scores it with the reward evaluator
// (package reward), applies accepted merges, and periodically re-partitions
// when progress stalls.
package engine

import (
	"github.com/katalvlaran/poligras/internal/obslog"
	"github.com/katalvlaran/poligras/internal/obsrand"
	"github.com/katalvlaran/poligras/linalg"
	"github.com/katalvlaran/poligras/partition"
	"github.com/katalvlaran/poligras/policy"
	"github.com/katalvlaran/poligras/summary"
	"github.com/katalvlaran/poligras/supergraph"
)

// Config holds the outer/inner loop's hyperparameters, mirroring the CLI
// flags, plus the static properties of G₀ needed to derive each timeline
// step's summarisation_ratio and avg_degree. Logger is optional; a nil
// Logger disables per-iteration progress lines.
type Config struct {
	Counts           int
	GroupSize        int
	BadCounterLimit  int
	Seed             int64
	Policy           policy.Config
	InitialNodeCount int
	InitialEdgeCount int
	Directed         bool
	Logger           obslog.Logger
}

// State is one full snapshot of the merge engine's progress: the current
// supergraph, each supernode's member original-node IDs, the feature
// matrix, and the current bucket partition. Run deep-copies State between
// outer iterations so the best-known state can always be restored.
type State struct {
	Graph    *supergraph.Graph
	Members  map[string][]string
	Features *linalg.Dense
	Buckets  [][]string
	Timeline []summary.TimelineEntry
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	members := make(map[string][]string, len(s.Members))
	for root, ms := range s.Members {
		cp := make([]string, len(ms))
		copy(cp, ms)
		members[root] = cp
	}
	buckets := make([][]string, len(s.Buckets))
	for i, b := range s.Buckets {
		cp := make([]string, len(b))
		copy(cp, b)
		buckets[i] = cp
	}
	timeline := make([]summary.TimelineEntry, len(s.Timeline))
	copy(timeline, s.Timeline)
	return &State{
		Graph: s.Graph.Clone(),
		Members: members,
		Features: s.Features.Clone(),
		Buckets: buckets,
		Timeline: timeline,
	}
}

// Engine ties the group partitioner and policy network to one run over a
// fixed original graph.
type Engine struct {
	cfg         Config
	orig        *partition.OriginalGraph
	nodeIdx     map[string]int
	partitioner *partition.Partitioner
	net         *policy.Network
	rngPolicy   *obsrand.Source
}

// New builds an Engine. orig is the fixed original-graph adjacency index
// used for partition hashing; nodeIdx maps every original node ID to its
// row in the feature matrix. Partition draws and policy draws use distinct
// seeded sources (seed and seed+1) so the hash permutation's randomness
// never interacts with the policy's stochastic state.
func New(cfg Config, orig *partition.OriginalGraph, nodeIdx map[string]int) (*Engine, error) {
	rngPartition := obsrand.New(cfg.Seed)
	rngPolicy := obsrand.New(cfg.Seed + 1)

	net, err := policy.New(cfg.Policy, rngPolicy)
	if err != nil {
		return nil, err
	}

	return &Engine{
		cfg: cfg,
		orig: orig,
		nodeIdx: nodeIdx,
		partitioner: partition.New(orig, rngPartition),
		net: net,
		rngPolicy: rngPolicy,
	}, nil
}
