package dynamic

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/poligras/internal/obslog"
	"github.com/katalvlaran/poligras/summary"
)

// Apply runs updates against prev in stream order, returning the updated
// output artifact. prev is never mutated; updates are rejected as a whole
// batch (no partial application) if any single one fails. log
// receives one Info line per promotion/demotion; pass nil to suppress it.
func Apply(prev *summary.Output, directed bool, updates []Update, log obslog.Logger) (*summary.Output, error) {
	st := FromOutput(prev, directed)

	for i, u := range updates {
		if err := st.applyOne(u, log); err != nil {
			return nil, fmt.Errorf("dynamic: update %d (%s -> %s): %w", i, u.Source, u.Target, err)
		}
	}

	if err := st.checkInvariant(); err != nil {
		return nil, err
	}

	return st.toOutput(prev), nil
}

// applyOne validates and dispatches one update.
func (s *State) applyOne(u Update, log obslog.Logger) error {
	if u.Source == u.Target {
		return fmt.Errorf("self-loop update (%s,%s): %w", u.Source, u.Target, ErrUpdateStreamMalformed)
	}
	a, ok1 := s.NodeToSupernode[u.Source]
	b, ok2 := s.NodeToSupernode[u.Target]
	if !ok1 || !ok2 {
		return fmt.Errorf("endpoint %q/%q not in membership map: %w", u.Source, u.Target, ErrUpdateStreamMalformed)
	}

	switch u.Operation {
	case OpAdd:
		return s.applyAdd(a, b, u.Source, u.Target, log)
	case OpRemove:
		return s.applyRemove(a, b, u.Source, u.Target, log)
	default:
		return fmt.Errorf("unknown operation %d: %w", u.Operation, ErrUpdateStreamMalformed)
	}
}

// applyAdd handles adding (u,v): it either clears it from an existing
// superedge's negatives, or tracks it as a new positive and promotes the
// pair once positives exceed M/2.
func (s *State) applyAdd(a, b, u, v string, log obslog.Logger) error {
	key := keyFor(s.Directed, a, b)
	ref := summary.EdgeRef{Source: u, Target: v}

	if _, isSuper := s.Superedges[key]; isSuper {
		if negs := s.Negative[key]; negs != nil {
			delete(negs, ref)
			if len(negs) == 0 {
				delete(s.Negative, key)
			}
		}
		return nil
	}

	s.addRef(s.Positive, key, ref)
	possible := s.possibleEdges(key)
	positives := s.Positive[key]
	if possible == 0 || 2*len(positives) <= possible {
		return nil
	}

	negatives := make(map[summary.EdgeRef]struct{})
	for _, pair := range s.allPairs(key) {
		if _, isPos := positives[pair]; !isPos {
			negatives[pair] = struct{}{}
		}
	}
	delete(s.Positive, key)
	s.Superedges[key] = struct{}{}
	if len(negatives) > 0 {
		s.Negative[key] = negatives
	}
	if log != nil {
		log.Info("dynamic: promoted (%s,%s) to superedge, weight=%d/%d", key.A, key.B, possible-len(negatives), possible)
	}
	return nil
}

// applyRemove handles removing (u,v): it either tracks it as a new
// negative against an existing superedge, demoting once the remaining
// weight falls to M/2 or below, or clears it from a tracked positive set.
func (s *State) applyRemove(a, b, u, v string, log obslog.Logger) error {
	key := keyFor(s.Directed, a, b)
	ref := summary.EdgeRef{Source: u, Target: v}

	if _, isSuper := s.Superedges[key]; isSuper {
		s.addRef(s.Negative, key, ref)
		possible := s.possibleEdges(key)
		weight := possible - len(s.Negative[key])
		if possible > 0 && 2*weight > possible {
			return nil
		}

		negatives := s.Negative[key]
		positives := make(map[summary.EdgeRef]struct{})
		for _, pair := range s.allPairs(key) {
			if _, isNeg := negatives[pair]; !isNeg {
				positives[pair] = struct{}{}
			}
		}
		delete(s.Superedges, key)
		delete(s.Negative, key)
		if len(positives) > 0 {
			s.Positive[key] = positives
		}
		if log != nil {
			log.Info("dynamic: demoted (%s,%s) from superedge, %d positives remain", key.A, key.B, len(positives))
		}
		return nil
	}

	if pos := s.Positive[key]; pos != nil {
		delete(pos, ref)
		if len(pos) == 0 {
			delete(s.Positive, key)
		}
	}
	return nil
}

// checkInvariant re-verifies, for every tracked pair, the XOR invariant:
// every superedge has strictly more than half its possible edges
// present, and every tracked-positive non-superedge has at most half
// present. A violation here indicates a bug in applyAdd/applyRemove, not a
// malformed input.
func (s *State) checkInvariant() error {
	for key := range s.Superedges {
		possible := s.possibleEdges(key)
		weight := possible - len(s.Negative[key])
		if possible > 0 && 2*weight <= possible {
			return fmt.Errorf("superedge (%s,%s) has weight %d/%d: %w", key.A, key.B, weight, possible, ErrInvariantViolation)
		}
	}
	for key, pos := range s.Positive {
		possible := s.possibleEdges(key)
		if possible > 0 && 2*len(pos) > possible {
			return fmt.Errorf("non-superedge (%s,%s) has %d/%d present, should have promoted: %w", key.A, key.B, len(pos), possible, ErrInvariantViolation)
		}
	}
	return nil
}

// toOutput rebuilds the full output artifact from s, reusing prev's meta,
// initial-graph snapshot, supernode list, and timeline, all of which are
// unaffected by a stream of edge updates.
func (s *State) toOutput(prev *summary.Output) *summary.Output {
	superKeys := sortedKeys(s.Superedges)
	edges := make([]summary.SummaryEdge, 0, len(superKeys))
	var negative []summary.EdgeRef
	for _, key := range superKeys {
		possible := s.possibleEdges(key)
		weight := possible - len(s.Negative[key])
		var density float64
		if possible > 0 {
			density = float64(weight) / float64(possible)
		}
		edges = append(edges, summary.SummaryEdge{Source: key.A, Target: key.B, Weight: float64(weight), Density: density})
		negative = append(negative, sortedRefs(s.Negative[key])...)
	}

	var positive []summary.EdgeRef
	for _, key := range sortedKeys(s.Positive) {
		positive = append(positive, sortedRefs(s.Positive[key])...)
	}

	correctionCount := len(positive) + len(negative)
	nodeCount := len(s.Members)

	initialNodes := prev.Stats.Initial.Nodes
	initialEdges := prev.Stats.Initial.Edges
	var compressionRatio float64
	if denom := initialNodes + initialEdges; denom != 0 {
		compressionRatio = float64(nodeCount+len(edges)) / float64(denom)
	}
	stats := summary.Stats{
		Initial: prev.Stats.Initial,
		Summary: summary.SummaryStats{Supernodes: nodeCount, Superedges: len(edges), CorrectionEdges: correctionCount},
		CompressionRatio: compressionRatio,
		// No merge occurs under a streaming update: the cumulative reward
		// earned by the original partition carries forward unchanged.
		TotalReward: prev.Stats.TotalReward,
		CorrectionBreakdown: &summary.CorrectionBreakdown{Positive: len(positive), Negative: len(negative)},
	}
	if nodeCount > 0 {
		avg := float64(initialNodes) / float64(nodeCount)
		stats.AvgSupernodeSize = &avg
	}

	return &summary.Output{
		Meta: prev.Meta,
		Stats: stats,
		Graphs: summary.GraphCollection{
			Initial: prev.Graphs.Initial,
			Summary: summary.SummaryGraph{
				Directed: s.Directed,
				Sampled: false,
				NodeCount: nodeCount,
				EdgeCount: len(edges),
				CorrectionEdgeCount: correctionCount,
				Nodes: prev.Graphs.Summary.Nodes,
				Edges: edges,
			},
		},
		Timeline: prev.Timeline,
		Artifacts: summary.Artifacts{
			Supernodes: summary.SupernodeMembership{Members: s.Members, NodeToSupernode: s.NodeToSupernode},
			Corrections: summary.CorrectionSets{Positive: positive, Negative: negative},
			SelfLoops: s.SelfLoops,
		},
	}
}

func sortedKeys[V any](m map[PairKey]V) []PairKey {
	keys := make([]PairKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].A != keys[j].A {
			return keys[i].A < keys[j].A
		}
		return keys[i].B < keys[j].B
	})
	return keys
}

func sortedRefs(set map[summary.EdgeRef]struct{}) []summary.EdgeRef {
	out := make([]summary.EdgeRef, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Target < out[j].Target
	})
	return out
}
