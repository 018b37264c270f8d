package summary

import (
	"sort"

	"github.com/katalvlaran/poligras/datasets"
)

// pairKey canonicalizes an unordered supernode pair for the finished-pair
// dedup set.
type pairKey struct{ lo, hi string }

func canonical(a, b string) pairKey {
	if a <= b {
		return pairKey{a, b}
	}
	return pairKey{b, a}
}

// Encode materializes the full output artifact from the final supernode
// partition: members maps each supernode root to its original-node member
// IDs, in the order the engine accumulated them. g is the immutable
// original graph G₀. meta and timeline are embedded as-is (timeline may be
// nil if the caller has none to report).
func Encode(g *datasets.Graph, members map[string][]string, meta *Meta, timeline []TimelineEntry) *Output {
	nodeToSuper := make(map[string]string, len(g.Nodes))
	for root, ms := range members {
		for _, n := range ms {
			nodeToSuper[n] = root
		}
	}

	roots := make([]string, 0, len(members))
	for root := range members {
		roots = append(roots, root)
	}
	sort.Strings(roots)

	var summaryEdges []SummaryEdge
	var positive, negative []EdgeRef
	finished := make(map[pairKey]bool)

	for _, a := range roots {
		candidates := crossClusterCandidates(g, members[a], nodeToSuper, a)
		for _, b := range candidates {
			key := canonical(a, b)
			if finished[key] {
				continue
			}
			finished[key] = true

			src, dst := key.lo, key.hi
			pos, neg := pairEdges(g, members[src], members[dst])
			emitPair(src, dst, pos, neg, &summaryEdges, &positive, &negative)
		}

		posAA, negAA := selfPairEdges(g, members[a])
		emitPair(a, a, posAA, negAA, &summaryEdges, &positive, &negative)
	}

	selfLoops := g.SelfLoops()
	correctionCount := len(positive) + len(negative)
	totalReward := int64(g.TotalEdgeCount() - len(selfLoops) - len(summaryEdges) - correctionCount)

	summaryGraph := SummaryGraph{
		Directed: g.Directed,
		Sampled: false,
		NodeCount: len(members),
		EdgeCount: len(summaryEdges),
		CorrectionEdgeCount: correctionCount,
		Nodes: summaryNodes(roots, members),
		Edges: summaryEdges,
	}
	initialGraph := buildInitialGraph(g)

	stats := buildStats(g, summaryGraph, len(selfLoops), len(positive), len(negative), totalReward)

	return &Output{
		Meta: meta,
		Stats: stats,
		Graphs: GraphCollection{
			Initial: initialGraph,
			Summary: summaryGraph,
		},
		Timeline: timeline,
		Artifacts: Artifacts{
			Supernodes: SupernodeMembership{Members: members, NodeToSupernode: nodeToSuper},
			Corrections: CorrectionSets{Positive: positive, Negative: negative},
			SelfLoops: len(selfLoops),
		},
	}
}

// crossClusterCandidates collects, in sorted order, every supernode other
// than a reachable from a's members via one original edge.
func crossClusterCandidates(g *datasets.Graph, aMembers []string, nodeToSuper map[string]string, a string) []string {
	seen := make(map[string]bool)
	for _, u := range aMembers {
		for _, nb := range g.Neighbors(u) {
			b := nodeToSuper[nb]
			if b != a {
				seen[b] = true
			}
		}
	}
	out := make([]string, 0, len(seen))
	for b := range seen {
		out = append(out, b)
	}
	sort.Strings(out)
	return out
}

// pairEdges partitions every (n1,n2) combination with n1 ranging over A's
// members and n2 over B's into present-in-G₀ vs. absent.
func pairEdges(g *datasets.Graph, aMembers, bMembers []string) (present, absent []EdgeRef) {
	for _, n1 := range aMembers {
		for _, n2 := range bMembers {
			ref := EdgeRef{Source: n1, Target: n2}
			if g.HasEdge(n1, n2) {
				present = append(present, ref)
			} else {
				absent = append(absent, ref)
			}
		}
	}
	return present, absent
}

// selfPairEdges partitions every unordered pair within A's members into
// present-in-G₀ vs. absent (each pair visited exactly once, by index rather
// than by value comparison).
func selfPairEdges(g *datasets.Graph, aMembers []string) (present, absent []EdgeRef) {
	for i := 0; i < len(aMembers); i++ {
		for j := i + 1; j < len(aMembers); j++ {
			n1, n2 := aMembers[i], aMembers[j]
			ref := EdgeRef{Source: n1, Target: n2}
			if g.HasEdge(n1, n2) {
				present = append(present, ref)
			} else {
				absent = append(absent, ref)
			}
		}
	}
	return present, absent
}

// emitPair applies the m ≤ M/2 density rule to one supernode pair (or
// self-pair, when src==dst) and appends the resulting superedge or
// positive/negative corrections.
func emitPair(src, dst string, present, absent []EdgeRef, edges *[]SummaryEdge, positive, negative *[]EdgeRef) {
	m := len(present)
	possible := m + len(absent)
	if possible == 0 {
		return
	}

	if 2*m <= possible {
		*positive = append(*positive, present...)
		return
	}

	density := float64(m) / float64(possible)
	*edges = append(*edges, SummaryEdge{Source: src, Target: dst, Weight: float64(m), Density: density})
	*negative = append(*negative, absent...)
}

func summaryNodes(roots []string, members map[string][]string) []SummaryNode {
	nodes := make([]SummaryNode, 0, len(roots))
	for _, root := range roots {
		nodes = append(nodes, SummaryNode{ID: root, Size: len(members[root])})
	}
	return nodes
}

func buildInitialGraph(g *datasets.Graph) InitialGraph {
	index := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		index[n] = i
	}

	nodes := make([]InitialNode, len(g.Nodes))
	for i, n := range g.Nodes {
		nodes[i] = InitialNode{ID: i, Degree: g.Degree(n)}
	}

	edges := make([]InitialEdge, len(g.Edges))
	for i, e := range g.Edges {
		edges[i] = InitialEdge{Source: index[e.Source], Target: index[e.Target], Weight: e.Weight}
	}

	return InitialGraph{
		Directed: g.Directed,
		Sampled: false,
		NodeCount: len(g.Nodes),
		EdgeCount: len(g.Edges),
		Nodes: nodes,
		Edges: edges,
	}
}

func buildStats(g *datasets.Graph, sg SummaryGraph, selfLoops, positives, negatives int, totalReward int64) Stats {
	initialNodes := len(g.Nodes)
	initialEdges := g.TotalEdgeCount()

	var compressionRatio float64
	if denom := initialNodes + initialEdges; denom != 0 {
		compressionRatio = float64(sg.NodeCount+sg.EdgeCount) / float64(denom)
	}

	stats := Stats{
		Initial: InitialStats{Nodes: initialNodes, Edges: initialEdges},
		Summary: SummaryStats{Supernodes: sg.NodeCount, Superedges: sg.EdgeCount, CorrectionEdges: sg.CorrectionEdgeCount},
		CompressionRatio: compressionRatio,
		TotalReward: totalReward,
	}

	if sg.NodeCount > 0 {
		avg := float64(initialNodes) / float64(sg.NodeCount)
		stats.AvgSupernodeSize = &avg
	}
	stats.CorrectionBreakdown = &CorrectionBreakdown{Positive: positives, Negative: negatives}

	return stats
}
