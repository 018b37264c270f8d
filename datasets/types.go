package datasets

// WeightedEdge is one edge of an input graph file. Weight defaults to 1.0
// when absent in the source file.
type WeightedEdge struct {
	Source string
	Target string
	Weight float64
}

// Graph is the gob-encoded container for an input graph file, with nodes
// listed in the iteration order that Features rows must follow. At most
// one edge is stored per endpoint pair; self-loops are legal and are
// tracked like any other edge, never collapsed.
type Graph struct {
	Directed bool
	Nodes    []string
	Edges    []WeightedEdge
}

// Features is the gob-encoded container for an input feature file: Rows
// holds a |V|×Dim matrix, one row per node in Graph.Nodes order, and Dim
// records the row width.
type Features struct {
	Dim  int
	Rows [][]float64
}

// index returns a lookup from node ID to its position in Nodes.
func (g *Graph) index() map[string]int {
	idx := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		idx[n] = i
	}
	return idx
}

// adjacency builds, for every node, the set of distinct neighbors reachable
// by one edge (self excluded). For an undirected graph an edge (u,v)
// contributes to both u's and v's neighbor sets; for a directed graph it
// contributes only to u's.
func (g *Graph) adjacency() map[string]map[string]struct{} {
	adj := make(map[string]map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		adj[n] = make(map[string]struct{})
	}
	for _, e := range g.Edges {
		if e.Source == e.Target {
			continue
		}
		adj[e.Source][e.Target] = struct{}{}
		if !g.Directed {
			adj[e.Target][e.Source] = struct{}{}
		}
	}
	return adj
}

// Neighbors returns node's distinct neighbors, excluding node itself.
func (g *Graph) Neighbors(node string) []string {
	set := g.adjacency()[node]
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	return out
}

// EdgeWeight reports the weight of the edge between u and v (either
// direction, when undirected) and whether it exists.
func (g *Graph) EdgeWeight(u, v string) (float64, bool) {
	for _, e := range g.Edges {
		if e.Source == u && e.Target == v {
			return e.Weight, true
		}
		if !g.Directed && e.Source == v && e.Target == u {
			return e.Weight, true
		}
	}
	return 0, false
}

// HasEdge reports whether an edge exists between u and v.
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.EdgeWeight(u, v)
	return ok
}

// SelfLoops returns the node IDs that carry a self-loop edge in G₀, i.e.
// an edge (n,n). These are tracked separately and never summarized.
func (g *Graph) SelfLoops() []string {
	var loops []string
	for _, e := range g.Edges {
		if e.Source == e.Target {
			loops = append(loops, e.Source)
		}
	}
	return loops
}

// Degree returns node's degree, counting a self-loop twice, matching the
// networkx convention for both Graph and DiGraph degree views.
func (g *Graph) Degree(node string) int {
	degree := 0
	for _, e := range g.Edges {
		switch {
		case e.Source == node && e.Target == node:
			degree += 2
		case e.Source == node || e.Target == node:
			degree++
		}
	}
	return degree
}

// EdgeCount returns the number of non-self-loop edges in G₀.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, e := range g.Edges {
		if e.Source != e.Target {
			count++
		}
	}
	return count
}

// TotalEdgeCount returns the number of stored edges including self-loops,
// matching networkx's number_of_edges convention used throughout the
// stats block.
func (g *Graph) TotalEdgeCount() int {
	return len(g.Edges)
}

// Sample returns a copy of g restricted to its first n nodes (in Nodes
// order) and the edges induced by that subset, for callers that want a
// capped snapshot; summary.Encode itself never truncates.
func (g *Graph) Sample(n int) *Graph {
	if n < 0 || n >= len(g.Nodes) {
		n = len(g.Nodes)
	}
	kept := make(map[string]struct{}, n)
	nodes := make([]string, n)
	copy(nodes, g.Nodes[:n])
	for _, id := range nodes {
		kept[id] = struct{}{}
	}

	var edges []WeightedEdge
	for _, e := range g.Edges {
		_, okS := kept[e.Source]
		_, okT := kept[e.Target]
		if okS && okT {
			edges = append(edges, e)
		}
	}

	return &Graph{Directed: g.Directed, Nodes: nodes, Edges: edges}
}
