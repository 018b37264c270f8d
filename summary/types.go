// Package summary implements the summary encoder: given the final
// supernode partition, it decides which supernode pairs become superedges,
// emits the two correction sets, and materializes the full output artifact.
package summary

// Parameters mirrors the run's merge-engine hyperparameters, embedded in
// Meta.
type Parameters struct {
	Counts    int     `json:"counts"`
	GroupSize int     `json:"group_size"`
	Hidden1   int     `json:"hidden_size1"`
	Hidden2   int     `json:"hidden_size2"`
	LR        float64 `json:"lr"`
	Dropout   float64 `json:"dropout"`
}

// Meta identifies the run that produced an Output.
type Meta struct {
	Dataset    string     `json:"dataset"`
	Algorithm  string     `json:"algorithm"`
	RunID      string     `json:"run_id"`
	Parameters Parameters `json:"parameters"`
}

// InitialStats reports the input graph's size.
type InitialStats struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}

// SummaryStats reports the encoded summary's size.
type SummaryStats struct {
	Supernodes      int `json:"supernodes"`
	Superedges      int `json:"superedges"`
	CorrectionEdges int `json:"correction_edges"`
}

// CorrectionBreakdown splits CorrectionEdges into adds vs. subtracts.
type CorrectionBreakdown struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
}

// Stats is the full verifiable-statistics block of the output artifact.
type Stats struct {
	Initial             InitialStats         `json:"initial"`
	Summary             SummaryStats         `json:"summary"`
	CompressionRatio    float64              `json:"compression_ratio"`
	TotalReward         int64                `json:"total_reward"`
	AvgSupernodeSize    *float64             `json:"avg_supernode_size,omitempty"`
	CorrectionBreakdown *CorrectionBreakdown `json:"correction_breakdown,omitempty"`
}

// InitialNode is one node of the initial-graph snapshot; id is the node's
// position in the original load order.
type InitialNode struct {
	ID     int `json:"id"`
	Degree int `json:"degree"`
}

// SummaryNode is one supernode of the encoded summary.
type SummaryNode struct {
	ID   string `json:"id"`
	Size int    `json:"size"`
}

// InitialEdge is one edge of the initial-graph snapshot.
type InitialEdge struct {
	Source int     `json:"source"`
	Target int     `json:"target"`
	Weight float64 `json:"weight"`
}

// SummaryEdge is one superedge of the encoded summary.
type SummaryEdge struct {
	Source  string  `json:"source"`
	Target  string  `json:"target"`
	Weight  float64 `json:"weight"`
	Density float64 `json:"density"`
}

// InitialGraph is the full (or capped, via datasets.Graph.Sample) snapshot
// of G₀ embedded in the output artifact.
type InitialGraph struct {
	Directed  bool          `json:"directed"`
	Sampled   bool          `json:"sampled"`
	NodeCount int           `json:"node_count"`
	EdgeCount int           `json:"edge_count"`
	Nodes     []InitialNode `json:"nodes"`
	Edges     []InitialEdge `json:"edges"`
}

// SummaryGraph is the encoded supergraph embedded in the output artifact.
type SummaryGraph struct {
	Directed            bool          `json:"directed"`
	Sampled             bool          `json:"sampled"`
	NodeCount           int           `json:"node_count"`
	EdgeCount           int           `json:"edge_count"`
	CorrectionEdgeCount int           `json:"correction_edge_count"`
	Nodes               []SummaryNode `json:"nodes"`
	Edges               []SummaryEdge `json:"edges"`
}

// GraphCollection bundles the before/after graph snapshots.
type GraphCollection struct {
	Initial InitialGraph `json:"initial"`
	Summary SummaryGraph `json:"summary"`
}

// TimelineStep is the per-merge statistics snapshot recorded in the
// output artifact's timeline.
type TimelineStep struct {
	StepIndex          int     `json:"step_index"`
	Reward             int64   `json:"reward"`
	SummarisationRatio float64 `json:"summarisation_ratio"`
	NodeCount          int     `json:"node_count"`
	EdgeCount          int     `json:"edge_count"`
	SupernodeCount     int     `json:"supernode_count"`
	AvgDegree          float64 `json:"avg_degree"`
}

// TimelineEntry records one accepted merge for external visualization.
type TimelineEntry struct {
	N1    string       `json:"n1"`
	N2    string       `json:"n2"`
	Stats TimelineStep `json:"stats"`
}

// EdgeRef is an (source,target) pair as it appears in a correction set.
type EdgeRef struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// SupernodeMembership is the forward and reverse membership maps.
type SupernodeMembership struct {
	Members         map[string][]string `json:"members"`
	NodeToSupernode map[string]string   `json:"node_to_supernode"`
}

// CorrectionSets holds the two correction lists: positive entries that must
// be added to reconstruct G, and negative entries that must be subtracted
// from a superedge's implied pairs.
type CorrectionSets struct {
	Positive []EdgeRef `json:"positive"`
	Negative []EdgeRef `json:"negative"`
}

// Artifacts bundles the reconstruction-recipe payload.
type Artifacts struct {
	Supernodes  SupernodeMembership `json:"supernodes"`
	Corrections CorrectionSets      `json:"corrections"`
	SelfLoops   int                 `json:"self_loops"`
}

// Output is the full JSON artifact emitted by the summary encoder and
// re-emitted in the same shape by the dynamic update engine after applying
// an update stream.
type Output struct {
	Meta      *Meta           `json:"meta,omitempty"`
	Stats     Stats           `json:"stats"`
	Graphs    GraphCollection `json:"graphs"`
	Timeline  []TimelineEntry `json:"timeline"`
	Artifacts Artifacts       `json:"artifacts"`
}
