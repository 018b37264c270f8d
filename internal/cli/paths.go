package cli

import (
	"os"
	"path/filepath"

	"github.com/katalvlaran/poligras/datasets"
	"github.com/katalvlaran/poligras/engine"
	"github.com/katalvlaran/poligras/linalg"
	"github.com/katalvlaran/poligras/partition"
	"github.com/katalvlaran/poligras/supergraph"
)

// datasetDir is the per-dataset directory under the configured data root
// holding every input, snapshot, and output file for that dataset.
func datasetDir(dataset string) string {
	return filepath.Join(cfg.DataDir, dataset)
}

func graphPath(dataset string) string { return filepath.Join(datasetDir(dataset), dataset+"_graph") }
func featPath(dataset string) string { return filepath.Join(datasetDir(dataset), dataset+"_feat") }
func snapshotPath(dataset string) string {
	return filepath.Join(datasetDir(dataset), dataset+"_graph_summary")
}
func outputPath(dataset string) string { return filepath.Join(datasetDir(dataset), "output.json") }
func dynamicOutputPath(dataset string) string {
	return filepath.Join(datasetDir(dataset), "output_dynamic.json")
}

// ensureDatasetDir creates the dataset directory if it doesn't already
// exist, mirroring the pack's Config.EnsureDataDir helper.
func ensureDatasetDir(dataset string) error {
	return os.MkdirAll(datasetDir(dataset), 0o755)
}

// buildInitialState constructs the merge engine's starting point from a
// freshly loaded dataset: one singleton supernode per original node, with
// every non-self-loop edge of g materialized (a lone edge between two
// size-1 supernodes always exceeds half of its one possible pair). Self-loop
// edges of g contribute zero possible intra-cluster pairs for a singleton
// supernode, so they are never staged onto the supergraph itself — they
// surface only via datasets.Graph.SelfLoops in the encoded output.
func buildInitialState(g *datasets.Graph, feat *datasets.Features) (*engine.State, *partition.OriginalGraph, map[string]int, error) {
	h := supergraph.NewGraph()
	members := make(map[string][]string, len(g.Nodes))
	nodeIdx := make(map[string]int, len(g.Nodes))
	neighbors := make(map[string][]string, len(g.Nodes))

	for i, n := range g.Nodes {
		if err := h.AddVertex(n); err != nil {
			return nil, nil, nil, err
		}
		members[n] = []string{n}
		nodeIdx[n] = i
		neighbors[n] = g.Neighbors(n)
	}

	for _, e := range g.Edges {
		if e.Source == e.Target || h.HasEdge(e.Source, e.Target) {
			continue
		}
		if err := h.AddEdge(e.Source, e.Target, 1, true); err != nil {
			return nil, nil, nil, err
		}
	}

	featDense, err := linalg.NewDense(len(feat.Rows), feat.Dim)
	if err != nil {
		return nil, nil, nil, err
	}
	for i, row := range feat.Rows {
		if err := featDense.SetRow(i, row); err != nil {
			return nil, nil, nil, err
		}
	}

	orig := partition.NewOriginalGraph(g.Nodes, neighbors)
	state := &engine.State{Graph: h, Members: members, Features: featDense}
	return state, orig, nodeIdx, nil
}
