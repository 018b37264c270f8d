package datasets

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
)

// LoadGraph reads and gob-decodes a Graph from path (e.g. `{dataset}_graph`).
// A missing file is ErrInputNotFound; a file that fails to decode is
// ErrInputMalformed. An edge whose weight is absent (zero) gets weight 1.
func LoadGraph(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("datasets: open %s: %w", path, ErrInputNotFound)
		}
		return nil, fmt.Errorf("datasets: open %s: %w", path, err)
	}
	defer f.Close()

	var g Graph
	if err := gob.NewDecoder(f).Decode(&g); err != nil {
		return nil, fmt.Errorf("datasets: decode %s: %w", path, ErrInputMalformed)
	}
	for i := range g.Edges {
		if g.Edges[i].Weight == 0 {
			g.Edges[i].Weight = 1
		}
	}
	return &g, nil
}

// SaveGraph gob-encodes g to path, creating or truncating the file.
func SaveGraph(path string, g *Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("datasets: create %s: %w", path, err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(g); err != nil {
		return fmt.Errorf("datasets: encode %s: %w", path, err)
	}
	return nil
}

// LoadFeatures reads and gob-decodes a Features container from path
// (e.g. `{dataset}_feat`), validating it against graph's node count.
func LoadFeatures(path string, graph *Graph) (*Features, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("datasets: open %s: %w", path, ErrInputNotFound)
		}
		return nil, fmt.Errorf("datasets: open %s: %w", path, err)
	}
	defer f.Close()

	var feat Features
	if err := gob.NewDecoder(f).Decode(&feat); err != nil {
		return nil, fmt.Errorf("datasets: decode %s: %w", path, ErrInputMalformed)
	}
	if len(feat.Rows) != len(graph.Nodes) {
		return nil, fmt.Errorf("datasets: %s has %d rows, graph has %d nodes: %w",
			path, len(feat.Rows), len(graph.Nodes), ErrDimensionMismatch)
	}
	return &feat, nil
}

// SaveFeatures gob-encodes feat to path, creating or truncating the file.
func SaveFeatures(path string, feat *Features) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("datasets: create %s: %w", path, err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(feat); err != nil {
		return fmt.Errorf("datasets: encode %s: %w", path, err)
	}
	return nil
}
