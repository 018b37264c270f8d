package cli

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/katalvlaran/poligras/summary"
)

// fitSnapshot is the `{dataset}_graph_summary` payload: everything encode
// needs to run the summary encoder without re-running the merge engine. It
// is a thin CLI-level container, not a core type — the merge engine itself
// only ever holds its best-known state in process, for the duration of one
// Run call.
type fitSnapshot struct {
	Directed   bool
	Members    map[string][]string
	Timeline   []summary.TimelineEntry
	Parameters summary.Parameters
}

func saveSnapshot(path string, snap *fitSnapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cli: create %s: %w", path, err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(snap); err != nil {
		return fmt.Errorf("cli: encode %s: %w", path, err)
	}
	return nil
}

func loadSnapshot(path string) (*fitSnapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cli: open %s: %w", path, err)
	}
	defer f.Close()
	var snap fitSnapshot
	if err := gob.NewDecoder(f).Decode(&snap); err != nil {
		return nil, fmt.Errorf("cli: decode %s: %w", path, err)
	}
	return &snap, nil
}
