// Package reward implements the reward evaluator: given two candidate
// supernodes, it computes the exact description-length delta that merging
// them would produce and stages every graph mutation the merge implies —
// correction-set entries that would be dropped or created, superedge
// materialization flips, weight sums, and the one new self-loop a merge may
// introduce — without touching the graph until the caller decides the delta
// is worth taking.
package reward

import (
	"fmt"

	"github.com/katalvlaran/poligras/supergraph"
)

// PairKey names an unordered pair of supernode roots whose edge a Patch
// touches. For a self-loop, A and B are equal.
type PairKey struct {
	A, B string
}

// NewEdge describes an edge Patch.Apply must create because neither endpoint
// had one before the merge.
type NewEdge struct {
	Weight       int64
	Materialized bool
}

// Patch collects every mutation a candidate merge of two supernodes implies.
// It is built by Evaluate and only ever committed via Apply, and only when
// the caller has decided the reward is positive.
type Patch struct {
	// Weights holds new weights for edges that already exist.
	Weights map[PairKey]int64
	// Materialize holds materialization flips for edges that already exist.
	Materialize map[PairKey]bool
	// NewEdges holds edges that must be created because they didn't exist
	// before the merge (always incident to n1, since n2 is retired).
	NewEdges map[PairKey]NewEdge
}

func newPatch() *Patch {
	return &Patch{
		Weights: make(map[PairKey]int64),
		Materialize: make(map[PairKey]bool),
		NewEdges: make(map[PairKey]NewEdge),
	}
}

func (p *Patch) setWeight(a, b string, w int64) {
	p.Weights[PairKey{A: a, B: b}] = w
}

func (p *Patch) setMaterialized(a, b string, v bool) {
	p.Materialize[PairKey{A: a, B: b}] = v
}

func (p *Patch) addEdge(a, b string, w int64, mat bool) {
	p.NewEdges[PairKey{A: a, B: b}] = NewEdge{Weight: w, Materialized: mat}
}

// Apply commits every staged mutation onto g. Weight and materialization
// changes are merged onto the edge's current state (a patch may touch only
// one of the two fields); new edges are then created. Callers are
// responsible for retiring the absorbed supernode (n2) separately, since
// that is a vertex-level operation the patch does not model.
func (p *Patch) Apply(g *supergraph.Graph) error {
	touched := make(map[PairKey]struct{}, len(p.Weights)+len(p.Materialize))
	for k := range p.Weights {
		touched[k] = struct{}{}
	}
	for k := range p.Materialize {
		touched[k] = struct{}{}
	}
	for k := range touched {
		e, ok := g.GetEdge(k.A, k.B)
		if !ok {
			return fmt.Errorf("reward: patch references missing edge (%s,%s): %w: %w", k.A, k.B, ErrInvariantViolation, supergraph.ErrEdgeNotFound)
		}
		w := e.Weight
		if nw, ok := p.Weights[k]; ok {
			w = nw
		}
		mat := e.Materialized
		if nm, ok := p.Materialize[k]; ok {
			mat = nm
		}
		if err := g.SetEdge(k.A, k.B, w, mat); err != nil {
			return err
		}
	}
	for k, ne := range p.NewEdges {
		if err := g.AddEdge(k.A, k.B, ne.Weight, ne.Materialized); err != nil {
			return err
		}
	}
	return nil
}
