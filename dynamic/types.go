// Package dynamic implements the dynamic update engine: it applies a
// validated stream of single-edge add/remove events onto an already-encoded
// summary, promoting pairs to superedges or demoting them back to tracked
// corrections as the ½-density rule crosses, without ever re-running the
// merge engine.
//
// The supernode partition is frozen here — only superedge presence and the
// two correction sets change. Updates are applied strictly in stream order:
// a promotion triggered by an early update can change how a later update
// against the same pair is handled ("dynamic update
// confluence"), so batching or reordering is never permitted.
package dynamic

import "github.com/katalvlaran/poligras/summary"

// Operation is the normalized add/remove action of one update record.
type Operation int

const (
	// OpAdd inserts an edge into the original graph this summary tracks.
	OpAdd Operation = iota
	// OpRemove deletes an edge from the original graph this summary tracks.
	OpRemove
)

// Update is one normalized entry of an update stream: an operation plus the
// two original-node endpoints it names.
type Update struct {
	Operation Operation
	Source    string
	Target    string
}

// PairKey names an unordered-or-directed supernode pair a State tracks.
// For a self-pair (an intra-cluster update), A equals B.
type PairKey struct {
	A, B string
}

// State is the mutable working copy of an encoded summary that Apply
// updates in place: frozen membership, the live superedge set, and the two
// correction sets, each keyed by supernode pair.
type State struct {
	Directed        bool
	Members         map[string][]string
	NodeToSupernode map[string]string
	SelfLoops       int

	// Superedges holds every pair currently materialized as a superedge.
	// Its weight is always derived as possibleEdges(key) - len(Negative[key]),
	// never stored directly, so the density invariant cannot drift from the
	// tracked correction set.
	Superedges map[PairKey]struct{}

	// Positive tracks, for each non-superedge pair with at least one known
	// present edge, the set of present (u,v) pairs.
	Positive map[PairKey]map[summary.EdgeRef]struct{}

	// Negative tracks, for each superedge pair with at least one known
	// absent pair, the set of absent (u,v) pairs.
	Negative map[PairKey]map[summary.EdgeRef]struct{}
}

// keyFor canonicalizes the supernode pair (a,b) into the key State tracks
// it under. Self-pairs always collapse to {a,a}. Undirected cross pairs
// are sorted so (A,B) and (B,A) name the same key; directed cross pairs
// keep the given order, since (A,B) and (B,A) are distinct directed edges.
func keyFor(directed bool, a, b string) PairKey {
	if a == b {
		return PairKey{A: a, B: a}
	}
	if directed || a <= b {
		return PairKey{A: a, B: b}
	}
	return PairKey{A: b, B: a}
}

// possibleEdges returns M, the number of original-node pairs a tracked key
// could ever cover. Cross pairs are |A|·|B|. Self-pairs count unordered
// combinations for undirected graphs and ordered pairs for directed graphs.
func (s *State) possibleEdges(key PairKey) int {
	if key.A == key.B {
		n := len(s.Members[key.A])
		if s.Directed {
			return n * (n - 1)
		}
		return n * (n - 1) / 2
	}
	return len(s.Members[key.A]) * len(s.Members[key.B])
}

// allPairs enumerates every original-node pair a tracked key covers, in
// the same order summary.Encode would have generated them: A's members
// crossed with B's for a cross pair, or index-ordered combinations within
// A's members for a self-pair (ordered combinations when directed).
func (s *State) allPairs(key PairKey) []summary.EdgeRef {
	if key.A == key.B {
		members := s.Members[key.A]
		out := make([]summary.EdgeRef, 0, s.possibleEdges(key))
		if s.Directed {
			for i := range members {
				for j := range members {
					if i != j {
						out = append(out, summary.EdgeRef{Source: members[i], Target: members[j]})
					}
				}
			}
			return out
		}
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				out = append(out, summary.EdgeRef{Source: members[i], Target: members[j]})
			}
		}
		return out
	}

	aMembers, bMembers := s.Members[key.A], s.Members[key.B]
	out := make([]summary.EdgeRef, 0, len(aMembers)*len(bMembers))
	for _, n1 := range aMembers {
		for _, n2 := range bMembers {
			out = append(out, summary.EdgeRef{Source: n1, Target: n2})
		}
	}
	return out
}
