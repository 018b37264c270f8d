package dynamic

import "github.com/katalvlaran/poligras/summary"

// FromOutput builds a working State from a previously encoded summary
// output (as produced by summary.Encode or a prior dynamic.Apply), under
// the given directedness. Membership is copied so the caller's Output is
// never mutated in place.
func FromOutput(out *summary.Output, directed bool) *State {
	members := make(map[string][]string, len(out.Artifacts.Supernodes.Members))
	for root, ms := range out.Artifacts.Supernodes.Members {
		cp := make([]string, len(ms))
		copy(cp, ms)
		members[root] = cp
	}
	nodeToSuper := make(map[string]string, len(out.Artifacts.Supernodes.NodeToSupernode))
	for n, root := range out.Artifacts.Supernodes.NodeToSupernode {
		nodeToSuper[n] = root
	}

	s := &State{
		Directed: directed,
		Members: members,
		NodeToSupernode: nodeToSuper,
		SelfLoops: out.Artifacts.SelfLoops,
		Superedges: make(map[PairKey]struct{}),
		Positive: make(map[PairKey]map[summary.EdgeRef]struct{}),
		Negative: make(map[PairKey]map[summary.EdgeRef]struct{}),
	}

	for _, e := range out.Graphs.Summary.Edges {
		s.Superedges[keyFor(directed, e.Source, e.Target)] = struct{}{}
	}
	for _, ref := range out.Artifacts.Corrections.Positive {
		key := keyFor(directed, nodeToSuper[ref.Source], nodeToSuper[ref.Target])
		s.addRef(s.Positive, key, ref)
	}
	for _, ref := range out.Artifacts.Corrections.Negative {
		key := keyFor(directed, nodeToSuper[ref.Source], nodeToSuper[ref.Target])
		s.addRef(s.Negative, key, ref)
	}

	return s
}

func (s *State) addRef(set map[PairKey]map[summary.EdgeRef]struct{}, key PairKey, ref summary.EdgeRef) {
	if set[key] == nil {
		set[key] = make(map[summary.EdgeRef]struct{})
	}
	set[key][ref] = struct{}{}
}
