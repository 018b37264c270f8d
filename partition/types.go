// Package partition implements the group partitioner: it buckets the
// current supernodes into disjoint groups so the merge engine only ever
// searches for a pair within a single group at a time, instead of over the
// whole supergraph. Bucketing uses a locality-sensitive hash permutation
// over the original (fixed) graph's adjacency, so supernodes whose members
// are close in the original graph tend to land in the same bucket.
package partition

import (
	"errors"
	"sort"

	"github.com/katalvlaran/poligras/internal/obsrand"
)

// ErrGroupSizeNotPositive indicates a non-positive group size was supplied.
var ErrGroupSizeNotPositive = errors.New("partition: group size must be > 0")

// OriginalGraph is the fixed, never-mutated neighbor index of the original
// input graph that bucketing hashes against. It never changes across merges
// — only the supernode membership sets passed to Partition do.
type OriginalGraph struct {
	order     []string
	index     map[string]int
	neighbors map[string][]string
}

// NewOriginalGraph builds an OriginalGraph from every original vertex ID and
// its neighbor list. order fixes the indexing used by the hash permutation,
// and must be identical across every call to Partition within a run.
func NewOriginalGraph(order []string, neighbors map[string][]string) *OriginalGraph {
	idx := make(map[string]int, len(order))
	for i, v := range order {
		idx[v] = i
	}
	return &OriginalGraph{order: order, index: idx, neighbors: neighbors}
}

// NumNodes returns the number of original vertices.
func (o *OriginalGraph) NumNodes() int { return len(o.order) }

// Partitioner assigns current supernodes to buckets using a fresh hash
// permutation drawn from a seeded source on every call.
type Partitioner struct {
	orig *OriginalGraph
	rng  *obsrand.Source
}

// New returns a Partitioner hashing against orig and drawing randomness
// from rng.
func New(orig *OriginalGraph, rng *obsrand.Source) *Partitioner {
	return &Partitioner{orig: orig, rng: rng}
}

type scoredRoot struct {
	root string
	fA   int
}

func sortScored(s []scoredRoot) {
	sort.Slice(s, func(i, j int) bool {
		if s[i].fA != s[j].fA {
			return s[i].fA < s[j].fA
		}
		return s[i].root < s[j].root
	})
}
