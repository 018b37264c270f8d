// Package obsrand centralizes the seeded randomness Poligras needs for
// reproducible runs: the group-partitioner's hash permutation and the
// policy network's draws each come from an explicitly seeded source, so
// that two runs with identical seed and hyperparameters produce identical
// merge sequences.
package obsrand

import "math/rand"

// Source wraps a *rand.Rand together with the seed it was built from, so
// callers can log or replay the exact draw that produced a given run.
type Source struct {
	seed int64
	rng  *rand.Rand
}

// New returns a Source seeded deterministically from seed.
func New(seed int64) *Source {
	return &Source{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Seed reports the seed this Source was constructed with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Permutation returns a fresh uniformly random permutation of [0,n), using
// Fisher-Yates via the standard library's Shuffle.
func (s *Source) Permutation(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	s.rng.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
	return perm
}

// IntPair draws two distinct integers uniformly from [0,n), used by the
// policy's diagonal-argmax fallback.
func (s *Source) IntPair(n int) (int, int) {
	a := s.rng.Intn(n)
	b := s.rng.Intn(n - 1)
	if b >= a {
		b++
	}
	return a, b
}

// Float64 returns a pseudo-random number in [0,1), used by dropout masks.
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}
