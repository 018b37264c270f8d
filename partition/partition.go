package partition

// Partition buckets the current supernodes (named by their roots, each
// mapping to the original vertex IDs it currently represents) into
// contiguous groups of roughly groupSize, after sorting supernodes by the
// minimum hash value reachable from any of their members' original
// neighborhoods.
//
// The bucket count is floor(len(members)/groupSize); if that is zero (too
// few supernodes remain for even one full group), Partition returns no
// buckets at all, skipping merge search entirely rather than forcing an
// undersized group.
func (p *Partitioner) Partition(members map[string][]string, groupSize int) ([][]string, error) {
	if groupSize <= 0 {
		return nil, ErrGroupSizeNotPositive
	}

	numPartitions := len(members) / groupSize
	if numPartitions == 0 {
		return nil, nil
	}

	h := p.rng.Permutation(p.orig.NumNodes())

	scored := make([]scoredRoot, 0, len(members))
	for root, memberNodes := range members {
		scored = append(scored, scoredRoot{root: root, fA: p.hashOf(memberNodes, h)})
	}
	sortScored(scored)

	buckets := make([][]string, numPartitions)
	n := len(scored)
	for i := 0; i < numPartitions; i++ {
		lo := i * n / numPartitions
		hi := (i + 1) * n / numPartitions
		bucket := make([]string, 0, hi-lo)
		for _, s := range scored[lo:hi] {
			bucket = append(bucket, s.root)
		}
		buckets[i] = bucket
	}
	return buckets, nil
}

// hashOf computes F(A): the minimum permutation value reachable from any
// member v of A, looking at v itself and each of v's original neighbors.
func (p *Partitioner) hashOf(memberNodes []string, h []int) int {
	best := p.orig.NumNodes()
	for _, v := range memberNodes {
		fv := p.orig.NumNodes()
		if hv, ok := p.orig.index[v]; ok && h[hv] < fv {
			fv = h[hv]
		}
		for _, u := range p.orig.neighbors[v] {
			if hu, ok := p.orig.index[u]; ok && h[hu] < fv {
				fv = h[hu]
			}
		}
		if fv < best {
			best = fv
		}
	}
	return best
}
