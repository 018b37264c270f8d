package reward

import (
	"github.com/katalvlaran/poligras/supergraph"
)

// gt2 reports whether lhs > rhs/2, computed by cross-multiplication so the
// comparison is exact for integer operands (no float truncation drift).
func gt2(lhs, rhs int64) bool { return 2*lhs > rhs }

// gt4 reports whether lhs > rhs/4, computed by cross-multiplication.
func gt4(lhs, rhs int64) bool { return 4*lhs > rhs }

// pairCount returns n*(n-1)/2, the number of distinct pairs among n members.
// The product of two consecutive integers is always even, so this division
// is exact.
func pairCount(n int64) int64 { return n * (n - 1) / 2 }

// Evaluate computes the description-length delta of merging supernodes n1
// and n2 in g, and stages every edge mutation the merge would require. It
// never mutates g; callers apply the returned Patch only if delta > 0.
//
// sizeOf(x) must return the current cardinality of supernode x (the number
// of original vertices it represents).
func Evaluate(g *supergraph.Graph, sizeOf func(string) int64, n1, n2 string) (int64, *Patch, error) {
	if n1 == n2 {
		return 0, nil, ErrSameSupernode
	}

	var delta int64
	patch := newPatch()

	sizeA := sizeOf(n1)
	sizeB := sizeOf(n2)
	sizeSum := sizeA + sizeB
	pairA := pairCount(sizeA)
	pairB := pairCount(sizeB)
	crossAB := sizeA * sizeB

	nei1 := g.Neighbors(n1)
	nei2 := g.Neighbors(n2)
	in2 := make(map[string]bool, len(nei2))
	for _, v := range nei2 {
		in2[v] = true
	}
	in1 := make(map[string]bool, len(nei1))
	for _, v := range nei1 {
		in1[v] = true
	}

	var common, excl1, excl2 []string
	for _, sd := range nei1 {
		if sd == n2 {
			continue
		}
		if in2[sd] {
			common = append(common, sd)
		} else {
			excl1 = append(excl1, sd)
		}
	}
	for _, sd := range nei2 {
		if sd == n1 {
			continue
		}
		if !in1[sd] {
			excl2 = append(excl2, sd)
		}
	}

	// Neighbors shared by both n1 and n2: their correction entries toward
	// sd collapse into a single superedge entry wherever possible.
	for _, sd := range common {
		sizeSD := sizeOf(sd)
		thresh := sizeSum * sizeSD

		eA, _ := g.GetEdge(n1, sd)
		eB, _ := g.GetEdge(n2, sd)
		w1, w2 := eA.Weight, eB.Weight

		if eA.Materialized {
			if eB.Materialized {
				delta++
			} else {
				if gt2(w1+w2, thresh) {
					delta += 2*w2 - sizeB*sizeSD
				} else {
					delta += 1 + sizeA*sizeSD - 2*w1
					patch.setMaterialized(n1, sd, false)
				}
			}
		} else {
			if eB.Materialized {
				if gt2(w1+w2, thresh) {
					delta += 2*w1 - sizeA*sizeSD
					patch.setMaterialized(n1, sd, true)
				} else {
					delta += 1 + sizeB*sizeSD - 2*w2
				}
			}
		}
		patch.setWeight(n1, sd, w1+w2)
	}

	// Neighbors of n1 alone: n2 never touched sd, so only n1's own
	// correction entry toward sd can shrink or vanish.
	for _, sd := range excl1 {
		sizeSD := sizeOf(sd)
		thresh := sizeSum * sizeSD

		eA, _ := g.GetEdge(n1, sd)
		w1 := eA.Weight
		if eA.Materialized {
			if gt2(w1, thresh) {
				delta += -sizeB * sizeSD
			} else {
				delta += 1 + sizeA*sizeSD - 2*w1
				patch.setMaterialized(n1, sd, false)
			}
		}
	}

	// Neighbors of n2 alone: n1 gains a brand-new edge toward sd, carrying
	// n2's former weight and correction status.
	for _, sd := range excl2 {
		sizeSD := sizeOf(sd)
		thresh := sizeSum * sizeSD

		eB, _ := g.GetEdge(n2, sd)
		w2 := eB.Weight
		if eB.Materialized {
			if gt2(w2, thresh) {
				delta += -sizeA * sizeSD
				patch.addEdge(n1, sd, w2, true)
			} else {
				delta += 1 + sizeB*sizeSD - 2*w2
				patch.addEdge(n1, sd, w2, false)
			}
		} else {
			patch.addEdge(n1, sd, w2, false)
		}
	}

	// The interaction between n1, n2, and their two self-loops is the
	// densest part of the merge: whether the A-B edge existed, whether
	// either endpoint already had a self-loop, and how those three weights
	// sum against the merged cluster's own pair budget together decide
	// whether n1's self-loop should end up materialized.
	abEdge, abExists := g.GetEdge(n1, n2)
	loopA, loopAExists := g.GetEdge(n1, n1)
	loopB, loopBExists := g.GetEdge(n2, n2)

	if abExists {
		wAB := abEdge.Weight
		if abEdge.Materialized {
			if loopAExists {
				wAA := loopA.Weight
				if loopA.Materialized {
					if loopBExists {
						wBB := loopB.Weight
						if loopB.Materialized {
							delta += 2
						} else {
							if gt4(wBB+wAB+wAA, sizeSum*(sizeSum-1)) {
								delta += 1 + 2*wBB - pairB
							} else {
								delta += 1 + pairA - 2*wAA
								delta += 1 + crossAB - 2*wAB
								patch.setMaterialized(n1, n1, false)
							}
						}
						patch.setWeight(n1, n1, wAA+wAB+wBB)
					} else {
						if gt4(wAA+wAB, sizeSum*(sizeSum-1)) {
							delta += 1 - pairB
						} else {
							delta += 1 + pairA - 2*wAA
							delta += 1 + crossAB - 2*wAB
							patch.setMaterialized(n1, n1, false)
						}
						patch.setWeight(n1, n1, wAA+wAB)
					}
				} else {
					if loopBExists {
						wBB := loopB.Weight
						if loopB.Materialized {
							if gt4(wAA+wAB+wBB, sizeSum*(sizeSum-1)) {
								patch.setMaterialized(n1, n1, true)
								delta += 1 + 2*wAA - pairA
							} else {
								delta += 1 + crossAB - 2*wAB
								delta += 1 + pairB - 2*wBB
							}
						} else {
							if gt4(wAA+wAB+wBB, sizeSum*(sizeSum-1)) {
								patch.setMaterialized(n1, n1, true)
								delta += 2*wAA - pairA
								delta += 2*wBB - pairB
							} else {
								delta += 1 + crossAB - 2*wAB
							}
						}
						patch.setWeight(n1, n1, wAA+wAB+wBB)
					} else {
						if gt4(wAA+wAB, sizeSum*(sizeSum-1)) {
							patch.setMaterialized(n1, n1, true)
							delta += 2*wAA - pairA
							delta += -pairB
						} else {
							delta += 1 + crossAB - 2*wAB
						}
						patch.setWeight(n1, n1, wAA+wAB)
					}
				}
			} else {
				if loopBExists {
					wBB := loopB.Weight
					if loopB.Materialized {
						if gt4(wAB+wBB, sizeSum*(sizeSum-1)) {
							delta += 1 - pairA
							patch.addEdge(n1, n1, wAB+wBB, true)
						} else {
							delta += 1 + crossAB - 2*wAB
							delta += 1 + pairB - 2*wBB
							patch.addEdge(n1, n1, wAB+wBB, false)
						}
					} else {
						if gt4(wAB+wBB, sizeSum*(sizeSum-1)) {
							delta += 2*wBB - pairB
							delta += -pairA
							patch.addEdge(n1, n1, wAB+wBB, true)
						} else {
							delta += 1 + crossAB - 2*wAB
							patch.addEdge(n1, n1, wAB+wBB, false)
						}
					}
				} else {
					if gt4(wAB, sizeSum*(sizeSum-1)) {
						delta += -pairA
						delta += -pairB
						patch.addEdge(n1, n1, wAB, true)
					} else {
						delta += 1 + crossAB - 2*wAB
						patch.addEdge(n1, n1, wAB, false)
					}
				}
			}
		} else { // A-B edge exists but is not materialized
			if loopAExists {
				wAA := loopA.Weight
				if loopA.Materialized {
					if loopBExists {
						wBB := loopB.Weight
						if loopB.Materialized {
							if gt4(wAA+wAB+wBB, sizeSum*(sizeSum-1)) {
								delta += 1 + 2*wAB - crossAB
							} else {
								delta += 1 + pairA - 2*wAA
								delta += 1 + pairB - 2*wBB
								patch.setMaterialized(n1, n1, false)
							}
						} else {
							if gt4(wAA+wAB+wBB, sizeSum*(sizeSum-1)) {
								delta += 2*wAB - crossAB
								delta += 2*wBB - pairB
							} else {
								delta += 1 + pairA - 2*wAA
								patch.setMaterialized(n1, n1, false)
							}
						}
						patch.setWeight(n1, n1, wAA+wAB+wBB)
					} else {
						if gt4(wAA+wAB, sizeSum*(sizeSum-1)) {
							delta += 2*wAB - crossAB
							delta += -pairB
						} else {
							delta += 1 + pairA - 2*wAA
							patch.setMaterialized(n1, n1, false)
						}
						patch.setWeight(n1, n1, wAA+wAB)
					}
				} else {
					if loopBExists {
						wBB := loopB.Weight
						if loopB.Materialized {
							if gt4(wAA+wAB+wBB, sizeSum*(sizeSum-1)) {
								delta += 2*wAA - pairA
								delta += 2*wAB - crossAB
								patch.setMaterialized(n1, n1, true)
							} else {
								delta += 1 + pairB - 2*wBB
							}
						}
						patch.setWeight(n1, n1, wAA+wAB+wBB)
					} else {
						patch.setWeight(n1, n1, wAA+wAB)
					}
				}
			} else {
				if loopBExists {
					wBB := loopB.Weight
					if loopB.Materialized {
						if gt4(wAB+wBB, sizeSum*(sizeSum-1)) {
							delta += -pairA
							delta += 2*wAB - crossAB
							patch.addEdge(n1, n1, wAB+wBB, true)
						} else {
							delta += 1 + pairB - 2*wBB
							patch.addEdge(n1, n1, wAB+wBB, false)
						}
					} else {
						patch.addEdge(n1, n1, wAB+wBB, false)
					}
				} else {
					patch.addEdge(n1, n1, wAB, false)
				}
			}
		}
	} else { // n1 and n2 share no A-B edge
		if loopAExists {
			wAA := loopA.Weight
			if loopA.Materialized {
				if loopBExists {
					wBB := loopB.Weight
					if loopB.Materialized {
						if gt4(wAA+wBB, sizeSum*(sizeSum-1)) {
							delta++
							delta += -crossAB
						} else {
							delta += 1 + pairA - 2*wAA
							delta += 1 + pairB - 2*wBB
							patch.setMaterialized(n1, n1, false)
						}
					} else {
						if gt4(wAA+wBB, sizeSum*(sizeSum-1)) {
							delta += -crossAB
							delta += 2*wBB - pairB
						} else {
							delta += 1 + pairA - 2*wAA
							patch.setMaterialized(n1, n1, false)
						}
					}
					patch.setWeight(n1, n1, wAA+wBB)
				} else {
					if gt4(wAA, sizeSum*(sizeSum-1)) {
						delta += -crossAB
						delta += -pairB
					} else {
						delta += 1 + pairA - 2*wAA
						patch.setMaterialized(n1, n1, false)
					}
				}
			} else {
				if loopBExists {
					wBB := loopB.Weight
					if loopB.Materialized {
						if gt4(wAA+wBB, sizeSum*(sizeSum-1)) {
							delta += 2*wAA - pairA
							delta += -crossAB
							patch.setMaterialized(n1, n1, true)
						} else {
							delta += 1 + pairB - 2*wBB
						}
					}
					patch.setWeight(n1, n1, wAA+wBB)
				}
			}
		} else {
			if loopBExists {
				wBB := loopB.Weight
				if loopB.Materialized {
					if gt4(wBB, sizeSum*(sizeSum-1)) {
						delta += -pairA
						delta += -crossAB
						patch.addEdge(n1, n1, wBB, true)
					} else {
						patch.addEdge(n1, n1, wBB, false)
					}
				}
			}
		}
	}

	return delta, patch, nil
}
