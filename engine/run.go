package engine

import (
	"context"

	"github.com/katalvlaran/poligras/policy"
	"github.com/katalvlaran/poligras/reward"
	"github.com/katalvlaran/poligras/summary"
)

// minSeedReward is the sentinel "worse than anything real" value the inner
// loop's best-so-far starts from each outer iteration, mirroring the
// reference's literal -1000000.
const minSeedReward = -1_000_000

// ratioBeforeCount5 and ratioAfter are the acceptance-margin ratios used by
// the inner loop's accept/reject comparison.
const (
	ratioBeforeCount5 = 0.001
	ratioAfter = 0.01
)

// Run executes the outer/inner merge loop starting from initial, returning
// the best state found across cfg.Counts outer iterations. It checks ctx at
// the top of every inner attempt and between outer iterations; on
// cancellation, the last committed best state is returned alongside the
// context's error ("Cancellation").
func (e *Engine) Run(ctx context.Context, initial *State) (*State, error) {
	best := initial.Clone()
	maxRewardByInnerIter := int64(0)

	for count := 0; count < e.cfg.Counts; count++ {
		if err := ctx.Err(); err != nil {
			return best, err
		}

		innerBest := int64(minSeedReward)
		badCounter := 0

		ratio := ratioBeforeCount5
		if count >= 5 {
			ratio = ratioAfter
		}

		for {
			if err := ctx.Err(); err != nil {
				return best, err
			}

			curr := best.Clone()
			countReward, err := e.innerAttempt(curr)
			if err != nil {
				return best, err
			}

			if float64(countReward) > float64(innerBest)*(1+ratio) {
				innerBest = countReward
				badCounter = 0
				best = curr.Clone()
			} else {
				badCounter++
			}

			if badCounter == e.cfg.BadCounterLimit {
				break
			}
		}

		if innerBest > maxRewardByInnerIter {
			maxRewardByInnerIter = innerBest
		} else if float64(innerBest) < float64(maxRewardByInnerIter)/3 {
			if e.cfg.Logger != nil {
				e.cfg.Logger.Info("engine: outer iteration %d fell below 1/3 of running max reward (%d < %d/3), re-partitioning", count, innerBest, maxRewardByInnerIter)
			}
			maxRewardByInnerIter = 0
			buckets, err := e.partitioner.Partition(best.Members, e.cfg.GroupSize)
			if err != nil {
				return best, err
			}
			best.Buckets = buckets
		}

		if e.cfg.Logger != nil {
			e.cfg.Logger.Info("engine: outer iteration %d done, best reward %d, %d supernodes remain", count, innerBest, len(best.Members))
		}
	}

	return best, nil
}

// innerAttempt traverses every bucket once, picking and scoring one
// candidate pair per bucket of size >= 3, applying accepted merges in
// place onto curr, and taking one REINFORCE step over everything this
// traversal recorded.
func (e *Engine) innerAttempt(curr *State) (int64, error) {
	var countReward int64
	var trace policy.Trace

	for bi, bucket := range curr.Buckets {
		if len(bucket) < 3 {
			continue
		}

		indices := make([]int, len(bucket))
		for i, root := range bucket {
			indices[i] = e.nodeIdx[root]
		}
		x, err := curr.Features.Gather(indices)
		if err != nil {
			return 0, err
		}

		cache, err := e.net.Forward(x)
		if err != nil {
			return 0, err
		}
		row, col, logProb := policy.SelectAction(cache.Probs, len(bucket), e.rngPolicy)

		n1, n2 := bucket[row], bucket[col]
		sizeOf := func(x string) int64 { return int64(len(curr.Members[x])) }
		delta, patch, err := reward.Evaluate(curr.Graph, sizeOf, n1, n2)
		if err != nil {
			return 0, err
		}
		trace.Record(cache, row, col, logProb, float64(delta))

		if delta > 0 {
			countReward += delta
			if err := e.applyMerge(curr, n1, n2, delta, patch); err != nil {
				return 0, err
			}
			curr.Buckets[bi] = append(bucket[:col:col], bucket[col+1:]...)
		}
	}

	if standardized, ok := trace.Standardized(); ok {
		for i, call := range trace.Calls {
			if err := e.net.Accumulate(call.Cache, call.Row, call.Col, standardized[i]); err != nil {
				return 0, err
			}
		}
		e.net.Step()
	}

	return countReward, nil
}

// applyMerge commits patch onto curr.Graph, retires n2, accumulates its
// feature row into n1's, folds its membership into n1's, and appends a
// timeline snapshot of the merge.
func (e *Engine) applyMerge(curr *State, n1, n2 string, delta int64, patch *reward.Patch) error {
	if err := patch.Apply(curr.Graph); err != nil {
		return err
	}

	n2Row, err := curr.Features.Row(e.nodeIdx[n2])
	if err != nil {
		return err
	}
	if err := curr.Features.AddRowInPlace(e.nodeIdx[n1], n2Row); err != nil {
		return err
	}

	curr.Members[n1] = append(curr.Members[n1], curr.Members[n2]...)
	delete(curr.Members, n2)

	if err := curr.Graph.RemoveVertex(n2); err != nil {
		return err
	}

	curr.Timeline = append(curr.Timeline, e.timelineEntry(curr, n1, n2, delta))
	return nil
}

// timelineEntry derives one per-merge statistics snapshot: supernode and
// edge counts after the merge, the running summarisation ratio, and the
// average supernode degree.
func (e *Engine) timelineEntry(curr *State, n1, n2 string, delta int64) summary.TimelineEntry {
	stepIndex := len(curr.Timeline)
	supernodeCount := len(curr.Members)
	edgeCount := curr.Graph.EdgeCount()
	nodeCount := e.cfg.InitialNodeCount

	var summarisationRatio float64
	if denom := e.cfg.InitialNodeCount + e.cfg.InitialEdgeCount; denom != 0 {
		summarisationRatio = float64(supernodeCount+edgeCount) / float64(denom)
	}

	var avgDegree float64
	if supernodeCount > 0 {
		if e.cfg.Directed {
			avgDegree = float64(edgeCount) / float64(supernodeCount)
		} else {
			avgDegree = 2.0 * float64(edgeCount) / float64(supernodeCount)
		}
	}

	return summary.TimelineEntry{
		N1: n1,
		N2: n2,
		Stats: summary.TimelineStep{
			StepIndex: stepIndex,
			Reward: delta,
			SummarisationRatio: summarisationRatio,
			NodeCount: nodeCount,
			EdgeCount: edgeCount,
			SupernodeCount: supernodeCount,
			AvgDegree: avgDegree,
		},
	}
}
