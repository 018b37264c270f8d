package policy

import (
	"math"

	"github.com/katalvlaran/poligras/internal/obsrand"
)

// SelectAction picks the merge-candidate cell out of a flattened n*n
// selection distribution: the highest-probability cell, unless that cell
// lies on the diagonal (a supernode paired with itself), in which case a
// uniformly random distinct pair is substituted. The returned log-prob is
// always of the original argmax cell's probability, computed before the
// fallback swaps in a different pair — never the fallback pair's own
// probability.
func SelectAction(probs []float64, n int, rng *obsrand.Source) (row, col int, logProb float64) {
	best := -1
	bestP := math.Inf(-1)
	for i, p := range probs {
		if p > bestP {
			bestP = p
			best = i
		}
	}
	row, col = best/n, best%n
	logProb = math.Log(probs[best])

	if row == col {
		row, col = rng.IntPair(n)
	}
	return row, col, logProb
}
