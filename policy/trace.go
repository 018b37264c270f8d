package policy

import "math"

// CallRecord captures everything one Forward+SelectAction call needs for a
// later gradient pass: the cached activations, the cell chosen, its
// log-probability, and the raw (unstandardized) reward that merge produced.
type CallRecord struct {
	Cache   *ForwardCache
	Row     int
	Col     int
	LogProb float64
	Reward  float64
}

// Trace accumulates one bucket traversal's forward calls, so their rewards
// can be standardized together before a single backward+Adam step.
type Trace struct {
	Calls []CallRecord
}

// Record appends one forward call's outcome to the trace.
func (t *Trace) Record(cache *ForwardCache, row, col int, logProb, reward float64) {
	t.Calls = append(t.Calls, CallRecord{Cache: cache, Row: row, Col: col, LogProb: logProb, Reward: reward})
}

// Reset clears the trace for the next traversal.
func (t *Trace) Reset() {
	t.Calls = t.Calls[:0]
}

// Standardized returns the recorded rewards standardized as
// (r - max(mean,0)) / std, or ok=false if fewer than two calls were
// recorded: the sample standard deviation of a length-0-or-1 sequence is
// undefined, so the optimizer step is skipped rather than dividing by it.
func (t *Trace) Standardized() (out []float64, ok bool) {
	n := len(t.Calls)
	if n < 2 {
		return nil, false
	}
	var mean float64
	for _, c := range t.Calls {
		mean += c.Reward
	}
	mean /= float64(n)
	baseline := math.Max(mean, 0)

	var variance float64
	for _, c := range t.Calls {
		d := c.Reward - mean
		variance += d * d
	}
	std := math.Sqrt(variance / float64(n-1))
	if std == 0 {
		return nil, false
	}

	out = make([]float64, n)
	for i, c := range t.Calls {
		out[i] = (c.Reward - baseline) / std
	}
	return out, true
}
