// Package policy implements the merge-selection policy network: a
// two-layer linear projection over a bucket's feature rows produces a
// pairwise score matrix, which is turned into a selection distribution by
// self-multiplication, dropout, diagonal masking, and a flattened softmax.
// The network is trained by REINFORCE: every forward call's chosen cell's
// log-probability is weighted by the (standardized) reward its merge
// produced, and gradients accumulate across one whole traversal of the
// buckets before one Adam step.
package policy

import (
	"errors"

	"github.com/katalvlaran/poligras/internal/obsrand"
	"github.com/katalvlaran/poligras/linalg"
)

// ErrEmptyBucket indicates Forward was called with zero feature rows.
var ErrEmptyBucket = errors.New("policy: bucket has no members to score")

// Config holds the network's architecture and optimizer hyperparameters.
type Config struct {
	FeatDim      int
	Hidden1      int
	Hidden2      int
	Dropout      float64
	LearningRate float64
	WeightDecay  float64
	Beta1        float64
	Beta2        float64
	Epsilon      float64
}

// DefaultConfig returns sensible defaults for every hyperparameter a caller
// doesn't override.
func DefaultConfig(featDim int) Config {
	return Config{
		FeatDim: featDim,
		Hidden1: 64,
		Hidden2: 32,
		Dropout: 0.1,
		LearningRate: 0.001,
		WeightDecay: 0,
		Beta1: 0.9,
		Beta2: 0.999,
		Epsilon: 1e-8,
	}
}

// Network is the two-layer linear projection: relu(X·W1+B1)·W2+B2, then
// self-multiplied, dropped out, diagonal-masked, and softmaxed.
type Network struct {
	cfg Config
	rng *obsrand.Source

	w1, w2 *linalg.Dense
	b1, b2 []float64

	// Adam moment estimates, one pair per trainable parameter.
	mW1, vW1 *linalg.Dense
	mW2, vW2 *linalg.Dense
	mB1, vB1 []float64
	mB2, vB2 []float64
	step     int

	// Accumulated gradients across the forward calls of one bucket
	// traversal, reset by Step.
	gW1, gW2 *linalg.Dense
	gB1, gB2 []float64
}

// New builds a Network with small uniform-random initial weights drawn
// from rng, so runs with the same seed start from the same parameters.
func New(cfg Config, rng *obsrand.Source) (*Network, error) {
	w1, err := linalg.NewDense(cfg.FeatDim, cfg.Hidden1)
	if err != nil {
		return nil, err
	}
	w2, err := linalg.NewDense(cfg.Hidden1, cfg.Hidden2)
	if err != nil {
		return nil, err
	}
	initMatrix(w1, rng)
	initMatrix(w2, rng)

	n := &Network{
		cfg: cfg,
		rng: rng,
		w1: w1,
		w2: w2,
		b1: make([]float64, cfg.Hidden1),
		b2: make([]float64, cfg.Hidden2),
	}
	n.mW1, _ = linalg.NewDense(cfg.FeatDim, cfg.Hidden1)
	n.vW1, _ = linalg.NewDense(cfg.FeatDim, cfg.Hidden1)
	n.mW2, _ = linalg.NewDense(cfg.Hidden1, cfg.Hidden2)
	n.vW2, _ = linalg.NewDense(cfg.Hidden1, cfg.Hidden2)
	n.mB1 = make([]float64, cfg.Hidden1)
	n.vB1 = make([]float64, cfg.Hidden1)
	n.mB2 = make([]float64, cfg.Hidden2)
	n.vB2 = make([]float64, cfg.Hidden2)
	n.resetGrad()
	return n, nil
}

func (n *Network) resetGrad() {
	n.gW1, _ = linalg.NewDense(n.cfg.FeatDim, n.cfg.Hidden1)
	n.gW2, _ = linalg.NewDense(n.cfg.Hidden1, n.cfg.Hidden2)
	n.gB1 = make([]float64, n.cfg.Hidden1)
	n.gB2 = make([]float64, n.cfg.Hidden2)
}

func initMatrix(m *linalg.Dense, rng *obsrand.Source) {
	scale := 1.0 / float64(m.Rows())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v := (rng.Float64()*2 - 1) * scale
			_ = m.Set(i, j, v)
		}
	}
}
