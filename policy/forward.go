package policy

import (
	"math"

	"github.com/katalvlaran/poligras/linalg"
)

// ForwardCache holds every intermediate activation a Forward call produced,
// so Accumulate can replay the exact same dropout mask during backprop
// without redrawing randomness.
type ForwardCache struct {
	X        *linalg.Dense // n×d bucket feature rows
	PreAct1  *linalg.Dense // n×h1, X·W1+B1 before ReLU
	H        *linalg.Dense // n×h1, post-ReLU hidden layer
	Z        *linalg.Dense // n×h2, H·W2+B2
	S        *linalg.Dense // n×n, Z·Zᵀ before dropout
	DropMask []float64 // length n*n, 1 kept / 0 dropped
	DropKeep float64 // inverted-dropout scale 1/(1-p)
	N        int

	// Probs is the flattened (row-major) n*n softmax distribution, after
	// dropout and diagonal masking.
	Probs []float64
}

// Forward runs the two-layer projection over x (one row per bucket member)
// and returns the cached activations plus the flattened selection
// distribution.
func (n *Network) Forward(x *linalg.Dense) (*ForwardCache, error) {
	if x.Rows() == 0 {
		return nil, ErrEmptyBucket
	}

	pre1, err := linalg.Mul(x, n.w1)
	if err != nil {
		return nil, err
	}
	pre1, err = linalg.AddBiasRow(pre1, n.b1)
	if err != nil {
		return nil, err
	}
	h := linalg.ReLU(pre1)

	z, err := linalg.Mul(h, n.w2)
	if err != nil {
		return nil, err
	}
	z, err = linalg.AddBiasRow(z, n.b2)
	if err != nil {
		return nil, err
	}

	s, err := linalg.Mul(z, linalg.Transpose(z))
	if err != nil {
		return nil, err
	}

	size := s.Rows()
	mask := make([]float64, size*size)
	keep := 1.0 / (1.0 - n.cfg.Dropout)
	sdrop, _ := linalg.NewDense(size, size)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			v, _ := s.At(i, j)
			idx := i*size + j
			if n.cfg.Dropout <= 0 || n.rng.Float64() >= n.cfg.Dropout {
				mask[idx] = 1
				_ = sdrop.Set(i, j, v*keep)
			}
		}
	}

	if err := linalg.FillDiagonal(sdrop, math.Inf(-1)); err != nil {
		return nil, err
	}
	probs := linalg.SoftmaxFlat(sdrop)

	return &ForwardCache{
		X: x,
		PreAct1: pre1,
		H: h,
		Z: z,
		S: s,
		DropMask: mask,
		DropKeep: keep,
		N: size,
		Probs: probs,
	}, nil
}
