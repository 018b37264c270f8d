package linalg

import "math"

// Add returns a+b elementwise. Both operands must share shape.
func Add(a, b *Dense) (*Dense, error) {
	if a.r != b.r || a.c != b.c {
		return nil, ErrDimensionMismatch
	}
	out, _ := NewDense(a.r, a.c)
	for i := range out.data {
		out.data[i] = a.data[i] + b.data[i]
	}
	return out, nil
}

// Scale returns alpha*m elementwise.
func Scale(m *Dense, alpha float64) *Dense {
	out, _ := NewDense(m.r, m.c)
	for i, v := range m.data {
		out.data[i] = alpha * v
	}
	return out
}

// Mul computes the matrix product a*b. a.Cols must equal b.Rows.
func Mul(a, b *Dense) (*Dense, error) {
	if a.c != b.r {
		return nil, ErrDimensionMismatch
	}
	out, _ := NewDense(a.r, b.c)
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			av := a.data[i*a.c+k]
			if av == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				out.data[i*out.c+j] += av * b.data[k*b.c+j]
			}
		}
	}
	return out, nil
}

// Transpose returns mᵀ.
func Transpose(m *Dense) *Dense {
	out, _ := NewDense(m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[i*m.c+j]
		}
	}
	return out
}

// ReLU returns max(0,x) elementwise, the policy network's hidden-layer
// activation.
func ReLU(m *Dense) *Dense {
	out, _ := NewDense(m.r, m.c)
	for i, v := range m.data {
		if v > 0 {
			out.data[i] = v
		}
	}
	return out
}

// FillDiagonal overwrites the diagonal entries of a square matrix with v,
// used by the policy network to mask self-pairs to -Inf before softmax.
func FillDiagonal(m *Dense, v float64) error {
	if m.r != m.c {
		return ErrDimensionMismatch
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+i] = v
	}
	return nil
}

// Dropout zeroes each entry independently with probability p, scaling the
// survivors by 1/(1-p) (inverted dropout), calling draw for each entry's
// randomness so callers control determinism via internal/obsrand.
func Dropout(m *Dense, p float64, draw func() float64) *Dense {
	out, _ := NewDense(m.r, m.c)
	if p <= 0 {
		copy(out.data, m.data)
		return out
	}
	keep := 1.0 / (1.0 - p)
	for i, v := range m.data {
		if draw() >= p {
			out.data[i] = v * keep
		}
	}
	return out
}

// Hadamard returns the elementwise product a⊙b. Both operands must share shape.
func Hadamard(a, b *Dense) (*Dense, error) {
	if a.r != b.r || a.c != b.c {
		return nil, ErrDimensionMismatch
	}
	out, _ := NewDense(a.r, a.c)
	for i := range out.data {
		out.data[i] = a.data[i] * b.data[i]
	}
	return out, nil
}

// ReLUMask returns 1 where m's entry is > 0 and 0 elsewhere: the derivative
// of ReLU, used to backpropagate through the hidden-layer activation.
func ReLUMask(m *Dense) *Dense {
	out, _ := NewDense(m.r, m.c)
	for i, v := range m.data {
		if v > 0 {
			out.data[i] = 1
		}
	}
	return out
}

// SumRows collapses an r×c matrix into a length-c slice by summing down
// each column, the gradient a bias vector accumulates from every row of an
// upstream gradient.
func SumRows(m *Dense) []float64 {
	out := make([]float64, m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out[j] += m.data[i*m.c+j]
		}
	}
	return out
}

// AddBiasRow returns m with bias added to every row (broadcast add). len(bias)
// must equal m.Cols.
func AddBiasRow(m *Dense, bias []float64) (*Dense, error) {
	if len(bias) != m.c {
		return nil, ErrDimensionMismatch
	}
	out, _ := NewDense(m.r, m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[i*m.c+j] = m.data[i*m.c+j] + bias[j]
		}
	}
	return out, nil
}

// SoftmaxFlat applies softmax over every finite entry of the flattened
// matrix (row-major order), leaving -Inf entries at zero probability. This
// mirrors the policy network's "flatten, softmax the whole r×r score
// matrix into one distribution" step.
func SoftmaxFlat(m *Dense) []float64 {
	n := len(m.data)
	out := make([]float64, n)
	maxV := math.Inf(-1)
	for _, v := range m.data {
		if v > maxV {
			maxV = v
		}
	}
	var sum float64
	for i, v := range m.data {
		if math.IsInf(v, -1) {
			out[i] = 0
			continue
		}
		e := math.Exp(v - maxV)
		out[i] = e
		sum += e
	}
	if sum == 0 {
		return out
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}
