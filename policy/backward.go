package policy

import "github.com/katalvlaran/poligras/linalg"

// Accumulate backpropagates one REINFORCE term, -reward*log(P[row][col]),
// through the cached forward pass and adds its gradient contribution onto
// the network's running totals. Call Step once per traversal of the buckets
// (one engine inner attempt) after every forward call of that traversal has
// been accumulated.
func (n *Network) Accumulate(c *ForwardCache, row, col int, reward float64) error {
	size := c.N

	dS, err := linalg.NewDense(size, size)
	if err != nil {
		return err
	}
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if i == j {
				continue
			}
			g := c.Probs[i*size+j]
			if i == row && j == col {
				g -= 1
			}
			g *= reward * c.DropMask[i*size+j] * c.DropKeep
			_ = dS.Set(i, j, g)
		}
	}

	dSSym, err := linalg.Add(dS, linalg.Transpose(dS))
	if err != nil {
		return err
	}
	dZ, err := linalg.Mul(dSSym, c.Z)
	if err != nil {
		return err
	}

	dH, err := linalg.Mul(dZ, linalg.Transpose(n.w2))
	if err != nil {
		return err
	}
	dW2, err := linalg.Mul(linalg.Transpose(c.H), dZ)
	if err != nil {
		return err
	}
	dB2 := linalg.SumRows(dZ)

	reluMask := linalg.ReLUMask(c.PreAct1)
	dPre1, err := linalg.Hadamard(dH, reluMask)
	if err != nil {
		return err
	}
	dW1, err := linalg.Mul(linalg.Transpose(c.X), dPre1)
	if err != nil {
		return err
	}
	dB1 := linalg.SumRows(dPre1)

	n.gW1, err = linalg.Add(n.gW1, dW1)
	if err != nil {
		return err
	}
	n.gW2, err = linalg.Add(n.gW2, dW2)
	if err != nil {
		return err
	}
	for i := range n.gB1 {
		n.gB1[i] += dB1[i]
	}
	for i := range n.gB2 {
		n.gB2[i] += dB2[i]
	}
	return nil
}
