package policy

import (
	"math"

	"github.com/katalvlaran/poligras/linalg"
)

// Step applies one Adam update using the gradients accumulated since the
// last call (via Accumulate), then clears them for the next traversal. Matches torch.optim.Adam's weight-decay convention: decay is
// added directly to the gradient before the moment updates.
func (n *Network) Step() {
	n.step++
	adamUpdateMatrix(n.w1, n.gW1, n.mW1, n.vW1, n.step, n.cfg)
	adamUpdateMatrix(n.w2, n.gW2, n.mW2, n.vW2, n.step, n.cfg)
	adamUpdateVector(n.b1, n.gB1, n.mB1, n.vB1, n.step, n.cfg)
	adamUpdateVector(n.b2, n.gB2, n.mB2, n.vB2, n.step, n.cfg)
	n.resetGrad()
}

func adamStep(param, grad, m, v float64, t int, cfg Config) (newParam, newM, newV float64) {
	if cfg.WeightDecay != 0 {
		grad += cfg.WeightDecay * param
	}
	m = cfg.Beta1*m + (1-cfg.Beta1)*grad
	v = cfg.Beta2*v + (1-cfg.Beta2)*grad*grad
	mHat := m / (1 - math.Pow(cfg.Beta1, float64(t)))
	vHat := v / (1 - math.Pow(cfg.Beta2, float64(t)))
	param -= cfg.LearningRate * mHat / (math.Sqrt(vHat) + cfg.Epsilon)
	return param, m, v
}

func adamUpdateVector(param, grad, m, v []float64, t int, cfg Config) {
	for i := range param {
		param[i], m[i], v[i] = adamStep(param[i], grad[i], m[i], v[i], t, cfg)
	}
}

func adamUpdateMatrix(param, grad, m, v *linalg.Dense, t int, cfg Config) {
	for i := 0; i < param.Rows(); i++ {
		for j := 0; j < param.Cols(); j++ {
			p, _ := param.At(i, j)
			g, _ := grad.At(i, j)
			mv, _ := m.At(i, j)
			vv, _ := v.At(i, j)
			newP, newM, newV := adamStep(p, g, mv, vv, t, cfg)
			_ = param.Set(i, j, newP)
			_ = m.Set(i, j, newM)
			_ = v.Set(i, j, newV)
		}
	}
}
