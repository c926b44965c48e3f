package model

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"svmlab/pkg/core"
	"svmlab/pkg/optim"
)

// SVM is a linear soft-margin classifier trained by stochastic sub-gradient
// descent on the hinge loss with L2 regularization. Updates are applied
// per row, in row order, so later rows of a pass see the weights already
// moved by earlier rows. Labels are collapsed to {+1, -1}: any value equal
// to +1 maps to +1, everything else maps to -1.
type SVM struct {
	W      []float64
	B      float64
	Lr     float64
	Lambda float64
	Iters  int

	clsMap []float64
}

var _ Scorer = (*SVM)(nil)

// NewSVM constructs an untrained model with zero bias and a placeholder
// weight; the weight is resized on Fit or Baseline.
func NewSVM(lr, lambda float64, iters int) *SVM {
	return &SVM{
		W:      make([]float64, 1),
		Lr:     lr,
		Lambda: lambda,
		Iters:  iters,
	}
}

// Fit trains on X (one example per row) against labels y. The weight vector
// is zero-initialized to the feature width, then Iters full passes of
// per-row sub-gradient updates run over the rows.
func (m *SVM) Fit(X *core.Matrix, y []float64) error {
	if X.R != len(y) {
		return fmt.Errorf("%w: %d feature rows vs %d labels", ErrLengthMismatch, X.R, len(y))
	}

	m.W = make([]float64, X.C)
	m.clsMap = classMap(y)

	opt := optim.NewSGD(m.Lr)
	dw := make([]float64, X.C)
	for it := 0; it < m.Iters; it++ {
		for i := 0; i < X.R; i++ {
			x := X.RowView(i)
			yi := m.clsMap[i]
			margin := yi * (floats.Dot(m.W, x) + m.B)

			var db float64
			if margin >= 1 {
				for j := range dw {
					dw[j] = m.Lambda * m.W[j]
				}
			} else {
				for j := range dw {
					dw[j] = m.Lambda*m.W[j] - yi*x[j]
				}
				db = -yi
			}

			opt.Step(m.W, dw)
			m.B -= m.Lr * db
		}
	}
	return nil
}

// DecisionValues returns w.x + b for every row of X, unclipped.
func (m *SVM) DecisionValues(X *core.Matrix) ([]float64, error) {
	if X.C != len(m.W) {
		return nil, fmt.Errorf("%w: %d feature columns vs weight length %d", ErrDimensionMismatch, X.C, len(m.W))
	}
	out := make([]float64, X.R)
	for i := range out {
		out[i] = floats.Dot(m.W, X.RowView(i)) + m.B
	}
	return out, nil
}

// Predict returns the hard class per row: +1 for a strictly positive
// decision value, -1 otherwise (a value of exactly 0 maps to -1).
func (m *SVM) Predict(X *core.Matrix) ([]float64, error) {
	f, err := m.DecisionValues(X)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(f))
	for i, v := range f {
		if v > 0 {
			out[i] = 1
		} else {
			out[i] = -1
		}
	}
	return out, nil
}

// Baseline resets the weight vector to zero (sized to X) without touching
// the bias, then predicts. It is a trivial reference classifier for
// before/after comparison.
func (m *SVM) Baseline(X *core.Matrix) ([]float64, error) {
	m.W = make([]float64, X.C)
	return m.Predict(X)
}

func classMap(y []float64) []float64 {
	out := make([]float64, len(y))
	for i, v := range y {
		if v == 1 {
			out[i] = 1
		} else {
			out[i] = -1
		}
	}
	return out
}
