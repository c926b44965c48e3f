package optim

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ModelFunc evaluates a parameterized model at every point of x and returns
// one prediction per point.
type ModelFunc func(x, params []float64) []float64

// LevenbergMarquardt minimizes the squared residuals of a ModelFunc against
// observed values by damped least squares. The Jacobian is estimated with
// central finite differences, so the model needs no analytic gradient.
type LevenbergMarquardt struct {
	MaxIter    int
	LambdaInit float64
	LambdaMax  float64
	Tol        float64 // minimum SSE improvement still counted as progress
}

// Result reports the outcome of a fit. Callers are free to ignore
// Converged, but non-convergence is always visible here.
type Result struct {
	Params     []float64
	Converged  bool
	Iterations int
	SSE        float64
}

func NewLevenbergMarquardt() *LevenbergMarquardt {
	return &LevenbergMarquardt{MaxIter: 100, LambdaInit: 1e-3, LambdaMax: 1e+3, Tol: 1e-10}
}

// Fit minimizes sum_i (f(x_i, p) - y_i)^2 starting from init. The damping
// factor shrinks after every accepted step and grows (up to LambdaMax) after
// every rejected one. The best parameters found are returned whether or not
// the fit converged.
func (o *LevenbergMarquardt) Fit(f ModelFunc, x, y, init []float64) (Result, error) {
	if len(x) != len(y) {
		return Result{}, errors.New("optim: x and y lengths differ")
	}
	if len(init) == 0 {
		return Result{}, errors.New("optim: empty initial parameter vector")
	}
	if len(x) == 0 {
		return Result{}, errors.New("optim: empty dataset")
	}

	n, m := len(x), len(init)
	p := append([]float64(nil), init...)
	pred := f(x, p)
	sse := sumSquaredError(pred, y)
	if sse <= o.Tol {
		return Result{Params: p, Converged: true, Iterations: 0, SSE: sse}, nil
	}
	lambda := o.LambdaInit

	r := mat.NewVecDense(n, nil)
	var delta mat.VecDense
	for iter := 1; iter <= o.MaxIter; iter++ {
		jac := jacobian(f, x, p)
		for i := range pred {
			r.SetVec(i, pred[i]-y[i])
		}

		// Damped normal equations: (J'J + lambda*I) delta = J'r.
		var jtj mat.Dense
		jtj.Mul(jac.T(), jac)
		var jtr mat.VecDense
		jtr.MulVec(jac.T(), r)
		for k := 0; k < m; k++ {
			jtj.Set(k, k, jtj.At(k, k)+lambda)
		}

		if err := delta.SolveVec(&jtj, &jtr); err != nil {
			lambda = math.Min(lambda*10, o.LambdaMax)
			continue
		}

		trial := make([]float64, m)
		for k := range trial {
			trial[k] = p[k] - delta.AtVec(k)
		}
		trialPred := f(x, trial)
		trialSSE := sumSquaredError(trialPred, y)

		if trialSSE < sse {
			gain := sse - trialSSE
			p, pred, sse = trial, trialPred, trialSSE
			lambda = math.Max(lambda/10, 1e-12)
			if gain < o.Tol || sse <= o.Tol {
				return Result{Params: p, Converged: true, Iterations: iter, SSE: sse}, nil
			}
		} else {
			lambda = math.Min(lambda*10, o.LambdaMax)
		}
	}
	return Result{Params: p, Converged: false, Iterations: o.MaxIter, SSE: sse}, nil
}

// jacobian estimates d f_i / d p_k by central differences.
func jacobian(f ModelFunc, x, p []float64) *mat.Dense {
	n, m := len(x), len(p)
	jac := mat.NewDense(n, m, nil)
	pk := append([]float64(nil), p...)
	for k := 0; k < m; k++ {
		h := 1e-6 * math.Max(1, math.Abs(p[k]))
		pk[k] = p[k] + h
		hi := f(x, pk)
		pk[k] = p[k] - h
		lo := f(x, pk)
		pk[k] = p[k]
		inv := 1 / (2 * h)
		for i := 0; i < n; i++ {
			jac.Set(i, k, (hi[i]-lo[i])*inv)
		}
	}
	return jac
}

func sumSquaredError(pred, y []float64) float64 {
	s := 0.0
	for i := range pred {
		d := pred[i] - y[i]
		s += d * d
	}
	return s
}
