package model

import (
	"fmt"
	"math"

	"svmlab/pkg/optim"
)

// PlattScaling fits the logistic map p = 1/(1+exp(A*f + B)) from decision
// values fHat to Bayesian-smoothed targets derived from labels y: a +1 label
// gets target (Np+1)/(Np+2), every other label gets 1/(Nn+2), where Np and
// Nn are the class counts. Note Platt's sign convention: a larger A*f+B
// drives the probability toward 0, so on well-separated data the fitted A
// comes out negative.
//
// The fit is a damped least-squares run from (1, 1). Non-convergence is
// reported through the returned optim.Result, not as an error.
func PlattScaling(y, fHat []float64) (A, B float64, res optim.Result, err error) {
	if len(y) != len(fHat) {
		return 0, 0, optim.Result{}, fmt.Errorf("%w: %d labels vs %d decision values", ErrLengthMismatch, len(y), len(fHat))
	}

	nPos, nNeg := 0, 0
	for _, v := range y {
		if v == 1 {
			nPos++
		} else {
			nNeg++
		}
	}
	tPos := (float64(nPos) + 1) / (float64(nPos) + 2)
	tNeg := 1 / (float64(nNeg) + 2)

	targets := make([]float64, len(y))
	for i, v := range y {
		if v == 1 {
			targets[i] = tPos
		} else {
			targets[i] = tNeg
		}
	}

	res, err = optim.NewLevenbergMarquardt().Fit(logisticTransform, fHat, targets, []float64{1, 1})
	if err != nil {
		return 0, 0, optim.Result{}, err
	}
	return res.Params[0], res.Params[1], res, nil
}

// Sigmoid applies the fitted calibration elementwise: 1/(1+exp(A*f + B)).
func Sigmoid(fHat []float64, A, B float64) []float64 {
	out := make([]float64, len(fHat))
	for i, f := range fHat {
		out[i] = 1 / (1 + math.Exp(A*f+B))
	}
	return out
}

func logisticTransform(x, params []float64) []float64 {
	return Sigmoid(x, params[0], params[1])
}
