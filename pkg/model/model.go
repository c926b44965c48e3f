package model

import (
	"errors"

	"svmlab/pkg/core"
)

var (
	// ErrDimensionMismatch reports a feature/weight width disagreement.
	ErrDimensionMismatch = errors.New("model: feature/weight dimension mismatch")
	// ErrLengthMismatch reports paired sequences of unequal length.
	ErrLengthMismatch = errors.New("model: paired sequences have unequal length")
)

// Model is a generic supervised learning interface.
type Model interface {
	Fit(X *core.Matrix, y []float64) error
	Predict(X *core.Matrix) ([]float64, error)
}

// Scorer additionally exposes raw decision values, the input to
// probability calibration.
type Scorer interface {
	Model
	DecisionValues(X *core.Matrix) ([]float64, error)
}
