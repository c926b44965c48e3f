package model

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ROCSweep walks a classification threshold across [0, 1] in equally
// spaced steps and reports one (FPR, TPR) point per threshold: examples
// with probability strictly above the threshold are classified +1, the rest
// -1, and the rates come from the resulting confusion matrix against the
// true labels. The sweep is a finite, restartable iterator.
type ROCSweep struct {
	y, probs   []float64
	thresholds []float64
	pred       []float64
	next       int
}

// NewROCSweep prepares a sweep of points thresholds over [0, 1] for the
// given true labels and calibrated probabilities.
func NewROCSweep(y, probs []float64, points int) (*ROCSweep, error) {
	if len(y) != len(probs) {
		return nil, fmt.Errorf("%w: %d labels vs %d probabilities", ErrLengthMismatch, len(y), len(probs))
	}
	if points < 2 {
		return nil, fmt.Errorf("model: ROC sweep needs at least 2 thresholds, got %d", points)
	}
	thr := make([]float64, points)
	floats.Span(thr, 0, 1)
	return &ROCSweep{
		y:          y,
		probs:      probs,
		thresholds: thr,
		pred:       make([]float64, len(probs)),
	}, nil
}

// Next returns the ROC point for the next threshold. ok is false once the
// sweep is exhausted.
func (s *ROCSweep) Next() (fpr, tpr float64, ok bool) {
	if s.next >= len(s.thresholds) {
		return 0, 0, false
	}
	t := s.thresholds[s.next]
	s.next++

	for i, p := range s.probs {
		if p > t {
			s.pred[i] = 1
		} else {
			s.pred[i] = -1
		}
	}
	cm, _ := NewConfusionMatrix(s.y, s.pred) // lengths checked at construction
	return cm.FPR(), cm.TPR(), true
}

// Reset rewinds the sweep to the first threshold.
func (s *ROCSweep) Reset() { s.next = 0 }

// Points restarts the sweep and collects the whole curve.
func (s *ROCSweep) Points() (fpr, tpr []float64) {
	s.Reset()
	fpr = make([]float64, 0, len(s.thresholds))
	tpr = make([]float64, 0, len(s.thresholds))
	for {
		f, t, ok := s.Next()
		if !ok {
			return fpr, tpr
		}
		fpr = append(fpr, f)
		tpr = append(tpr, t)
	}
}
