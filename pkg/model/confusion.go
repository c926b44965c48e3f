package model

import (
	"fmt"

	"svmlab/pkg/core"
)

// ConfusionMatrix tallies true/predicted label agreement for a binary
// classifier with labels in {+1, -1}. Pairs containing any other value fall
// into none of the four buckets and are dropped from all counts.
//
// Derived metrics are plain float divisions: a zero denominator yields NaN
// rather than an error, matching the usual convention of leaving degenerate
// rates undefined.
type ConfusionMatrix struct {
	TP, TN, FP, FN int
}

// NewConfusionMatrix tabulates the four counts from paired label sequences.
func NewConfusionMatrix(y, yHat []float64) (*ConfusionMatrix, error) {
	if len(y) != len(yHat) {
		return nil, fmt.Errorf("%w: %d labels vs %d predictions", ErrLengthMismatch, len(y), len(yHat))
	}

	cm := &ConfusionMatrix{}
	for i := range y {
		switch {
		case y[i] == 1 && yHat[i] == 1:
			cm.TP++
		case y[i] == -1 && yHat[i] == -1:
			cm.TN++
		case y[i] == -1 && yHat[i] == 1:
			cm.FP++
		case y[i] == 1 && yHat[i] == -1:
			cm.FN++
		}
	}
	return cm, nil
}

// Total is the number of pairs counted into the four buckets.
func (cm *ConfusionMatrix) Total() int { return cm.TP + cm.TN + cm.FP + cm.FN }

// Accuracy is (TP+TN)/total.
func (cm *ConfusionMatrix) Accuracy() float64 {
	return float64(cm.TP+cm.TN) / float64(cm.Total())
}

// PPV is the positive predictive value (precision), TP/(TP+FP).
func (cm *ConfusionMatrix) PPV() float64 {
	return float64(cm.TP) / float64(cm.TP+cm.FP)
}

// TPR is the true positive rate (recall), TP/(TP+FN).
func (cm *ConfusionMatrix) TPR() float64 {
	return float64(cm.TP) / float64(cm.TP+cm.FN)
}

// TNR is the true negative rate (specificity), TN/(TN+FP).
func (cm *ConfusionMatrix) TNR() float64 {
	return float64(cm.TN) / float64(cm.TN+cm.FP)
}

// NPV is the negative predictive value, TN/(TN+FN).
func (cm *ConfusionMatrix) NPV() float64 {
	return float64(cm.TN) / float64(cm.TN+cm.FN)
}

// FNR is the false negative rate, FN/(FN+TP).
func (cm *ConfusionMatrix) FNR() float64 {
	return float64(cm.FN) / float64(cm.FN+cm.TP)
}

// FPR is the false positive rate, FP/(FP+TN).
func (cm *ConfusionMatrix) FPR() float64 {
	return float64(cm.FP) / float64(cm.FP+cm.TN)
}

// F1 is the harmonic mean of precision and recall.
func (cm *ConfusionMatrix) F1() float64 {
	p := cm.PPV()
	r := cm.TPR()
	return 2 * p * r / (p + r)
}

// ToMatrix returns the 2x2 layout [[TP, FP], [FN, TN]].
func (cm *ConfusionMatrix) ToMatrix() *core.Matrix {
	m := core.NewMatrix(2, 2)
	m.Set(0, 0, float64(cm.TP))
	m.Set(0, 1, float64(cm.FP))
	m.Set(1, 0, float64(cm.FN))
	m.Set(1, 1, float64(cm.TN))
	return m
}

// Summary prints all derived metrics rounded to 2 decimal places.
func (cm *ConfusionMatrix) Summary() {
	fmt.Println("==============================")
	fmt.Printf("Acc:\t%.2f\n", cm.Accuracy())
	fmt.Printf("PPV:\t%.2f\n", cm.PPV())
	fmt.Printf("TPR:\t%.2f\n", cm.TPR())
	fmt.Printf("TNR:\t%.2f\n", cm.TNR())
	fmt.Printf("NPV:\t%.2f\n", cm.NPV())
	fmt.Printf("F1:\t%.2f\n", cm.F1())
	fmt.Printf("FPR:\t%.2f\n", cm.FPR())
	fmt.Printf("FNR:\t%.2f\n", cm.FNR())
	fmt.Println("==============================")
}
