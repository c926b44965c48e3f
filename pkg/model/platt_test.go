package model

import (
	"errors"
	"math"
	"testing"
)

func TestPlattScalingSeparatedData(t *testing.T) {
	// Decision values for the positive class all exceed those of the
	// negative class. Under the 1/(1+exp(A*f+B)) convention a higher f must
	// map to a higher probability, which forces A negative.
	y := []float64{1, 1, 1, 1, -1, -1, -1, -1}
	fHat := []float64{1.5, 2, 3, 4, -1.5, -2, -3, -4}

	A, B, res, err := PlattScaling(y, fHat)
	if err != nil {
		t.Fatalf("PlattScaling: %v", err)
	}
	if A >= 0 {
		t.Errorf("fitted A = %v, want negative", A)
	}

	probs := Sigmoid(fHat, A, B)
	for i, p := range probs {
		if p <= 0 || p >= 1 {
			t.Errorf("probability[%d] = %v, want in (0, 1)", i, p)
		}
	}
	// Every positive example must end up more probable than every negative.
	minPos, maxNeg := 1.0, 0.0
	for i, p := range probs {
		if y[i] == 1 && p < minPos {
			minPos = p
		}
		if y[i] == -1 && p > maxNeg {
			maxNeg = p
		}
	}
	if minPos <= maxNeg {
		t.Errorf("calibrated probabilities overlap: min positive %v <= max negative %v", minPos, maxNeg)
	}
	if res.Iterations <= 0 || res.Iterations > 100 {
		t.Errorf("iteration count %d outside (0, 100]", res.Iterations)
	}
}

func TestPlattScalingTargets(t *testing.T) {
	// With 3 positives and 1 negative the smoothed targets are 4/5 and 1/3.
	// A constant decision value per class lets the fit reach them almost
	// exactly, so the calibrated probabilities recover the targets.
	y := []float64{1, 1, 1, -1}
	fHat := []float64{2, 2, 2, -2}

	A, B, _, err := PlattScaling(y, fHat)
	if err != nil {
		t.Fatalf("PlattScaling: %v", err)
	}
	probs := Sigmoid(fHat, A, B)
	if math.Abs(probs[0]-4.0/5.0) > 1e-3 {
		t.Errorf("positive probability = %v, want ~0.8", probs[0])
	}
	if math.Abs(probs[3]-1.0/3.0) > 1e-3 {
		t.Errorf("negative probability = %v, want ~0.3333", probs[3])
	}
}

func TestSigmoidConvention(t *testing.T) {
	// sigmoid(z) = 1/(1+exp(z)): at z=0 the value is 0.5 and it decreases
	// as z grows.
	got := Sigmoid([]float64{0}, 1, 0)
	if !almostEqual(got[0], 0.5) {
		t.Errorf("Sigmoid(0) = %v, want 0.5", got[0])
	}
	lo := Sigmoid([]float64{10}, 1, 0)[0]
	hi := Sigmoid([]float64{-10}, 1, 0)[0]
	if !(lo < 0.5 && hi > 0.5) {
		t.Errorf("sign convention broken: sigmoid(10)=%v sigmoid(-10)=%v", lo, hi)
	}
}

func TestPlattScalingLengthMismatch(t *testing.T) {
	_, _, _, err := PlattScaling([]float64{1, -1}, []float64{0.5})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("got %v, want ErrLengthMismatch", err)
	}
}

func TestPlattScalingEmptyInput(t *testing.T) {
	// Empty sequences pass the paired-length check but leave nothing to
	// fit; this must come back as an error, not a panic.
	_, _, _, err := PlattScaling(nil, nil)
	if err == nil {
		t.Error("expected error for empty label/decision-value sequences")
	}
	_, _, _, err = PlattScaling([]float64{}, []float64{})
	if err == nil {
		t.Error("expected error for zero-length slices")
	}
}
