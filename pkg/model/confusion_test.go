package model

import (
	"errors"
	"math"
	"testing"
)

func TestConfusionMatrixCounts(t *testing.T) {
	y := []float64{1, 1, 1, -1, -1, -1}
	yHat := []float64{1, -1, 1, -1, 1, -1}

	cm, err := NewConfusionMatrix(y, yHat)
	if err != nil {
		t.Fatalf("NewConfusionMatrix: %v", err)
	}
	if cm.TP != 2 || cm.FN != 1 || cm.TN != 2 || cm.FP != 1 {
		t.Errorf("counts TP=%d TN=%d FP=%d FN=%d, want 2/2/1/1", cm.TP, cm.TN, cm.FP, cm.FN)
	}
	if cm.Total() != len(y) {
		t.Errorf("Total = %d, want %d", cm.Total(), len(y))
	}
}

func TestConfusionMatrixPerfectPrediction(t *testing.T) {
	y := []float64{1, -1, 1, 1, -1}
	cm, err := NewConfusionMatrix(y, y)
	if err != nil {
		t.Fatalf("NewConfusionMatrix: %v", err)
	}
	if cm.Accuracy() != 1.0 {
		t.Errorf("Accuracy = %v, want 1.0", cm.Accuracy())
	}
	if cm.FPR() != 0 || cm.FNR() != 0 {
		t.Errorf("FPR=%v FNR=%v, want 0/0", cm.FPR(), cm.FNR())
	}
}

func TestConfusionMatrixMetrics(t *testing.T) {
	cm := &ConfusionMatrix{TP: 6, TN: 3, FP: 1, FN: 2}

	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"Accuracy", cm.Accuracy(), 9.0 / 12.0},
		{"PPV", cm.PPV(), 6.0 / 7.0},
		{"TPR", cm.TPR(), 6.0 / 8.0},
		{"TNR", cm.TNR(), 3.0 / 4.0},
		{"NPV", cm.NPV(), 3.0 / 5.0},
		{"FNR", cm.FNR(), 2.0 / 8.0},
		{"FPR", cm.FPR(), 1.0 / 4.0},
	}
	for _, c := range cases {
		if !almostEqual(c.got, c.want) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	wantF1 := 2 * cm.PPV() * cm.TPR() / (cm.PPV() + cm.TPR())
	if !almostEqual(cm.F1(), wantF1) {
		t.Errorf("F1 = %v, want %v", cm.F1(), wantF1)
	}
}

func TestConfusionMatrixDegenerateMetricsAreNaN(t *testing.T) {
	// No positive predictions: PPV divides by zero and stays NaN instead of
	// becoming an error.
	cm := &ConfusionMatrix{TN: 3, FN: 1}
	if !math.IsNaN(cm.PPV()) {
		t.Errorf("PPV = %v, want NaN", cm.PPV())
	}
	if !math.IsNaN(cm.F1()) {
		t.Errorf("F1 = %v, want NaN", cm.F1())
	}

	empty := &ConfusionMatrix{}
	if !math.IsNaN(empty.Accuracy()) {
		t.Errorf("empty Accuracy = %v, want NaN", empty.Accuracy())
	}
}

func TestConfusionMatrixDropsForeignLabels(t *testing.T) {
	// Values outside {+1, -1} land in no bucket.
	y := []float64{1, 0, -1, 2}
	yHat := []float64{1, 1, -1, -1}
	cm, err := NewConfusionMatrix(y, yHat)
	if err != nil {
		t.Fatalf("NewConfusionMatrix: %v", err)
	}
	if cm.Total() != 2 || cm.TP != 1 || cm.TN != 1 {
		t.Errorf("foreign labels not dropped: %+v", cm)
	}
}

func TestConfusionMatrixLengthMismatch(t *testing.T) {
	_, err := NewConfusionMatrix([]float64{1, -1}, []float64{1})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("got %v, want ErrLengthMismatch", err)
	}
}

func TestToMatrix(t *testing.T) {
	cm := &ConfusionMatrix{TP: 1, FP: 2, FN: 3, TN: 4}
	m := cm.ToMatrix()
	if m.At(0, 0) != 1 || m.At(0, 1) != 2 || m.At(1, 0) != 3 || m.At(1, 1) != 4 {
		t.Errorf("ToMatrix = %v, want [[1 2] [3 4]]", m.Data)
	}
}
