package model

import "math"

// Test whether two values are equal up to a tolerance.
func almostEqual(a, b float64) bool {
	const tol = 1.0e-09
	return math.Abs(a-b) <= tol
}

func sliceEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
