package utils

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	if got := Mean([]float64{120, 130, 140}); got != 130 {
		t.Errorf("Mean = %v, want 130", got)
	}
	if got := Mean(nil); !math.IsNaN(got) {
		t.Errorf("Mean(nil) = %v, want NaN", got)
	}
}

func TestSafeFloat(t *testing.T) {
	if got := SafeFloat(math.NaN()); got != 0 {
		t.Errorf("SafeFloat(NaN) = %v", got)
	}
	if got := SafeFloat(math.Inf(1)); got != 0 {
		t.Errorf("SafeFloat(+Inf) = %v", got)
	}
	if got := SafeFloat(1.5); got != 1.5 {
		t.Errorf("SafeFloat(1.5) = %v", got)
	}
}

func TestRound1(t *testing.T) {
	if got := Round1(122.449); got != 122.4 {
		t.Errorf("Round1 = %v, want 122.4", got)
	}
	if got := Round1(122.45); got != 122.5 {
		t.Errorf("Round1 = %v, want 122.5", got)
	}
}

func TestLinearRegression(t *testing.T) {
	// Perfect line y = 2x + 1.
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 3, 5, 7}

	slope, intercept := LinearRegression(x, y)
	if math.Abs(slope-2) > 1e-9 || math.Abs(intercept-1) > 1e-9 {
		t.Errorf("LinearRegression = (%v, %v), want (2, 1)", slope, intercept)
	}
}

func TestLinearRegression_Degenerate(t *testing.T) {
	if slope, _ := LinearRegression([]float64{1}, []float64{2}); !math.IsNaN(slope) {
		t.Errorf("single point slope = %v, want NaN", slope)
	}
	// All x identical: vertical line has no defined slope.
	if slope, _ := LinearRegression([]float64{2, 2, 2}, []float64{1, 2, 3}); !math.IsNaN(slope) {
		t.Errorf("vertical slope = %v, want NaN", slope)
	}
}
