package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Whole dollars", 712, 712},
		{"Already cents", 219.12, 219.12},
		{"First month interest", 12.000000000000002, 12},
		{"Rounds down", 7.1244, 7.12},
		{"Rounds half away from zero", 2.125, 2.13},
		{"Third month interest", 2.1912, 2.19},
		{"Tiny remainder", 0.004, 0},
		{"Negative", -1.236, -1.24},
		{"Large balance", 142044.18499, 142044.18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.input); got != tt.expected {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	tests := []struct {
		name        string
		a, b        float64
		expectedMin float64
		expectedMax float64
	}{
		{"Scheduled principal below balance", 488, 1200, 488, 1200},
		{"Final payment capped at balance", 500, 219.12, 219.12, 500},
		{"Equal values", 100, 100, 100, 100},
		{"Overshoot clamps at zero", -0.0000001, 0, -0.0000001, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Min(tt.a, tt.b); got != tt.expectedMin {
				t.Errorf("Min(%v, %v) = %v, expected %v", tt.a, tt.b, got, tt.expectedMin)
			}
			if got := Max(tt.a, tt.b); got != tt.expectedMax {
				t.Errorf("Max(%v, %v) = %v, expected %v", tt.a, tt.b, got, tt.expectedMax)
			}
		})
	}
}

func TestPercentConversions(t *testing.T) {
	tests := []struct {
		percent  float64
		fraction float64
	}{
		{2.25, 0.0225},
		{12, 0.12},
		{0, 0},
		{6.875, 0.06875},
	}

	for _, tt := range tests {
		if got := PercentToFraction(tt.percent); math.Abs(got-tt.fraction) > 1e-12 {
			t.Errorf("PercentToFraction(%v) = %v, expected %v", tt.percent, got, tt.fraction)
		}
		if got := FractionToPercent(tt.fraction); math.Abs(got-tt.percent) > 1e-9 {
			t.Errorf("FractionToPercent(%v) = %v, expected %v", tt.fraction, got, tt.percent)
		}
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Balance", 1200, true},
		{"Zero", 0, true},
		{"Negative", -5, true},
		{"NaN", math.NaN(), false},
		{"Positive infinity", math.Inf(1), false},
		{"Negative infinity", math.Inf(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFinite(tt.input); got != tt.expected {
				t.Errorf("IsFinite(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}
