// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/mortgage-payoff/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsFinite reports whether val is neither NaN nor an infinity.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// PercentToFraction converts a quoted rate such as 2.25 into 0.0225.
func PercentToFraction(percent float64) float64 {
	return percent / constants.PercentageMultiplier
}

// FractionToPercent converts a rate fraction such as 0.0225 back into 2.25.
func FractionToPercent(fraction float64) float64 {
	return fraction * constants.PercentageMultiplier
}
