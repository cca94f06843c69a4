// Package format renders currency and rate values for display.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iwvelando/mortgage-payoff/pkg/mathutil"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	amount = mathutil.Round(amount)
	formatted := groupThousands(math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Percent renders a rate fraction as a percentage, trimming trailing zeros
// (0.0225 -> "2.25%", 0.05 -> "5%").
func Percent(fraction float64) string {
	value := strconv.FormatFloat(mathutil.FractionToPercent(fraction), 'f', 4, 64)
	value = strings.TrimSuffix(strings.TrimRight(value, "0"), ".")
	return value + "%"
}

func groupThousands(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	intPart, decPart, found := strings.Cut(formatted, ".")
	if !found {
		decPart = "00"
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
