package mortgage

import (
	"time"

	"github.com/iwvelando/mortgage-payoff/pkg/mathutil"
)

// Summarize derives a payoff summary from rows that did not come from the
// engine, such as a schedule loaded from disk. Interest is summed from the
// already-rounded rows, so it can differ by cents from CalculatePayoff on
// long schedules. An empty schedule summarizes to zero months at start.
func Summarize(rows []PaymentRow, start time.Time) PayoffSummary {
	if len(rows) == 0 {
		return PayoffSummary{PayoffDate: start}
	}

	total := 0.0
	for _, row := range rows {
		total += row.Interest
	}
	return PayoffSummary{
		PayoffDate:    rows[len(rows)-1].Date,
		Months:        len(rows),
		TotalInterest: mathutil.Round(total),
	}
}

// Balances returns the remaining balance column of rows.
func Balances(rows []PaymentRow) []float64 {
	balances := make([]float64, len(rows))
	for i, row := range rows {
		balances[i] = row.Balance
	}
	return balances
}
