// Package testutil provides common utility functions for testing.
package testutil

import (
	"time"

	"github.com/iwvelando/mortgage-payoff/pkg/datetime"
	"github.com/iwvelando/mortgage-payoff/pkg/mortgage"
)

// WorkedExample returns the three-payment loan used throughout the tests:
// 1200 at 12% with 500 monthly payments starting 2024-01-01.
func WorkedExample() mortgage.Inputs {
	return mortgage.Inputs{
		Balance:         1200,
		AnnualRate:      0.12,
		MonthlyPayment:  500,
		NextPaymentDate: datetime.Date(2024, time.January, 1),
	}
}

// FindRow finds the schedule row paid on date.
// Returns a pointer to the row if found, nil otherwise.
func FindRow(rows []mortgage.PaymentRow, date time.Time) *mortgage.PaymentRow {
	for i := range rows {
		if rows[i].Date.Equal(date) {
			return &rows[i]
		}
	}
	return nil
}
