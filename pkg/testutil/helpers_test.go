package testutil

import (
	"testing"
	"time"

	"github.com/iwvelando/mortgage-payoff/pkg/datetime"
	"github.com/iwvelando/mortgage-payoff/pkg/mortgage"
)

func TestWorkedExample(t *testing.T) {
	inputs := WorkedExample()
	if err := inputs.Validate(); err != nil {
		t.Fatalf("WorkedExample() is not valid: %v", err)
	}

	summary, err := mortgage.CalculatePayoff(inputs)
	if err != nil {
		t.Fatalf("CalculatePayoff() error = %v", err)
	}
	if summary.Months != 3 {
		t.Errorf("Months = %d, expected 3", summary.Months)
	}
}

func TestFindRow(t *testing.T) {
	rows := []mortgage.PaymentRow{
		{Date: datetime.Date(2024, time.January, 1), Principal: 488, Interest: 12, Balance: 712},
		{Date: datetime.Date(2024, time.February, 1), Principal: 492.88, Interest: 7.12, Balance: 219.12},
		{Date: datetime.Date(2024, time.March, 1), Principal: 219.12, Interest: 2.19, Balance: 0},
	}

	tests := []struct {
		name            string
		date            time.Time
		expectFound     bool
		expectedBalance float64
	}{
		{
			name:            "First row",
			date:            datetime.Date(2024, time.January, 1),
			expectFound:     true,
			expectedBalance: 712,
		},
		{
			name:            "Final row",
			date:            datetime.Date(2024, time.March, 1),
			expectFound:     true,
			expectedBalance: 0,
		},
		{
			name:        "Date outside schedule",
			date:        datetime.Date(2024, time.April, 1),
			expectFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := FindRow(rows, tt.date)
			if !tt.expectFound {
				if row != nil {
					t.Errorf("FindRow() = %+v, expected nil", row)
				}
				return
			}
			if row == nil {
				t.Fatalf("FindRow() returned nil")
			}
			if row.Balance != tt.expectedBalance {
				t.Errorf("Balance = %v, expected %v", row.Balance, tt.expectedBalance)
			}
		})
	}

	t.Run("Returned pointer aliases the slice", func(t *testing.T) {
		row := FindRow(rows, datetime.Date(2024, time.February, 1))
		row.Interest = 0
		if rows[1].Interest != 0 {
			t.Errorf("FindRow() returned a copy")
		}
	})

	t.Run("Empty schedule", func(t *testing.T) {
		if FindRow(nil, datetime.Date(2024, time.January, 1)) != nil {
			t.Errorf("FindRow(nil) expected nil")
		}
	})
}
