// Package mortgage computes amortization schedules and payoff summaries for a
// fixed-rate mortgage with optional extra principal.
package mortgage

import (
	"time"

	"github.com/iwvelando/mortgage-payoff/pkg/constants"
	"github.com/iwvelando/mortgage-payoff/pkg/datetime"
	"github.com/iwvelando/mortgage-payoff/pkg/mathutil"
)

// Inputs holds the state a calculation starts from.
type Inputs struct {
	Balance         float64   `json:"balance"`
	AnnualRate      float64   `json:"annualRate"` // fraction, 0.0225 for 2.25%
	MonthlyPayment  float64   `json:"monthlyPayment"`
	ExtraPrincipal  float64   `json:"extraPrincipal"`
	NextPaymentDate time.Time `json:"nextPaymentDate"`
}

// InputsFromPercent builds Inputs from a rate entered as a percentage, the way
// people quote mortgage rates.
func InputsFromPercent(balance, ratePercent, monthlyPayment, extraPrincipal float64, nextPaymentDate time.Time) Inputs {
	return Inputs{
		Balance:         balance,
		AnnualRate:      mathutil.PercentToFraction(ratePercent),
		MonthlyPayment:  monthlyPayment,
		ExtraPrincipal:  extraPrincipal,
		NextPaymentDate: datetime.Truncate(nextPaymentDate),
	}
}

// MonthlyRate is the simple periodic rate applied to the balance each month.
func (in Inputs) MonthlyRate() float64 {
	return in.AnnualRate / constants.MonthsPerYear
}

// TotalPayment is the amount paid each period including extra principal.
func (in Inputs) TotalPayment() float64 {
	return in.MonthlyPayment + in.ExtraPrincipal
}

// FirstPeriodInterest is the interest accrued before the first payment.
func (in Inputs) FirstPeriodInterest() float64 {
	return in.Balance * in.MonthlyRate()
}

// Validate rejects inputs the engine cannot simulate. A non-positive balance
// is not an error; it simply produces an empty schedule.
func (in Inputs) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"balance", in.Balance},
		{"annualRate", in.AnnualRate},
		{"monthlyPayment", in.MonthlyPayment},
		{"extraPrincipal", in.ExtraPrincipal},
	}
	for _, f := range fields {
		if !mathutil.IsFinite(f.value) {
			return &InvalidInputError{Field: f.name, Value: f.value, Reason: "must be a finite number"}
		}
	}

	if in.AnnualRate < 0 {
		return &InvalidInputError{Field: "annualRate", Value: in.AnnualRate, Reason: "must not be negative"}
	}
	if in.ExtraPrincipal < 0 {
		return &InvalidInputError{Field: "extraPrincipal", Value: in.ExtraPrincipal, Reason: "must not be negative"}
	}
	if in.NextPaymentDate.IsZero() {
		return &InvalidInputError{Field: "nextPaymentDate", Reason: "must be set"}
	}
	return nil
}

// PaymentRow is one simulated payment period.
type PaymentRow struct {
	Date      time.Time `json:"date"`
	Principal float64   `json:"principal"`
	Interest  float64   `json:"interest"`
	Balance   float64   `json:"balance"`
}

// PayoffSummary describes when and at what cost the loan is paid off.
type PayoffSummary struct {
	PayoffDate    time.Time `json:"payoffDate"`
	Months        int       `json:"months"`
	TotalInterest float64   `json:"totalInterest"`
}
