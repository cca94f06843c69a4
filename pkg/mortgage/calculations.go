package mortgage

import (
	"time"

	"github.com/iwvelando/mortgage-payoff/pkg/constants"
	"github.com/iwvelando/mortgage-payoff/pkg/datetime"
	"github.com/iwvelando/mortgage-payoff/pkg/mathutil"
)

// period holds the unrounded values of one simulated payment.
type period struct {
	number    int
	date      time.Time
	principal float64
	interest  float64
	balance   float64
}

// row rounds the period to currency for the schedule.
func (p period) row() PaymentRow {
	return PaymentRow{
		Date:      p.date,
		Principal: mathutil.Round(p.principal),
		Interest:  mathutil.Round(p.interest),
		Balance:   mathutil.Round(mathutil.Max(p.balance, 0)),
	}
}

// simulate walks the loan one month at a time until the balance reaches zero,
// handing each period to visit. It stops at the first period whose payment
// does not exceed the accrued interest or does not reduce the balance, and
// after constants.MaxPeriods periods.
func simulate(inputs Inputs, visit func(period)) error {
	if err := inputs.Validate(); err != nil {
		return err
	}

	balance := inputs.Balance
	if balance <= 0 {
		return nil
	}

	monthlyRate := inputs.MonthlyRate()
	payment := inputs.TotalPayment()
	date := inputs.NextPaymentDate

	if inputs.MonthlyPayment <= 0 {
		return &InsufficientPaymentError{
			Period:   1,
			Date:     date,
			Payment:  payment,
			Interest: balance * monthlyRate,
		}
	}

	for number := 1; ; number++ {
		interest := balance * monthlyRate
		principal := payment - interest
		if principal <= 0 || number > constants.MaxPeriods {
			return &InsufficientPaymentError{
				Period:   number,
				Date:     date,
				Payment:  payment,
				Interest: interest,
			}
		}

		// The final period pays only what is left.
		principal = mathutil.Min(principal, balance)
		remaining := balance - principal
		if remaining >= balance {
			// principal is below the float64 spacing at balance.
			return &InsufficientPaymentError{
				Period:   number,
				Date:     date,
				Payment:  payment,
				Interest: interest,
			}
		}
		balance = remaining

		visit(period{
			number:    number,
			date:      date,
			principal: principal,
			interest:  interest,
			balance:   balance,
		})

		if balance <= 0 {
			return nil
		}
		date = datetime.AddMonths(date, 1)
	}
}

// Amortize produces the month-by-month schedule for inputs. Each row's
// amounts are rounded to cents independently; rounding differences are not
// redistributed between rows. A non-positive balance yields an empty
// schedule. No rows are returned alongside an error.
func Amortize(inputs Inputs) ([]PaymentRow, error) {
	var rows []PaymentRow
	err := simulate(inputs, func(p period) {
		rows = append(rows, p.row())
	})
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []PaymentRow{}
	}
	return rows, nil
}

// CalculatePayoff runs the same simulation as Amortize but keeps only the
// payoff date, period count and total interest. Interest is accumulated at
// full precision and rounded once.
func CalculatePayoff(inputs Inputs) (PayoffSummary, error) {
	tracker := newPayoffTracker(inputs)
	if err := simulate(inputs, tracker.add); err != nil {
		return PayoffSummary{}, err
	}
	return tracker.summary(), nil
}

// Result bundles a schedule with its summary.
type Result struct {
	Inputs   Inputs        `json:"inputs"`
	Schedule []PaymentRow  `json:"schedule"`
	Summary  PayoffSummary `json:"summary"`
}

// Calculate runs a single simulation and returns both the schedule and the
// summary CalculatePayoff would report.
func Calculate(inputs Inputs) (Result, error) {
	tracker := newPayoffTracker(inputs)
	rows := []PaymentRow{}
	err := simulate(inputs, func(p period) {
		tracker.add(p)
		rows = append(rows, p.row())
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Inputs: inputs, Schedule: rows, Summary: tracker.summary()}, nil
}

// TotalPrincipal sums the principal column of the schedule.
func (r Result) TotalPrincipal() float64 {
	total := 0.0
	for _, row := range r.Schedule {
		total += row.Principal
	}
	return mathutil.Round(total)
}

// TotalPaid is principal plus interest over the life of the schedule.
func (r Result) TotalPaid() float64 {
	return mathutil.Round(r.TotalPrincipal() + r.Summary.TotalInterest)
}

// Balances returns the remaining balance after each period, the series a
// payoff chart plots.
func (r Result) Balances() []float64 {
	return Balances(r.Schedule)
}

type payoffTracker struct {
	date          time.Time
	months        int
	totalInterest float64
}

func newPayoffTracker(inputs Inputs) *payoffTracker {
	return &payoffTracker{date: inputs.NextPaymentDate}
}

func (t *payoffTracker) add(p period) {
	t.date = p.date
	t.months = p.number
	t.totalInterest += p.interest
}

func (t *payoffTracker) summary() PayoffSummary {
	return PayoffSummary{
		PayoffDate:    t.date,
		Months:        t.months,
		TotalInterest: mathutil.Round(t.totalInterest),
	}
}
