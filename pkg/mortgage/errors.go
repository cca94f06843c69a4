package mortgage

import (
	"errors"
	"fmt"
	"time"

	"github.com/iwvelando/mortgage-payoff/pkg/datetime"
)

var (
	// ErrInsufficientPayment matches any *InsufficientPaymentError.
	ErrInsufficientPayment = errors.New("payment does not cover interest")

	// ErrInvalidInput matches any *InvalidInputError.
	ErrInvalidInput = errors.New("invalid mortgage input")
)

// InsufficientPaymentError reports the first period in which the payment plus
// extra principal fails to exceed the accrued interest. The balance would
// never decrease, so no schedule is produced.
type InsufficientPaymentError struct {
	Period   int
	Date     time.Time
	Payment  float64
	Interest float64
}

func (e *InsufficientPaymentError) Error() string {
	if e.Payment > e.Interest {
		return fmt.Sprintf("%s: payment of %.2f does not retire the balance by period %d (%s)",
			ErrInsufficientPayment, e.Payment, e.Period, datetime.FormatDate(e.Date))
	}
	return fmt.Sprintf("%s: payment of %.2f does not exceed interest of %.2f in period %d (%s)",
		ErrInsufficientPayment, e.Payment, e.Interest, e.Period, datetime.FormatDate(e.Date))
}

// Unwrap allows errors.Is(err, ErrInsufficientPayment).
func (e *InsufficientPaymentError) Unwrap() error {
	return ErrInsufficientPayment
}

// InvalidInputError reports an input field the engine refuses to simulate.
type InvalidInputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Field == "nextPaymentDate" {
		return fmt.Sprintf("%s: %s %s", ErrInvalidInput, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s, got %v", ErrInvalidInput, e.Field, e.Reason, e.Value)
}

// Unwrap allows errors.Is(err, ErrInvalidInput).
func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}
