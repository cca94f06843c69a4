package config

import (
	"fmt"

	"github.com/iwvelando/mortgage-payoff/pkg/datetime"
	"github.com/iwvelando/mortgage-payoff/pkg/format"
	"github.com/iwvelando/mortgage-payoff/pkg/mathutil"
)

// interestShareWarning flags payments where interest takes most of the first payment.
const interestShareWarning = 0.9

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Problems that make a calculation impossible are reported
// by the engine itself.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string
	m := conf.Mortgage

	if m.Balance <= 0 {
		warnings = append(warnings, fmt.Sprintf("Balance %s is not positive - the schedule will be empty",
			format.Currency(m.Balance)))
		return warnings
	}

	if m.InterestRate > 0 && m.InterestRate < 1 {
		warnings = append(warnings, fmt.Sprintf("Interest rate %.4g looks like a fraction - interestRate is a percentage (e.g. 2.25 for %s)",
			m.InterestRate, format.Percent(0.0225)))
	}

	if m.NextPaymentDate != "" {
		if _, err := datetime.ParseDate(m.NextPaymentDate); err != nil {
			warnings = append(warnings, fmt.Sprintf("Next payment date %q is not a YYYY-MM-DD date", m.NextPaymentDate))
		}
	}

	payment := m.MonthlyPayment + m.ExtraPrincipal
	interest := m.Balance * mathutil.PercentToFraction(m.InterestRate) / 12
	switch {
	case payment <= interest:
		warnings = append(warnings, fmt.Sprintf("Payment %s does not cover first-month interest %s - the loan will never be paid off",
			format.Currency(payment), format.Currency(interest)))
	case interest > 0 && interest/payment >= interestShareWarning:
		warnings = append(warnings, fmt.Sprintf("Interest %s is more than %.0f%% of the %s payment - payoff will take a very long time",
			format.Currency(interest), interestShareWarning*100, format.Currency(payment)))
	}

	if m.ExtraPrincipal > m.Balance {
		warnings = append(warnings, fmt.Sprintf("Extra principal %s exceeds the balance %s - the loan is paid off in the first month",
			format.Currency(m.ExtraPrincipal), format.Currency(m.Balance)))
	}

	return warnings
}
