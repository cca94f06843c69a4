// Package output provides utilities for formatting and displaying payoff results.
package output

import (
	"bytes"
	"fmt"
	"io"

	"github.com/iwvelando/mortgage-payoff/pkg/datetime"
	"github.com/iwvelando/mortgage-payoff/pkg/mortgage"
	"github.com/iwvelando/mortgage-payoff/pkg/schedule"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SummaryFormat outputs the payoff date, number of payments and total interest.
func SummaryFormat(w io.Writer, summary mortgage.PayoffSummary) error {
	p := message.NewPrinter(language.English)
	if _, err := p.Fprintf(w, "Payoff Date: %s\n", datetime.FormatMonthYear(summary.PayoffDate)); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "Payments Remaining: %d\n", summary.Months); err != nil {
		return err
	}
	_, err := p.Fprintf(w, "Total Interest: $%.2f\n", summary.TotalInterest)
	return err
}

// PrettyFormat outputs a human-readable rather than machine-readable table
// preceded by the payoff summary.
func PrettyFormat(w io.Writer, rows []mortgage.PaymentRow, summary mortgage.PayoffSummary) error {
	if err := SummaryFormat(w, summary); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	if _, err := fmt.Fprintf(w, "\nDate    | Principal     | Interest      | Remaining Balance\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "____    | _____________ | _____________ | _________________\n"); err != nil {
		return err
	}
	for _, row := range rows {
		_, err := p.Fprintf(w, "%s | $%12.2f | $%12.2f | $%.2f\n",
			datetime.FormatMonth(row.Date), row.Principal, row.Interest, row.Balance)
		if err != nil {
			return err
		}
	}
	return nil
}

// CsvFormat outputs the schedule in the persisted comma-separated format.
func CsvFormat(w io.Writer, rows []mortgage.PaymentRow) error {
	return schedule.WriteCSV(w, rows)
}

// CsvString returns the CSV representation of the schedule.
func CsvString(rows []mortgage.PaymentRow) (string, error) {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, rows); err != nil {
		return "", err
	}
	return buf.String(), nil
}
