// Package schedule persists amortization schedules as CSV.
package schedule

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iwvelando/mortgage-payoff/pkg/constants"
	"github.com/iwvelando/mortgage-payoff/pkg/datetime"
	"github.com/iwvelando/mortgage-payoff/pkg/mortgage"
	"github.com/shopspring/decimal"
)

// Header is the first record of every schedule file.
var Header = []string{"Date", "Principal Paid", "Interest Paid", "Remaining Balance"}

// ErrInvalidHeader is returned when a file does not start with Header.
var ErrInvalidHeader = errors.New("invalid schedule header")

// WriteCSV writes rows with amounts fixed to two fraction digits.
func WriteCSV(w io.Writer, rows []mortgage.PaymentRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write schedule header: %w", err)
	}

	for i, row := range rows {
		record := []string{
			datetime.FormatDate(row.Date),
			formatAmount(row.Principal),
			formatAmount(row.Interest),
			formatAmount(row.Balance),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write schedule row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadCSV parses a schedule written by WriteCSV. Header cells are compared
// after trimming surrounding whitespace, so "Date, Principal Paid" is
// accepted too.
func ReadCSV(r io.Reader) ([]mortgage.PaymentRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(Header)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrInvalidHeader)
		}
		return nil, fmt.Errorf("failed to read schedule header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	rows := []mortgage.PaymentRow{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read schedule: %w", err)
		}

		line, _ := reader.FieldPos(0)
		row, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// ExportFile writes rows to path, replacing any existing file.
func ExportFile(path string, rows []mortgage.PaymentRow) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create schedule file %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close schedule file %s: %w", path, closeErr)
		}
	}()

	return WriteCSV(file, rows)
}

// ImportFile reads a schedule previously written by ExportFile.
func ImportFile(path string) ([]mortgage.PaymentRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schedule file %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	rows, err := ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to import schedule %s: %w", path, err)
	}
	return rows, nil
}

func checkHeader(header []string) error {
	for i, expected := range Header {
		if strings.TrimSpace(header[i]) != expected {
			return fmt.Errorf("%w: column %d is %q, expected %q", ErrInvalidHeader, i+1, header[i], expected)
		}
	}
	return nil
}

func parseRecord(record []string) (mortgage.PaymentRow, error) {
	date, err := datetime.ParseDate(strings.TrimSpace(record[0]))
	if err != nil {
		return mortgage.PaymentRow{}, fmt.Errorf("invalid date %q: %w", record[0], err)
	}

	amounts := make([]float64, 3)
	for i := range amounts {
		value, err := parseAmount(record[i+1])
		if err != nil {
			return mortgage.PaymentRow{}, fmt.Errorf("invalid %s %q: %w", strings.ToLower(Header[i+1]), record[i+1], err)
		}
		amounts[i] = value
	}

	return mortgage.PaymentRow{
		Date:      date,
		Principal: amounts[0],
		Interest:  amounts[1],
		Balance:   amounts[2],
	}, nil
}

func formatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(constants.DecimalPlaces)
}

func parseAmount(value string) (float64, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return 0, err
	}
	if amount.IsNegative() {
		return 0, errors.New("amount must not be negative")
	}
	return amount.Round(constants.DecimalPlaces).InexactFloat64(), nil
}
