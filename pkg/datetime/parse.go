// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"github.com/iwvelando/mortgage-payoff/pkg/constants"
)

const (
	// DateLayout is the format expected in config files, CSV files and the API.
	DateLayout = constants.DateLayout
)

// Date returns the calendar date at midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Truncate drops the clock portion of t, keeping its calendar date in UTC.
func Truncate(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// MustParseDate parses a YYYY-MM-DD string and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseDate(dateStr string) time.Time {
	t, err := ParseDate(dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseDate parses a YYYY-MM-DD string into a UTC date.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayout, dateStr)
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatMonth renders t as YYYY-MM.
func FormatMonth(t time.Time) string {
	return t.Format(constants.MonthLayout)
}

// FormatMonthYear renders t as the full month name and year, e.g. "March 2024".
func FormatMonthYear(t time.Time) string {
	return t.Format(constants.MonthYearLayout)
}

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian
// calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of year.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// AddMonths returns d moved by the given number of calendar months. When the
// day of month does not exist in the target month it is clamped to the last
// valid day, so Jan 31 + 1 month is Feb 28 (or Feb 29 in a leap year).
//
// Unlike time.AddDate this never spills into the following month.
func AddMonths(d time.Time, months int) time.Time {
	index := int(d.Month()) - 1 + months
	yearOffset := index / constants.MonthsPerYear
	monthIndex := index % constants.MonthsPerYear
	if monthIndex < 0 {
		monthIndex += constants.MonthsPerYear
		yearOffset--
	}

	year := d.Year() + yearOffset
	month := time.Month(monthIndex + 1)
	day := d.Day()
	if last := DaysInMonth(year, month); day > last {
		day = last
	}

	return time.Date(year, month, day, d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), d.Location())
}
