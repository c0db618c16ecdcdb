package supportbank

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date layouts understood by the transaction file formats.
const (
	// LayoutCSV is the legacy tabular date layout (DD/MM/YYYY).
	LayoutCSV = "02/01/2006"
	// LayoutJSON is the structured-object date layout (local date-time, no zone).
	LayoutJSON = "2006-01-02T15:04:05"
	// LayoutISO is the layout used for display and diagnostics.
	LayoutISO = "2006-01-02"
)

// serialEpoch is the origin of the XML format's day-count date encoding:
// 1899-12-30, the common spreadsheet epoch.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Date represents a calendar date with day-level granularity.
//
// A Date is either the zero value or a real calendar day: every
// constructor validates, there is no invalid-but-constructed state.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns the Date for the given year, month and day.
// It returns an error wrapping [ErrInvalidDate] if no such day exists
// (month 13, 30th of February, ...); it never normalizes.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	ny, nm, nd := t.Date()
	if ny != year || nm != month || nd != day {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return Date{y: year, m: month, d: day}, nil
}

// ParseDate parses text against the given layout (one of [LayoutCSV],
// [LayoutJSON], [LayoutISO]). Time-of-day fields present in the layout are
// parsed and discarded. It returns an error wrapping [ErrInvalidDate] if
// the text does not match the layout or names no real calendar day.
func ParseDate(text, layout string) (Date, error) {
	t, err := time.Parse(layout, strings.TrimSpace(text))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
	}
	y, m, d := t.Date()
	return Date{y: y, m: m, d: d}, nil
}

// ParseSerialDate parses an integer day count since 1899-12-30, the native
// date encoding of the XML transaction format.
func ParseSerialDate(text string) (Date, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q is not a day count", ErrInvalidDate, text)
	}
	y, m, d := serialEpoch.AddDate(0, 0, n).Date()
	return Date{y: y, m: m, d: d}, nil
}

// Today returns the current date.
func Today() Date {
	y, m, d := time.Now().Date()
	return Date{y: y, m: m, d: d}
}

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns the canonical representation of that day (midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(LayoutISO) }

// Format returns the date formatted according to the given layout.
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare compares d and x and returns -1, 0 or +1.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }
