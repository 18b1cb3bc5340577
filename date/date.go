// Package date implements a calendar day with no time-of-day component.
//
// Dates entered by users are ISO-8601 strings ("2023-10-22"); the package
// parses them leniently and orders them by calendar day only.
package date

import (
	"fmt"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read format (allows single-digit month/day).

// Format is the ISO-8601 layout used to write dates.
const Format = "2006-01-02"

// Date is a calendar day. The zero Date sorts before any parsed date.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns the canonical instant of that day (midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current local date.
func Today() Date { return New(time.Now().Date()) }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Compare returns -1, 0 or +1 depending on whether d is before, on or after x.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// String formats the date as YYYY-MM-DD.
func (d Date) String() string { return d.time().Format(Format) }

// Short formats the date as a chart axis label, e.g. "Oct 22".
func (d Date) Short() string { return d.time().Format("Jan 2") }

// Parse parses a Date. It accepts "2023-10-2" as well as "2023-10-02".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, Format, err)
	}
	return New(on.Date()), nil
}
