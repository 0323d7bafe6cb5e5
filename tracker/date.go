// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tracker

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the textual form used for every date in the API.
const DateLayout = "02-01-2006"

// isoLayout is the sortable form used in storage.
const isoLayout = "2006-01-02"

// Parsing accepts single-digit days and months ("1-11-2025").
const parseLayout = "2-1-2006"

var ErrInvalidDateFormat = errors.New("invalid date format, expected DD-MM-YYYY")

// Date is a calendar day without time-of-day or zone.
// It is comparable and safe to use as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a DD-MM-YYYY string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(parseLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return DateOf(t), nil
}

// ParseISODate parses the YYYY-MM-DD storage form.
func ParseISODate(s string) (Date, error) {
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return DateOf(t), nil
}

// MustParseDate is ParseDate for literals; it panics on malformed input.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String returns the DD-MM-YYYY form.
func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// ISO returns the YYYY-MM-DD form.
func (d Date) ISO() string {
	return d.Time().Format(isoLayout)
}

// Compare returns -1, 0 or +1.
func (d Date) Compare(o Date) int {
	return d.Time().Compare(o.Time())
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

// DaysUntil returns the number of whole days from d to o, negative when o is earlier.
func (d Date) DaysUntil(o Date) int {
	return int((o.Time().Unix() - d.Time().Unix()) / 86400)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
