package dateutil

import (
	"fmt"
	"time"
)

// ISODate is the layout used to print and parse dates
const ISODate = "2006-01-02"

// Date is a calendar date without time of day or location.
// Values are always normalized: Feb 31 becomes Mar 2 (or Mar 3).
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate creates a normalized date, rolling over out-of-range months and days
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf drops the time of day and location of t
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Today returns today's date in local time
func Today() Date {
	return DateOf(time.Now())
}

func (d Date) Year() int { return d.year }

func (d Date) Month() time.Month { return d.month }

func (d Date) Day() int { return d.day }

func (d Date) IsZero() bool { return d == Date{} }

func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// Time returns midnight UTC of the date
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days later (n may be negative)
func (d Date) AddDays(n int) Date {
	return NewDate(d.year, d.month, d.day+n)
}

// AddMonths returns the first day of the month n months away.
// The day of month is reset, never carried: Jan 31 + 1 is Feb 1.
func (d Date) AddMonths(n int) Date {
	return NewDate(d.year, d.month+time.Month(n), 1)
}

// FirstOfMonth returns the 1st of d's month
func (d Date) FirstOfMonth() Date {
	return Date{year: d.year, month: d.month, day: 1}
}

// LastOfMonth returns the last day of d's month
func (d Date) LastOfMonth() Date {
	return Date{year: d.year, month: d.month, day: MonthLength(d.month, d.year)}
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return sign(d.year - other.year)
	case d.month != other.month:
		return sign(int(d.month) - int(other.month))
	default:
		return sign(d.day - other.day)
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

func (d Date) Equal(other Date) bool { return d == other }

func (d Date) String() string {
	return d.Time().Format(ISODate)
}

// MarshalText implements encoding.TextMarshaler
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Date) UnmarshalText(text []byte) error {
	t, err := time.Parse(ISODate, string(text))
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", text, err)
	}
	*d = DateOf(t)
	return nil
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// IsLeapYear applies the Gregorian rule: every 4th year, except centuries not divisible by 400
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// MonthLength returns the number of days in the given month of year
func MonthLength(month time.Month, year int) int {
	switch month {
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 31
}

// ParseDate parses date string in various formats
func ParseDate(dateStr string) (Date, error) {
	formats := []string{
		ISODate,
		"02.01.2006",
		"2006/01/02",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z07:00",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return DateOf(t), nil
		}
	}

	return Date{}, fmt.Errorf("unrecognized date format: %q", dateStr)
}
