package calendar

import (
	"time"

	"github.com/username/gregorian/pkg/dateutil"
)

// WeekdayNames are the column labels of a matrix row, Sunday first
var WeekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// MonthNames are the full month names, January first
var MonthNames = [12]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// MonthAbbreviations are the three-letter month names, January first
var MonthAbbreviations = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// ViewMode selects how much of the calendar the matrix spans
type ViewMode int

const (
	ViewMonth ViewMode = iota + 1
	ViewWeek
)

var viewNames = map[ViewMode]string{
	ViewMonth: "month",
	ViewWeek:  "week",
}

// ParseViewMode maps "month" and "week" to their ViewMode
func ParseViewMode(name string) (ViewMode, bool) {
	for mode, n := range viewNames {
		if n == name {
			return mode, true
		}
	}
	return 0, false
}

// Valid reports whether v is one of the two known modes
func (v ViewMode) Valid() bool {
	_, ok := viewNames[v]
	return ok
}

func (v ViewMode) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler
func (v ViewMode) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// DayCell is one cell of the matrix
type DayCell struct {
	Date        dateutil.Date `json:"date" yaml:"date"`
	WeekdayName string        `json:"weekday" yaml:"weekday"`
}

// NewDayCell pairs a date with its weekday name
func NewDayCell(date dateutil.Date) DayCell {
	return DayCell{
		Date:        date,
		WeekdayName: WeekdayName(date.Weekday()),
	}
}

// WeekdayName returns the short label of a weekday
func WeekdayName(day time.Weekday) string {
	return WeekdayNames[day]
}

// MonthName returns the full name of a month
func MonthName(month time.Month) string {
	return MonthNames[month-1]
}

// MonthAbbreviation returns the three-letter name of a month
func MonthAbbreviation(month time.Month) string {
	return MonthAbbreviations[month-1]
}
