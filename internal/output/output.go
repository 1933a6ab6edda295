package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/username/gregorian/internal/calendar"
	"github.com/username/gregorian/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

// Snapshot is the serializable state of a rendered calendar
type Snapshot struct {
	Active      dateutil.Date        `json:"active" yaml:"active"`
	View        calendar.ViewMode    `json:"view" yaml:"view"`
	Year        int                  `json:"year" yaml:"year"`
	MonthName   string               `json:"month_name" yaml:"month_name"`
	WeekdayName string               `json:"weekday_name" yaml:"weekday_name"`
	RangeStart  dateutil.Date        `json:"range_start" yaml:"range_start"`
	RangeEnd    dateutil.Date        `json:"range_end" yaml:"range_end"`
	WeekHeaders []string             `json:"week_headers" yaml:"week_headers"`
	Matrix      [][]calendar.DayCell `json:"matrix" yaml:"matrix"`
}

// Options controls the text writer
type Options struct {
	AbbreviateMonths bool
}

// NewSnapshot captures the current state of cal
func NewSnapshot(cal *calendar.Gregorian) Snapshot {
	return Snapshot{
		Active:      cal.Active(),
		View:        cal.View(),
		Year:        cal.ActiveYear(),
		MonthName:   cal.ActiveMonthName(),
		WeekdayName: cal.ActiveWeekdayName(),
		RangeStart:  cal.RangeStart(),
		RangeEnd:    cal.RangeEnd(),
		WeekHeaders: cal.WeekHeaders(),
		Matrix:      cal.Matrix(),
	}
}

// Write prints cal in the given format ("text", "json" or "yaml")
func Write(w io.Writer, cal *calendar.Gregorian, format string, opts Options) error {
	switch format {
	case "text", "":
		return WriteText(w, cal, opts)
	case "json":
		return WriteJSON(w, cal)
	case "yaml":
		return WriteYAML(w, cal)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// WriteJSON prints an indented JSON snapshot
func WriteJSON(w io.Writer, cal *calendar.Gregorian) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewSnapshot(cal)); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

// WriteYAML prints a YAML snapshot
func WriteYAML(w io.Writer, cal *calendar.Gregorian) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewSnapshot(cal)); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush yaml: %w", err)
	}
	return nil
}

// WriteText prints the grid as a table. The active day is bracketed,
// days outside the active month are prefixed with a dot in month view.
func WriteText(w io.Writer, cal *calendar.Gregorian, opts Options) error {
	month := cal.ActiveMonthName()
	if opts.AbbreviateMonths {
		month = calendar.MonthAbbreviation(cal.Active().Month())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d (%s view, %s .. %s)\n", month, cal.ActiveYear(), cal.View(), cal.RangeStart(), cal.RangeEnd())

	for _, name := range cal.WeekHeaders() {
		fmt.Fprintf(&b, " %-4s", name)
	}
	b.WriteString("\n")

	active := cal.Active()
	for _, row := range cal.Matrix() {
		for _, cell := range row {
			b.WriteString(" ")
			b.WriteString(formatCell(cell.Date, active, cal.IsMonthView()))
		}
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}

func formatCell(d, active dateutil.Date, monthView bool) string {
	switch {
	case d == active:
		return fmt.Sprintf("[%2d]", d.Day())
	case monthView && d.Month() != active.Month():
		return fmt.Sprintf(".%2d ", d.Day())
	default:
		return fmt.Sprintf(" %2d ", d.Day())
	}
}
