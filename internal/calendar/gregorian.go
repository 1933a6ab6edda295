package calendar

import (
	"time"

	"github.com/username/gregorian/pkg/dateutil"
	"go.uber.org/zap"
)

const rowLength = 7

// Gregorian computes the grid of days shown by a calendar widget.
//
// The active date and view mode are the only independent state; range start,
// range end and the matrix are rebuilt together by every render.
// A Gregorian is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
type Gregorian struct {
	active dateutil.Date
	view   ViewMode
	start  dateutil.Date
	end    dateutil.Date
	matrix [][]DayCell
	logger *zap.Logger
}

// NewGregorian creates an engine centered on date in month view.
// A zero date means today. Nothing is rendered until Render or a navigation call.
func NewGregorian(date time.Time, logger *zap.Logger) *Gregorian {
	if logger == nil {
		logger = zap.NewNop()
	}

	active := dateutil.Today()
	if !date.IsZero() {
		active = dateutil.DateOf(date)
	}

	return &Gregorian{
		active: active,
		view:   ViewMonth,
		logger: logger,
	}
}

// WeekHeaders returns the weekday labels, Sunday first
func (g *Gregorian) WeekHeaders() []string {
	return append([]string(nil), WeekdayNames[:]...)
}

// MonthHeaders returns the month names, January first
func (g *Gregorian) MonthHeaders() []string {
	return append([]string(nil), MonthNames[:]...)
}

func (g *Gregorian) Active() dateutil.Date { return g.active }

func (g *Gregorian) View() ViewMode { return g.view }

// RangeStart is the first date of the matrix (zero before the first render)
func (g *Gregorian) RangeStart() dateutil.Date { return g.start }

// RangeEnd is the last date of the matrix (zero before the first render)
func (g *Gregorian) RangeEnd() dateutil.Date { return g.end }

// Rendered reports whether the matrix has been built
func (g *Gregorian) Rendered() bool { return g.matrix != nil }

// Matrix returns a copy of the current grid, or nil before the first render
func (g *Gregorian) Matrix() [][]DayCell {
	if g.matrix == nil {
		return nil
	}

	rows := make([][]DayCell, len(g.matrix))
	for i, row := range g.matrix {
		rows[i] = append([]DayCell(nil), row...)
	}
	return rows
}

// Contains reports whether date falls inside the rendered range
func (g *Gregorian) Contains(date dateutil.Date) bool {
	if !g.Rendered() {
		return false
	}
	return !date.Before(g.start) && !date.After(g.end)
}

func (g *Gregorian) ActiveWeekdayName() string {
	return WeekdayName(g.active.Weekday())
}

func (g *Gregorian) ActiveMonthName() string {
	return MonthName(g.active.Month())
}

func (g *Gregorian) ActiveYear() int {
	return g.active.Year()
}

func (g *Gregorian) IsMonthView() bool { return g.view == ViewMonth }

func (g *Gregorian) IsWeekView() bool { return g.view == ViewWeek }

// MonthLength returns the number of days in month of year.
// Months are 1-based time.Month values: February is 2, not 1.
func (g *Gregorian) MonthLength(month time.Month, year int) int {
	return dateutil.MonthLength(month, year)
}

// SetView switches the view mode and re-renders around the current active date.
// Unknown modes are ignored and leave all state untouched.
func (g *Gregorian) SetView(mode ViewMode) {
	if !mode.Valid() {
		g.logger.Debug("Ignoring unknown view mode", zap.Int("mode", int(mode)))
		return
	}

	g.view = mode
	g.Render()
}

// SetViewName is SetView for the string form ("month" or "week")
func (g *Gregorian) SetViewName(name string) {
	mode, ok := ParseViewMode(name)
	if !ok {
		g.logger.Debug("Ignoring unknown view name", zap.String("view", name))
		return
	}

	g.SetView(mode)
}

// SetActiveMonth moves the active date to the day of t, dropping its time of day
func (g *Gregorian) SetActiveMonth(t time.Time) {
	g.setActive(dateutil.DateOf(t))
}

// SetActiveDate moves the active date to d. A zero date means today.
func (g *Gregorian) SetActiveDate(d dateutil.Date) {
	if d.IsZero() {
		d = dateutil.Today()
	}
	g.setActive(d)
}

// NextMonth moves to the 1st of the following month.
// The day of month is intentionally not kept; only year and month drive a month grid.
func (g *Gregorian) NextMonth() {
	g.setActive(g.active.AddMonths(1))
}

// PrevMonth moves to the 1st of the preceding month
func (g *Gregorian) PrevMonth() {
	g.setActive(g.active.AddMonths(-1))
}

// NextWeek moves the active date 7 days forward
func (g *Gregorian) NextWeek() {
	g.setActive(g.active.AddDays(rowLength))
}

// PrevWeek moves the active date 7 days back
func (g *Gregorian) PrevWeek() {
	g.setActive(g.active.AddDays(-rowLength))
}

// Next advances by the unit of the current view
func (g *Gregorian) Next() {
	if g.IsWeekView() {
		g.NextWeek()
		return
	}
	g.NextMonth()
}

// Prev retreats by the unit of the current view
func (g *Gregorian) Prev() {
	if g.IsWeekView() {
		g.PrevWeek()
		return
	}
	g.PrevMonth()
}

func (g *Gregorian) setActive(d dateutil.Date) {
	g.active = dateutil.NewDate(d.Year(), d.Month(), d.Day())
	g.Render()
}

// Render rebuilds range start, range end and the matrix from the active date and view
func (g *Gregorian) Render() {
	year, month := g.active.Year(), g.active.Month()
	size := dateutil.MonthLength(month, year)

	// A month ending on Sunday or Monday spills into one more row than size/7 suggests.
	lastWeekday := dateutil.NewDate(year, month, size).Weekday()
	rowMod := 1
	if lastWeekday < time.Tuesday {
		rowMod = 2
	}

	numRows := 1
	anchor := g.active
	offset := g.active.Day()
	if g.IsMonthView() {
		numRows = size/rowLength + rowMod
		anchor = g.active.FirstOfMonth()
		offset = 1
	}
	start := dateutil.NewDate(anchor.Year(), anchor.Month(), offset-int(anchor.Weekday()))

	matrix := make([][]DayCell, numRows)
	for x := range matrix {
		row := make([]DayCell, rowLength)
		for y := range row {
			row[y] = NewDayCell(start.AddDays(y))
		}
		matrix[x] = row
		start = start.AddDays(rowLength)
	}

	g.start = matrix[0][0].Date
	g.end = matrix[numRows-1][rowLength-1].Date
	g.matrix = matrix

	g.logger.Debug("Calendar rendered",
		zap.Stringer("active", g.active),
		zap.Stringer("view", g.view),
		zap.Int("rows", numRows),
		zap.Stringer("range_start", g.start),
		zap.Stringer("range_end", g.end))
}
