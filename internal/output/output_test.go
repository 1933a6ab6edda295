package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/username/gregorian/internal/calendar"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func renderedCalendar(view calendar.ViewMode) *calendar.Gregorian {
	cal := calendar.NewGregorian(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), zap.NewNop())
	cal.SetView(view)
	return cal
}

func TestWriteText_Month(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, renderedCalendar(calendar.ViewMonth), "text", Options{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2+5 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), buf.String())
	}
	if lines[0] != "February 2024 (month view, 2024-01-28 .. 2024-03-02)" {
		t.Errorf("title = %q", lines[0])
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[1]), "Sun") {
		t.Errorf("header = %q", lines[1])
	}
	if lines[2] != " .28  .29  .30  .31  [ 1]   2    3 " {
		t.Errorf("first row = %q", lines[2])
	}
	if !strings.Contains(lines[6], ". 2") {
		t.Errorf("last row = %q, want trailing March days marked", lines[6])
	}
}

func TestWriteText_WeekAbbreviated(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, renderedCalendar(calendar.ViewWeek), Options{AbbreviateMonths: true}); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "Feb 2024 (week view") {
		t.Errorf("output = %q", out)
	}
	if strings.Contains(out, ".28") {
		t.Errorf("week view must not mark other-month days: %q", out)
	}
	if n := strings.Count(out, "\n"); n != 3 {
		t.Errorf("got %d lines, want 3", n)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, renderedCalendar(calendar.ViewWeek), "json", Options{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var got struct {
		Active     string `json:"active"`
		View       string `json:"view"`
		RangeStart string `json:"range_start"`
		RangeEnd   string `json:"range_end"`
		Matrix     [][]struct {
			Date    string `json:"date"`
			Weekday string `json:"weekday"`
		} `json:"matrix"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}

	if got.Active != "2024-02-01" || got.View != "week" {
		t.Errorf("active/view = %s/%s", got.Active, got.View)
	}
	if got.RangeStart != "2024-01-28" || got.RangeEnd != "2024-02-03" {
		t.Errorf("range = %s..%s", got.RangeStart, got.RangeEnd)
	}
	if len(got.Matrix) != 1 || len(got.Matrix[0]) != 7 {
		t.Fatalf("matrix shape = %d rows", len(got.Matrix))
	}
	if got.Matrix[0][4].Date != "2024-02-01" || got.Matrix[0][4].Weekday != "Thu" {
		t.Errorf("cell 4 = %+v", got.Matrix[0][4])
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, renderedCalendar(calendar.ViewMonth), "yaml", Options{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var got map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid yaml: %v\n%s", err, buf.String())
	}

	if got["view"] != "month" || got["month_name"] != "February" {
		t.Errorf("view/month = %v/%v", got["view"], got["month_name"])
	}
	matrix, ok := got["matrix"].([]interface{})
	if !ok || len(matrix) != 5 {
		t.Errorf("matrix = %v", got["matrix"])
	}
	if !strings.Contains(buf.String(), "2024-03-02") {
		t.Errorf("range end missing from output:\n%s", buf.String())
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, renderedCalendar(calendar.ViewMonth), "xml", Options{}); err == nil {
		t.Error("Write() expected error for unknown format")
	}
}
