package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/username/gregorian/internal/calendar"
	"github.com/username/gregorian/pkg/dateutil"
	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
calendar:
  view: week
  date: "2024-02-01"
output:
  format: json
  abbreviate_months: true
log:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Calendar.GetView() != calendar.ViewWeek {
		t.Errorf("GetView() = %v, want week", cfg.Calendar.GetView())
	}
	if cfg.Calendar.GetDate() != dateutil.NewDate(2024, time.February, 1) {
		t.Errorf("GetDate() = %v, want 2024-02-01", cfg.Calendar.GetDate())
	}
	if cfg.Output.Format != "json" || !cfg.Output.AbbreviateMonths {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Log.GetLevel() != zapcore.DebugLevel {
		t.Errorf("GetLevel() = %v, want debug", cfg.Log.GetLevel())
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Calendar.GetView() != calendar.ViewMonth {
		t.Errorf("GetView() = %v, want month", cfg.Calendar.GetView())
	}
	if !cfg.Calendar.GetDate().IsZero() {
		t.Errorf("GetDate() = %v, want zero", cfg.Calendar.GetDate())
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %q, want text", cfg.Output.Format)
	}
	if cfg.Log.GetLevel() != zapcore.InfoLevel {
		t.Errorf("GetLevel() = %v, want info", cfg.Log.GetLevel())
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("GREGORIAN_CALENDAR_VIEW", "week")
	t.Setenv("GREGORIAN_OUTPUT_FORMAT", "yaml")

	cfg, err := Load(writeConfig(t, "calendar:\n  view: month\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Calendar.View != "week" {
		t.Errorf("Calendar.View = %q, want week", cfg.Calendar.View)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Output.Format = %q, want yaml", cfg.Output.Format)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() expected error for missing explicit file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Calendar: CalendarConfig{View: "month"},
			Output:   OutputConfig{Format: "text"},
			Log:      LogConfig{Level: "info"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"week view", func(c *Config) { c.Calendar.View = "week" }, false},
		{"unknown view", func(c *Config) { c.Calendar.View = "year" }, true},
		{"bad date", func(c *Config) { c.Calendar.Date = "someday" }, true},
		{"dotted date", func(c *Config) { c.Calendar.Date = "01.02.2024" }, false},
		{"unknown format", func(c *Config) { c.Output.Format = "xml" }, true},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
