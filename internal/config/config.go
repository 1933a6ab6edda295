package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/username/gregorian/internal/calendar"
	"github.com/username/gregorian/pkg/dateutil"
	"go.uber.org/zap/zapcore"
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Output   OutputConfig   `mapstructure:"output"`
	Log      LogConfig      `mapstructure:"log"`
}

// CalendarConfig holds the initial engine state
type CalendarConfig struct {
	View string `mapstructure:"view"` // "month" or "week"
	Date string `mapstructure:"date"` // empty means today
}

// OutputConfig controls how rendered grids are printed
type OutputConfig struct {
	Format           string `mapstructure:"format"` // "text", "json" or "yaml"
	AbbreviateMonths bool   `mapstructure:"abbreviate_months"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // empty logs to stderr
	Level string `mapstructure:"level"`
}

var formats = []string{"text", "json", "yaml"}

// Load loads configuration from file. A missing file is not an error
// when no explicit path is given; defaults and environment apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("calendar.view", "month")
	v.SetDefault("calendar.date", "")
	v.SetDefault("output.format", "text")
	v.SetDefault("output.abbreviate_months", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.gregorian")
		v.AddConfigPath("/etc/gregorian")
	}

	// GREGORIAN_CALENDAR_VIEW=week overrides calendar.view
	v.SetEnvPrefix("gregorian")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, ok := calendar.ParseViewMode(c.Calendar.View); !ok {
		return fmt.Errorf("calendar.view must be 'month' or 'week', got '%s'", c.Calendar.View)
	}
	if c.Calendar.Date != "" {
		if _, err := dateutil.ParseDate(c.Calendar.Date); err != nil {
			return fmt.Errorf("calendar.date: %w", err)
		}
	}

	if !validFormat(c.Output.Format) {
		return fmt.Errorf("output.format must be one of %s, got '%s'", strings.Join(formats, ", "), c.Output.Format)
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}

func validFormat(format string) bool {
	for _, f := range formats {
		if f == format {
			return true
		}
	}
	return false
}

// GetView returns the configured initial view mode
func (c *CalendarConfig) GetView() calendar.ViewMode {
	mode, ok := calendar.ParseViewMode(c.View)
	if !ok {
		return calendar.ViewMonth
	}
	return mode
}

// GetDate returns the configured initial date, or a zero date for today
func (c *CalendarConfig) GetDate() dateutil.Date {
	if c.Date == "" {
		return dateutil.Date{}
	}
	date, err := dateutil.ParseDate(c.Date)
	if err != nil {
		return dateutil.Date{}
	}
	return date
}

// GetLevel returns the configured log level. Default: info
func (c *LogConfig) GetLevel() zapcore.Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return zapcore.InfoLevel
	}
	return level
}
