package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/gregorian/internal/calendar"
	"github.com/username/gregorian/internal/config"
	"github.com/username/gregorian/internal/output"
	"github.com/username/gregorian/pkg/dateutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
)

func main() {
	if err := execute(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// execute runs the CLI and flushes the logger whether or not the command failed
func execute(args []string, out io.Writer) error {
	rootCmd := newRootCmd()
	rootCmd.SetOut(out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if logger != nil {
		if err != nil {
			logger.Error("Command failed", zap.Error(err))
		}
		_ = logger.Sync()
	}
	return err
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gregorian",
		Short:         "Gregorian calendar grid",
		Long:          "Compute the month or week grid of days a calendar widget displays",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				initLogger(zapcore.InfoLevel)
				return fmt.Errorf("failed to load config: %w", err)
			}

			if cfg.Log.File != "" {
				logger = initFileLogger(cfg.Log.File, cfg.Log.GetLevel())
			} else {
				initLogger(cfg.Log.GetLevel())
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(monthLengthCmd())
	rootCmd.AddCommand(headersCmd())

	return rootCmd
}

func showCmd() *cobra.Command {
	var (
		dateStr    string
		view       string
		next       int
		prev       int
		format     string
		abbreviate bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the calendar grid around a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if next < 0 || prev < 0 {
				return fmt.Errorf("--next and --prev must not be negative")
			}

			active := cfg.Calendar.GetDate()
			if dateStr != "" {
				d, err := dateutil.ParseDate(dateStr)
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
				active = d
			}

			mode := cfg.Calendar.GetView()
			if view != "" {
				m, ok := calendar.ParseViewMode(view)
				if !ok {
					return fmt.Errorf("invalid --view %q: must be 'month' or 'week'", view)
				}
				mode = m
			}

			if format == "" {
				format = cfg.Output.Format
			}

			var start time.Time
			if !active.IsZero() {
				start = active.Time()
			}
			cal := calendar.NewGregorian(start, logger)
			cal.SetView(mode)

			for i := 0; i < next; i++ {
				cal.Next()
			}
			for i := 0; i < prev; i++ {
				cal.Prev()
			}

			logger.Info("Calendar computed",
				zap.Stringer("active", cal.Active()),
				zap.Stringer("view", cal.View()),
				zap.Int("rows", len(cal.Matrix())),
				zap.String("format", format))

			return output.Write(cmd.OutOrStdout(), cal, format, output.Options{
				AbbreviateMonths: abbreviate || cfg.Output.AbbreviateMonths,
			})
		},
	}

	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "Active date (YYYY-MM-DD, DD.MM.YYYY); default today")
	cmd.Flags().StringVarP(&view, "view", "v", "", "View mode: month or week")
	cmd.Flags().IntVar(&next, "next", 0, "Advance by N months (month view) or weeks (week view)")
	cmd.Flags().IntVar(&prev, "prev", 0, "Go back by N months (month view) or weeks (week view)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, json or yaml")
	cmd.Flags().BoolVar(&abbreviate, "abbreviate", false, "Use three-letter month names in text output")

	return cmd
}

func monthLengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month-length MONTH YEAR",
		Short: "Print the number of days in a month (MONTH is 1-12)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := strconv.Atoi(args[0])
			if err != nil || month < 1 || month > 12 {
				return fmt.Errorf("month must be a number between 1 and 12, got %q", args[0])
			}
			year, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid year %q: %w", args[1], err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), dateutil.MonthLength(time.Month(month), year))
			return nil
		},
	}
}

func headersCmd() *cobra.Command {
	var abbreviate bool

	cmd := &cobra.Command{
		Use:   "headers",
		Short: "Print the weekday and month name tables",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, name := range calendar.WeekdayNames {
				fmt.Fprintf(out, "%s ", name)
			}
			fmt.Fprintln(out)

			months := calendar.MonthNames
			if abbreviate {
				months = calendar.MonthAbbreviations
			}
			for i, name := range months {
				fmt.Fprintf(out, "%2d %s\n", i+1, name)
			}
		},
	}

	cmd.Flags().BoolVar(&abbreviate, "abbreviate", false, "Print three-letter month names")

	return cmd
}

func initLogger(level zapcore.Level) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Encoding = "console"
	config.OutputPaths = []string{"stderr"}
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level zapcore.Level) *zap.Logger {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		level,
	)

	return zap.New(core)
}
