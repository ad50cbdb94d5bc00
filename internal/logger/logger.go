// Package logger configures the process-wide zerolog logger.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the process-wide logger. Init replaces it.
var Logger = log.Logger

// Config controls level, output format and caller reporting
type Config struct {
	Level        string `mapstructure:"level"`
	Format       string `mapstructure:"format"` // json or pretty
	TimeFormat   string `mapstructure:"time_format"`
	ReportCaller bool   `mapstructure:"report_caller"`
}

// Init configures the global logger writing to stdout
func Init(config Config) {
	InitWriter(config, os.Stdout)
}

// InitWriter configures the global logger writing to out
func InitWriter(config Config, out io.Writer) {
	Logger = New(config, out)
	log.Logger = Logger
}

// New builds a logger without touching the global one
func New(config Config, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(config.Level)
	if err != nil || config.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.TimeFormat == "" {
		zerolog.TimeFieldFormat = time.RFC3339
	} else {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	output := out
	if config.Format == "pretty" {
		output = zerolog.ConsoleWriter{Out: out, TimeFormat: config.TimeFormat}
	}

	ctx := zerolog.New(output).Level(level).With().Timestamp()
	if config.ReportCaller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// Debug starts a debug-level event
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info starts an info-level event
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn starts a warn-level event
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error starts an error-level event
func Error() *zerolog.Event {
	return Logger.Error()
}

// Ctx returns the logger attached to ctx, falling back to the global logger
func Ctx(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &Logger
}

// WithContext attaches the global logger to ctx
func WithContext(ctx context.Context) context.Context {
	return Logger.WithContext(ctx)
}
