// Package logger configures the zerolog logger shared by the TripPulse API.
// Output is JSON by default, or a human-readable console format for local runs.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// Config selects level, output format and the fields stamped on every entry.
type Config struct {
	// Level is the minimum level that is written; unknown values mean info
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is json or console
	Format string `env:"LOG_FORMAT" envDefault:"json"`

	// EnableCaller adds file:line of the call site
	EnableCaller bool `env:"LOG_CALLER" envDefault:"false"`

	// ServiceName is attached to every entry as the "service" field
	ServiceName string `env:"SERVICE_NAME" envDefault:"trippulse-api"`
}

// DefaultConfig is JSON at info level.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "trippulse-api",
	}
}

// Logger wraps zerolog.Logger with TripPulse context helpers.
type Logger struct {
	zerolog.Logger
}

// New creates a new Logger writing to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a new Logger with a custom output writer.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	writer := output
	if cfg.Format == "console" {
		writer = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	ctx := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName)

	if cfg.EnableCaller {
		ctx = ctx.Caller()
	}

	return &Logger{Logger: ctx.Logger()}
}

// Component returns the plain zerolog logger handed to a named component.
func (l *Logger) Component(name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// Global is the process-wide logger, set up by Init in main.
var Global *Logger

// Init builds the global logger from cfg and installs it as zerolog's
// package-level logger as well.
func Init(cfg Config) *Logger {
	Global = New(cfg)
	zlog.Logger = Global.Logger
	return Global
}
