package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.elastic.co/ecszerolog"
)

// Output formats
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatECS     = "ecs"
)

// Config holds logger configuration
type Config struct {
	Level  string
	Format string
	App    string
	Output io.Writer
}

// New builds a logger for the given configuration
func New(cfg Config) (zerolog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	var l zerolog.Logger
	switch strings.ToLower(cfg.Format) {
	case "", FormatConsole:
		l = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	case FormatJSON:
		l = zerolog.New(out).With().Timestamp().Logger()
	case FormatECS:
		// ecszerolog adds its own @timestamp
		l = ecszerolog.New(out)
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", cfg.Format)
	}

	l = l.Level(level)
	if cfg.App != "" {
		l = l.With().Str("app", cfg.App).Logger()
	}
	return l, nil
}

// Setup replaces the global zerolog logger
func Setup(cfg Config) error {
	l, err := New(cfg)
	if err != nil {
		return err
	}
	log.Logger = l
	return nil
}

// ParseLevel maps a config level to zerolog, defaulting to info
func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}
