package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/skyblock-tools/skyblock-checker/internal/infrastructure/config"
)

// NewLogger builds a zerolog logger from the logging configuration.
// Diagnostics go to stderr so the rendered report on stdout stays clean.
func NewLogger(cfg config.LoggingConfig) zerolog.Logger {
	return NewLoggerWithOutput(cfg, os.Stderr)
}

// NewLoggerWithOutput is NewLogger with an explicit sink, for tests.
func NewLoggerWithOutput(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Format == "json" {
		logger = zerolog.New(out)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: out})
	}

	return logger.Level(level).With().Timestamp().Logger()
}
