// Package logging provides structured logging for the service using zerolog:
// human-readable console output when attached to a terminal, JSON otherwise.
// Level and format are controlled through LOG_LEVEL and LOG_FORMAT.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var defaultLogger zerolog.Logger

// Nop discards all output; handy for tests.
var Nop = zerolog.Nop()

func init() {
	defaultLogger = newDefault()
}

func newDefault() zerolog.Logger {
	var writer io.Writer = os.Stderr
	if isTerminal() && os.Getenv("LOG_FORMAT") != "json" {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("NO_COLOR") != "",
		}
	}

	level := levelFromEnv()
	zerolog.SetGlobalLevel(level)

	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// Default returns the global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

// New creates a logger writing to w at the global level.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(zerolog.GlobalLevel()).With().Timestamp().Logger()
}

// Info starts a new info level event on the global logger.
func Info() *zerolog.Event { return defaultLogger.Info() }

// Warn starts a new warning level event on the global logger.
func Warn() *zerolog.Event { return defaultLogger.Warn() }

// Error starts a new error level event on the global logger.
func Error() *zerolog.Event { return defaultLogger.Error() }

// Debug starts a new debug level event on the global logger.
func Debug() *zerolog.Event { return defaultLogger.Debug() }

func isTerminal() bool {
	if info, _ := os.Stderr.Stat(); info != nil && (info.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

func levelFromEnv() zerolog.Level {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		if os.Getenv("DEBUG") != "" {
			return zerolog.DebugLevel
		}
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
