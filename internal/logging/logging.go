// Package logging is the CLI's structured-logging boundary. The core
// tohtml.Converter never imports this package or logs anything itself;
// only cmd/to-html and its collaborator shellrun do.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.Mutex
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// SetDebug raises or lowers the global log level. The CLI's --debug flag
// calls this once during startup.
func SetDebug(enabled bool) {
	if enabled {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// SetOutput redirects log output; tests use this to capture and assert on
// log lines instead of writing to stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: true}).
		With().Timestamp().Logger()
}

// WithRunID returns a child logger carrying the given correlation ID on
// every subsequent event, scoping a single CLI invocation's log lines
// together.
func WithRunID(runID string) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger.With().Str("run_id", runID).Logger()
}

// Debug returns a debug-level event on the package logger.
func Debug() *zerolog.Event {
	mu.Lock()
	defer mu.Unlock()
	return logger.Debug()
}

// Info returns an info-level event on the package logger.
func Info() *zerolog.Event {
	mu.Lock()
	defer mu.Unlock()
	return logger.Info()
}

// Error returns an error-level event on the package logger.
func Error() *zerolog.Event {
	mu.Lock()
	defer mu.Unlock()
	return logger.Error()
}
