// Package logging builds the leveled loggers used across the service.
//
// The level is fixed when a logger is created from configuration; there is no
// process-wide mutable level. Request handlers receive a logger carrying the
// request id through context.Context.
package logging

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// ParseLevel accepts debug, info, warn, error and fatal (case-insensitive).
// "trace" is accepted as an alias for debug.
func ParseLevel(s string) (log.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "trace" {
		return log.DebugLevel, nil
	}
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return lvl, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

// New returns a logger writing to w that drops messages below level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05.000",
		Level:           level,
	})
}

// Discard returns a logger that writes nowhere.
func Discard() *log.Logger {
	return New(io.Discard, log.FatalLevel)
}

type ctxKey int

const loggerKey ctxKey = 0

func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the logger stored in ctx, or log.Default().
func FromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// DefaultLevel is used until configuration has been read.
const DefaultLevel = log.InfoLevel
