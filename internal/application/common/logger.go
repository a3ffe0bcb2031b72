package common

import (
	"context"
	"log"
	"os"
)

// OperationLogger records structured progress for a long-running
// operation (a startup step, an operator command) keyed by a
// correlation id so its log lines can be grepped back together.
type OperationLogger interface {
	Log(level, message string, metadata map[string]interface{})
}

// Context keys for passing logger through context
type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger OperationLogger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, or returns a no-op logger if not found
func LoggerFromContext(ctx context.Context) OperationLogger {
	if logger, ok := ctx.Value(loggerKey).(OperationLogger); ok {
		return logger
	}
	return &noOpLogger{}
}

// noOpLogger is a logger that does nothing (fallback when no logger in context)
type noOpLogger struct{}

func (l *noOpLogger) Log(level, message string, metadata map[string]interface{}) {
	// Do nothing
}

// StdLogger implements OperationLogger over the standard library
// logger, prefixing every line with a correlation id. Used by the
// startup sequence and the operator CLI, neither of which sits behind
// request-scoped HTTP logging middleware.
type StdLogger struct {
	correlationID string
	inner         *log.Logger
}

// NewStdLogger builds a StdLogger writing to stderr, tagged with
// correlationID.
func NewStdLogger(correlationID string) *StdLogger {
	return &StdLogger{correlationID: correlationID, inner: log.New(os.Stderr, "", log.LstdFlags)}
}

func (l *StdLogger) Log(level, message string, metadata map[string]interface{}) {
	l.inner.Printf("[%s] %s: %s %v", l.correlationID, level, message, metadata)
}
