package utl

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/utl/timing"
)

// Logger wraps slog.Logger with utl-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to w.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithCapacity adds a capacity field to the logger.
func (l *Logger) WithCapacity(capacity int) *Logger {
	return &Logger{
		Logger: l.Logger.With("capacity", capacity),
	}
}

// WithStrategy adds a storage strategy field to the logger.
func (l *Logger) WithStrategy(strategy string) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", strategy),
	}
}

// LogPush logs a push; dropped pushes are reported at warn level.
func (l *Logger) LogPush(ctx context.Context, value any, accepted bool, length int) {
	if !accepted {
		l.WarnContext(ctx, "push dropped: vector full",
			"value", value,
			"len", length,
		)
	} else {
		l.DebugContext(ctx, "push completed",
			"value", value,
			"len", length,
		)
	}
}

// LogErase logs an erase operation.
func (l *Logger) LogErase(ctx context.Context, index, length int) {
	l.DebugContext(ctx, "erase completed",
		"index", index,
		"len", length,
	)
}

// LogMeasure logs a timing result.
func (l *Logger) LogMeasure(ctx context.Context, r timing.Result) {
	l.InfoContext(ctx, "measurement completed",
		"result", r,
	)
}

// LogDump logs a dump of n bytes or bits from source.
func (l *Logger) LogDump(ctx context.Context, source string, n int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "dump failed",
			"source", source,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "dump completed",
			"source", source,
			"size", n,
		)
	}
}
