package hxform

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with hxform-specific context.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithBackend adds a backend field to the logger.
func (l *Logger) WithBackend(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("backend", name),
	}
}

// WithCode adds a frame-pair code field to the logger.
func (l *Logger) WithCode(code string) *Logger {
	return &Logger{
		Logger: l.Logger.With("code", code),
	}
}

// LogTransform logs one batched transform dispatch.
func (l *Logger) LogTransform(code, backend string, nv, nt, out int, err error) {
	if err != nil {
		l.Error("transform failed",
			"code", code,
			"backend", backend,
			"vectors", nv,
			"times", nt,
			"error", err,
		)
	} else {
		l.Debug("transform completed",
			"code", code,
			"backend", backend,
			"vectors", nv,
			"times", nt,
			"out", out,
		)
	}
}

// LogMLT logs one magnetic-local-time derivation.
func (l *Logger) LogMLT(n int, backend string, err error) {
	if err != nil {
		l.Error("mlt failed",
			"positions", n,
			"backend", backend,
			"error", err,
		)
	} else {
		l.Debug("mlt completed",
			"positions", n,
			"backend", backend,
		)
	}
}
