package avltree

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with tree-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(1000), // Unreachable level
		})),
	}
}

// WithSlot adds a slot field to the logger.
func (l *Logger) WithSlot(slot Slot) *Logger {
	return &Logger{
		Logger: l.Logger.With("slot", uint32(slot)),
	}
}

// LogInsert logs a completed insert.
func (l *Logger) LogInsert(ctx context.Context, slot Slot, size, rotations int) {
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.DebugContext(ctx, "insert completed",
		"slot", uint32(slot),
		"size", size,
		"rotations", rotations,
	)
}

// LogRotation logs a single rotation.
func (l *Logger) LogRotation(ctx context.Context, kind RotationKind, pivot, top Slot) {
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.DebugContext(ctx, "rotation applied",
		"kind", kind.String(),
		"pivot", uint32(pivot),
		"top", uint32(top),
	)
}
