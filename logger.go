package blobgen

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with blobgen-specific context.
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

// WithConfig adds the run's size parameters to the logger.
func (l *Logger) WithConfig(cfg Config) *Logger {
	return &Logger{
		Logger: l.Logger.With(
			"samples", cfg.Samples,
			"dimensions", cfg.Dimensions,
			"centroids", cfg.Centroids,
		),
	}
}

// LogGenerate logs a completed generation step. Per-dimension summaries are
// only computed when debug logging is active; they cost a full pass over the
// dataset.
func (l *Logger) LogGenerate(ctx context.Context, ds *Dataset) {
	l.InfoContext(ctx, "dataset generated")
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	for _, s := range ds.Describe() {
		l.DebugContext(ctx, "dimension summary",
			"dimension", s.Dimension,
			"mean", s.Mean,
			"stddev", s.StdDev,
		)
	}
}

// LogSerialize logs a serialization step.
func (l *Logger) LogSerialize(ctx context.Context, name string, lines int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "corpus write failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "corpus written",
			"name", name,
			"lines", lines,
		)
	}
}

// LogRender logs a visualization handoff.
func (l *Logger) LogRender(ctx context.Context, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "render failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "plot rendered",
			"name", name,
		)
	}
}
