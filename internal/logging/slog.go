package logging

import (
	"context"
	"log/slog"
)

// SlogLogger adapts a *slog.Logger to the Logger interface. It adds a Debug
// level beyond what the interface requires, for callers that hold the
// concrete type.
type SlogLogger struct {
	l *slog.Logger
}

// NewSlogLogger wraps an already configured slog logger; handler choice
// (JSON, output, level) stays with the caller.
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

func (sl *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	sl.l.DebugContext(ctx, msg, args...)
}

func (sl *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	sl.l.InfoContext(ctx, msg, args...)
}

func (sl *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	sl.l.WarnContext(ctx, msg, args...)
}

func (sl *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	sl.l.ErrorContext(ctx, msg, args...)
}

// With returns a child logger carrying the given key-value pairs on every
// record.
func (sl *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: sl.l.With(args...)}
}
