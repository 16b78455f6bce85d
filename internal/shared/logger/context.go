package logger

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithLogger returns a new context with the logger attached
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger from context, or default logger if not found
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With binds args to the context logger, e.g. logger.With(ctx, "batch_id", id)
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}
