package logging

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithLogger stores a request-scoped logger in the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext retrieves the request-scoped logger, falling back to the
// default logger when none is set.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
			return logger
		}
	}
	return slog.Default()
}
