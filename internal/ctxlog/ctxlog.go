// Package ctxlog carries the structured logger through context.Context so
// that loading code deep in the call stack logs with the attributes its
// callers attached.
package ctxlog

import (
	"context"
	"log/slog"
)

type key struct{}

var loggerKey = key{}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger carried by ctx, or slog.Default() when
// there is none. A nil ctx is allowed.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}
	return slog.Default()
}

// With derives a logger from the one in ctx with the given attributes added,
// and returns it along with a context carrying it.
func With(ctx context.Context, args ...any) (context.Context, *slog.Logger) {
	logger := FromContext(ctx).With(args...)
	if ctx == nil {
		ctx = context.Background()
	}
	return WithLogger(ctx, logger), logger
}
