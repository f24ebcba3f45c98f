// Package context carries request-scoped values through echo and context.Context: the
// request ID that follows an order event from the API to the push worker, and the logger
// tagged with it.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"

	// HeaderXRequestID is accepted from clients and echoed on every response.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request ID stored on c, or a fresh UUID when there is none.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID stores requestID on c.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID stored in ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// Attach stores requestID in ctx together with a logger derived from base that tags every
// record with it.
func Attach(ctx context.Context, base *slog.Logger, requestID string) (context.Context, *slog.Logger) {
	reqLogger := base.With(slog.String("request_id", requestID))
	ctx = WithRequestID(ctx, requestID)

	return WithLogger(ctx, reqLogger), reqLogger
}

// WithLogAttrs returns a copy of ctx whose logger also carries attrs.
func WithLogAttrs(ctx context.Context, fallback *slog.Logger, attrs ...slog.Attr) context.Context {
	logger := GetLoggerOrDefault(ctx, fallback)
	if logger == nil || len(attrs) == 0 {
		return ctx
	}
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}

	return WithLogger(ctx, logger.With(args...))
}

// GetLoggerOrDefault returns the request-scoped logger of ctx, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
