package httpx

import (
	"context"
	"net/http"

	"bbws/internal/platform/logger"
)

type contextKey string

const (
	requestIDKey contextKey = "requestID"
	loggerKey    contextKey = "logger"
)

// RequestIDFrom retrieves the request ID from the request context.
func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithRequestID returns a new context carrying the request ID.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// LoggerFrom returns the request-scoped logger, or a no-op logger when the
// logging middleware did not run.
func LoggerFrom(r *http.Request) *logger.Logger {
	if v, ok := r.Context().Value(loggerKey).(*logger.Logger); ok {
		return v
	}
	return logger.NewNop()
}

// ContextWithLogger returns a new context carrying l.
func ContextWithLogger(ctx context.Context, l *logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}
