// Package logger defines the structured logging contract shared by all
// EcoMovil services. Implementations live in infrastructure; handlers and
// services depend only on this interface.
package logger

import "context"

// Fields carries structured key-value pairs attached to a log entry.
type Fields map[string]interface{}

// Logger is the logging interface used across the platform. Methods accept a
// context so implementations can enrich entries with request-scoped values
// such as the request id.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...Fields)
	Info(ctx context.Context, msg string, fields ...Fields)
	Warn(ctx context.Context, msg string, fields ...Fields)
	Error(ctx context.Context, msg string, err error, fields ...Fields)
	Fatal(ctx context.Context, msg string, err error, fields ...Fields)

	// WithFields returns a logger whose entries always carry the given fields.
	WithFields(fields Fields) Logger

	// WithComponent returns a logger scoped to a named component.
	WithComponent(component string) Logger
}

type requestIDKey struct{}

// WithRequestID returns a context carrying the given request id. The
// observability middleware sets it; implementations attach it to every entry.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFrom extracts the request id from the context, if present.
func RequestIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}
