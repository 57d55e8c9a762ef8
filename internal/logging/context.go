package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldSessionID is the standardized structured logging key for the session that issued an operation.
	FieldSessionID = "session_id"
	// FieldTitle is the standardized structured logging key for show titles.
	FieldTitle = "title"
	// FieldCount is the standardized structured logging key for record counts.
	FieldCount = "count"
	// FieldPath is the standardized structured logging key for storage locations.
	FieldPath = "path"
	// FieldErrorKind is the standardized structured logging key for error classifications.
	FieldErrorKind = "error_kind"
	// FieldEventType classifies warnings so they can be grepped by cause.
	FieldEventType = "event_type"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
)

type sessionIDKey struct{}

// WithSessionID stores the session identifier on ctx.
func WithSessionID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionIDFromContext returns the session identifier stored on ctx.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(sessionIDKey{}).(string)
	return id, ok && id != ""
}

func contextFields(ctx context.Context) []Attr {
	if ctx == nil {
		return nil
	}
	var fields []Attr
	if id, ok := SessionIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldSessionID, id))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := contextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
