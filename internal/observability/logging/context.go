package logging

import (
	"context"

	"github.com/google/uuid"
)

type Module string

type ctxKey int

const (
	requestIDKey ctxKey = iota
	moduleKey
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey).(string)

	return v
}

func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey, module)
}

func ModuleFrom(ctx context.Context) Module {
	v, _ := ctx.Value(moduleKey).(Module)

	return v
}

// ValidateAndExtractRequestID returns the header value when it is a UUID
// and a fresh UUIDv7 otherwise.
func ValidateAndExtractRequestID(header string) string {
	if header != "" {
		if id, err := uuid.Parse(header); err == nil {
			return id.String()
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
