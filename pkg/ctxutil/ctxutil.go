// Package ctxutil carries caller attribution through a context: the author
// email written on content rows and usage events, and a request ID.
package ctxutil

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type ctxKey string

const (
	emailKey     ctxKey = "email"
	requestIDKey ctxKey = "request_id"
)

// WithEmail stores the caller's email in the context. It is normalized the
// same way stored emails are.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, strings.ToLower(strings.TrimSpace(email)))
}

// EmailFromCtx extracts the caller's email from the context.
// Returns "" and false if the value is missing, blank, or of the wrong type.
func EmailFromCtx(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// EnsureRequestID returns ctx unchanged if it carries a request ID, otherwise
// a child context with a fresh UUID.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if id := RequestIDFromCtx(ctx); id != "" {
		return ctx, id
	}
	id := uuid.NewString()
	return WithRequestID(ctx, id), id
}
