package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type actionIDKey struct{}

// WithActionID tags ctx with a fresh ID shared by every log line of one
// dispatched action.
func WithActionID(ctx context.Context) context.Context {
	return context.WithValue(ctx, actionIDKey{}, uuid.NewString())
}

// ActionIDFromContext returns "" outside a dispatched action
func ActionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(actionIDKey{}).(string); ok {
		return id
	}
	return ""
}
