package utils

import (
	"context"
)

// Principal is the authenticated identity derived from a verified bearer
// token. It lives in the request context for the duration of one request.
type Principal struct {
	UserID string
	Role   string
}

type contextKey string

const ContextPrincipalKey contextKey = "principal"

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ContextPrincipalKey, p)
}

func GetPrincipalFromContext(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(ContextPrincipalKey).(Principal)
	return principal, ok
}
