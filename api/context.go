package api

import (
	"context"

	"github.com/precious1994-dev/APP-PORT/auth"
)

type keyType string

const sessionKey keyType = "session"

// ctxWithSession adds verified session claims to the context
func ctxWithSession(ctx context.Context, claims *auth.SessionClaims) context.Context {
	return context.WithValue(ctx, sessionKey, claims)
}

// SessionFromContext retrieves session claims set by the auth middleware.
func SessionFromContext(ctx context.Context) (*auth.SessionClaims, bool) {
	claims, ok := ctx.Value(sessionKey).(*auth.SessionClaims)
	return claims, ok
}
