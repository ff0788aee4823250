// Package auth provides request context helpers for resolved identities.
package auth

import "context"

type ctxKey int

const identityKey ctxKey = iota

// Identity is the user a session token resolved to.
type Identity struct {
	ID    int64
	Email string
}

// WithIdentity stores an identity in a context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the identity from a context.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
