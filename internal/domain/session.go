package domain

import (
	"context"
	"time"
)

// KeyValueStore is the contract consumed from the key-value cache. Expiry is
// enforced by the store's own TTL mechanism, not by application polling.
type KeyValueStore interface {
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	IsAlive(ctx context.Context) bool
}

// SessionService issues and validates opaque session tokens. Sessions are
// fixed-duration: Resolve never refreshes the TTL.
type SessionService interface {
	Create(ctx context.Context, userID string) (string, error)
	Resolve(ctx context.Context, token string) (string, error)
	Destroy(ctx context.Context, token string) error
}

// AuthService resolves a principal from request credentials. Both strategies
// fail closed with a single unauthorized error that never reveals which
// check failed.
type AuthService interface {
	// AuthenticateBasic resolves email:password credentials from the value of
	// a Basic Authorization header and opens a new session on success.
	AuthenticateBasic(ctx context.Context, header string) (*User, string, error)
	// AuthenticateToken resolves an opaque session token to its principal.
	AuthenticateToken(ctx context.Context, token string) (*User, error)
}
