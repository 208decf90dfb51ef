package service

import (
	"context"
	"fmt"
	"time"

	"files-manager/internal/domain"

	"github.com/google/uuid"
)

// sessionKeyPrefix namespaces session tokens inside the key-value store.
const sessionKeyPrefix = "auth_"

type sessionService struct {
	kv     domain.KeyValueStore
	ttl    time.Duration
	logger domain.Logger
}

// NewSessionService creates the session store. All state lives in the
// key-value store; the service itself has no memory.
func NewSessionService(kv domain.KeyValueStore, ttl time.Duration, logger domain.Logger) domain.SessionService {
	return &sessionService{kv: kv, ttl: ttl, logger: logger}
}

// Create issues a fresh opaque token bound to userID for the configured TTL.
// Tokens are v4 UUIDs: 128 bits from crypto/rand.
func (s *sessionService) Create(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	if err := s.kv.SetWithTTL(ctx, sessionKeyPrefix+token, userID, s.ttl); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

// Resolve returns the user id bound to token. Sessions are fixed-duration:
// the lookup never extends the TTL. Missing and expired tokens both yield
// domain.ErrKeyNotFound.
func (s *sessionService) Resolve(ctx context.Context, token string) (string, error) {
	return s.kv.Get(ctx, sessionKeyPrefix+token)
}

// Destroy removes the session. Destroying a missing or expired token is a
// no-op, not an error.
func (s *sessionService) Destroy(ctx context.Context, token string) error {
	return s.kv.Delete(ctx, sessionKeyPrefix+token)
}
