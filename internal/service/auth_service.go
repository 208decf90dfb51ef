package service

import (
	"context"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"

	"files-manager/internal/domain"
	apperrors "files-manager/pkg/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HashPassword returns the hex SHA-1 digest stored for a password. The same
// digest is computed at registration and at login, so credential checks are a
// plain constant-time comparison of two digests.
func HashPassword(password string) string {
	sum := sha1.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}

type authService struct {
	users    domain.UserRepository
	sessions domain.SessionService
	logger   domain.Logger
}

// NewAuthService creates the authorization gate. Both strategies fail closed:
// every failure mode collapses into the same unauthorized error so callers
// cannot tell which check rejected them.
func NewAuthService(users domain.UserRepository, sessions domain.SessionService, logger domain.Logger) domain.AuthService {
	return &authService{users: users, sessions: sessions, logger: logger}
}

// AuthenticateBasic decodes a base64 email:password pair, verifies the stored
// digest, and opens a new session for the matched principal.
func (s *authService) AuthenticateBasic(ctx context.Context, credentials string) (*domain.User, string, error) {
	decoded, err := base64.StdEncoding.DecodeString(credentials)
	if err != nil {
		return nil, "", apperrors.NewUnauthorizedError()
	}

	email, password, ok := strings.Cut(string(decoded), ":")
	if !ok || email == "" || password == "" {
		return nil, "", apperrors.NewUnauthorizedError()
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", apperrors.NewUnauthorizedError()
		}
		return nil, "", apperrors.NewInternalError("failed to look up user", err)
	}

	candidate := HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(candidate)) != 1 {
		return nil, "", apperrors.NewUnauthorizedError()
	}

	token, err := s.sessions.Create(ctx, user.ID.Hex())
	if err != nil {
		return nil, "", apperrors.NewInternalError("failed to create session", err)
	}
	return user, token, nil
}

// AuthenticateToken resolves an opaque session token to its principal.
func (s *authService) AuthenticateToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, apperrors.NewUnauthorizedError()
	}

	userID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil, apperrors.NewUnauthorizedError()
		}
		return nil, apperrors.NewInternalError("failed to resolve session", err)
	}

	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError()
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Session outlived the user record; treat as no session at all.
			return nil, apperrors.NewUnauthorizedError()
		}
		return nil, apperrors.NewInternalError("failed to load user", err)
	}
	return user, nil
}
