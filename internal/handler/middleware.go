package handler

import (
	"context"
	"net/http"
	"strings"

	"files-manager/internal/domain"
)

// AuthMiddleware carries the two authentication strategies of the
// authorization gate. Each strategy resolves a principal and attaches it to
// the request context, or fails closed with a bare 401.
type AuthMiddleware struct {
	auth   domain.AuthService
	logger domain.Logger
}

// NewAuthMiddleware creates the middleware around the authorization gate.
func NewAuthMiddleware(auth domain.AuthService, logger domain.Logger) *AuthMiddleware {
	return &AuthMiddleware{auth: auth, logger: logger}
}

// Basic authenticates with an Authorization: Basic header carrying
// base64(email:password) and opens a new session. The issued token is placed
// in the request context for the connect handler to return.
func (m *AuthMiddleware) Basic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		credentials, ok := strings.CutPrefix(header, "Basic ")
		if !ok || credentials == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, token, err := m.auth.AuthenticateBasic(r.Context(), credentials)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), principalContextKey, user)
		ctx = context.WithValue(ctx, tokenContextKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Token authenticates with an opaque session token in the X-Token header.
func (m *AuthMiddleware) Token(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("X-Token")
		user, err := m.auth.AuthenticateToken(r.Context(), token)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), principalContextKey, user)
		ctx = context.WithValue(ctx, tokenContextKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalToken attaches the principal when the X-Token header resolves and
// proceeds anonymously otherwise. Used by the file-data route, where public
// files are readable without a session.
func (m *AuthMiddleware) OptionalToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("X-Token")
		if token != "" {
			if user, err := m.auth.AuthenticateToken(r.Context(), token); err == nil {
				ctx := context.WithValue(r.Context(), principalContextKey, user)
				ctx = context.WithValue(ctx, tokenContextKey, token)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}
