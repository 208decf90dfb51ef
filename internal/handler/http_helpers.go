package handler

import (
	"encoding/json"
	"net/http"

	"files-manager/internal/domain"
	apperrors "files-manager/pkg/errors"
)

type contextKey string

const (
	principalContextKey contextKey = "principal"
	tokenContextKey     contextKey = "token"
)

// GetPrincipalFromContext extracts the authenticated user from request context
func GetPrincipalFromContext(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(principalContextKey).(*domain.User)
	return user, ok
}

// GetTokenFromContext extracts the session token from request context
func GetTokenFromContext(r *http.Request) (string, bool) {
	token, ok := r.Context().Value(tokenContextKey).(string)
	return token, ok
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeServiceError translates a service error into a status code and a
// client-safe message. Internal causes stay out of the response body.
func writeServiceError(w http.ResponseWriter, err error) {
	writeError(w, apperrors.GetStatusCode(err), apperrors.GetMessage(err))
}
