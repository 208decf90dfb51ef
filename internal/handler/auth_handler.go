package handler

import (
	"net/http"

	"files-manager/internal/domain"
)

// AuthHandler handles session endpoints.
type AuthHandler struct {
	sessions domain.SessionService
	logger   domain.Logger
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(sessions domain.SessionService, logger domain.Logger) *AuthHandler {
	return &AuthHandler{sessions: sessions, logger: logger}
}

// Connect returns the session token issued by the Basic strategy.
func (h *AuthHandler) Connect(w http.ResponseWriter, r *http.Request) {
	token, ok := GetTokenFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Disconnect destroys the caller's session.
func (h *AuthHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	token, ok := GetTokenFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err := h.sessions.Destroy(r.Context(), token); err != nil {
		h.logger.Error("Failed to destroy session", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
