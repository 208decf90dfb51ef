package handler

import (
	"encoding/json"
	"net/http"

	"files-manager/internal/domain"
)

// UserHandler handles user registration and profile requests.
type UserHandler struct {
	users  domain.UserService
	logger domain.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(users domain.UserService, logger domain.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// Register creates a new user from an email/password pair.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Missing email")
		return
	}

	user, err := h.users.Register(r.Context(), body.Email, body.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user.ToView())
}

// Me returns the authenticated principal.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := GetPrincipalFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, user.ToView())
}
