package handler

import (
	"net/http"

	"files-manager/internal/domain"
)

// AppHandler serves the status and statistics endpoints.
type AppHandler struct {
	kv     domain.KeyValueStore
	db     domain.DocumentStore
	logger domain.Logger
}

// NewAppHandler creates a new application handler.
func NewAppHandler(kv domain.KeyValueStore, db domain.DocumentStore, logger domain.Logger) *AppHandler {
	return &AppHandler{kv: kv, db: db, logger: logger}
}

// Status reports liveness of the key-value store and the document store.
func (h *AppHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{
		"redis": h.kv.IsAlive(r.Context()),
		"db":    h.db.IsAlive(r.Context()),
	})
}

// Stats reports the number of users and files.
func (h *AppHandler) Stats(w http.ResponseWriter, r *http.Request) {
	users, err := h.db.CountUsers(r.Context())
	if err != nil {
		h.logger.Error("Failed to count users", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	files, err := h.db.CountFiles(r.Context())
	if err != nil {
		h.logger.Error("Failed to count files", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"users": users, "files": files})
}
