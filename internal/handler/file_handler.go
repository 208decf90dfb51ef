package handler

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"files-manager/internal/domain"

	"github.com/gorilla/mux"
)

// FileHandler handles file and folder requests.
type FileHandler struct {
	files  domain.FileService
	logger domain.Logger
}

// NewFileHandler creates a new file handler.
func NewFileHandler(files domain.FileService, logger domain.Logger) *FileHandler {
	return &FileHandler{files: files, logger: logger}
}

type uploadRequest struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	ParentID json.RawMessage `json:"parentId"`
	IsPublic bool            `json:"isPublic"`
	Data     string          `json:"data"`
}

// parentID normalizes the parentId field, which clients send either as the
// number 0 (root) or as a hex id string.
func (u *uploadRequest) parentID() string {
	raw := string(u.ParentID)
	if raw == "" || raw == "0" || raw == "null" {
		return domain.RootParentID
	}
	var s string
	if err := json.Unmarshal(u.ParentID, &s); err != nil {
		return raw
	}
	if s == "" {
		return domain.RootParentID
	}
	return s
}

// Upload creates a folder, plain file, or image.
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	owner, ok := GetPrincipalFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Missing name")
		return
	}

	file, err := h.files.Create(r.Context(), owner, domain.CreateFileInput{
		Name:     body.Name,
		Type:     body.Type,
		ParentID: body.parentID(),
		IsPublic: body.IsPublic,
		Data:     body.Data,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, file.ToView())
}

// Show returns a single file node visible to the caller.
func (h *FileHandler) Show(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipalFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	file, err := h.files.Show(r.Context(), principal, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, file.ToView())
}

// Index lists the caller's files under a parent, 20 per page.
func (h *FileHandler) Index(w http.ResponseWriter, r *http.Request) {
	owner, ok := GetPrincipalFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	parentID := r.URL.Query().Get("parentId")
	page := 0
	if p := r.URL.Query().Get("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}

	files, err := h.files.List(r.Context(), owner, parentID, page)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	views := make([]domain.FileView, 0, len(files))
	for _, f := range files {
		views = append(views, f.ToView())
	}
	writeJSON(w, http.StatusOK, views)
}

// Publish makes the caller's file public.
func (h *FileHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.setVisibility(w, r, true)
}

// Unpublish makes the caller's file private.
func (h *FileHandler) Unpublish(w http.ResponseWriter, r *http.Request) {
	h.setVisibility(w, r, false)
}

func (h *FileHandler) setVisibility(w http.ResponseWriter, r *http.Request, isPublic bool) {
	owner, ok := GetPrincipalFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	file, err := h.files.SetVisibility(r.Context(), owner, mux.Vars(r)["id"], isPublic)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, file.ToView())
}

// Data streams a file's content. Accepts an optional size query naming one of
// the derived thumbnail widths; serves the original bytes when the derived
// copy does not exist yet. Works with or without a session: private files are
// only visible to their owner, public files to anyone.
func (h *FileHandler) Data(w http.ResponseWriter, r *http.Request) {
	principal, _ := GetPrincipalFromContext(r)

	width := 0
	if s := r.URL.Query().Get("size"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil || !isThumbnailWidth(parsed) {
			writeError(w, http.StatusBadRequest, "Invalid size")
			return
		}
		width = parsed
	}

	content, err := h.files.ReadContent(r.Context(), principal, mux.Vars(r)["id"], width)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	defer content.Reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(content.File.Name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, content.Reader); err != nil {
		h.logger.Error("Failed to stream file content", err, "fileId", mux.Vars(r)["id"])
	}
}

func isThumbnailWidth(width int) bool {
	for _, w := range domain.ThumbnailWidths {
		if w == width {
			return true
		}
	}
	return false
}
