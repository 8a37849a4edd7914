package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Uwezo9048/Dr.Foscah/internal/service"
	"github.com/Uwezo9048/Dr.Foscah/pkg/auth"
)

// ContentHandler handles the public content endpoint and operator-side edits.
type ContentHandler struct {
	contentService service.ContentService
}

// NewContentHandler creates a ContentHandler with the given service.
func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// Get handles GET /api/content. Public; no auth required.
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	content, err := h.contentService.GetAll(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "content_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(content)
}

// Save handles POST /api/admin/content.
// The body is an object mapping section names to values; each entry is
// upserted independently.
func (h *ContentHandler) Save(w http.ResponseWriter, r *http.Request) {
	_, ok := auth.OperatorFromContext(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	var sections map[string]any
	if err := json.NewDecoder(r.Body).Decode(&sections); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	if err := h.contentService.SaveAll(r.Context(), sections); err != nil {
		if errors.Is(err, service.ErrValidation) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_content"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "save_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "content saved"})
}
