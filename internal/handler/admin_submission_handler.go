package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Uwezo9048/Dr.Foscah/internal/model"
	"github.com/Uwezo9048/Dr.Foscah/internal/repository"
	"github.com/Uwezo9048/Dr.Foscah/internal/service"
	"github.com/Uwezo9048/Dr.Foscah/pkg/auth"
)

// AdminSubmissionHandler handles operator-side submission management.
// Every endpoint expects the operator to be present in the request context,
// which RequireAuth guarantees for routed requests.
type AdminSubmissionHandler struct {
	submissionService service.SubmissionService
}

// NewAdminSubmissionHandler creates an AdminSubmissionHandler with the given service.
func NewAdminSubmissionHandler(submissionService service.SubmissionService) *AdminSubmissionHandler {
	return &AdminSubmissionHandler{submissionService: submissionService}
}

// List handles GET /api/admin/clients.
// Supports query params: filter (all/unread/read/replied/not_replied or a
// status value), limit, offset.
func (h *AdminSubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	_, ok := auth.OperatorFromContext(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	opts := model.SubmissionListOptions{
		Filter: r.URL.Query().Get("filter"),
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 500 {
			opts.Limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	submissions, err := h.submissionService.List(r.Context(), opts)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	// Return [] not null for empty lists
	if submissions == nil {
		submissions = []*model.Submission{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(submissions)
}

// Get handles GET /api/admin/clients/{id}.
func (h *AdminSubmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	_, ok := auth.OperatorFromContext(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	id, err := pathID(r)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return
	}

	sub, err := h.submissionService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "get_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(sub)
}

// updateStatusRequest is the expected JSON body for PUT /api/admin/clients/{id}/status.
type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PUT /api/admin/clients/{id}/status.
// Changing the status also marks the submission read and logs an operator note.
func (h *AdminSubmissionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	operator, ok := auth.OperatorFromContext(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	id, err := pathID(r)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	if req.Status == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "status_required"})
		return
	}

	if err := h.submissionService.SetStatus(r.Context(), id, req.Status, operator); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_status"})
		case errors.Is(err, repository.ErrNotFound):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
		default:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "status updated"})
}

// markReadRequest is the expected JSON body for PUT /api/admin/clients/{id}/read.
// admin_notes is optional; when present it is appended to the notes log.
type markReadRequest struct {
	AdminNotes string `json:"admin_notes"`
}

// MarkRead handles PUT /api/admin/clients/{id}/read.
func (h *AdminSubmissionHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	_, ok := auth.OperatorFromContext(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	id, err := pathID(r)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return
	}

	// Body is optional for this endpoint.
	var req markReadRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if err := h.submissionService.MarkRead(r.Context(), id, req.AdminNotes); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "marked as read"})
}

// MarkAllRead handles PUT /api/admin/clients/mark-all-read.
func (h *AdminSubmissionHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	operator, ok := auth.OperatorFromContext(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	n, err := h.submissionService.MarkAllRead(r.Context(), operator)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"message": fmt.Sprintf("%d messages marked as read", n),
		"updated": n,
	})
}

// replyRequest is the expected JSON body for the reply endpoints.
type replyRequest struct {
	ReplyContent string `json:"reply_content"`
	TemplateID   int64  `json:"template_id"`
}

// Reply handles PUT /api/admin/clients/{id}/reply.
// The reply is recorded without sending email; recording again overwrites.
func (h *AdminSubmissionHandler) Reply(w http.ResponseWriter, r *http.Request) {
	operator, ok := auth.OperatorFromContext(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	id, err := pathID(r)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return
	}

	var req replyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	if req.ReplyContent == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "reply_content_required"})
		return
	}

	if err := h.submissionService.Reply(r.Context(), id, req.ReplyContent, operator); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "reply_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "reply recorded"})
}

// SendReply handles POST /api/admin/clients/{id}/send-reply.
// The email goes out before the reply is recorded, so a transport failure
// never leaves the submission marked replied. When mail is not configured
// the reply is recorded anyway and email_sent is false.
func (h *AdminSubmissionHandler) SendReply(w http.ResponseWriter, r *http.Request) {
	operator, ok := auth.OperatorFromContext(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	id, err := pathID(r)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return
	}

	var req replyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	if req.ReplyContent == "" && req.TemplateID == 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "reply_content_required"})
		return
	}

	sent, err := h.submissionService.SendReply(r.Context(), id, req.ReplyContent, req.TemplateID, operator)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
		case errors.Is(err, service.ErrValidation):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "reply_content_required"})
		default:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "send_failed"})
		}
		return
	}

	message := "reply sent"
	if !sent {
		message = "reply saved (email not configured)"
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"message":    message,
		"email_sent": sent,
	})
}

// Delete handles DELETE /api/admin/clients/{id}.
func (h *AdminSubmissionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	_, ok := auth.OperatorFromContext(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	id, err := pathID(r)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return
	}

	if err := h.submissionService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "delete_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "deleted"})
}

// Counts handles GET /api/admin/message-counts.
func (h *AdminSubmissionHandler) Counts(w http.ResponseWriter, r *http.Request) {
	_, ok := auth.OperatorFromContext(r.Context())
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	counts, err := h.submissionService.Counts(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "counts_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(counts)
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
