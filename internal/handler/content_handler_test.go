package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Uwezo9048/Dr.Foscah/internal/service"
)

// ---------------------------------------------------------------------------
// Mock ContentService
// ---------------------------------------------------------------------------

type mockContentService struct {
	getAllFunc  func(ctx context.Context) (map[string]any, error)
	saveAllFunc func(ctx context.Context, sections map[string]any) error
}

func (m *mockContentService) GetAll(ctx context.Context) (map[string]any, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return map[string]any{}, nil
}

func (m *mockContentService) SaveAll(ctx context.Context, sections map[string]any) error {
	if m.saveAllFunc != nil {
		return m.saveAllFunc(ctx, sections)
	}
	return nil
}

// ---------------------------------------------------------------------------
// GET /api/content tests
// ---------------------------------------------------------------------------

func TestContentHandler_Get_Public(t *testing.T) {
	mock := &mockContentService{
		getAllFunc: func(ctx context.Context) (map[string]any, error) {
			return map[string]any{
				"hero":          map[string]any{"title": "Welcome"},
				"contact_intro": "Get in touch.",
			}, nil
		},
	}
	h := NewContentHandler(mock)

	// No operator in context: the endpoint is public.
	req := httptest.NewRequest(http.MethodGet, "/api/content", nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body: %s", rec.Code, rec.Body.String())
	}

	var got map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got["contact_intro"] != "Get in touch." {
		t.Errorf("unexpected content: %v", got)
	}
}

func TestContentHandler_Get_ServiceError(t *testing.T) {
	mock := &mockContentService{
		getAllFunc: func(ctx context.Context) (map[string]any, error) {
			return nil, errors.New("db read failed")
		},
	}
	h := NewContentHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/content", nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 on service error, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// POST /api/admin/content tests
// ---------------------------------------------------------------------------

func TestContentHandler_Save_Success(t *testing.T) {
	var captured map[string]any
	mock := &mockContentService{
		saveAllFunc: func(ctx context.Context, sections map[string]any) error {
			captured = sections
			return nil
		},
	}
	h := NewContentHandler(mock)

	body := `{"hero":{"title":"New title"},"contact_intro":"Write to us."}`
	req := asOperator(httptest.NewRequest(http.MethodPost, "/api/admin/content", strings.NewReader(body)))
	rec := httptest.NewRecorder()
	h.Save(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body: %s", rec.Code, rec.Body.String())
	}
	if captured["contact_intro"] != "Write to us." {
		t.Errorf("expected sections forwarded, got %v", captured)
	}
}

func TestContentHandler_Save_RequiresAuth(t *testing.T) {
	h := NewContentHandler(&mockContentService{})

	body := `{"hero":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/content", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Save(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without operator, got %d", rec.Code)
	}
}

func TestContentHandler_Save_InvalidJSON(t *testing.T) {
	h := NewContentHandler(&mockContentService{})

	req := asOperator(httptest.NewRequest(http.MethodPost, "/api/admin/content", strings.NewReader(`["not","an","object"]`)))
	rec := httptest.NewRecorder()
	h.Save(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-object body, got %d", rec.Code)
	}
}

func TestContentHandler_Save_EmptyObject(t *testing.T) {
	mock := &mockContentService{
		saveAllFunc: func(ctx context.Context, sections map[string]any) error {
			return service.ErrValidation
		},
	}
	h := NewContentHandler(mock)

	req := asOperator(httptest.NewRequest(http.MethodPost, "/api/admin/content", strings.NewReader(`{}`)))
	rec := httptest.NewRecorder()
	h.Save(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty object, got %d", rec.Code)
	}
}
