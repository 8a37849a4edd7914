package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Uwezo9048/Dr.Foscah/internal/model"
	"github.com/Uwezo9048/Dr.Foscah/internal/repository"
	"github.com/Uwezo9048/Dr.Foscah/internal/service"
)

// ---------------------------------------------------------------------------
// Mock TemplateService
// ---------------------------------------------------------------------------

type mockTemplateService struct {
	listFunc   func(ctx context.Context) ([]*model.ReplyTemplate, error)
	getFunc    func(ctx context.Context, id int64) (*model.ReplyTemplate, error)
	saveFunc   func(ctx context.Context, tpl *model.ReplyTemplate) error
	deleteFunc func(ctx context.Context, id int64) error
}

func (m *mockTemplateService) List(ctx context.Context) ([]*model.ReplyTemplate, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockTemplateService) Get(ctx context.Context, id int64) (*model.ReplyTemplate, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockTemplateService) Save(ctx context.Context, tpl *model.ReplyTemplate) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, tpl)
	}
	return nil
}

func (m *mockTemplateService) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// GET /api/admin/email-templates tests
// ---------------------------------------------------------------------------

func TestTemplateHandler_List_Success(t *testing.T) {
	mock := &mockTemplateService{
		listFunc: func(ctx context.Context) ([]*model.ReplyTemplate, error) {
			return []*model.ReplyTemplate{
				{ID: 1, Name: "initial_reply", IsDefault: true},
				{ID: 2, Name: "follow_up"},
			}, nil
		},
	}
	h := NewTemplateHandler(mock)

	req := asOperator(httptest.NewRequest(http.MethodGet, "/api/admin/email-templates", nil))
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got []*model.ReplyTemplate
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 templates, got %d", len(got))
	}
}

func TestTemplateHandler_List_RequiresAuth(t *testing.T) {
	h := NewTemplateHandler(&mockTemplateService{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/email-templates", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without operator, got %d", rec.Code)
	}
}

func TestTemplateHandler_List_EmptyIsArray(t *testing.T) {
	h := NewTemplateHandler(&mockTemplateService{})

	req := asOperator(httptest.NewRequest(http.MethodGet, "/api/admin/email-templates", nil))
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if !strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "[") {
		t.Errorf("expected JSON array body, got %s", rec.Body.String())
	}
}

// ---------------------------------------------------------------------------
// GET /api/admin/email-templates/{id} tests
// ---------------------------------------------------------------------------

func TestTemplateHandler_Get_NotFound(t *testing.T) {
	h := NewTemplateHandler(&mockTemplateService{})

	req := asOperator(httptest.NewRequest(http.MethodGet, "/api/admin/email-templates/99", nil))
	req.SetPathValue("id", "99")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// POST /api/admin/email-templates tests
// ---------------------------------------------------------------------------

func TestTemplateHandler_Save_Create(t *testing.T) {
	mock := &mockTemplateService{
		saveFunc: func(ctx context.Context, tpl *model.ReplyTemplate) error {
			if tpl.ID != 0 {
				t.Errorf("expected zero id for create, got %d", tpl.ID)
			}
			tpl.ID = 9
			return nil
		},
	}
	h := NewTemplateHandler(mock)

	body := `{"name":"project_declined","subject":"About your inquiry","body":"Dear {name},"}`
	req := asOperator(httptest.NewRequest(http.MethodPost, "/api/admin/email-templates", strings.NewReader(body)))
	rec := httptest.NewRecorder()
	h.Save(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d, body: %s", rec.Code, rec.Body.String())
	}
	var got model.ReplyTemplate
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != 9 {
		t.Errorf("expected created template with id=9, got %d", got.ID)
	}
}

func TestTemplateHandler_Save_Update(t *testing.T) {
	var savedID int64
	mock := &mockTemplateService{
		saveFunc: func(ctx context.Context, tpl *model.ReplyTemplate) error {
			savedID = tpl.ID
			return nil
		},
	}
	h := NewTemplateHandler(mock)

	body := `{"id":4,"name":"follow_up","body":"Hi {name}"}`
	req := asOperator(httptest.NewRequest(http.MethodPost, "/api/admin/email-templates", strings.NewReader(body)))
	rec := httptest.NewRecorder()
	h.Save(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if savedID != 4 {
		t.Errorf("expected id=4 forwarded for update, got %d", savedID)
	}
}

func TestTemplateHandler_Save_Invalid(t *testing.T) {
	mock := &mockTemplateService{
		saveFunc: func(ctx context.Context, tpl *model.ReplyTemplate) error {
			return service.ErrValidation
		},
	}
	h := NewTemplateHandler(mock)

	body := `{"subject":"no name or body"}`
	req := asOperator(httptest.NewRequest(http.MethodPost, "/api/admin/email-templates", strings.NewReader(body)))
	rec := httptest.NewRecorder()
	h.Save(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid template, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// DELETE /api/admin/email-templates/{id} tests
// ---------------------------------------------------------------------------

func TestTemplateHandler_Delete_Success(t *testing.T) {
	var deletedID int64
	mock := &mockTemplateService{
		deleteFunc: func(ctx context.Context, id int64) error {
			deletedID = id
			return nil
		},
	}
	h := NewTemplateHandler(mock)

	req := asOperator(httptest.NewRequest(http.MethodDelete, "/api/admin/email-templates/4", nil))
	req.SetPathValue("id", "4")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deletedID != 4 {
		t.Errorf("expected id=4 deleted, got %d", deletedID)
	}
}

func TestTemplateHandler_Delete_DefaultProtected(t *testing.T) {
	// Default-flagged templates surface as not found from the repository.
	mock := &mockTemplateService{
		deleteFunc: func(ctx context.Context, id int64) error {
			return repository.ErrNotFound
		},
	}
	h := NewTemplateHandler(mock)

	req := asOperator(httptest.NewRequest(http.MethodDelete, "/api/admin/email-templates/1", nil))
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for default template, got %d", rec.Code)
	}
}
