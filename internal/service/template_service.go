package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Uwezo9048/Dr.Foscah/internal/model"
	"github.com/Uwezo9048/Dr.Foscah/internal/repository"
)

// TemplateService defines the business logic for reusable reply templates.
type TemplateService interface {
	// List returns all templates ordered by name.
	List(ctx context.Context) ([]*model.ReplyTemplate, error)

	// Get returns a single template by id.
	Get(ctx context.Context, id int64) (*model.ReplyTemplate, error)

	// Save validates and persists a template. A zero tpl.ID creates a new
	// template; otherwise the existing one is updated in place.
	Save(ctx context.Context, tpl *model.ReplyTemplate) error

	// Delete removes a non-default template. Default-flagged templates cannot
	// be deleted.
	Delete(ctx context.Context, id int64) error
}

// templateServiceImpl is the production implementation of TemplateService.
type templateServiceImpl struct {
	repo repository.TemplateRepository
}

// NewTemplateService creates a TemplateService backed by the given repository.
func NewTemplateService(repo repository.TemplateRepository) TemplateService {
	return &templateServiceImpl{repo: repo}
}

// List returns all templates.
func (s *templateServiceImpl) List(ctx context.Context) ([]*model.ReplyTemplate, error) {
	return s.repo.List(ctx)
}

// Get returns one template by id.
func (s *templateServiceImpl) Get(ctx context.Context, id int64) (*model.ReplyTemplate, error) {
	return s.repo.FindByID(ctx, id)
}

// Save validates the template and creates or updates it.
func (s *templateServiceImpl) Save(ctx context.Context, tpl *model.ReplyTemplate) error {
	tpl.Name = strings.TrimSpace(tpl.Name)
	if tpl.Name == "" {
		return fmt.Errorf("%w: template name is required", ErrValidation)
	}
	if strings.TrimSpace(tpl.Body) == "" {
		return fmt.Errorf("%w: template body is required", ErrValidation)
	}

	if tpl.ID == 0 {
		return s.repo.Create(ctx, tpl)
	}
	return s.repo.Update(ctx, tpl)
}

// Delete removes a non-default template.
func (s *templateServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
