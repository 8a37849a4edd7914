package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Uwezo9048/Dr.Foscah/internal/repository"
)

// ContentService defines the business logic for editable site content.
// Sections are stored as strings; values that look like JSON are decoded on
// the way out so the frontend receives structured data.
type ContentService interface {
	// GetAll returns every section keyed by name. Stored JSON decodes to its
	// structured form; anything else comes back as a plain string.
	GetAll(ctx context.Context) (map[string]any, error)

	// SaveAll upserts every given section. Structured values are serialized
	// to JSON strings before storage; scalars are stored as their string form.
	SaveAll(ctx context.Context, sections map[string]any) error
}

// contentServiceImpl is the production implementation of ContentService.
type contentServiceImpl struct {
	repo repository.ContentRepository
}

// NewContentService creates a ContentService backed by the given repository.
func NewContentService(repo repository.ContentRepository) ContentService {
	return &contentServiceImpl{repo: repo}
}

// GetAll returns every section, decoding stored JSON where possible.
func (s *contentServiceImpl) GetAll(ctx context.Context) (map[string]any, error) {
	sections, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any, len(sections))
	for _, sec := range sections {
		var decoded any
		if err := json.Unmarshal([]byte(sec.Content), &decoded); err == nil {
			out[sec.Section] = decoded
		} else {
			out[sec.Section] = sec.Content
		}
	}
	return out, nil
}

// SaveAll upserts each section, serializing structured values to JSON.
func (s *contentServiceImpl) SaveAll(ctx context.Context, sections map[string]any) error {
	if len(sections) == 0 {
		return fmt.Errorf("%w: content must be a non-empty object", ErrValidation)
	}

	for section, value := range sections {
		var content string
		switch v := value.(type) {
		case string:
			content = v
		default:
			encoded, err := json.Marshal(v)
			if err != nil {
				return fmt.Errorf("%w: section %q is not serializable", ErrValidation, section)
			}
			content = string(encoded)
		}
		if err := s.repo.Upsert(ctx, section, content); err != nil {
			return err
		}
	}
	return nil
}
