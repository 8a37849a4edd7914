package repository

import (
	"context"
	"errors"

	"github.com/Uwezo9048/Dr.Foscah/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TemplateRepository defines the persistence interface for reply templates.
type TemplateRepository interface {
	List(ctx context.Context) ([]*model.ReplyTemplate, error)
	FindByID(ctx context.Context, id int64) (*model.ReplyTemplate, error)
	Create(ctx context.Context, tpl *model.ReplyTemplate) error
	Update(ctx context.Context, tpl *model.ReplyTemplate) error
	// Delete removes a non-default template. Default-flagged templates and
	// missing ids both return ErrNotFound.
	Delete(ctx context.Context, id int64) error
}

// PgTemplateRepository is the PostgreSQL implementation of TemplateRepository.
type PgTemplateRepository struct {
	pool *pgxpool.Pool
}

// NewPgTemplateRepository creates a PgTemplateRepository backed by the given pool.
func NewPgTemplateRepository(pool *pgxpool.Pool) *PgTemplateRepository {
	return &PgTemplateRepository{pool: pool}
}

var _ TemplateRepository = (*PgTemplateRepository)(nil)

const templateSelectCols = `id, name, subject, body, is_default, created_at`

func scanTemplate(scan func(...any) error) (*model.ReplyTemplate, error) {
	var t model.ReplyTemplate
	if err := scan(&t.ID, &t.Name, &t.Subject, &t.Body, &t.IsDefault, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// List returns all templates ordered by name.
func (r *PgTemplateRepository) List(ctx context.Context) ([]*model.ReplyTemplate, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+templateSelectCols+` FROM reply_templates ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []*model.ReplyTemplate
	for rows.Next() {
		t, err := scanTemplate(rows.Scan)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// FindByID returns one template or ErrNotFound.
func (r *PgTemplateRepository) FindByID(ctx context.Context, id int64) (*model.ReplyTemplate, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+templateSelectCols+` FROM reply_templates WHERE id = $1`, id)
	return scanTemplate(row.Scan)
}

// Create inserts a new template and populates tpl.ID and tpl.CreatedAt.
func (r *PgTemplateRepository) Create(ctx context.Context, tpl *model.ReplyTemplate) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO reply_templates (name, subject, body)
		 VALUES ($1, $2, $3)
		 RETURNING id, is_default, created_at`,
		tpl.Name, tpl.Subject, tpl.Body,
	).Scan(&tpl.ID, &tpl.IsDefault, &tpl.CreatedAt)
}

// Update rewrites name, subject and body of an existing template.
func (r *PgTemplateRepository) Update(ctx context.Context, tpl *model.ReplyTemplate) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE reply_templates SET name = $1, subject = $2, body = $3 WHERE id = $4`,
		tpl.Name, tpl.Subject, tpl.Body, tpl.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a template unless it is default-flagged.
func (r *PgTemplateRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM reply_templates WHERE id = $1 AND is_default = FALSE`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
