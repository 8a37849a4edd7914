package repository

import (
	"context"

	"github.com/Uwezo9048/Dr.Foscah/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContentRepository defines the persistence interface for site content sections.
type ContentRepository interface {
	GetAll(ctx context.Context) ([]*model.SiteContent, error)
	// Upsert writes one section, creating it if absent. Last write wins.
	Upsert(ctx context.Context, section, content string) error
}

// PgContentRepository is the PostgreSQL implementation of ContentRepository.
type PgContentRepository struct {
	pool *pgxpool.Pool
}

// NewPgContentRepository creates a PgContentRepository backed by the given pool.
func NewPgContentRepository(pool *pgxpool.Pool) *PgContentRepository {
	return &PgContentRepository{pool: pool}
}

var _ ContentRepository = (*PgContentRepository)(nil)

// GetAll returns every stored content section.
func (r *PgContentRepository) GetAll(ctx context.Context) ([]*model.SiteContent, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT section, content, updated_at FROM site_content ORDER BY section`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*model.SiteContent
	for rows.Next() {
		var c model.SiteContent
		if err := rows.Scan(&c.Section, &c.Content, &c.UpdatedAt); err != nil {
			return nil, err
		}
		sections = append(sections, &c)
	}
	return sections, rows.Err()
}

// Upsert inserts or replaces a section keyed by its unique name.
func (r *PgContentRepository) Upsert(ctx context.Context, section, content string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO site_content (section, content)
		 VALUES ($1, $2)
		 ON CONFLICT (section) DO UPDATE SET content = EXCLUDED.content, updated_at = NOW()`,
		section, content)
	return err
}
