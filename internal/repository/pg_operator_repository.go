package repository

import (
	"context"
	"errors"

	"github.com/Uwezo9048/Dr.Foscah/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OperatorRepository defines the persistence interface for operator accounts.
type OperatorRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.Operator, error)
	Create(ctx context.Context, op *model.Operator) error
	// UpdatePasswordHash replaces the stored hash for username.
	UpdatePasswordHash(ctx context.Context, username, hash string) error
	Count(ctx context.Context) (int64, error)
}

// PgOperatorRepository is the PostgreSQL implementation of OperatorRepository.
type PgOperatorRepository struct {
	pool *pgxpool.Pool
}

// NewPgOperatorRepository creates a PgOperatorRepository backed by the given pool.
func NewPgOperatorRepository(pool *pgxpool.Pool) *PgOperatorRepository {
	return &PgOperatorRepository{pool: pool}
}

var _ OperatorRepository = (*PgOperatorRepository)(nil)

// FindByUsername returns an operator account or ErrNotFound.
func (r *PgOperatorRepository) FindByUsername(ctx context.Context, username string) (*model.Operator, error) {
	var op model.Operator
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at FROM operators WHERE username = $1`,
		username,
	).Scan(&op.ID, &op.Username, &op.PasswordHash, &op.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &op, nil
}

// Create inserts a new operator account and populates op.ID and op.CreatedAt.
func (r *PgOperatorRepository) Create(ctx context.Context, op *model.Operator) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO operators (username, password_hash)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		op.Username, op.PasswordHash,
	).Scan(&op.ID, &op.CreatedAt)
}

// UpdatePasswordHash replaces the stored hash, or returns ErrNotFound when
// the username does not exist.
func (r *PgOperatorRepository) UpdatePasswordHash(ctx context.Context, username, hash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE operators SET password_hash = $1 WHERE username = $2`, hash, username)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of operator accounts.
func (r *PgOperatorRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM operators`).Scan(&n)
	return n, err
}
