package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/Uwezo9048/Dr.Foscah/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SubmissionRepository defines the persistence interface for contact-form
// submissions. It is defined here (in repository) to avoid an import cycle
// with service.
type SubmissionRepository interface {
	Create(ctx context.Context, s *model.Submission) error
	FindByID(ctx context.Context, id int64) (*model.Submission, error)
	List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.Submission, error)
	// UpdateStatus sets the status, forces read_by_admin, and appends note to
	// the operator notes log.
	UpdateStatus(ctx context.Context, id int64, status, note string) error
	// MarkRead sets read_by_admin. A non-empty note is appended to the notes
	// log; the first note replaces the empty field, later notes are separated
	// by a blank line.
	MarkRead(ctx context.Context, id int64, note string) error
	// MarkAllRead marks every unread submission as read, appending the same
	// note to each, and returns the number of rows affected.
	MarkAllRead(ctx context.Context, note string) (int64, error)
	// Reply records reply content, author and timestamp, sets replied_by_admin
	// and forces read_by_admin. Calling it again overwrites the prior reply.
	Reply(ctx context.Context, id int64, content, author string, at time.Time) error
	Delete(ctx context.Context, id int64) error
	Counts(ctx context.Context) (*model.SubmissionCounts, error)
}

// PgSubmissionRepository is the PostgreSQL implementation of SubmissionRepository.
type PgSubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewPgSubmissionRepository creates a PgSubmissionRepository backed by the given pool.
func NewPgSubmissionRepository(pool *pgxpool.Pool) *PgSubmissionRepository {
	return &PgSubmissionRepository{pool: pool}
}

// Ensure PgSubmissionRepository implements SubmissionRepository at compile time.
var _ SubmissionRepository = (*PgSubmissionRepository)(nil)

const submissionSelectCols = `id, name, email, phone, address, project_type, message,
	status, read_by_admin, admin_notes, replied_by_admin, reply_date, reply_content,
	reply_admin, created_at`

func scanSubmission(scan func(...any) error) (*model.Submission, error) {
	var s model.Submission
	if err := scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.ProjectType,
		&s.Message, &s.Status, &s.ReadByAdmin, &s.AdminNotes, &s.RepliedByAdmin,
		&s.ReplyDate, &s.ReplyContent, &s.ReplyAdmin, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Create inserts a new submissions row and populates s.ID, lifecycle defaults
// and the server-assigned creation timestamp from the RETURNING clause.
func (r *PgSubmissionRepository) Create(ctx context.Context, s *model.Submission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO submissions (name, email, phone, address, project_type, message)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, status, read_by_admin, replied_by_admin, admin_notes, reply_content, reply_admin, created_at`,
		s.Name, s.Email, s.Phone, s.Address, s.ProjectType, s.Message,
	).Scan(&s.ID, &s.Status, &s.ReadByAdmin, &s.RepliedByAdmin, &s.AdminNotes,
		&s.ReplyContent, &s.ReplyAdmin, &s.CreatedAt)
}

// FindByID returns a single submission or ErrNotFound.
func (r *PgSubmissionRepository) FindByID(ctx context.Context, id int64) (*model.Submission, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+submissionSelectCols+` FROM submissions WHERE id = $1`, id)
	return scanSubmission(row.Scan)
}

// List returns submissions newest first, filtered per opts.Filter.
func (r *PgSubmissionRepository) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.Submission, error) {
	where := ""
	var args []any

	switch opts.Filter {
	case "", "all":
	case "unread":
		where = "WHERE read_by_admin = FALSE"
	case "read":
		where = "WHERE read_by_admin = TRUE"
	case "replied":
		where = "WHERE replied_by_admin = TRUE"
	case "not_replied":
		where = "WHERE replied_by_admin = FALSE AND read_by_admin = TRUE"
	default:
		if model.ValidStatus(opts.Filter) {
			where = "WHERE status = $1"
			args = append(args, opts.Filter)
		}
	}

	query := `SELECT ` + submissionSelectCols + ` FROM submissions ` + where +
		` ORDER BY created_at DESC, id DESC`
	if opts.Limit > 0 {
		query += ` LIMIT $` + strconv.Itoa(len(args)+1)
		args = append(args, opts.Limit)
	}
	if opts.Offset > 0 {
		query += ` OFFSET $` + strconv.Itoa(len(args)+1)
		args = append(args, opts.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []*model.Submission
	for rows.Next() {
		s, err := scanSubmission(rows.Scan)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}

// UpdateStatus performs a single guarded UPDATE. The note is appended
// unconditionally: re-setting the same status still marks the row read and
// still logs a note.
func (r *PgSubmissionRepository) UpdateStatus(ctx context.Context, id int64, status, note string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE submissions
		 SET status = $1,
		     read_by_admin = TRUE,
		     admin_notes = CASE WHEN admin_notes = '' THEN $2 ELSE admin_notes || E'\n\n' || $2 END
		 WHERE id = $3`,
		status, note, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkRead sets read_by_admin and optionally appends a note.
func (r *PgSubmissionRepository) MarkRead(ctx context.Context, id int64, note string) error {
	var tag pgconn.CommandTag
	var err error
	if note == "" {
		tag, err = r.pool.Exec(ctx,
			`UPDATE submissions SET read_by_admin = TRUE WHERE id = $1`, id)
	} else {
		tag, err = r.pool.Exec(ctx,
			`UPDATE submissions
			 SET read_by_admin = TRUE,
			     admin_notes = CASE WHEN admin_notes = '' THEN $1 ELSE admin_notes || E'\n\n' || $1 END
			 WHERE id = $2`,
			note, id)
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkAllRead is a scan-then-update over every unread row. It is not wrapped
// in a transaction; rows inserted concurrently may or may not be included.
func (r *PgSubmissionRepository) MarkAllRead(ctx context.Context, note string) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE submissions
		 SET read_by_admin = TRUE,
		     admin_notes = CASE WHEN admin_notes = '' THEN $1 ELSE admin_notes || E'\n\n' || $1 END
		 WHERE read_by_admin = FALSE`,
		note)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Reply overwrites the reply fields; no history is retained.
func (r *PgSubmissionRepository) Reply(ctx context.Context, id int64, content, author string, at time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE submissions
		 SET replied_by_admin = TRUE,
		     reply_date = $1,
		     reply_content = $2,
		     reply_admin = $3,
		     read_by_admin = TRUE
		 WHERE id = $4`,
		at, content, author, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete hard-deletes a submission.
func (r *PgSubmissionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM submissions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Counts computes the full summary fresh from the table.
func (r *PgSubmissionRepository) Counts(ctx context.Context) (*model.SubmissionCounts, error) {
	c := &model.SubmissionCounts{ByStatus: make(map[string]int)}

	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE read_by_admin = FALSE),
		        COUNT(*) FILTER (WHERE read_by_admin = TRUE),
		        COUNT(*) FILTER (WHERE replied_by_admin = TRUE),
		        COUNT(*) FILTER (WHERE read_by_admin = TRUE AND replied_by_admin = FALSE)
		 FROM submissions`,
	).Scan(&c.Total, &c.Unread, &c.Read, &c.Replied, &c.ReadNotReplied)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM submissions GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		c.ByStatus[status] = n
	}
	return c, rows.Err()
}
