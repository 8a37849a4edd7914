package service

import (
	"context"

	"github.com/Uwezo9048/Dr.Foscah/internal/model"
)

// SubmissionService defines the business logic for contact form submissions
// and their triage lifecycle.
type SubmissionService interface {
	// Submit validates and stores a new submission. The s.ID, lifecycle
	// defaults and creation timestamp are populated by the implementation.
	Submit(ctx context.Context, s *model.Submission) error

	// Get returns a single submission by id.
	Get(ctx context.Context, id int64) (*model.Submission, error)

	// List returns submissions according to the given options, newest first.
	List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.Submission, error)

	// SetStatus moves a submission to the given lifecycle status, marks it
	// read, and logs a timestamped note naming the actor.
	SetStatus(ctx context.Context, id int64, status, actor string) error

	// MarkRead marks one submission as read. A non-empty note is appended to
	// the operator notes log verbatim.
	MarkRead(ctx context.Context, id int64, note string) error

	// MarkAllRead marks every unread submission as read and returns how many
	// rows changed.
	MarkAllRead(ctx context.Context, actor string) (int64, error)

	// Reply records a reply on the submission without sending email.
	// Recording again overwrites the previous reply.
	Reply(ctx context.Context, id int64, content, actor string) error

	// SendReply emails the reply to the submitter and then records it. When a
	// template id is given the template body is used instead of content, with
	// submission fields substituted for its placeholders. When mail is not
	// configured the reply is still recorded and emailSent is false; a mail
	// transport failure aborts before anything is recorded.
	SendReply(ctx context.Context, id int64, content string, templateID int64, actor string) (emailSent bool, err error)

	// Delete permanently removes a submission.
	Delete(ctx context.Context, id int64) error

	// Counts returns the summary used by the dashboard badge counters.
	Counts(ctx context.Context) (*model.SubmissionCounts, error)
}
