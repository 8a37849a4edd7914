package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Uwezo9048/Dr.Foscah/internal/model"
	"github.com/Uwezo9048/Dr.Foscah/internal/repository"
	"github.com/Uwezo9048/Dr.Foscah/pkg/mailer"
)

// noteTimeLayout is the timestamp prefix used in operator note entries.
const noteTimeLayout = "2006-01-02 15:04"

// replySubject is the subject line for free-form reply emails.
const replySubject = "Re: Your inquiry to Dr. Foscah Faith"

// submissionServiceImpl is the production implementation of SubmissionService.
type submissionServiceImpl struct {
	repo      repository.SubmissionRepository
	templates repository.TemplateRepository
	mail      mailer.Sender
}

// NewSubmissionService creates a SubmissionService backed by the given
// repositories and mail sender.
func NewSubmissionService(repo repository.SubmissionRepository, templates repository.TemplateRepository, mail mailer.Sender) SubmissionService {
	return &submissionServiceImpl{repo: repo, templates: templates, mail: mail}
}

// Submit validates required fields and persists the submission.
func (s *submissionServiceImpl) Submit(ctx context.Context, sub *model.Submission) error {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Message = strings.TrimSpace(sub.Message)

	if sub.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if sub.Email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if !strings.Contains(sub.Email, "@") || !strings.Contains(sub.Email, ".") {
		return fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	if sub.Message == "" {
		return fmt.Errorf("%w: message is required", ErrValidation)
	}
	return s.repo.Create(ctx, sub)
}

// Get returns a single submission by id.
func (s *submissionServiceImpl) Get(ctx context.Context, id int64) (*model.Submission, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns submissions according to the given options.
func (s *submissionServiceImpl) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.Submission, error) {
	return s.repo.List(ctx, opts)
}

// SetStatus validates the target status and delegates, logging a timestamped
// note naming the actor.
func (s *submissionServiceImpl) SetStatus(ctx context.Context, id int64, status, actor string) error {
	if !model.ValidStatus(status) {
		return fmt.Errorf("%w: must be one of: %s", ErrInvalidStatus, strings.Join(model.Statuses, ", "))
	}
	note := fmt.Sprintf("[%s] Status changed to '%s' by %s",
		time.Now().Format(noteTimeLayout), status, actor)
	return s.repo.UpdateStatus(ctx, id, status, note)
}

// MarkRead marks one submission as read, appending the note verbatim.
func (s *submissionServiceImpl) MarkRead(ctx context.Context, id int64, note string) error {
	return s.repo.MarkRead(ctx, id, note)
}

// MarkAllRead marks every unread submission as read.
func (s *submissionServiceImpl) MarkAllRead(ctx context.Context, actor string) (int64, error) {
	note := "Marked as read"
	if actor != "" {
		note = fmt.Sprintf("[%s] Marked as read by %s", time.Now().Format(noteTimeLayout), actor)
	}
	return s.repo.MarkAllRead(ctx, note)
}

// Reply records a reply without sending email.
func (s *submissionServiceImpl) Reply(ctx context.Context, id int64, content, actor string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: reply content is required", ErrValidation)
	}
	return s.repo.Reply(ctx, id, content, actor, time.Now().UTC())
}

// SendReply emails the reply and records it. The email goes out first so a
// transport failure never leaves the submission marked replied.
func (s *submissionServiceImpl) SendReply(ctx context.Context, id int64, content string, templateID int64, actor string) (bool, error) {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}

	fields := mailer.Fields{
		Name:        sub.Name,
		Email:       sub.Email,
		Phone:       sub.Phone,
		Address:     sub.Address,
		ProjectType: sub.ProjectType,
		Message:     sub.Message,
	}

	subject := replySubject
	templateSubject := ""
	if templateID > 0 {
		tpl, err := s.templates.FindByID(ctx, templateID)
		if err != nil {
			return false, err
		}
		content = tpl.Body
		templateSubject = tpl.Subject
	}
	if strings.TrimSpace(content) == "" {
		return false, fmt.Errorf("%w: reply content is required", ErrValidation)
	}
	body := mailer.Substitute(content, fields)
	if templateID > 0 {
		// Templates supply their own subject; without one the first line of
		// the substituted body serves as the subject.
		subject = templateSubject
		if subject == "" {
			subject = mailer.SubjectFromBody(body)
		}
	}

	sent := false
	if s.mail.Enabled() {
		if err := s.mail.Send(sub.Email, subject, body); err != nil {
			return false, err
		}
		sent = true
	}

	if err := s.repo.Reply(ctx, id, body, actor, time.Now().UTC()); err != nil {
		return sent, err
	}
	return sent, nil
}

// Delete permanently removes a submission.
func (s *submissionServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Counts returns the dashboard summary.
func (s *submissionServiceImpl) Counts(ctx context.Context) (*model.SubmissionCounts, error) {
	return s.repo.Counts(ctx)
}
