// Package mailer sends plain-text reply emails over SMTP. When no SMTP
// credentials are configured every send reports ErrNotConfigured, which
// callers treat as "reply recorded, email not sent" rather than a failure.
package mailer

import (
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

// ErrNotConfigured is reported when SMTP credentials are absent.
var ErrNotConfigured = errors.New("email sending is not configured")

// Sender is the outbound-mail interface services depend on.
type Sender interface {
	Enabled() bool
	Send(to, subject, body string) error
}

// Config holds SMTP transport settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
}

// Mailer is the SMTP implementation of Sender.
type Mailer struct {
	cfg Config
}

// New creates a Mailer. The mailer is disabled until both username and
// password are set.
func New(cfg Config) *Mailer {
	return &Mailer{cfg: cfg}
}

var _ Sender = (*Mailer)(nil)

// Enabled reports whether transport credentials are configured.
func (m *Mailer) Enabled() bool {
	return m.cfg.Username != "" && m.cfg.Password != ""
}

// Send delivers one plain-text message. Transport and authentication
// failures are surfaced to the caller; nothing is retried.
func (m *Mailer) Send(to, subject, body string) error {
	if !m.Enabled() {
		return ErrNotConfigured
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.Username))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
