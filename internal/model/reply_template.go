package model

import "time"

// ReplyTemplate is a reusable subject/body pair for drafting replies.
// The body may contain placeholder tokens like {name} or {project_type}
// that are resolved against submission fields at send time.
// Default-flagged templates are seeded at first run and cannot be deleted.
type ReplyTemplate struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}
