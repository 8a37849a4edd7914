package model

import "time"

// Operator is an administrator account that can triage submissions and edit
// site content. There is no self-registration; one account is seeded.
type Operator struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
