package model

import "time"

// SiteContent is one named section of editable website copy. Content is the
// raw stored text; JSON-looking values are decoded at the API boundary.
// Last write wins, no history.
type SiteContent struct {
	Section   string    `json:"section"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}
