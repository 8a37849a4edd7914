package model

import "time"

// Submission statuses. A submission is always in exactly one of these.
const (
	StatusNew        = "new"
	StatusContacted  = "contacted"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusArchived   = "archived"
)

// Statuses lists every valid submission status, in lifecycle order.
var Statuses = []string{StatusNew, StatusContacted, StatusInProgress, StatusCompleted, StatusArchived}

// ValidStatus reports whether s is one of the five submission statuses.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Submission represents one contact-form entry from a prospective client.
type Submission struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone,omitempty"`
	Address        string     `json:"address,omitempty"`
	ProjectType    string     `json:"project_type,omitempty"`
	Message        string     `json:"message"`
	Status         string     `json:"status"`
	ReadByAdmin    bool       `json:"read_by_admin"`
	AdminNotes     string     `json:"admin_notes"`
	RepliedByAdmin bool       `json:"replied_by_admin"`
	ReplyDate      *time.Time `json:"reply_date,omitempty"`
	ReplyContent   string     `json:"reply_content"`
	ReplyAdmin     string     `json:"reply_admin"`
	CreatedAt      time.Time  `json:"created_at"`
}

// SubmissionListOptions carries filter and pagination parameters for listing
// submissions. Filter is one of: "", "all", "unread", "read", "replied",
// "not_replied", or any status value. Empty string and "all" return everything.
type SubmissionListOptions struct {
	Filter string
	Limit  int
	Offset int
}

// SubmissionCounts is a derived summary of the submissions table. It is
// always computed fresh; nothing here is stored.
type SubmissionCounts struct {
	Total          int            `json:"total"`
	Unread         int            `json:"unread"`
	Read           int            `json:"read"`
	Replied        int            `json:"replied"`
	ReadNotReplied int            `json:"read_not_replied"`
	ByStatus       map[string]int `json:"by_status"`
}
