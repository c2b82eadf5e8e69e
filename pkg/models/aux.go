package models

import "time"

// ServiceRequest is a founder's ask for a platform service (legal, design,
// cloud credits and so on). Appended to its collection, never deleted.
type ServiceRequest struct {
	ID          string    `json:"id"`
	RequesterID string    `json:"requester_id"`
	Service     string    `json:"service"`
	Note        string    `json:"note,omitempty"`
	Status      string    `json:"status"` // 'open', 'done'
	CreatedAt   time.Time `json:"created_at"`
}

// Service request status constants.
const (
	RequestOpen = "open"
	RequestDone = "done"
)

// ProgramRating is one user's rating of the accelerator program, upserted
// per user id.
type ProgramRating struct {
	Stars   int    `json:"stars"` // 1..5
	Comment string `json:"comment,omitempty"`
}

// Session is the pointer record for "who is currently signed in". Exactly
// one exists at a time (single-tab assumption); there is no token and no
// expiry.
type Session struct {
	UserID    string `json:"user_id"`
	ProjectID string `json:"project_id,omitempty"`
}
