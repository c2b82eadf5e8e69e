package models

import "time"

// Task is the deliverable tied to exactly one (user, level) pair. One task
// per level is created at registration; tasks are never deleted.
type Task struct {
	ID          string      `json:"id"`
	LevelID     int         `json:"level_id"`
	OwnerID     string      `json:"owner_id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Status      string      `json:"status"` // 'locked', 'assigned', 'submitted', 'approved', 'rejected'
	Submission  *Submission `json:"submission,omitempty"`
	Review      *Review     `json:"review,omitempty"`
}

// Task status constants.
const (
	TaskLocked    = "locked"
	TaskAssigned  = "assigned"
	TaskSubmitted = "submitted"
	TaskApproved  = "approved"
	TaskRejected  = "rejected"
)

// ValidTaskStatuses contains all valid task status values.
var ValidTaskStatuses = []string{TaskLocked, TaskAssigned, TaskSubmitted, TaskApproved, TaskRejected}

// IsValidTaskStatus checks if the given status is valid.
func IsValidTaskStatus(status string) bool {
	for _, s := range ValidTaskStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Submission is the uploaded deliverable attached to a task.
type Submission struct {
	FileName    string    `json:"file_name"`
	Content     string    `json:"content,omitempty"` // may be dropped when storage capacity is tight
	SubmittedAt time.Time `json:"submitted_at"`
}

// Review is the externally computed assessment of a submission. Attaching a
// review never changes task status; approval is a separate explicit action.
type Review struct {
	Score    int      `json:"score"` // 0-100, advisory
	Feedback string   `json:"feedback,omitempty"`
	Flags    []string `json:"flags,omitempty"`
}
