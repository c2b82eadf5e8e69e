package models

import "time"

// Startup is one founder's project. There is at most one per owner id,
// enforced by convention at registration rather than by a uniqueness check.
type Startup struct {
	ID           string      `json:"id"`
	OwnerID      string      `json:"owner_id"`
	Name         string      `json:"name"`
	Bio          string      `json:"bio,omitempty"`
	Industry     string      `json:"industry,omitempty"`
	Status       string      `json:"status"` // 'pending', 'approved', 'stalled'
	Metrics      Metrics     `json:"metrics"`
	AIOpinion    string      `json:"ai_opinion,omitempty"`
	Cofounders   []Cofounder `json:"cofounders,omitempty"`
	LastActivity time.Time   `json:"last_activity"`
	IsDemo       bool        `json:"is_demo,omitempty"`
}

// Startup status constants.
const (
	StartupPending  = "pending"
	StartupApproved = "approved"
	StartupStalled  = "stalled"
)

// ValidStartupStatuses contains all valid startup status values.
var ValidStartupStatuses = []string{StartupPending, StartupApproved, StartupStalled}

// IsValidStartupStatus checks if the given status is valid.
func IsValidStartupStatus(status string) bool {
	for _, s := range ValidStartupStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Metrics is the readiness triple attached to a startup, each value 0-100.
type Metrics struct {
	Readiness int `json:"readiness"`
	Tech      int `json:"tech"`
	Market    int `json:"market"`
}

// Cofounder is a human co-founder declared on the startup profile.
// These are free-text name+role pairs, not linked to PartnerProfile records.
type Cofounder struct {
	Name string `json:"name"`
	Role string `json:"role"`
}
