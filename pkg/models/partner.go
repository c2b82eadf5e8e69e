package models

// PartnerProfile is a prospective co-founder candidate, upserted keyed by
// owner user id (re-registering replaces the prior profile in place).
type PartnerProfile struct {
	OwnerID      string   `json:"owner_id"`
	Name         string   `json:"name"`
	Email        string   `json:"email,omitempty"`
	Role         string   `json:"role"` // 'cto', 'coo', 'cmo', 'cpo', 'finance'
	Years        int      `json:"years"`
	Bio          string   `json:"bio,omitempty"`
	ProfileLink  string   `json:"profile_link,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	HoursPerWeek int      `json:"hours_per_week"`
	Commitment   string   `json:"commitment"` // 'part_time', 'full_time'
	City         string   `json:"city,omitempty"`
	Remote       bool     `json:"remote"`
	WorkStyle    string   `json:"work_style"` // 'fast', 'structured'
	Goal         string   `json:"goal,omitempty"`
	Verified     bool     `json:"verified"`
	Completeness int      `json:"completeness"` // 0-100
}

// Partner functional role constants.
const (
	PartnerRoleCTO     = "cto"
	PartnerRoleCOO     = "coo"
	PartnerRoleCMO     = "cmo"
	PartnerRoleCPO     = "cpo"
	PartnerRoleFinance = "finance"
)

// ValidPartnerRoles contains all valid partner functional roles.
var ValidPartnerRoles = []string{PartnerRoleCTO, PartnerRoleCOO, PartnerRoleCMO, PartnerRoleCPO, PartnerRoleFinance}

// IsValidPartnerRole checks if the given functional role is valid.
func IsValidPartnerRole(role string) bool {
	for _, r := range ValidPartnerRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Commitment constants.
const (
	CommitmentPartTime = "part_time"
	CommitmentFullTime = "full_time"
)

// Work style constants.
const (
	WorkStyleFast       = "fast"
	WorkStyleStructured = "structured"
)
