// Package models contains domain types for seedstage-engine.
package models

import "strings"

// User is the identity record for anyone on the platform.
type User struct {
	ID        string   `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"` // case-insensitive login key
	Phone     string   `json:"phone,omitempty"`
	Role      string   `json:"role"` // 'founder', 'partner', 'mentor', 'admin'
	Badges    []string `json:"badges,omitempty"`
	IsDemo    bool     `json:"is_demo,omitempty"`
}

// Role constants for platform users.
const (
	RoleFounder = "founder"
	RolePartner = "partner"
	RoleMentor  = "mentor"
	RoleAdmin   = "admin"
)

// ValidRoles contains all valid role values.
var ValidRoles = []string{RoleFounder, RolePartner, RoleMentor, RoleAdmin}

// IsValidRole checks if the given role is valid.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// DemoIDPrefix marks seeded fixture accounts. Registration of an account whose
// id carries this prefix never starts a session, so re-seeding demo data cannot
// clobber a real visitor's session.
const DemoIDPrefix = "demo-"

// IsDemoID reports whether an id follows the seed-account convention.
func IsDemoID(id string) bool {
	return strings.HasPrefix(id, DemoIDPrefix)
}

// HasBadge reports whether the user already earned the given badge.
func (u *User) HasBadge(badgeID string) bool {
	for _, b := range u.Badges {
		if b == badgeID {
			return true
		}
	}
	return false
}

// AwardBadge appends badgeID to the earned set. Awarding a badge the user
// already holds is a no-op (set semantics).
func (u *User) AwardBadge(badgeID string) {
	if u.HasBadge(badgeID) {
		return
	}
	u.Badges = append(u.Badges, badgeID)
}

// EmailEquals compares an email against the user's login key, ignoring case
// and surrounding whitespace.
func (u *User) EmailEquals(email string) bool {
	return strings.EqualFold(strings.TrimSpace(u.Email), strings.TrimSpace(email))
}
