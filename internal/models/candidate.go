// internal/models/candidate.go
package models

import "strings"

// CandidateProfile is a read-only view of a candidate as supplied by the
// profile store. The engine never mutates it.
type CandidateProfile struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Education            string   `json:"education"`
	Skills               []string `json:"skills"`
	SectorInterests      []string `json:"sectorInterests"`
	PreferredLocations   []string `json:"preferredLocations"`
	Language             string   `json:"language"` // locale tag, e.g. "hi-IN"
	NotificationsEnabled bool     `json:"notificationsEnabled"`
	Email                string   `json:"email"`
}

// HasValidEmail reports whether the candidate can be emailed at all.
// Deliberately loose: the mail transport is the real authority.
func (c *CandidateProfile) HasValidEmail() bool {
	email := strings.TrimSpace(c.Email)
	if email == "" {
		return false
	}
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}
	return strings.Contains(parts[1], ".")
}
