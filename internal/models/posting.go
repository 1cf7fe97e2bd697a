// internal/models/posting.go
package models

// Posting statuses
const (
	PostingStatusActive = "active"
	PostingStatusPaused = "paused"
	PostingStatusClosed = "closed"
)

// Sector is a canonical sector identifier with its English display name.
type Sector struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Eligibility holds the posting's accepted education entries, in English,
// either degree or degree+specialization form, evaluated in order.
type Eligibility struct {
	Education []string `json:"education"`
}

// Posting stores canonical English text for all matchable fields; only
// candidate-side text needs normalization.
type Posting struct {
	ID                   string      `json:"id"`
	Title                string      `json:"title"`
	Company              string      `json:"company"`
	Location             string      `json:"location"`
	SkillsRequired       []string    `json:"skillsRequired"`
	Sectors              []Sector    `json:"sectors"`
	RemoteOK             bool        `json:"remoteOk"`
	Duration             string      `json:"duration"` // English phrase, e.g. "6 months"
	StipendAmount        int         `json:"stipendAmount"`
	ApplicationDeadline  string      `json:"applicationDeadline"` // ISO 8601 date
	Eligibility          Eligibility `json:"eligibility"`
	Status               string      `json:"status"`
	NotifiedCandidateIDs []string    `json:"notifiedCandidateIds,omitempty"`
}
