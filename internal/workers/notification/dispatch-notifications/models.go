// internal/workers/notification/dispatch-notifications/models.go
package dispatchnotifications

import "internmatch/internal/models"

type Input struct {
	PostingID  string                     `json:"postingId"`
	MinScore   int                        `json:"minScore,omitempty"`
	Candidates []*models.CandidateProfile `json:"candidates,omitempty"`
	Trigger    string                     `json:"trigger,omitempty"` // "posting_created" or "manual"
}

type Output struct {
	DispatchID   string   `json:"dispatchId"`
	PostingID    string   `json:"postingId"`
	Sent         int      `json:"sent"`
	Failed       int      `json:"failed"`
	TotalMatches int      `json:"totalMatches"`
	NotifiedIDs  []string `json:"notifiedIds"`
	DispatchedAt string   `json:"dispatchedAt"` // ISO 8601
}

// Triggers
const (
	TriggerPostingCreated = "posting_created"
	TriggerManual         = "manual"
)
