// internal/models/notification.go
package models

// NotificationRecord tracks which candidates have already been notified about
// a posting. Append-only; the caller merges additions back into the posting.
type NotificationRecord struct {
	PostingID    string   `json:"postingId"`
	CandidateIDs []string `json:"candidateIds"`
}

// MessagePayload is a fully rendered, locale-specific notification ready for
// the mail transport.
type MessagePayload struct {
	CandidateID string `json:"candidateId"`
	Email       string `json:"email"`
	Locale      string `json:"locale"`
	Subject     string `json:"subject"`
	TextBody    string `json:"textBody"`
	HTMLBody    string `json:"htmlBody"`
	Score       int    `json:"score"`
}

// DispatchSummary is the outcome of one notification dispatch run.
type DispatchSummary struct {
	DispatchID   string   `json:"dispatchId"`
	PostingID    string   `json:"postingId"`
	Sent         int      `json:"sent"`
	Failed       int      `json:"failed"`
	TotalMatches int      `json:"totalMatches"` // pre-cap
	NotifiedIDs  []string `json:"notifiedIds"`
}
