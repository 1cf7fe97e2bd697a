// internal/workers/matching/score-posting/models.go
package scoreposting

import "internmatch/internal/models"

type Input struct {
	CandidateID string                   `json:"candidateId"`
	Candidate   *models.CandidateProfile `json:"candidate,omitempty"`
	Posting     *models.Posting          `json:"posting,omitempty"`
	MaxResults  int                      `json:"maxResults,omitempty"`
}

type Output struct {
	Match    *models.MatchResult   `json:"match,omitempty"`
	Matches  []*models.MatchResult `json:"matches,omitempty"`
	ScoredAt string                `json:"scoredAt"` // ISO 8601
}
