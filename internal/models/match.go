// internal/models/match.go
package models

// MatchBreakdown explains how each dimension contributed to the score.
type MatchBreakdown struct {
	SkillsMatched   int     `json:"skillsMatched"`
	SkillsRequired  int     `json:"skillsRequired"`
	SkillScore      float64 `json:"skillScore"`
	LocationMatched bool    `json:"locationMatched"`
	LocationScore   float64 `json:"locationScore"`
	SectorsMatched  int     `json:"sectorsMatched"`
	SectorsTotal    int     `json:"sectorsTotal"`
	SectorScore     float64 `json:"sectorScore"`
}

// EligibilityVerdict records the outcome of the education rule chain.
type EligibilityVerdict struct {
	Eligible           bool   `json:"eligible"`
	Rule               string `json:"rule,omitempty"`
	MatchedRequirement string `json:"matchedRequirement,omitempty"`
	Reason             string `json:"reason,omitempty"`
}

// MatchResult is produced fresh per (candidate, posting) scoring invocation.
type MatchResult struct {
	CandidateID string             `json:"candidateId"`
	PostingID   string             `json:"postingId"`
	Score       int                `json:"score"` // 0-100
	Breakdown   MatchBreakdown     `json:"breakdown"`
	Eligibility EligibilityVerdict `json:"eligibility"`
}
