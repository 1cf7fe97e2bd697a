// internal/workers/matching/check-eligibility/models.go
package checkeligibility

type Input struct {
	CandidateID        string   `json:"candidateId,omitempty"`
	CandidateEducation string   `json:"candidateEducation,omitempty"`
	Language           string   `json:"language,omitempty"`
	PostingID          string   `json:"postingId,omitempty"`
	Requirements       []string `json:"requirements,omitempty"`
}

type Output struct {
	Eligible           bool   `json:"eligible"`
	Rule               string `json:"rule,omitempty"`
	MatchedRequirement string `json:"matchedRequirement,omitempty"`
	Reason             string `json:"reason,omitempty"`
	CheckedAt          string `json:"checkedAt"` // ISO 8601
}
