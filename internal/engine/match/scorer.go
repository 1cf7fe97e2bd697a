// Package match combines skill, location and sector overlap into a single
// weighted compatibility score per (candidate, posting) pair.
package match

import (
	"errors"
	"math"
	"strings"

	"internmatch/internal/engine/dictionary"
	"internmatch/internal/engine/education"
	"internmatch/internal/engine/normalize"
	"internmatch/internal/models"
)

// Fixed weights; sum is 100.
const (
	SkillWeight    = 40.0
	LocationWeight = 30.0
	SectorWeight   = 30.0
)

var (
	ErrNilCandidate     = errors.New("candidate cannot be nil")
	ErrNilPosting       = errors.New("posting cannot be nil")
	ErrPostingWithoutID = errors.New("posting has no identifier")
)

// Score computes the MatchResult for one candidate against one posting. Pure
// and order-independent; missing data on either side degrades its dimension
// to zero rather than failing. Nil arguments and postings without an
// identifier are programmer errors and fail fast.
func Score(candidate *models.CandidateProfile, posting *models.Posting) (*models.MatchResult, error) {
	if candidate == nil {
		return nil, ErrNilCandidate
	}
	if posting == nil {
		return nil, ErrNilPosting
	}
	if posting.ID == "" {
		return nil, ErrPostingWithoutID
	}

	loc := dictionary.ParseLocale(candidate.Language)
	breakdown := models.MatchBreakdown{}

	// Skills: fraction of required skills covered by the candidate.
	candidateSkills := normalize.List(candidate.Skills, loc)
	breakdown.SkillsRequired = len(posting.SkillsRequired)
	for _, required := range posting.SkillsRequired {
		if containsTerm(candidateSkills, fold(required)) {
			breakdown.SkillsMatched++
		}
	}
	if breakdown.SkillsRequired > 0 {
		breakdown.SkillScore = float64(breakdown.SkillsMatched) / float64(breakdown.SkillsRequired) * SkillWeight
	}

	// Location: binary, remote postings match everyone.
	postingLocation := fold(posting.Location)
	if posting.RemoteOK {
		breakdown.LocationMatched = true
	} else if postingLocation != "" {
		breakdown.LocationMatched = containsTerm(normalize.List(candidate.PreferredLocations, loc), postingLocation)
	}
	if breakdown.LocationMatched {
		breakdown.LocationScore = LocationWeight
	}

	// Sectors: fraction of posting sectors the candidate is interested in.
	candidateSectors := normalize.List(candidate.SectorInterests, loc)
	breakdown.SectorsTotal = len(posting.Sectors)
	for _, sector := range posting.Sectors {
		if containsTerm(candidateSectors, fold(sector.Name)) || containsTerm(candidateSectors, fold(sector.ID)) {
			breakdown.SectorsMatched++
		}
	}
	if breakdown.SectorsTotal > 0 {
		breakdown.SectorScore = float64(breakdown.SectorsMatched) / float64(breakdown.SectorsTotal) * SectorWeight
	}

	verdict := education.CheckEligibility(
		normalize.Term(candidate.Education, loc),
		posting.Eligibility.Education,
	)

	score := int(math.Round(breakdown.SkillScore + breakdown.LocationScore + breakdown.SectorScore))

	return &models.MatchResult{
		CandidateID: candidate.ID,
		PostingID:   posting.ID,
		Score:       score,
		Breakdown:   breakdown,
		Eligibility: verdict,
	}, nil
}

// containsTerm tests exact-or-substring containment in either direction
// between the target and any candidate term.
func containsTerm(terms []string, target string) bool {
	if target == "" {
		return false
	}
	for _, t := range terms {
		if t == "" {
			continue
		}
		if t == target || strings.Contains(t, target) || strings.Contains(target, t) {
			return true
		}
	}
	return false
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
