package education

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		degree         string
		specialization string
	}{
		{"abbreviation with dot", "b.tech computer science", "b.tech", "computer science"},
		{"abbreviation with space", "b tech computer science", "b.tech", "computer science"},
		{"full name with connector", "bachelor of technology in computer science", "b.tech", "computer science"},
		{"bachelor of engineering maps to b.e", "bachelor of engineering", "b.e", ""},
		{"connector words stripped", "mba in finance", "mba", "finance"},
		{"specialisation spelling stripped", "b.sc specialisation physics", "b.sc", "physics"},
		{"diploma", "polytechnic diploma", "diploma", ""},
		{"pharmacy variant", "b.pharma", "b.pharm", ""},
		{"mca full name", "master of computer applications", "mca", ""},
		{"case folded", "B.Tech Computer Science", "b.tech", "computer science"},
		{"no pattern, whole string is degree", "high school", "high school", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := Parse(tt.input)
			assert.Equal(t, tt.degree, parts.Degree)
			assert.Equal(t, tt.specialization, parts.Specialization)
		})
	}
}

func TestCheckEligibility_RuleChain(t *testing.T) {
	tests := []struct {
		name         string
		education    string
		requirements []string
		eligible     bool
		rule         string
	}{
		{
			name:         "exact match",
			education:    "b.tech computer science",
			requirements: []string{"b.tech computer science"},
			eligible:     true,
			rule:         RuleExactMatch,
		},
		{
			name:         "same degree both general",
			education:    "b.sc",
			requirements: []string{"b.sc"},
			eligible:     true,
			rule:         RuleDegreeMatch,
		},
		{
			name:         "degree and specialization both match despite phrasing",
			education:    "b.tech in computer science",
			requirements: []string{"b.tech computer science"},
			eligible:     true,
			rule:         RuleSpecializationMatch,
		},
		{
			name:         "specialized degree satisfies general requirement",
			education:    "b.tech computer science",
			requirements: []string{"b.tech"},
			eligible:     true,
			rule:         RuleGeneralRequirement,
		},
		{
			name:         "general degree never satisfies specialized requirement",
			education:    "b.tech",
			requirements: []string{"b.tech information technology"},
			eligible:     false,
		},
		{
			name:         "sibling specializations do not match",
			education:    "b.tech computer science",
			requirements: []string{"b.tech information technology"},
			eligible:     false,
		},
		{
			name:         "higher level satisfies lower via hierarchy",
			education:    "m.tech",
			requirements: []string{"b.sc"},
			eligible:     true,
			rule:         RuleDegreeHierarchy,
		},
		{
			name:         "lower level does not satisfy higher",
			education:    "diploma",
			requirements: []string{"b.tech"},
			eligible:     false,
		},
		{
			name:         "synonym degrees are equivalent",
			education:    "b.e",
			requirements: []string{"b.tech"},
			eligible:     true,
		},
		{
			name:         "synonym with matching specialization",
			education:    "b.e computer science",
			requirements: []string{"b.tech computer science"},
			eligible:     true,
			rule:         RuleDegreeSynonym,
		},
		{
			name:         "unknown degrees never match via hierarchy",
			education:    "high school",
			requirements: []string{"certificate course"},
			eligible:     false,
		},
		{
			name:         "any entry grants eligibility",
			education:    "bca",
			requirements: []string{"m.tech", "diploma"},
			eligible:     true,
			rule:         RuleDegreeHierarchy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := CheckEligibility(tt.education, tt.requirements)
			assert.Equal(t, tt.eligible, verdict.Eligible)
			if tt.rule != "" {
				assert.Equal(t, tt.rule, verdict.Rule)
			}
			if tt.eligible {
				assert.NotEmpty(t, verdict.MatchedRequirement)
			}
		})
	}
}

func TestCheckEligibility_NoRequirements(t *testing.T) {
	verdict := CheckEligibility("anything at all", nil)
	assert.True(t, verdict.Eligible)
	assert.Equal(t, RuleNoRequirements, verdict.Rule)
}

func TestCheckEligibility_IneligibleEntryDoesNotBlockLaterEntries(t *testing.T) {
	// First entry fires the specialized-requirement rule as ineligible;
	// the second entry still grants eligibility.
	verdict := CheckEligibility("b.tech", []string{"b.tech information technology", "b.tech"})
	assert.True(t, verdict.Eligible)
	assert.Equal(t, RuleDegreeMatch, verdict.Rule)
	assert.Equal(t, "b.tech", verdict.MatchedRequirement)
}
