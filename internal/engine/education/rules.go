package education

import (
	"fmt"

	"internmatch/internal/models"
)

// Rule identifiers surfaced in eligibility verdicts.
const (
	RuleNoRequirements       = "no_requirements"
	RuleExactMatch           = "exact_match"
	RuleDegreeMatch          = "degree_match"
	RuleSpecializationMatch  = "specialization_match"
	RuleGeneralRequirement   = "general_requirement_satisfied_by_specialization"
	RuleSpecializedUnmet     = "specialized_requirement_unmet"
	RuleSpecializationDiffer = "specialization_mismatch"
	RuleDegreeHierarchy      = "degree_hierarchy"
	RuleDegreeSynonym        = "degree_synonym"
)

// degreeLevels is the fixed partial order over general degrees, used only
// when neither side specifies a specialization. Degrees outside this table
// never satisfy a requirement via hierarchy.
var degreeLevels = map[string]int{
	"diploma": 1,
	"b.sc":    2,
	"b.com":   2,
	"b.a":     2,
	"bca":     2,
	"b.tech":  3,
	"b.e":     3,
	"b.pharm": 3,
	"m.sc":    4,
	"m.tech":  4,
	"mca":     4,
	"mba":     4,
	"m.pharm": 4,
}

// degreeSynonyms maps equivalent degree names onto a single representative.
// Full names ("bachelor of technology") are already collapsed by Parse; this
// covers abbreviations that name the same qualification.
var degreeSynonyms = map[string]string{
	"b.e":    "b.tech",
	"b.tech": "b.tech",
}

func synonymOf(degree string) string {
	if s, ok := degreeSynonyms[degree]; ok {
		return s
	}
	return degree
}

// ruleOutcome is a tagged verdict from one rule: matched says the rule fired
// for this requirement entry; eligible is its decision when it did.
type ruleOutcome struct {
	matched  bool
	eligible bool
	rule     string
	reason   string
}

type ruleFunc func(user, req Parts) ruleOutcome

var noMatch = ruleOutcome{}

// ruleChain is evaluated in fixed precedence order per requirement entry; the
// first rule that fires decides that entry.
var ruleChain = []ruleFunc{
	exactMatch,
	degreeMatch,
	specializationMatch,
	generalRequirement,
	specializedRequirementUnmet,
	specializationMismatch,
	degreeHierarchy,
	degreeSynonym,
}

func exactMatch(user, req Parts) ruleOutcome {
	if user.Raw != "" && user.Raw == req.Raw {
		return ruleOutcome{true, true, RuleExactMatch, "education matches requirement exactly"}
	}
	return noMatch
}

func degreeMatch(user, req Parts) ruleOutcome {
	if user.Degree == req.Degree && user.Specialization == "" && req.Specialization == "" {
		return ruleOutcome{true, true, RuleDegreeMatch, "same degree, no specialization on either side"}
	}
	return noMatch
}

func specializationMatch(user, req Parts) ruleOutcome {
	if user.Degree == req.Degree && user.Specialization != "" && user.Specialization == req.Specialization {
		return ruleOutcome{true, true, RuleSpecializationMatch, "degree and specialization both match"}
	}
	return noMatch
}

func generalRequirement(user, req Parts) ruleOutcome {
	if user.Degree == req.Degree && user.Specialization != "" && req.Specialization == "" {
		return ruleOutcome{true, true, RuleGeneralRequirement, "general requirement satisfied by specialization"}
	}
	return noMatch
}

// A general degree never satisfies a specialized requirement, regardless of
// degree match. Intentional business policy, not a bug.
func specializedRequirementUnmet(user, req Parts) ruleOutcome {
	if req.Specialization != "" && user.Specialization == "" {
		return ruleOutcome{true, false, RuleSpecializedUnmet,
			fmt.Sprintf("requirement expects specialization %q", req.Specialization)}
	}
	return noMatch
}

func specializationMismatch(user, req Parts) ruleOutcome {
	if user.Specialization != "" && req.Specialization != "" && user.Specialization != req.Specialization {
		return ruleOutcome{true, false, RuleSpecializationDiffer,
			fmt.Sprintf("specialization %q does not match required %q", user.Specialization, req.Specialization)}
	}
	return noMatch
}

func degreeHierarchy(user, req Parts) ruleOutcome {
	if user.Specialization != "" || req.Specialization != "" {
		return noMatch
	}
	userLevel, userKnown := degreeLevels[user.Degree]
	reqLevel, reqKnown := degreeLevels[req.Degree]
	if !userKnown || !reqKnown {
		return noMatch
	}
	if userLevel >= reqLevel {
		return ruleOutcome{true, true, RuleDegreeHierarchy,
			fmt.Sprintf("%s (level %d) satisfies %s (level %d)", user.Degree, userLevel, req.Degree, reqLevel)}
	}
	return noMatch
}

func degreeSynonym(user, req Parts) ruleOutcome {
	userDeg, reqDeg := synonymOf(user.Degree), synonymOf(req.Degree)
	if userDeg != reqDeg || (userDeg == user.Degree && reqDeg == req.Degree) {
		return noMatch
	}
	if user.Specialization == "" && req.Specialization == "" {
		return ruleOutcome{true, true, RuleDegreeSynonym, "equivalent degree names"}
	}
	if user.Specialization != "" && user.Specialization == req.Specialization {
		return ruleOutcome{true, true, RuleDegreeSynonym, "equivalent degree names with matching specialization"}
	}
	return noMatch
}

// CheckEligibility evaluates a candidate's (canonical English) education
// string against a posting's accepted education list. Requirement entries are
// evaluated in order; the candidate is eligible as soon as any rule grants
// any entry. An empty requirement list means trivially eligible.
func CheckEligibility(candidateEducation string, requirements []string) models.EligibilityVerdict {
	if len(requirements) == 0 {
		return models.EligibilityVerdict{
			Eligible: true,
			Rule:     RuleNoRequirements,
			Reason:   "posting has no education requirements",
		}
	}

	user := Parse(candidateEducation)
	lastReason := "no requirement entry matched"

	for _, requirement := range requirements {
		req := Parse(requirement)
		for _, rule := range ruleChain {
			outcome := rule(user, req)
			if !outcome.matched {
				continue
			}
			if outcome.eligible {
				return models.EligibilityVerdict{
					Eligible:           true,
					Rule:               outcome.rule,
					MatchedRequirement: requirement,
					Reason:             outcome.reason,
				}
			}
			lastReason = outcome.reason
			break
		}
	}

	return models.EligibilityVerdict{
		Eligible: false,
		Reason:   lastReason,
	}
}
