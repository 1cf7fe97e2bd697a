// Package normalize converts candidate-side multilingual text into the
// canonical English representation used for all matching. Every function is
// pure and deterministic; malformed input degrades to identity rather than
// failing.
package normalize

import (
	"regexp"
	"strings"

	"internmatch/internal/engine/dictionary"
)

var durationPattern = regexp.MustCompile(`^([0-9]+)\s*(\S.*)$`)

// Term normalizes a single token for the given locale. Unmapped terms return
// folded but otherwise unchanged, so they still compare by literal equality
// against English requirements.
func Term(term string, loc dictionary.Locale) string {
	canonical, _ := dictionary.Lookup(loc, term)
	return canonical
}

// Duration recognizes "<integer> <unit>" phrases and translates only the unit
// token, leaving the numeral untouched. Anything else falls back to Term.
func Duration(text string, loc dictionary.Locale) string {
	trimmed := strings.TrimSpace(text)
	m := durationPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return Term(trimmed, loc)
	}
	unit, ok := dictionary.Unit(loc, m[2])
	if !ok {
		return Term(trimmed, loc)
	}
	return m[1] + " " + unit
}

// List maps Term over terms, dropping empty entries.
func List(terms []string, loc dictionary.Locale) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if strings.TrimSpace(t) == "" {
			continue
		}
		out = append(out, Term(t, loc))
	}
	return out
}

// DisplayTerm renders a canonical term in the candidate's locale for
// notification payloads. Unmapped terms stay canonical.
func DisplayTerm(canonical string, loc dictionary.Locale) string {
	return dictionary.Display(loc, canonical)
}

// DisplayDuration renders a canonical duration phrase in the candidate's
// locale, translating only the unit token.
func DisplayDuration(canonical string, loc dictionary.Locale) string {
	trimmed := strings.TrimSpace(canonical)
	m := durationPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return DisplayTerm(trimmed, loc)
	}
	return m[1] + " " + dictionary.DisplayUnit(loc, m[2])
}

// DisplayList renders a list of canonical terms in the candidate's locale.
func DisplayList(canonical []string, loc dictionary.Locale) []string {
	out := make([]string, 0, len(canonical))
	for _, c := range canonical {
		if strings.TrimSpace(c) == "" {
			continue
		}
		out = append(out, DisplayTerm(c, loc))
	}
	return out
}
