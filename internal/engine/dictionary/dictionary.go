package dictionary

import "strings"

// Locale is one of the five supported language/region tags. Matching always
// happens on the canonical English representation; these tables translate
// candidate-side text into it.
type Locale string

const (
	LocaleEnglish Locale = "en-IN"
	LocaleHindi   Locale = "hi-IN"
	LocaleMarathi Locale = "mr-IN"
	LocaleTamil   Locale = "ta-IN"
	LocaleTelugu  Locale = "te-IN"
)

// SupportedLocales lists every locale with a translation table. English is
// supported but needs no table (identity mapping).
var SupportedLocales = []Locale{
	LocaleEnglish,
	LocaleHindi,
	LocaleMarathi,
	LocaleTamil,
	LocaleTelugu,
}

// ParseLocale maps a candidate's language tag to a supported locale. Unknown
// tags fall back to English, which behaves as identity everywhere.
func ParseLocale(tag string) Locale {
	loc := Locale(strings.TrimSpace(tag))
	for _, s := range SupportedLocales {
		if loc == s {
			return loc
		}
	}
	return LocaleEnglish
}

// forward, reverse and unit indexes are built once from the entry tables in
// tables.go and are read-only afterwards. No mutation API exists.
var (
	forward = map[Locale]map[string]string{}
	reverse = map[Locale]map[string]string{}
)

func init() {
	for loc, entries := range tables {
		fwd := make(map[string]string, len(entries))
		rev := make(map[string]string, len(entries))
		for _, e := range entries {
			key := fold(e.localized)
			canonical := fold(e.canonical)
			fwd[key] = canonical
			// first mapping per canonical is the display form
			if _, ok := rev[canonical]; !ok {
				rev[canonical] = e.localized
			}
		}
		forward[loc] = fwd
		reverse[loc] = rev
	}
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Lookup translates a localized term to its canonical English form. The match
// is exact after case folding and whitespace trimming; no fuzzy matching.
// English and unknown locales return the folded input unchanged.
func Lookup(loc Locale, term string) (string, bool) {
	key := fold(term)
	table, ok := forward[loc]
	if !ok {
		return key, true
	}
	if canonical, ok := table[key]; ok {
		return canonical, true
	}
	return key, false
}

// Display translates a canonical English term back into the locale's display
// form, for notification payloads. Falls back to the canonical term itself.
func Display(loc Locale, canonical string) string {
	key := fold(canonical)
	if table, ok := reverse[loc]; ok {
		if localized, ok := table[key]; ok {
			return localized
		}
	}
	return key
}

// Unit translates a duration unit token to its canonical English form.
// English unit tokens pass through for every locale, so already-canonical
// phrases survive re-normalization.
func Unit(loc Locale, unit string) (string, bool) {
	key := fold(unit)
	if canonical, ok := canonicalUnits[key]; ok {
		return canonical, true
	}
	if table, ok := units[loc]; ok {
		if canonical, ok := table[key]; ok {
			return canonical, true
		}
	}
	return key, false
}

// DisplayUnit translates a canonical English unit into the locale's display
// form.
func DisplayUnit(loc Locale, unit string) string {
	key := fold(unit)
	if table, ok := displayUnits[loc]; ok {
		if localized, ok := table[key]; ok {
			return localized
		}
	}
	return key
}
