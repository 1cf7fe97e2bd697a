// Package education parses free-text education strings into degree and
// specialization parts and evaluates them against a posting's accepted
// education list using an ordered rule chain.
package education

import (
	"regexp"
	"strings"
)

// Parts is the parsed form of an education string. Degree is one of the
// canonical abbreviations from the pattern table, or the whole input when no
// pattern matched. Raw keeps the folded input for exact comparison.
type Parts struct {
	Degree         string
	Specialization string
	Raw            string
}

// degreePattern ties a canonical degree abbreviation to the textual variants
// that identify it at the start of an education string. Adding a degree means
// adding a row, not code.
type degreePattern struct {
	canonical string
	re        *regexp.Regexp
}

// Order matters: longer or more specific prefixes come before shorter ones
// that could shadow them.
var degreePatterns = []degreePattern{
	{"m.tech", regexp.MustCompile(`^(m[.\s]?tech\.?|master of technology|master of engineering)\b`)},
	{"b.tech", regexp.MustCompile(`^(b[.\s]?tech\.?|bachelor of technology)\b`)},
	{"m.pharm", regexp.MustCompile(`^(m[.\s]?pharm(a|acy)?\.?|master of pharmacy)\b`)},
	{"b.pharm", regexp.MustCompile(`^(b[.\s]?pharm(a|acy)?\.?|bachelor of pharmacy)\b`)},
	{"m.sc", regexp.MustCompile(`^(m[.\s]?sc\.?|master of science)\b`)},
	{"b.sc", regexp.MustCompile(`^(b[.\s]?sc\.?|bachelor of science)\b`)},
	{"b.com", regexp.MustCompile(`^(b[.\s]?com\.?|bachelor of commerce)\b`)},
	{"mca", regexp.MustCompile(`^(m[.\s]?c[.\s]?a\.?|master of computer applications?)\b`)},
	{"bca", regexp.MustCompile(`^(b[.\s]?c[.\s]?a\.?|bachelor of computer applications?)\b`)},
	{"mba", regexp.MustCompile(`^(m[.\s]?b[.\s]?a\.?|master of business administration)\b`)},
	{"b.e", regexp.MustCompile(`^(b[.\s]?e\.?|bachelor of engineering)\b`)},
	{"b.a", regexp.MustCompile(`^(b[.\s]?a\.?|bachelor of arts)\b`)},
	{"diploma", regexp.MustCompile(`^(polytechnic diploma|diploma)\b`)},
}

// connector words stripped between degree and specialization.
var connectors = map[string]bool{
	"in":             true,
	"of":             true,
	"with":           true,
	"and":            true,
	"specialization": true,
	"specialisation": true,
}

// Parse splits a free-text education string into degree and specialization.
// The input is expected to be canonical English (normalized upstream); it is
// folded again here so Parse stays safe to call directly. Parsing never
// fails: with no matching pattern the whole string becomes the degree.
func Parse(s string) Parts {
	raw := fold(s)
	for _, p := range degreePatterns {
		loc := p.re.FindStringIndex(raw)
		if loc == nil {
			continue
		}
		rest := strings.TrimLeft(raw[loc[1]:], " .,-()")
		return Parts{
			Degree:         p.canonical,
			Specialization: stripConnectors(rest),
			Raw:            raw,
		}
	}
	return Parts{Degree: raw, Raw: raw}
}

func stripConnectors(s string) string {
	words := strings.Fields(s)
	for len(words) > 0 && connectors[words[0]] {
		words = words[1:]
	}
	return strings.Join(words, " ")
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
