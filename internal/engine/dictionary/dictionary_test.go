package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		expected Locale
	}{
		{"hindi", "hi-IN", LocaleHindi},
		{"english", "en-IN", LocaleEnglish},
		{"tamil with whitespace", "  ta-IN  ", LocaleTamil},
		{"unknown falls back to english", "fr-FR", LocaleEnglish},
		{"empty falls back to english", "", LocaleEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLocale(tt.tag))
		})
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		locale    Locale
		term      string
		expected  string
		wantFound bool
	}{
		{"hindi skill", LocaleHindi, "पायथन", "python", true},
		{"hindi location", LocaleHindi, "मुंबई", "mumbai", true},
		{"marathi location", LocaleMarathi, "मुंबई", "mumbai", true},
		{"tamil skill", LocaleTamil, "பைதான்", "python", true},
		{"telugu skill", LocaleTelugu, "పైథాన్", "python", true},
		{"case and whitespace folded", LocaleHindi, "  पायथन ", "python", true},
		{"english is identity", LocaleEnglish, "Python", "python", true},
		{"unmapped term returns folded input", LocaleHindi, "kotlin", "kotlin", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := Lookup(tt.locale, tt.term)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}

// Every mapped term must land on a canonical value that survives English
// re-normalization unchanged.
func TestLookup_CanonicalIsIdempotent(t *testing.T) {
	for loc, entries := range tables {
		for _, e := range entries {
			canonical, _ := Lookup(loc, e.localized)
			again, found := Lookup(LocaleEnglish, canonical)
			assert.True(t, found)
			assert.Equal(t, canonical, again, "locale %s term %q", loc, e.localized)
		}
	}
}

func TestDisplay_RoundTrip(t *testing.T) {
	localized := Display(LocaleHindi, "python")
	assert.Equal(t, "पायथन", localized)

	canonical, found := Lookup(LocaleHindi, localized)
	assert.True(t, found)
	assert.Equal(t, "python", canonical)
}

func TestDisplay_UnmappedStaysCanonical(t *testing.T) {
	assert.Equal(t, "kotlin", Display(LocaleHindi, "Kotlin"))
	assert.Equal(t, "python", Display(LocaleEnglish, "python"))
}

func TestUnit(t *testing.T) {
	got, found := Unit(LocaleHindi, "महीने")
	assert.True(t, found)
	assert.Equal(t, "months", got)

	// already-canonical units pass through for every locale
	for _, loc := range SupportedLocales {
		got, found := Unit(loc, "months")
		assert.True(t, found)
		assert.Equal(t, "months", got)
	}

	_, found = Unit(LocaleHindi, "fortnight")
	assert.False(t, found)
}

func TestDisplayUnit(t *testing.T) {
	assert.Equal(t, "महीने", DisplayUnit(LocaleHindi, "months"))
	assert.Equal(t, "महिने", DisplayUnit(LocaleMarathi, "months"))
	assert.Equal(t, "months", DisplayUnit(LocaleEnglish, "months"))
}
