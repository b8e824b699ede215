package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacriticStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// NormalizeCategory folds a category label for grouping: diacritics are
// stripped, the result is lower-cased and trimmed. "Café " and "cafe"
// normalize to the same key.
func NormalizeCategory(category string) string {
	if strings.TrimSpace(category) == "" {
		return ""
	}

	stripped, _, err := transform.String(diacriticStripper, category)
	if err != nil {
		// The transform chain cannot fail on valid UTF-8; fall back to the
		// raw label so grouping still works.
		stripped = category
	}

	return strings.TrimSpace(strings.ToLower(stripped))
}
