package matcher

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize strips everything except letters, digits and whitespace, lowercases and trims.
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	// Compose first so "e" + U+0301 survives as a single letter instead of losing its accent.
	text = norm.NFC.String(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}
	// Dropping punctuation can leave composable neighbours (e.g. Hangul jamo) adjacent.
	return strings.TrimSpace(norm.NFC.String(b.String()))
}
