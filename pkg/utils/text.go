package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// \s in RE2 is ASCII only; \p{Z} adds NBSP and the other Unicode spaces.
var (
	slugInvalidChars = regexp.MustCompile(`[^\w\s\p{Z}-]`)
	slugSeparators   = regexp.MustCompile(`[\s\p{Z}_-]+`)
)

// Slugify converts text to a lowercase, hyphen separated URL slug. Anything
// other than ASCII word characters, whitespace and hyphens is dropped, so
// "Café" becomes "caf"; use SlugifyASCII to keep accented letters.
func Slugify(text string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugSeparators.ReplaceAllString(slug, "-")

	return strings.Trim(slug, "-")
}

// SlugifyASCII folds accented letters to their ASCII base before slugifying,
// so "Café Crème" becomes "cafe-creme".
func SlugifyASCII(text string) string {
	// Chained transformers keep state, so each call gets its own.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, text)
	if err != nil {
		folded = text
	}
	return Slugify(folded)
}

// Truncate cuts text to length runes and appends "..." when it is longer.
// The ellipsis is not counted in length.
func Truncate(text string, length int) string {
	if length < 0 {
		length = 0
	}

	r := []rune(text)
	if len(r) <= length {
		return text
	}
	return strings.TrimRightFunc(string(r[:length]), unicode.IsSpace) + "..."
}
