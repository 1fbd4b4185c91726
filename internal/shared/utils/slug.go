package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenRuns   = regexp.MustCompile(`-+`)

	// NFD decomposition followed by stripping combining marks folds
	// "Nguyễn Nhật Ánh" into "Nguyen Nhat Anh".
	diacriticsFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// GenerateSlug turns a title into a URL-safe slug: lowercase ASCII
// letters, digits and single hyphens, with no leading or trailing
// hyphen. Pure function; uniqueness is the caller's problem.
//
//	GenerateSlug("Hello World!")  // "hello-world"
//	GenerateSlug("  Café -- 42 ") // "cafe-42"
//
// A title that strips down to nothing (all emoji/punctuation) yields
// an empty string.
func GenerateSlug(input string) string {
	ascii := RemoveDiacritics(input)

	lower := strings.ToLower(ascii)

	// Whitespace runs become hyphens so word boundaries survive the
	// character strip below.
	hyphenated := strings.Join(strings.Fields(lower), "-")

	cleaned := nonSlugChars.ReplaceAllString(hyphenated, "")

	normalized := hyphenRuns.ReplaceAllString(cleaned, "-")

	return strings.Trim(normalized, "-")
}

// RemoveDiacritics replaces accented characters with their base form.
func RemoveDiacritics(input string) string {
	folded, _, err := transform.String(diacriticsFold, input)
	if err != nil {
		return input
	}
	return folded
}
