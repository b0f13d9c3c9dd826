package utils

import (
	"regexp"
	"strings"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// Turkish letters folded to their closest plain Latin equivalents.
	// Uppercase forms are already handled by the casefold step.
	turkishFolder = strings.NewReplacer(
		"ı", "i",
		"ö", "o",
		"ü", "u",
		"ş", "s",
		"ğ", "g",
		"ç", "c",
	)
)

// Normalize canonicalizes extracted PDF text for substring and regex checks.
// Order matters: the combining-dot-above strip must run after casefolding and
// before letter folding, so decomposed dotted-i sequences ("i" + U+0307) from
// some extractors collapse to a plain "i".
func Normalize(text string) string {
	t := strings.ToLower(text)
	t = strings.ReplaceAll(t, "\u0307", "")
	t = turkishFolder.Replace(t)
	t = whitespaceRegex.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// StripWhitespace removes every whitespace run entirely. Used for domain
// matching where the text layer split a token across a line wrap.
func StripWhitespace(text string) string {
	return whitespaceRegex.ReplaceAllString(text, "")
}
