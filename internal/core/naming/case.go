// Package naming converts collection and field names into PHP identifiers.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToPascalCase converts a snake_case, kebab-case, spaced or camelCase token
// to PascalCase: "user_profile" -> "UserProfile", "firstName" -> "FirstName".
// Letters after the first of each word keep their case, so the conversion is
// idempotent. A token with no letters or digits is returned unchanged.
func ToPascalCase(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return s
	}

	title := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(title.String(w))
	}
	return b.String()
}

// splitWords breaks s on every rune that is neither a letter nor a digit and
// before an upper-case letter that follows a non-upper-case one.
func splitWords(s string) []string {
	var (
		words []string
		cur   []rune
		prev  rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	for _, r := range s {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && len(cur) > 0 && !unicode.IsUpper(prev):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
		prev = r
	}
	flush()

	return words
}
