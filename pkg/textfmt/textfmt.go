package textfmt

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StrippedChars are removed from every string by Clean.
const StrippedChars = `'[]`

var cleaner = strings.NewReplacer("'", "", "[", "", "]", "")

// Clean removes every apostrophe and square bracket from s.
func Clean(s string) string {
	return cleaner.Replace(s)
}

// Capitalize applies Clean and upper-cases the first rune of the result.
// The remaining runes are left unchanged.
func Capitalize(s string) string {
	s = Clean(s)
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Lower lower-cases s using language-neutral Unicode rules.
func Lower(s string) string {
	// cases.Caser is stateful and must not be shared across goroutines.
	return cases.Lower(language.Und).String(s)
}
