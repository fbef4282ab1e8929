//go:build property

package textfmt_test

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dmitrymomot/soupkit/pkg/textfmt"
)

func TestFormatterProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("clean output never contains stripped chars", prop.ForAll(
		func(s string) bool {
			return !strings.ContainsAny(textfmt.Clean(s), textfmt.StrippedChars)
		},
		gen.AnyString(),
	))

	properties.Property("clean is idempotent", prop.ForAll(
		func(s string) bool {
			once := textfmt.Clean(s)
			return textfmt.Clean(once) == once
		},
		gen.AnyString(),
	))

	properties.Property("capitalize changes only the first rune", prop.ForAll(
		func(s string) bool {
			cleaned := textfmt.Clean(s)
			got := textfmt.Capitalize(s)
			if cleaned == "" {
				return got == ""
			}
			_, a := utf8.DecodeRuneInString(cleaned)
			_, b := utf8.DecodeRuneInString(got)
			return cleaned[a:] == got[b:]
		},
		gen.AnyString(),
	))

	properties.Property("capitalize upper-cases lowercase ascii starts", prop.ForAll(
		func(s string) bool {
			got := textfmt.Capitalize(s)
			r, _ := utf8.DecodeRuneInString(got)
			return unicode.IsUpper(r)
		},
		gen.RegexMatch(`^[a-z][a-z ]{0,20}$`),
	))

	properties.TestingRun(t)
}
