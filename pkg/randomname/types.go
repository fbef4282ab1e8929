package randomname

import "github.com/dmitrymomot/soupkit/pkg/library"

// WordType represents the type of word in a name pattern.
type WordType int

// Word types available for name generation.
const (
	Adjective WordType = iota
	Noun
	Verb
	Adverb
	FirstName
	LastName
)

// category maps a word type to the library list it draws from.
func (w WordType) category() (string, bool) {
	switch w {
	case Adjective:
		return library.Adjectives, true
	case Noun:
		return library.Nouns, true
	case Verb:
		return library.Verbs, true
	case Adverb:
		return library.Adverbs, true
	case FirstName:
		return library.FirstNames, true
	case LastName:
		return library.LastNames, true
	}
	return "", false
}

// SuffixType represents the type of suffix to append to generated names.
type SuffixType int

// Suffix types for collision avoidance.
const (
	NoSuffix SuffixType = iota
	Hex6                // 6-character hexadecimal (e.g., a3f21b)
	Hex8                // 8-character hexadecimal (e.g., a3f21b9c)
	Numeric4            // 4-digit number (e.g., 4829)
)

// Options configures name generation behavior.
type Options struct {
	// Pattern defines the word types to use in order.
	// Default: [Adjective, Noun]
	Pattern []WordType

	// Separator between words.
	// Default: "-"
	Separator string

	// Suffix type for collision avoidance.
	// Default: NoSuffix
	Suffix SuffixType

	// Validator is called to check if a generated name is acceptable.
	// Return true to accept the name, false to generate a new one.
	// The generator gives up after MaxAttempts rejections.
	Validator func(string) bool
}

func defaultOptions() *Options {
	return &Options{
		Pattern:   []WordType{Adjective, Noun},
		Separator: "-",
		Suffix:    NoSuffix,
	}
}

// merge fills unset fields of o from defaults.
func (o *Options) merge(defaults *Options) *Options {
	if o == nil {
		return defaults
	}

	result := *o
	if len(result.Pattern) == 0 {
		result.Pattern = defaults.Pattern
	}
	if result.Separator == "" {
		result.Separator = defaults.Separator
	}
	return &result
}
