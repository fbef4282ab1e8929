package text

import (
	"fmt"
	"strings"
)

// Category selects the word list a Generate call samples from.
type Category int

const (
	Number Category = iota
	Noun
	Adjective
	Adverb
	Verb
	Alphabet
	Alphanumeric
	Word
)

var categoryNames = map[Category]string{
	Number:       "number",
	Noun:         "noun",
	Adjective:    "adjective",
	Adverb:       "adverb",
	Verb:         "verb",
	Alphabet:     "alphabet",
	Alphanumeric: "alphanumeric",
	Word:         "word",
}

// Categories lists every Category in declaration order.
var Categories = []Category{Number, Noun, Adjective, Adverb, Verb, Alphabet, Alphanumeric, Word}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory maps a name such as "noun" or "nouns" to a Category.
func ParseCategory(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for c, n := range categoryNames {
		if name == n || name == n+"s" {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
