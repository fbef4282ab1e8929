package randomname

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/soupkit/pkg/slug"
	"github.com/dmitrymomot/soupkit/pkg/text"
)

// MaxAttempts bounds how many candidates Generate tries against a Validator.
const MaxAttempts = 100

// Generator builds readable names from library words.
type Generator struct {
	tg *text.Generator
}

// New creates a name Generator sampling through tg.
func New(tg *text.Generator) *Generator {
	return &Generator{tg: tg}
}

// Generate returns a name built from opts. A nil opts means adjective-noun.
func (g *Generator) Generate(opts *Options) (string, error) {
	o := opts.merge(defaultOptions())

	for range MaxAttempts {
		candidate, err := g.candidate(o)
		if err != nil {
			return "", err
		}
		if o.Validator == nil || o.Validator(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w after %d attempts", ErrExhausted, MaxAttempts)
}

// Simple returns an "adjective-noun" name.
func (g *Generator) Simple() (string, error) {
	return g.Generate(nil)
}

// Unique returns an "adjective-noun-xxxxxx" name with a hex suffix.
func (g *Generator) Unique() (string, error) {
	return g.Generate(&Options{Suffix: Hex6})
}

// Person returns a "firstname-lastname" name.
func (g *Generator) Person() (string, error) {
	return g.Generate(&Options{Pattern: []WordType{FirstName, LastName}})
}

func (g *Generator) candidate(o *Options) (string, error) {
	parts := make([]string, 0, len(o.Pattern)+1)
	for _, wt := range o.Pattern {
		category, ok := wt.category()
		if !ok {
			return "", fmt.Errorf("%w: %d", ErrUnknownWordType, wt)
		}
		word, err := g.tg.Pick(category)
		if err != nil {
			return "", err
		}
		// Multi-word entries are joined with the separator too.
		if word = slug.Make(word, slug.Separator(o.Separator)); word != "" {
			parts = append(parts, word)
		}
	}
	if s := g.suffix(o.Suffix); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, o.Separator), nil
}

func (g *Generator) suffix(t SuffixType) string {
	src := g.tg.Source()
	switch t {
	case Hex6:
		return fmt.Sprintf("%06x", src.IntN(1<<24))
	case Hex8:
		return fmt.Sprintf("%08x", src.Uint64()&0xffffffff)
	case Numeric4:
		return fmt.Sprintf("%04d", src.IntN(10000))
	}
	return ""
}
