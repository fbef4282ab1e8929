package text

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/soupkit/pkg/library"
	"github.com/dmitrymomot/soupkit/pkg/rng"
	"github.com/dmitrymomot/soupkit/pkg/textfmt"
)

var digits = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

// Generator samples text from a library store.
// It holds no mutable state of its own and is safe for concurrent use when
// its Source is.
type Generator struct {
	lib *library.Store
	src rng.Source
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source. Defaults to rng.Default.
func WithSource(src rng.Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// New creates a Generator over lib.
func New(lib *library.Store, opts ...Option) *Generator {
	g := &Generator{lib: lib, src: rng.Default()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns n samples of category c formatted per the category rules.
func (g *Generator) Generate(c Category, n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: length must not be negative, got %d", ErrInvalidArgument, n)
	}

	switch c {
	case Number:
		return g.number(n), nil
	case Noun:
		return g.lowered(library.Nouns, n)
	case Adjective:
		return g.lowered(library.Adjectives, n)
	case Adverb:
		return g.lowered(library.Adverbs, n)
	case Verb:
		return g.lowered(library.Verbs, n)
	case Alphabet:
		return g.lowered(library.Alphabet, n)
	case Alphanumeric:
		return g.alphanumeric(n)
	case Word:
		return g.word(n)
	default:
		return "", fmt.Errorf("%w: %v", ErrUnknownCategory, c)
	}
}

// Number returns n random decimal digits with no separator.
func (g *Generator) Number(n int) (string, error) { return g.Generate(Number, n) }

// Noun returns n lower-cased nouns joined by spaces.
func (g *Generator) Noun(n int) (string, error) { return g.Generate(Noun, n) }

// Adjective returns n lower-cased adjectives joined by spaces.
func (g *Generator) Adjective(n int) (string, error) { return g.Generate(Adjective, n) }

// Adverb returns n lower-cased adverbs joined by spaces.
func (g *Generator) Adverb(n int) (string, error) { return g.Generate(Adverb, n) }

// Verb returns n lower-cased verbs joined by spaces.
func (g *Generator) Verb(n int) (string, error) { return g.Generate(Verb, n) }

// Alphabet returns n lower-cased letters joined by spaces.
func (g *Generator) Alphabet(n int) (string, error) { return g.Generate(Alphabet, n) }

// Alphanumeric returns n letters or digits with no separator.
func (g *Generator) Alphanumeric(n int) (string, error) { return g.Generate(Alphanumeric, n) }

// Word returns a capitalized run of n mixed words ending with a period.
func (g *Generator) Word(n int) (string, error) { return g.Generate(Word, n) }

// Pick returns one lower-cased, cleaned entry of category.
// Phrase templates and composers fill their blanks with it.
func (g *Generator) Pick(category string) (string, error) {
	words, err := g.lib.Load(category)
	if err != nil {
		return "", err
	}
	return textfmt.Clean(textfmt.Lower(rng.Pick(g.src, words))), nil
}

// Intn returns a uniform int in [0, n), or 0 when n <= 0.
func (g *Generator) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return g.src.IntN(n)
}

// Source returns the random source used by g.
func (g *Generator) Source() rng.Source { return g.src }

// Library returns the store g samples from.
func (g *Generator) Library() *library.Store { return g.lib }

func (g *Generator) number(n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteString(strconv.Itoa(g.src.IntN(10)))
	}
	return b.String()
}

func (g *Generator) lowered(category string, n int) (string, error) {
	if n == 0 {
		return "", nil
	}
	words, err := g.lib.Load(category)
	if err != nil {
		return "", err
	}
	out := make([]string, n)
	for i := range out {
		out[i] = textfmt.Lower(rng.Pick(g.src, words))
	}
	return textfmt.Clean(strings.Join(out, " ")), nil
}

func (g *Generator) alphanumeric(n int) (string, error) {
	if n == 0 {
		return "", nil
	}
	letters, err := g.lib.Load(library.Alphabet)
	if err != nil {
		return "", err
	}
	pool := make([]string, 0, len(letters)+len(digits))
	pool = append(pool, letters...)
	pool = append(pool, digits...)

	var b strings.Builder
	for range n {
		b.WriteString(rng.Pick(g.src, pool))
	}
	return textfmt.Clean(b.String()), nil
}

func (g *Generator) word(n int) (string, error) {
	if n == 0 {
		return "", nil
	}
	pool, err := g.lib.Union(library.WordCategories...)
	if err != nil {
		return "", err
	}
	out := make([]string, n)
	for i := range out {
		out[i] = rng.Pick(g.src, pool)
	}
	return textfmt.Capitalize(strings.Join(out, " ") + "."), nil
}
