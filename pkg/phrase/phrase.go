package phrase

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/soupkit/pkg/library"
	"github.com/dmitrymomot/soupkit/pkg/text"
	"github.com/dmitrymomot/soupkit/pkg/textfmt"
)

// Template identifies a sentence shape.
type Template int

const (
	Noam Template = iota
	Simile
	Cliche
)

// Templates lists every Template.
var Templates = []Template{Noam, Simile, Cliche}

func (t Template) String() string {
	switch t {
	case Noam:
		return "noam"
	case Simile:
		return "simile"
	case Cliche:
		return "cliche"
	default:
		return fmt.Sprintf("Template(%d)", int(t))
	}
}

// Generator fills phrase templates.
type Generator struct {
	text *text.Generator
}

// New creates a phrase Generator sampling through tg.
func New(tg *text.Generator) *Generator {
	return &Generator{text: tg}
}

// Noam returns "{adj} {adj} {noun} {verb}s {adv}." capitalized.
func (g *Generator) Noam() (string, error) {
	w, err := g.fill(library.Adjectives, library.Adjectives, library.Nouns, library.Verbs, library.Adverbs)
	if err != nil {
		return "", err
	}
	return textfmt.Capitalize(fmt.Sprintf("%s %s %s %ss %s.", w[0], w[1], w[2], w[3], w[4])), nil
}

// Simile returns "He was as {adj} as a {noun}.".
func (g *Generator) Simile() (string, error) {
	w, err := g.fill(library.Adjectives, library.Nouns)
	if err != nil {
		return "", err
	}
	return textfmt.Capitalize(fmt.Sprintf("He was as %s as a %s.", w[0], w[1])), nil
}

// Cliche returns "Its not rocket science, just {adv} {verb} it.".
func (g *Generator) Cliche() (string, error) {
	w, err := g.fill(library.Adverbs, library.Verbs)
	if err != nil {
		return "", err
	}
	return textfmt.Capitalize(fmt.Sprintf("It's not rocket science, just %s %s it.", w[0], w[1])), nil
}

// Generate renders the given template.
func (g *Generator) Generate(t Template) (string, error) {
	switch t {
	case Noam:
		return g.Noam()
	case Simile:
		return g.Simile()
	case Cliche:
		return g.Cliche()
	default:
		return "", fmt.Errorf("%w: unknown template %v", ErrInvalidArgument, t)
	}
}

// Random renders a uniformly chosen template.
func (g *Generator) Random() (string, error) {
	return g.Generate(Templates[g.text.Intn(len(Templates))])
}

// Sentences joins n random phrases with single spaces.
func (g *Generator) Sentences(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: count must not be negative, got %d", ErrInvalidArgument, n)
	}
	out := make([]string, 0, n)
	for range n {
		s, err := g.Random()
		if err != nil {
			return "", err
		}
		out = append(out, s)
	}
	return strings.Join(out, " "), nil
}

// fill samples one word per category, in order.
func (g *Generator) fill(categories ...string) ([]string, error) {
	words := make([]string, len(categories))
	for i, c := range categories {
		w, err := g.text.Pick(c)
		if err != nil {
			return nil, err
		}
		words[i] = w
	}
	return words, nil
}
