package code

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/soupkit/pkg/library"
	"github.com/dmitrymomot/soupkit/pkg/phrase"
	"github.com/dmitrymomot/soupkit/pkg/text"
	"github.com/dmitrymomot/soupkit/pkg/textfmt"
)

// Style is an identifier naming convention.
type Style int

const (
	CamelCase Style = iota
	SnakeCase
	PascalCase
	KebabCase
)

// Levels are the log levels LogLine picks from.
var Levels = []string{"DEBUG", "INFO", "WARN", "ERROR"}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the time source for LogLine timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// Generator builds code-shaped text.
type Generator struct {
	text   *text.Generator
	phrase *phrase.Generator
	now    func() time.Time
}

// New creates a Generator sampling through tg.
func New(tg *text.Generator, opts ...Option) *Generator {
	g := &Generator{text: tg, phrase: phrase.New(tg), now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// LogLine returns "<RFC3339 time> <LEVEL> [<component>] <phrase>".
func (g *Generator) LogLine() (string, error) {
	component, err := g.text.Pick(library.Nouns)
	if err != nil {
		return "", err
	}
	msg, err := g.phrase.Random()
	if err != nil {
		return "", err
	}
	level := Levels[g.text.Intn(len(Levels))]
	ts := g.now().UTC().Format(time.RFC3339)
	return fmt.Sprintf("%s %s [%s] %s", ts, level, strings.ReplaceAll(component, " ", "-"), msg), nil
}

// LogLines returns n log lines joined by newlines.
func (g *Generator) LogLines(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: count must not be negative, got %d", ErrInvalidArgument, n)
	}
	lines := make([]string, 0, n)
	for range n {
		line, err := g.LogLine()
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// Identifier returns an adjective+noun name in the given style.
func (g *Generator) Identifier(style Style) (string, error) {
	adj, err := g.text.Pick(library.Adjectives)
	if err != nil {
		return "", err
	}
	noun, err := g.text.Pick(library.Nouns)
	if err != nil {
		return "", err
	}
	words := append(strings.Fields(adj), strings.Fields(noun)...)

	switch style {
	case SnakeCase:
		return strings.Join(words, "_"), nil
	case KebabCase:
		return strings.Join(words, "-"), nil
	case CamelCase:
		for i := 1; i < len(words); i++ {
			words[i] = textfmt.Capitalize(words[i])
		}
		return strings.Join(words, ""), nil
	case PascalCase:
		for i := range words {
			words[i] = textfmt.Capitalize(words[i])
		}
		return strings.Join(words, ""), nil
	}
	return "", fmt.Errorf("%w: %d", ErrUnknownStyle, style)
}

// Comment returns a line comment holding a random phrase.
func (g *Generator) Comment() (string, error) {
	msg, err := g.phrase.Random()
	if err != nil {
		return "", err
	}
	return "// " + msg, nil
}
