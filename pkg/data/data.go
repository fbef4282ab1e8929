package data

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/dmitrymomot/soupkit/pkg/library"
	"github.com/dmitrymomot/soupkit/pkg/phrase"
	"github.com/dmitrymomot/soupkit/pkg/randomname"
	"github.com/dmitrymomot/soupkit/pkg/rng"
	"github.com/dmitrymomot/soupkit/pkg/slug"
	"github.com/dmitrymomot/soupkit/pkg/text"
	"github.com/dmitrymomot/soupkit/pkg/textfmt"
)

const (
	minAge = 18
	maxAge = 80

	skuLetters = 3
	skuDigits  = 6
	maxCents   = 100000

	// MaxSlugLength caps Product.Slug in runes, suffix included.
	MaxSlugLength    = 48
	slugSuffixLength = 4
)

var slugReplacements = map[string]string{"&": " and ", "+": " plus ", "@": " at "}

// Person is a fake user profile.
type Person struct {
	ID        uuid.UUID `json:"id" yaml:"id"`
	FirstName string    `json:"first_name" yaml:"first_name"`
	LastName  string    `json:"last_name" yaml:"last_name"`
	Username  string    `json:"username" yaml:"username"`
	Email     string    `json:"email" yaml:"email"`
	Phone     string    `json:"phone" yaml:"phone"`
	City      string    `json:"city" yaml:"city"`
	Age       int       `json:"age" yaml:"age"`
	Bio       string    `json:"bio" yaml:"bio"`
}

// Product is a fake catalog entry.
type Product struct {
	ID          uuid.UUID `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Slug        string    `json:"slug" yaml:"slug"`
	SKU         string    `json:"sku" yaml:"sku"`
	Price       float64   `json:"price" yaml:"price"`
	Description string    `json:"description" yaml:"description"`
}

// Generator builds records.
type Generator struct {
	text   *text.Generator
	phrase *phrase.Generator
	names  *randomname.Generator
	faker  *gofakeit.Faker
}

// New creates a record Generator sampling through tg. Contact fields come
// from gofakeit fed by the same source.
func New(tg *text.Generator) *Generator {
	return &Generator{
		text:   tg,
		phrase: phrase.New(tg),
		names:  randomname.New(tg),
		faker:  gofakeit.NewFaker(tg.Source(), true),
	}
}

// Person returns one fake person.
func (g *Generator) Person() (Person, error) {
	id, err := g.uuid()
	if err != nil {
		return Person{}, err
	}
	first, err := g.text.Pick(library.FirstNames)
	if err != nil {
		return Person{}, err
	}
	last, err := g.text.Pick(library.LastNames)
	if err != nil {
		return Person{}, err
	}
	username, err := g.names.Generate(&randomname.Options{
		Pattern:   []randomname.WordType{randomname.Adjective, randomname.Noun},
		Separator: "_",
		Suffix:    randomname.Numeric4,
	})
	if err != nil {
		return Person{}, err
	}
	domain, err := g.text.Pick(library.Domains)
	if err != nil {
		return Person{}, err
	}
	bio, err := g.phrase.Random()
	if err != nil {
		return Person{}, err
	}

	return Person{
		ID:        id,
		FirstName: textfmt.Capitalize(first),
		LastName:  textfmt.Capitalize(last),
		Username:  username,
		Email:     fmt.Sprintf("%s.%s@%s", slug.Make(first, slug.Separator("")), slug.Make(last, slug.Separator("")), domain),
		Phone:     g.faker.Phone(),
		City:      g.faker.City(),
		Age:       minAge + g.text.Intn(maxAge-minAge+1),
		Bio:       bio,
	}, nil
}

// People returns n people. n == 0 yields an empty slice.
func (g *Generator) People(n int) ([]Person, error) {
	return repeat(n, g.Person)
}

// Product returns one fake product.
func (g *Generator) Product() (Product, error) {
	id, err := g.uuid()
	if err != nil {
		return Product{}, err
	}
	adj, err := g.text.Pick(library.Adjectives)
	if err != nil {
		return Product{}, err
	}
	noun, err := g.text.Pick(library.Nouns)
	if err != nil {
		return Product{}, err
	}
	letters, err := g.text.Alphabet(skuLetters)
	if err != nil {
		return Product{}, err
	}
	digits, err := g.text.Number(skuDigits)
	if err != nil {
		return Product{}, err
	}
	desc, err := g.phrase.Sentences(2)
	if err != nil {
		return Product{}, err
	}

	name := textfmt.Capitalize(adj + " " + noun)
	return Product{
		ID:          id,
		Name:        name,
		Slug:        g.productSlug(name),
		SKU:         strings.ToUpper(strings.ReplaceAll(letters, " ", "")) + "-" + digits,
		Price:       g.price(),
		Description: desc,
	}, nil
}

// productSlug builds a capped catalog slug with a short seeded suffix.
func (g *Generator) productSlug(name string) string {
	return slug.Make(name,
		slug.CustomReplace(slugReplacements),
		slug.MaxLength(MaxSlugLength),
		slug.WithSuffix(slugSuffixLength),
		slug.WithSource(g.text.Source()),
	)
}

// Products returns n products. n == 0 yields an empty slice.
func (g *Generator) Products(n int) ([]Product, error) {
	return repeat(n, g.Product)
}

func (g *Generator) uuid() (uuid.UUID, error) {
	return uuid.NewRandomFromReader(rng.Reader(g.text.Source()))
}

// price returns a value in [0.99, 1000.98] with two decimals.
func (g *Generator) price() float64 {
	cents := 99 + g.text.Intn(maxCents)
	return float64(cents) / 100
}

func repeat[T any](n int, next func() (T, error)) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: count must not be negative, got %d", ErrInvalidArgument, n)
	}
	out := make([]T, 0, n)
	for range n {
		v, err := next()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
