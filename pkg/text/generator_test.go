package text_test

import (
	"regexp"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/soupkit/pkg/library"
	"github.com/dmitrymomot/soupkit/pkg/rng"
	"github.com/dmitrymomot/soupkit/pkg/text"
)

func fixtureStore() *library.Store {
	return library.New(fstest.MapFS{
		"nouns.csv":      {Data: []byte("Cat,Dog")},
		"adjectives.csv": {Data: []byte("Tall")},
		"adverbs.csv":    {Data: []byte("Quickly")},
		"verbs.csv":      {Data: []byte("Run")},
		"alphabet.csv":   {Data: []byte("A,B,C")},
	})
}

func newGen(t *testing.T) *text.Generator {
	t.Helper()
	return text.New(fixtureStore(), text.WithSource(rng.New(42)))
}

func TestGenerator_Noun(t *testing.T) {
	t.Parallel()

	gen := newGen(t)
	allowed := []string{"cat cat", "cat dog", "dog cat", "dog dog"}
	for range 50 {
		s, err := gen.Noun(2)
		require.NoError(t, err)
		assert.Contains(t, allowed, s)
	}
}

func TestGenerator_TokenCounts(t *testing.T) {
	t.Parallel()

	gen := newGen(t)
	spaced := []text.Category{text.Noun, text.Adjective, text.Adverb, text.Verb, text.Alphabet}
	for _, c := range spaced {
		for _, n := range []int{1, 2, 5, 17} {
			s, err := gen.Generate(c, n)
			require.NoError(t, err, c.String())
			assert.Len(t, strings.Split(s, " "), n, c.String())
			assert.Equal(t, strings.ToLower(s), s, "entries are lower-cased")
		}
	}
}

func TestGenerator_Number(t *testing.T) {
	t.Parallel()

	gen := newGen(t)
	s, err := gen.Number(12)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[0-9]{12}$`), s)
}

func TestGenerator_Alphanumeric(t *testing.T) {
	t.Parallel()

	gen := newGen(t)
	s, err := gen.Alphanumeric(200)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[ABC0-9]{200}$`), s, "letters keep their case, no separator")
	assert.True(t, strings.ContainsAny(s, "0123456789"))
	assert.True(t, strings.ContainsAny(s, "ABC"))
}

func TestGenerator_Word(t *testing.T) {
	t.Parallel()

	gen := newGen(t)
	s, err := gen.Word(4)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(s, "."))
	assert.Len(t, strings.Split(strings.TrimSuffix(s, "."), " "), 4)
	assert.Regexp(t, `^[A-Z]`, s)

	for _, tok := range strings.Split(strings.TrimSuffix(s, "."), " ")[1:] {
		assert.Contains(t, []string{"Cat", "Dog", "Tall", "Quickly", "Run"}, tok,
			"word entries are not cased")
	}
}

func TestGenerator_ZeroLength(t *testing.T) {
	t.Parallel()

	gen := newGen(t)
	for _, c := range text.Categories {
		s, err := gen.Generate(c, 0)
		require.NoError(t, err, c.String())
		assert.Empty(t, s, c.String())
	}
}

func TestGenerator_NegativeLength(t *testing.T) {
	t.Parallel()

	gen := newGen(t)
	for _, c := range text.Categories {
		_, err := gen.Generate(c, -1)
		assert.ErrorIs(t, err, text.ErrInvalidArgument, c.String())
	}
}

func TestGenerator_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unknown category", func(t *testing.T) {
		t.Parallel()
		_, err := newGen(t).Generate(text.Category(99), 1)
		assert.ErrorIs(t, err, text.ErrUnknownCategory)
	})

	t.Run("missing word list", func(t *testing.T) {
		t.Parallel()
		gen := text.New(library.New(fstest.MapFS{}))
		_, err := gen.Noun(1)
		assert.ErrorIs(t, err, library.ErrCategoryNotFound)

		_, err = gen.Word(1)
		assert.ErrorIs(t, err, library.ErrCategoryNotFound)

		// Digits need no word list.
		s, err := gen.Number(3)
		require.NoError(t, err)
		assert.Len(t, s, 3)
	})
}

func TestGenerator_CleansOutput(t *testing.T) {
	t.Parallel()

	store := library.New(fstest.MapFS{
		"nouns.csv": {Data: []byte("['Cat']")},
	})
	gen := text.New(store, text.WithSource(rng.New(1)))

	s, err := gen.Noun(3)
	require.NoError(t, err)
	assert.Equal(t, "cat cat cat", s)
}

func TestGenerator_Deterministic(t *testing.T) {
	t.Parallel()

	a := text.New(library.NewEmbedded(), text.WithSource(rng.New(9)))
	b := text.New(library.NewEmbedded(), text.WithSource(rng.New(9)))
	for _, c := range text.Categories {
		sa, err := a.Generate(c, 6)
		require.NoError(t, err)
		sb, err := b.Generate(c, 6)
		require.NoError(t, err)
		assert.Equal(t, sa, sb, c.String())
	}
}

func TestGenerator_Pick(t *testing.T) {
	t.Parallel()

	gen := newGen(t)
	w, err := gen.Pick(library.Adjectives)
	require.NoError(t, err)
	assert.Equal(t, "tall", w)

	_, err = gen.Pick("missing")
	assert.ErrorIs(t, err, library.ErrCategoryNotFound)
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want text.Category
	}{
		{"noun", text.Noun},
		{"Nouns", text.Noun},
		{" verb ", text.Verb},
		{"alphanumeric", text.Alphanumeric},
		{"numbers", text.Number},
		{"word", text.Word},
	}
	for _, tt := range tests {
		got, err := text.ParseCategory(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := text.ParseCategory("pronoun")
	assert.ErrorIs(t, err, text.ErrUnknownCategory)
}

func TestCategory_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "adverb", text.Adverb.String())
	assert.Equal(t, "Category(42)", text.Category(42).String())
}
