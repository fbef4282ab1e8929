package code_test

import (
	"regexp"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/soupkit/pkg/code"
	"github.com/dmitrymomot/soupkit/pkg/library"
	"github.com/dmitrymomot/soupkit/pkg/rng"
	"github.com/dmitrymomot/soupkit/pkg/text"
)

var fixedNow = time.Date(2026, 3, 1, 10, 4, 5, 0, time.FixedZone("CET", 3600))

func newGen() *code.Generator {
	lib := library.New(fstest.MapFS{
		"nouns.csv":      {Data: []byte("Sea Lion")},
		"adjectives.csv": {Data: []byte("Tall")},
		"adverbs.csv":    {Data: []byte("Quickly")},
		"verbs.csv":      {Data: []byte("Run")},
	})
	tg := text.New(lib, text.WithSource(rng.New(1)))
	return code.New(tg, code.WithClock(func() time.Time { return fixedNow }))
}

func TestLogLine(t *testing.T) {
	t.Parallel()

	gen := newGen()
	pattern := regexp.MustCompile(`^2026-03-01T09:04:05Z (DEBUG|INFO|WARN|ERROR) \[sea-lion\] [A-Z].*\.$`)
	for range 20 {
		line, err := gen.LogLine()
		require.NoError(t, err)
		assert.Regexp(t, pattern, line)
	}
}

func TestLogLines(t *testing.T) {
	t.Parallel()

	gen := newGen()
	out, err := gen.LogLines(3)
	require.NoError(t, err)
	assert.Len(t, strings.Split(out, "\n"), 3)

	out, err = gen.LogLines(0)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = gen.LogLines(-1)
	require.ErrorIs(t, err, code.ErrInvalidArgument)
	assert.Empty(t, out)
}

func TestIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		style code.Style
		want  string
	}{
		{code.CamelCase, "tallSeaLion"},
		{code.SnakeCase, "tall_sea_lion"},
		{code.PascalCase, "TallSeaLion"},
		{code.KebabCase, "tall-sea-lion"},
	}

	gen := newGen()
	for _, tt := range tests {
		got, err := gen.Identifier(tt.style)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := gen.Identifier(code.Style(42))
	assert.ErrorIs(t, err, code.ErrUnknownStyle)
}

func TestComment(t *testing.T) {
	t.Parallel()

	c, err := newGen().Comment()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(c, "// "))
	assert.True(t, strings.HasSuffix(c, "."))
}
