package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/soupkit/pkg/logger"
)

func TestError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestScalarAttrs(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Component("text").Equal(slog.String("component", "text")))
	assert.True(t, logger.Category("nouns").Equal(slog.String("category", "nouns")))
	assert.True(t, logger.Count(3).Equal(slog.Int("count", 3)))
	assert.True(t, logger.Path("out.png").Equal(slog.String("path", "out.png")))
}

func TestSize(t *testing.T) {
	t.Parallel()

	attr := logger.Size(40, 30)
	require.Equal(t, "size", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, int64(40), g[0].Value.Int64())
	assert.Equal(t, int64(30), g[1].Value.Int64())
}
