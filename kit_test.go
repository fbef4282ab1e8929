package soupkit_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/soupkit"
	"github.com/dmitrymomot/soupkit/pkg/library"
	"github.com/dmitrymomot/soupkit/pkg/logger"
	"github.com/dmitrymomot/soupkit/pkg/rng"
	"github.com/dmitrymomot/soupkit/pkg/storage"
)

func TestNew_EmbeddedDefaults(t *testing.T) {
	t.Parallel()

	kit, err := soupkit.New(
		soupkit.WithLogger(logger.Nop()),
		soupkit.WithPreload(library.BuiltinCategories...),
	)
	require.NoError(t, err)

	assert.NotNil(t, kit.Library)
	assert.NotNil(t, kit.Text)
	assert.NotNil(t, kit.Phrase)
	assert.NotNil(t, kit.Names)
	assert.NotNil(t, kit.Image)
	assert.NotNil(t, kit.Audio)
	assert.NotNil(t, kit.Data)
	assert.NotNil(t, kit.Social)
	assert.NotNil(t, kit.Code)
	assert.NotNil(t, kit.Time)
	assert.NotNil(t, kit.File)
	assert.Nil(t, kit.Storage)
	assert.ElementsMatch(t, library.BuiltinCategories, kit.Library.Categories())

	words, err := kit.Text.Word(5)
	require.NoError(t, err)
	assert.NotEmpty(t, words)

	people, err := kit.Data.People(3)
	require.NoError(t, err)
	assert.Len(t, people, 3)

	tweet, err := kit.Social.Tweet()
	require.NoError(t, err)
	assert.NotEmpty(t, tweet.Text)
}

func TestNew_SeededKitsMatch(t *testing.T) {
	t.Parallel()

	build := func() *soupkit.Kit {
		kit, err := soupkit.New(soupkit.WithSource(rng.New(42)), soupkit.WithLogger(logger.Nop()))
		require.NoError(t, err)
		return kit
	}
	a, b := build(), build()

	pa, err := a.Data.People(2)
	require.NoError(t, err)
	pb, err := b.Data.People(2)
	require.NoError(t, err)
	assert.Equal(t, pa, pb)

	sa, err := a.Phrase.Sentences(3)
	require.NoError(t, err)
	sb, err := b.Phrase.Sentences(3)
	require.NoError(t, err)
	assert.Equal(t, sa, sb)
}

func TestNew_CustomLibrary(t *testing.T) {
	t.Parallel()

	lib := library.New(fstest.MapFS{
		"nouns.csv":      {Data: []byte("Tree")},
		"adjectives.csv": {Data: []byte("Tall")},
	})
	kit, err := soupkit.New(soupkit.WithLibrary(lib), soupkit.WithLogger(logger.Nop()))
	require.NoError(t, err)

	s, err := kit.Phrase.Simile()
	require.NoError(t, err)
	assert.Equal(t, "He was as tall as a tree.", s)
}

func TestNew_LibraryDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nouns.csv"), []byte("Lantern\n"), 0o644))

	kit, err := soupkit.New(soupkit.WithLibraryDir(dir), soupkit.WithLogger(logger.Nop()))
	require.NoError(t, err)

	s, err := kit.Text.Noun(2)
	require.NoError(t, err)
	assert.Equal(t, "lantern lantern", s)

	_, err = soupkit.New(
		soupkit.WithLibraryDir(dir),
		soupkit.WithLogger(logger.Nop()),
		soupkit.WithPreload(library.Verbs),
	)
	assert.ErrorIs(t, err, library.ErrCategoryNotFound)
}

func TestSave(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	kit, err := soupkit.New(soupkit.WithLogger(logger.Nop()))
	require.NoError(t, err)
	_, err = kit.Save(ctx, "a.txt", []byte("x"), "")
	assert.ErrorIs(t, err, soupkit.ErrNoStorage)

	dir := t.TempDir()
	st, err := storage.NewLocalStorage(dir, "/files")
	require.NoError(t, err)
	kit, err = soupkit.New(soupkit.WithLogger(logger.Nop()), soupkit.WithStorage(st))
	require.NoError(t, err)

	doc, err := kit.File.JSON(3)
	require.NoError(t, err)
	obj, err := kit.Save(ctx, "docs/a.json", doc, "")
	require.NoError(t, err)
	assert.Equal(t, "/files/docs/a.json", obj.URL)
	assert.Equal(t, "application/json", obj.ContentType)

	got, err := os.ReadFile(filepath.Join(dir, "docs", "a.json"))
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestQRPhrase(t *testing.T) {
	t.Parallel()

	kit, err := soupkit.New(soupkit.WithSource(rng.New(1)), soupkit.WithLogger(logger.Nop()))
	require.NoError(t, err)

	s, img, err := kit.QRPhrase(200)
	require.NoError(t, err)
	assert.NotEmpty(t, s)
	assert.Equal(t, 200, img.Bounds().Dx())
}
