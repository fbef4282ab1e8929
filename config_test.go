package soupkit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/soupkit"
	"github.com/dmitrymomot/soupkit/pkg/config"
	"github.com/dmitrymomot/soupkit/pkg/logger"
	"github.com/dmitrymomot/soupkit/pkg/storage"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	cfg, err := soupkit.LoadConfig(config.WithEnvironment(map[string]string{
		"SOUP_LIBRARY_DIR":         "/srv/words",
		"SOUP_SEED":                "7",
		"SOUP_LOG_FORMAT":          "json",
		"SOUP_S3_BUCKET":           "soup",
		"SOUP_S3_FORCE_PATH_STYLE": "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, "/srv/words", cfg.LibraryDir)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "soup", cfg.S3.Bucket)
	assert.Equal(t, "us-east-1", cfg.S3.Region)
	assert.True(t, cfg.S3.ForcePathStyle)
}

func TestLoadConfig_BadValue(t *testing.T) {
	t.Parallel()

	_, err := soupkit.LoadConfig(config.WithEnvironment(map[string]string{"SOUP_SEED": "-1"}))
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestNewFromConfig_LocalStorage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	kit, err := soupkit.NewFromConfig(context.Background(), soupkit.Config{
		Seed:      3,
		LogLevel:  "error",
		OutputDir: dir,
		OutputURL: "/soup",
	})
	require.NoError(t, err)
	require.IsType(t, &storage.LocalStorage{}, kit.Storage)
	assert.Equal(t, "/soup/x.png", kit.Storage.URL("x.png"))

	again, err := soupkit.NewFromConfig(context.Background(), soupkit.Config{Seed: 3, LogLevel: "error"})
	require.NoError(t, err)
	a, err := kit.Text.Word(4)
	require.NoError(t, err)
	b, err := again.Text.Word(4)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNewFromConfig_S3Storage(t *testing.T) {
	t.Parallel()

	kit, err := soupkit.NewFromConfig(context.Background(), soupkit.Config{
		LogLevel: "error",
		S3: soupkit.S3Config{
			Bucket:      "soup",
			Region:      "eu-west-1",
			AccessKeyID: "key",
			SecretKey:   "secret",
			Endpoint:    "http://localhost:9000",
		},
	})
	require.NoError(t, err)
	require.IsType(t, &storage.S3Storage{}, kit.Storage)
	assert.Equal(t, "http://localhost:9000/soup/a.wav", kit.Storage.URL("a.wav"))
}

func TestNewFromConfig_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  soupkit.Config
	}{
		{"log level", soupkit.Config{LogLevel: "loud"}},
		{"log format", soupkit.Config{LogFormat: "xml"}},
		{"s3 region", soupkit.Config{S3: soupkit.S3Config{Bucket: "soup"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := soupkit.NewFromConfig(context.Background(), tt.cfg)
			assert.ErrorIs(t, err, soupkit.ErrInvalidConfig)
		})
	}
}

func TestNewFromConfig_OptionsOverride(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	st, err := storage.NewLocalStorage(dir, "/override")
	require.NoError(t, err)

	kit, err := soupkit.NewFromConfig(context.Background(),
		soupkit.Config{OutputDir: t.TempDir()},
		soupkit.WithStorage(st),
		soupkit.WithLogger(logger.Nop()),
	)
	require.NoError(t, err)
	assert.Same(t, st, kit.Storage)
}

func TestNewFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SOUP_OUTPUT_DIR", dir)
	t.Setenv("SOUP_SEED", "11")
	t.Setenv("SOUP_LOG_LEVEL", "warn")

	kit, err := soupkit.NewFromEnv(context.Background())
	require.NoError(t, err)
	assert.IsType(t, &storage.LocalStorage{}, kit.Storage)

	t.Setenv("SOUP_LOG_LEVEL", "shout")
	_, err = soupkit.NewFromEnv(context.Background())
	assert.ErrorIs(t, err, soupkit.ErrInvalidConfig)
}
