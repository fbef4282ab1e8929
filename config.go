package soupkit

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/soupkit/pkg/config"
	"github.com/dmitrymomot/soupkit/pkg/logger"
	"github.com/dmitrymomot/soupkit/pkg/rng"
	"github.com/dmitrymomot/soupkit/pkg/storage"
)

// EnvPrefix prefixes every Config variable.
const EnvPrefix = "SOUP_"

// Config is the environment-driven Kit configuration.
type Config struct {
	// LibraryDir holds "<category>.csv" word lists. Empty uses the embedded lists.
	LibraryDir string `env:"LIBRARY_DIR"`
	// Seed makes output reproducible. Zero means nondeterministic.
	Seed       uint64 `env:"SEED" envDefault:"0"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"LOG_FORMAT" envDefault:"text"`

	// OutputDir enables a local artifact store; OutputURL prefixes its URLs.
	OutputDir string `env:"OUTPUT_DIR"`
	OutputURL string `env:"OUTPUT_URL"`

	S3 S3Config `envPrefix:"S3_"`
}

// S3Config selects an S3 bucket as the artifact store. It wins over OutputDir.
type S3Config struct {
	Bucket         string `env:"BUCKET"`
	Region         string `env:"REGION" envDefault:"us-east-1"`
	Endpoint       string `env:"ENDPOINT"`
	AccessKeyID    string `env:"ACCESS_KEY_ID"`
	SecretKey      string `env:"SECRET_KEY"`
	BaseURL        string `env:"BASE_URL"`
	Prefix         string `env:"PREFIX"`
	ForcePathStyle bool   `env:"FORCE_PATH_STYLE"`
}

// LoadConfig reads Config from SOUP_* variables and an optional .env file.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	opts = append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)
	if err := config.Parse(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromEnv builds a Kit from the environment. opts are applied after the
// configured ones.
func NewFromEnv(ctx context.Context, opts ...Option) (*Kit, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewFromConfig(ctx, cfg, opts...)
}

// NewFromConfig builds a Kit from cfg. opts are applied after the configured
// ones, so WithLogger or WithStorage override cfg.
func NewFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Kit, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	log := logger.New(logger.WithLevel(level), logger.WithFormat(format), logger.WithOutput(os.Stderr))

	base := []Option{WithLogger(log)}
	if cfg.LibraryDir != "" {
		base = append(base, WithLibraryDir(cfg.LibraryDir))
	}
	if cfg.Seed != 0 {
		base = append(base, WithSource(rng.New(cfg.Seed)))
	}

	st, err := newStorage(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	if st != nil {
		base = append(base, WithStorage(st))
	}

	return New(append(base, opts...)...)
}

func newStorage(ctx context.Context, cfg Config, log *slog.Logger) (storage.Storage, error) {
	switch {
	case cfg.S3.Bucket != "":
		st, err := storage.NewS3Storage(ctx, storage.S3Config{
			Bucket:         cfg.S3.Bucket,
			Region:         cfg.S3.Region,
			AccessKeyID:    cfg.S3.AccessKeyID,
			SecretKey:      cfg.S3.SecretKey,
			Endpoint:       cfg.S3.Endpoint,
			BaseURL:        cfg.S3.BaseURL,
			Prefix:         cfg.S3.Prefix,
			ForcePathStyle: cfg.S3.ForcePathStyle,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: s3 storage: %w", ErrInvalidConfig, err)
		}
		log.Debug("artifact storage ready", slog.String("kind", "s3"), slog.String("bucket", cfg.S3.Bucket))
		return st, nil
	case cfg.OutputDir != "":
		st, err := storage.NewLocalStorage(cfg.OutputDir, cfg.OutputURL)
		if err != nil {
			return nil, fmt.Errorf("%w: local storage: %w", ErrInvalidConfig, err)
		}
		log.Debug("artifact storage ready", slog.String("kind", "local"), logger.Path(cfg.OutputDir))
		return st, nil
	}
	return nil, nil
}
