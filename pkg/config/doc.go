// Package config loads configuration structs from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct-tag parsing and
// github.com/joho/godotenv for .env files:
//
//	type Config struct {
//		LibraryDir string `env:"LIBRARY_DIR"`
//		Seed       uint64 `env:"SEED" envDefault:"0"`
//	}
//
//	var cfg Config
//	err := config.Parse(&cfg, config.WithPrefix("SOUP_"))
//
// Parse reads the environment on every call. Load parses each config type
// once per process and returns the cached copy afterwards; ResetCache clears
// it. The default ".env" in the working directory is loaded once if present,
// and WithEnvFiles names additional files. WithEnvironment replaces the
// process environment with a map, which keeps tests hermetic.
package config
