// Package logger builds the *slog.Logger instances used across soupkit.
//
// New creates a logger configured by functional options: output format (text
// or json), minimum level, output writer and static attributes. Generators
// accept a logger through their own WithLogger options and fall back to Nop,
// so the library stays silent unless the caller opts in.
//
// Attribute helpers in attr.go keep key names consistent:
//
//	log.Debug("word list loaded", logger.Category("nouns"), logger.Count(len(words)))
//	log.Warn("write failed", logger.Path(p), logger.Error(err))
//
// Error returns an empty attribute for a nil error, so it can be passed
// without a nil check.
package logger
