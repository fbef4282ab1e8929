package soupkit

import "errors"

var (
	// ErrInvalidConfig is returned when a Config value cannot be applied.
	ErrInvalidConfig = errors.New("invalid soupkit config")

	// ErrNoStorage is returned by Save when the Kit has no artifact store.
	ErrNoStorage = errors.New("no artifact storage configured")
)
