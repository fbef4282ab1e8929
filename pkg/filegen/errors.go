package filegen

import (
	"errors"

	"github.com/dmitrymomot/soupkit/pkg/storage"
)

var (
	// ErrInvalidArgument is returned for negative sizes.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEncode is returned when a document cannot be encoded.
	ErrEncode = errors.New("failed to encode document")

	// ErrIOFailure is returned when a document cannot be written.
	ErrIOFailure = storage.ErrIOFailure
)
