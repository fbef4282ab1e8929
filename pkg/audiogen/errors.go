package audiogen

import (
	"errors"

	"github.com/dmitrymomot/soupkit/pkg/storage"
)

var (
	// ErrInvalidArgument is returned for out-of-range options.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEncode is returned when the WAV encoder fails.
	ErrEncode = errors.New("failed to encode audio")

	// ErrIOFailure is returned when the output cannot be written.
	ErrIOFailure = storage.ErrIOFailure
)
