package imagegen

import (
	"errors"

	"github.com/dmitrymomot/soupkit/pkg/storage"
)

var (
	// ErrInvalidArgument is returned for non-positive dimensions or an unknown pattern.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedFormat is returned when no encoder matches the output extension.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrEncode is returned when the codec rejects the image.
	ErrEncode = errors.New("failed to encode image")

	// ErrIOFailure is returned when the output cannot be written.
	ErrIOFailure = storage.ErrIOFailure
)
