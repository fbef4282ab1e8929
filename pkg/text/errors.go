package text

import "errors"

var (
	// ErrInvalidArgument is returned for a negative length.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownCategory is returned when a category name or value is not recognised.
	ErrUnknownCategory = errors.New("unknown text category")
)
