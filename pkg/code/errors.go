package code

import "errors"

var (
	// ErrUnknownStyle is returned for an undefined identifier Style.
	ErrUnknownStyle = errors.New("unknown identifier style")
	// ErrInvalidArgument is returned for a negative line count.
	ErrInvalidArgument = errors.New("invalid argument")
)
