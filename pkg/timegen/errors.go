package timegen

import "errors"

// ErrInvalidArgument is returned for an empty or inverted range.
var ErrInvalidArgument = errors.New("invalid argument")
