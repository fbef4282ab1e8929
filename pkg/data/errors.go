package data

import "errors"

// ErrInvalidArgument is returned for a negative record count.
var ErrInvalidArgument = errors.New("invalid argument")
