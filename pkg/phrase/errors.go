package phrase

import "errors"

// ErrInvalidArgument is returned for a negative sentence count.
var ErrInvalidArgument = errors.New("invalid argument")
