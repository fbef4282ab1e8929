package randomname

import "errors"

var (
	// ErrUnknownWordType is returned when a pattern holds an undefined WordType.
	ErrUnknownWordType = errors.New("unknown word type")

	// ErrExhausted is returned when the validator rejects MaxAttempts names in a row.
	ErrExhausted = errors.New("no acceptable name generated")
)
