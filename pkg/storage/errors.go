package storage

import "errors"

var (
	// ErrIOFailure is returned when an artifact cannot be written, read or removed.
	ErrIOFailure = errors.New("i/o failure")

	ErrInvalidPath   = errors.New("invalid path")
	ErrInvalidConfig = errors.New("invalid storage configuration")
	ErrFileNotFound  = errors.New("file not found")

	// S3-specific classification
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")

	ErrOperationTimeout  = errors.New("operation timed out")
	ErrOperationCanceled = errors.New("operation canceled")
)
