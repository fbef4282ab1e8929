package library

import "errors"

var (
	// ErrCategoryNotFound is returned when the backing file of a category does not exist
	// or the category name cannot map to a file.
	ErrCategoryNotFound = errors.New("word list category not found")

	// ErrEmptyCategory is returned when a category file contains no tokens.
	ErrEmptyCategory = errors.New("word list category is empty")

	// ErrReadLibrary is returned when a category file exists but cannot be read or parsed.
	ErrReadLibrary = errors.New("failed to read word list")
)
