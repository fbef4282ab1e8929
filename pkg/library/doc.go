// Package library loads and caches the word lists that back every soupkit
// generator.
//
// A word list ("category") lives in a flat CSV file named after the category,
// e.g. nouns.csv. Rows may hold any number of comma-separated tokens; each
// token is trimmed and empty tokens are dropped. The result is an ordered,
// immutable []string.
//
// A Store reads from an fs.FS and caches each category the first time it is
// requested. The cache lives on the Store value, not in package state, so
// callers construct one Store and pass it to the generators that need it.
// Concurrent first loads of the same category read the file once.
//
// # Usage
//
//	lib := library.NewEmbedded()         // built-in lists
//	lib = library.NewDir("libs")         // lists on disk
//
//	nouns, err := lib.Load(library.Nouns)
//	if errors.Is(err, library.ErrCategoryNotFound) {
//		// the backing file is missing: a configuration error
//	}
//
// A failed load leaves the cache untouched.
package library
