// Package randomname generates memorable names from library words, such as
// "brave-otter" or "ada_lovelace_4829".
//
// A name joins one word per entry of a pattern and an optional suffix. Words
// come from the word lists of a library.Store through a text.Generator, so
// custom lists and seeded sources carry over.
//
//	names := randomname.New(textGen)
//	name, err := names.Generate(&randomname.Options{
//		Pattern:   []randomname.WordType{randomname.Adjective, randomname.Noun},
//		Separator: "_",
//		Suffix:    randomname.Numeric4,
//		Validator: func(s string) bool { return !taken[s] },
//	})
//
// Options:
//   - Pattern decides the word sequence (default: adjective-noun).
//   - Separator is placed between words (default: "-").
//   - Suffix is one of NoSuffix, Hex6, Hex8, Numeric4.
//   - Validator rejects names; Generate returns ErrExhausted after
//     MaxAttempts rejections.
package randomname
