// Package text generates filler words, letters and numbers from the word
// lists held by a library.Store.
//
// Every operation draws n entries independently and uniformly, with
// replacement, so repeats inside one result are expected:
//
//	gen := text.New(library.NewEmbedded())
//	s, _ := gen.Noun(2)         // "lantern whale"
//	s, _ = gen.Number(4)        // "0729"
//	s, _ = gen.Alphanumeric(6)  // "Q7bX0k" (entries are not cased)
//	s, _ = gen.Word(3)          // "Brave quickly lantern."
//
// Casing and joining rules:
//
//   - noun, adjective, adverb, verb, alphabet: lower-cased, joined by one space
//   - number: digits 0-9, no separator
//   - alphanumeric: alphabet list plus "0".."9", not cased, no separator
//   - word: union of adjectives, adverbs, nouns and verbs, not cased, joined by
//     spaces, terminated with "." and capitalized
//
// Every result passes through textfmt.Clean (Capitalize for word). n == 0
// yields "" for every category; a negative n returns ErrInvalidArgument.
package text
