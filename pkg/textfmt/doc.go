// Package textfmt holds the post-processing applied to every generated string.
//
// Sampling from row-structured word lists used to leak quote and bracket
// characters into output. Clean strips them unconditionally, whatever their
// origin. Capitalize cleans and then upper-cases the first rune only; it is
// not title case.
//
//	textfmt.Clean("it's [great]")      // "its great"
//	textfmt.Capitalize("he was tall.") // "He was tall."
package textfmt
