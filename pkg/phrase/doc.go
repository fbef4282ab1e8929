// Package phrase fills fixed sentence templates with words sampled by a
// text.Generator.
//
// Templates:
//
//	Noam   "{adj} {adj} {noun} {verb}s {adv}."
//	Simile "He was as {adj} as a {noun}."
//	Cliche "It's not rocket science, just {adv} {verb} it."
//
// Each blank takes one fresh, lower-cased sample. The two adjectives in Noam
// are independent and may repeat. Verbs are conjugated by appending "s",
// irregular forms are not handled. The filled template goes through
// textfmt.Capitalize, which also strips apostrophes: Cliche renders as
// "Its not rocket science, ...".
package phrase
