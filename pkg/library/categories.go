package library

// Built-in category names. Each maps to "<name>.csv".
const (
	Nouns      = "nouns"
	Adjectives = "adjectives"
	Adverbs    = "adverbs"
	Verbs      = "verbs"
	Alphabet   = "alphabet"

	FirstNames = "firstnames"
	LastNames  = "lastnames"
	Domains    = "domains"
	Hashtags   = "hashtags"
)

// WordCategories are the four lists that make up a "word".
var WordCategories = []string{Adjectives, Adverbs, Nouns, Verbs}

// BuiltinCategories lists every category shipped with NewEmbedded.
var BuiltinCategories = []string{
	Nouns, Adjectives, Adverbs, Verbs, Alphabet,
	FirstNames, LastNames, Domains, Hashtags,
}
