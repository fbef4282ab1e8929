// Package slug converts text into URL-safe slugs.
//
// Diacritics are folded to ASCII through golang.org/x/text normalization
// ("Café" → "cafe") and lower-cased. Runs of anything that is not a letter
// or digit collapse into a single separator. The result may be capped in
// length and given a random suffix.
//
//	slug.Make("Hello World!")                         // "hello-world"
//	slug.Make("Fish & Chips", slug.CustomReplace(map[string]string{"&": "and"}))
//	slug.Make("tall tree", slug.WithSuffix(4), slug.WithSource(rng.New(1)))
//
// Options: MaxLength (counted in runes), Separator, CustomReplace, WithSuffix
// and WithSource. Suffixes use rng.Default unless a source is given.
package slug
