// Package soupkit generates randomized filler content: words, phrases,
// numbers, images, audio clips and composed records such as people, posts,
// log lines and documents.
//
// A Kit wires every generator to one word library, one random source and one
// logger:
//
//	kit, err := soupkit.New(soupkit.WithSource(rng.New(42)))
//	if err != nil {
//		return err
//	}
//	nouns, _ := kit.Text.Noun(3)       // "lantern kite harbor"
//	line, _ := kit.Phrase.Simile()      // "He was as brave as a lantern."
//	people, _ := kit.Data.People(10)
//	_ = kit.Image.WritePattern("out/checker.png", imagegen.Checker, 64, 64)
//
// Word lists come from the embedded defaults unless WithLibrary or
// WithLibraryDir points elsewhere; a category is read once and cached.
// NewFromEnv builds a Kit from SOUP_* environment variables (see Config),
// including an optional artifact store: a local directory or an S3 bucket.
//
// All generators are safe for concurrent use. With a seeded source the output
// of a single goroutine is reproducible.
package soupkit
