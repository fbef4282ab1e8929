// Package rng provides the randomness source shared by every soupkit generator.
//
// Generators never call math/rand directly. They accept a Source so tests can
// inject a seeded, reproducible stream while production code uses the
// goroutine-safe global generator returned by Default.
//
// # Usage
//
//	src := rng.New(42)           // deterministic
//	word := rng.Pick(src, words) // uniform pick, with replacement
//
//	src = rng.Default()          // process-wide, safe for concurrent use
package rng
