// Package data composes structured fake records, people and products, out of
// library words and phrases.
//
// IDs are version 4 UUIDs read from the generator's random source, so a seeded
// source reproduces whole records, IDs included.
package data
