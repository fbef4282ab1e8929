// Package code composes code-shaped filler: log lines, identifiers and
// comments.
//
//	gen := code.New(textGen)
//	gen.LogLine()                   // "2026-03-01T10:04:05Z WARN [lantern] Tall brave tree runs quickly."
//	gen.Identifier(code.SnakeCase)  // "brave_lantern"
//	gen.Comment()                   // "// He was as calm as a kite."
package code
