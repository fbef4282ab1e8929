// Package filegen renders placeholder documents: CSV tables, INI files,
// YAML and JSON objects.
//
// Keys and column names are snake_case adjective+noun identifiers; values
// are library words, numbers and phrases. Documents are returned as bytes and
// can be written atomically with Write or stored with Upload.
package filegen
