package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Category records a word-list category under the key "category".
func Category(name string) slog.Attr {
	return slog.String("category", name)
}

// Count records a number of items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Path records a filesystem path or object key under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Size records image or audio dimensions under the key "size".
func Size(w, h int) slog.Attr {
	return slog.Group("size", slog.Int("width", w), slog.Int("height", h))
}
