package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// Object describes a stored artifact.
type Object struct {
	Key         string
	Size        int64
	ContentType string
	URL         string
}

// Storage persists generated artifacts.
type Storage interface {
	// Put stores the content of r under key. An empty contentType is derived
	// from the key's extension.
	Put(ctx context.Context, key string, r io.Reader, contentType string) (*Object, error)
	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error
	// Exists reports whether key holds an object.
	Exists(ctx context.Context, key string) bool
	// URL returns the public URL of key.
	URL(key string) string
}

// ContentType returns the MIME type for key's extension,
// or application/octet-stream when unknown.
func ContentType(key string) string {
	if ct := mime.TypeByExtension(strings.ToLower(path.Ext(key))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// normalizeKey strips leading slashes, cleans the key and rejects any
// ".." segment left after cleaning.
func normalizeKey(key string) (string, error) {
	key = strings.TrimLeft(filepath.ToSlash(key), "/")
	if key == "" {
		return "", fmt.Errorf("%w: empty key", ErrInvalidPath)
	}
	clean := path.Clean(key)
	if clean == "." || slices.Contains(strings.Split(clean, "/"), "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, key)
	}
	return clean, nil
}

// WriteFileAtomic writes data to name through a temp file in the same
// directory followed by a rename. On failure name is left untouched and the
// temp file is removed. Missing parent directories are created.
func WriteFileAtomic(name string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create directory %s: %v", ErrIOFailure, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(name)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrIOFailure, name, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrIOFailure, name, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: sync %s: %v", ErrIOFailure, name, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrIOFailure, name, err)
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("%w: chmod %s: %v", ErrIOFailure, name, err)
	}
	if err = os.Rename(tmpName, name); err != nil {
		return fmt.Errorf("%w: rename into %s: %v", ErrIOFailure, name, err)
	}
	return nil
}
