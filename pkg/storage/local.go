package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage implements Storage on the local filesystem.
// All keys resolve inside baseDir.
type LocalStorage struct {
	baseDir string // absolute
	baseURL string // URL prefix, e.g. "/files/"
}

// NewLocalStorage creates baseDir if needed and returns a storage rooted at it.
func NewLocalStorage(baseDir, baseURL string) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, ErrInvalidConfig
	}

	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve base directory: %v", ErrInvalidConfig, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create base directory: %v", ErrIOFailure, err)
	}

	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &LocalStorage{baseDir: abs, baseURL: baseURL}, nil
}

// Put writes r to baseDir/key atomically.
func (s *LocalStorage) Put(ctx context.Context, key string, r io.Reader, contentType string) (*Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOperationCanceled, err)
	}

	key, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	abs, err := s.resolve(key)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, fmt.Errorf("%w: read content: %v", ErrIOFailure, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOperationCanceled, err)
	}
	if err := WriteFileAtomic(abs, buf.Bytes(), 0o644); err != nil {
		return nil, err
	}

	if contentType == "" {
		contentType = ContentType(key)
	}
	return &Object{
		Key:         key,
		Size:        int64(buf.Len()),
		ContentType: contentType,
		URL:         s.URL(key),
	}, nil
}

// Delete removes baseDir/key.
func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}
	abs, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, key)
		}
		return fmt.Errorf("%w: remove %s: %v", ErrIOFailure, key, err)
	}
	return nil
}

// Exists reports whether baseDir/key is a regular file.
func (s *LocalStorage) Exists(ctx context.Context, key string) bool {
	key, err := normalizeKey(key)
	if err != nil {
		return false
	}
	abs, err := s.resolve(key)
	if err != nil {
		return false
	}
	info, err := os.Stat(abs)
	return err == nil && info.Mode().IsRegular()
}

// URL returns baseURL + key.
func (s *LocalStorage) URL(key string) string {
	return s.baseURL + strings.TrimPrefix(filepath.ToSlash(key), "/")
}

// Path returns the absolute filesystem path of key.
func (s *LocalStorage) Path(key string) (string, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return "", err
	}
	return s.resolve(key)
}

func (s *LocalStorage) resolve(key string) (string, error) {
	abs := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if !strings.HasPrefix(abs, s.baseDir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, key)
	}
	return abs, nil
}
