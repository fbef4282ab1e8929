package library

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/soupkit/pkg/logger"
)

// DefaultDir is the relative directory NewDir callers conventionally use.
const DefaultDir = "libs"

const fileExt = ".csv"

//go:embed libs/*.csv
var builtin embed.FS

// Store loads word lists from an fs.FS and caches them by category name.
// It is safe for concurrent use.
type Store struct {
	fsys fs.FS
	log  *slog.Logger

	mu      sync.RWMutex
	lists   map[string][]string
	loading map[string]*sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report loads and missing categories.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a Store reading "<category>.csv" files from fsys.
func New(fsys fs.FS, opts ...Option) *Store {
	s := &Store{
		fsys:    fsys,
		log:     logger.Nop(),
		lists:   make(map[string][]string),
		loading: make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("library"))
	return s
}

// NewDir creates a Store reading category files from dir on disk.
func NewDir(dir string, opts ...Option) *Store {
	return New(os.DirFS(dir), opts...)
}

// NewEmbedded creates a Store over the word lists compiled into the package.
func NewEmbedded(opts ...Option) *Store {
	sub, err := fs.Sub(builtin, DefaultDir)
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(fmt.Sprintf("library: embedded word lists unavailable: %v", err))
	}
	return New(sub, opts...)
}

// Load returns the word list for category, reading it on first use.
// The returned slice is shared with the cache and must not be modified.
func (s *Store) Load(category string) ([]string, error) {
	if err := validateCategory(category); err != nil {
		return nil, err
	}

	if words, ok := s.cached(category); ok {
		return words, nil
	}

	lock := s.lockFor(category)
	lock.Lock()
	defer lock.Unlock()

	// Another goroutine may have finished the load while we waited.
	if words, ok := s.cached(category); ok {
		return words, nil
	}

	words, err := s.read(category)
	if err != nil {
		s.log.Warn("word list load failed", logger.Category(category), logger.Error(err))
		return nil, err
	}

	s.mu.Lock()
	s.lists[category] = words
	s.mu.Unlock()

	s.log.Debug("word list loaded", logger.Category(category), logger.Count(len(words)))
	return words, nil
}

// Union returns the concatenation of the given categories, in order.
// The result is a fresh slice owned by the caller.
func (s *Store) Union(categories ...string) ([]string, error) {
	var out []string
	for _, c := range categories {
		words, err := s.Load(c)
		if err != nil {
			return nil, err
		}
		out = append(out, words...)
	}
	return out, nil
}

// Preload eagerly loads categories, stopping at the first failure.
func (s *Store) Preload(categories ...string) error {
	for _, c := range categories {
		if _, err := s.Load(c); err != nil {
			return err
		}
	}
	return nil
}

// Categories returns the sorted names of all cached categories.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.lists))
	for name := range s.lists {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (s *Store) cached(category string) ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words, ok := s.lists[category]
	return words, ok
}

func (s *Store) lockFor(category string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.loading[category]
	if !ok {
		lock = new(sync.Mutex)
		s.loading[category] = lock
	}
	return lock
}

func (s *Store) read(category string) ([]string, error) {
	f, err := s.fsys.Open(category + fileExt)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, category)
		}
		return nil, errors.Join(ErrReadLibrary, err)
	}
	defer func() { _ = f.Close() }()

	words, err := parse(f)
	if err != nil {
		return nil, errors.Join(ErrReadLibrary, fmt.Errorf("%s: %w", category, err))
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyCategory, category)
	}
	return words, nil
}

// parse flattens CSV rows into trimmed, non-empty tokens.
func parse(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var words []string
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		for _, tok := range row {
			if tok = strings.TrimSpace(tok); tok != "" {
				words = append(words, tok)
			}
		}
	}
	return slices.Clip(words), nil
}

func validateCategory(category string) error {
	if category == "" ||
		strings.ContainsAny(category, `/\`) ||
		strings.Contains(category, "..") {
		return fmt.Errorf("%w: invalid name %q", ErrCategoryNotFound, category)
	}
	return nil
}
