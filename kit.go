package soupkit

import (
	"bytes"
	"context"
	"image"
	"log/slog"

	"github.com/dmitrymomot/soupkit/pkg/audiogen"
	"github.com/dmitrymomot/soupkit/pkg/code"
	"github.com/dmitrymomot/soupkit/pkg/data"
	"github.com/dmitrymomot/soupkit/pkg/filegen"
	"github.com/dmitrymomot/soupkit/pkg/imagegen"
	"github.com/dmitrymomot/soupkit/pkg/library"
	"github.com/dmitrymomot/soupkit/pkg/logger"
	"github.com/dmitrymomot/soupkit/pkg/phrase"
	"github.com/dmitrymomot/soupkit/pkg/randomname"
	"github.com/dmitrymomot/soupkit/pkg/rng"
	"github.com/dmitrymomot/soupkit/pkg/social"
	"github.com/dmitrymomot/soupkit/pkg/storage"
	"github.com/dmitrymomot/soupkit/pkg/text"
	"github.com/dmitrymomot/soupkit/pkg/timegen"
)

// Kit bundles every generator over a shared library, source and logger.
type Kit struct {
	Library *library.Store
	Text    *text.Generator
	Phrase  *phrase.Generator
	Names   *randomname.Generator
	Image   *imagegen.Generator
	Audio   *audiogen.Generator
	Data    *data.Generator
	Social  *social.Generator
	Code    *code.Generator
	Time    *timegen.Generator
	File    *filegen.Generator

	// Storage receives artifacts passed to Save. May be nil.
	Storage storage.Storage

	log *slog.Logger
}

// Option configures New.
type Option func(*options)

type options struct {
	lib        *library.Store
	libraryDir string
	src        rng.Source
	log        *slog.Logger
	store      storage.Storage
	preload    []string
}

// WithLibrary sets the word library.
func WithLibrary(lib *library.Store) Option {
	return func(o *options) {
		o.lib = lib
	}
}

// WithLibraryDir reads word lists from dir instead of the embedded defaults.
// Ignored when WithLibrary is also given.
func WithLibraryDir(dir string) Option {
	return func(o *options) {
		o.libraryDir = dir
	}
}

// WithSource sets the random source shared by all generators.
func WithSource(src rng.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithStorage sets the artifact store used by Save.
func WithStorage(st storage.Storage) Option {
	return func(o *options) {
		o.store = st
	}
}

// WithPreload loads the given categories in New so a missing list fails
// construction instead of the first generation call.
func WithPreload(categories ...string) Option {
	return func(o *options) {
		o.preload = append(o.preload, categories...)
	}
}

// New builds a Kit.
func New(opts ...Option) (*Kit, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	log := o.log
	if log == nil {
		log = slog.Default()
	}
	src := rng.OrDefault(o.src)

	lib := o.lib
	switch {
	case lib != nil:
	case o.libraryDir != "":
		lib = library.NewDir(o.libraryDir, library.WithLogger(log))
	default:
		lib = library.NewEmbedded(library.WithLogger(log))
	}

	if err := lib.Preload(o.preload...); err != nil {
		return nil, err
	}

	tg := text.New(lib, text.WithSource(src))
	kit := &Kit{
		Library: lib,
		Text:    tg,
		Phrase:  phrase.New(tg),
		Names:   randomname.New(tg),
		Image:   imagegen.New(imagegen.WithSource(src), imagegen.WithLogger(log)),
		Audio:   audiogen.New(audiogen.WithSource(src), audiogen.WithLogger(log)),
		Data:    data.New(tg),
		Social:  social.New(tg),
		Code:    code.New(tg),
		Time:    timegen.New(timegen.WithSource(src)),
		File:    filegen.New(tg, filegen.WithLogger(log)),
		Storage: o.store,
		log:     log.With(logger.Component("soupkit")),
	}
	return kit, nil
}

// Logger returns the Kit's logger.
func (k *Kit) Logger() *slog.Logger { return k.log }

// Save stores content under key in the Kit's storage.
// An empty contentType is derived from the key's extension.
func (k *Kit) Save(ctx context.Context, key string, content []byte, contentType string) (*storage.Object, error) {
	if k.Storage == nil {
		return nil, ErrNoStorage
	}
	obj, err := k.Storage.Put(ctx, key, bytes.NewReader(content), contentType)
	if err != nil {
		k.log.Warn("artifact save failed", logger.Path(key), logger.Error(err))
		return nil, err
	}
	k.log.Debug("artifact saved", logger.Path(obj.Key), slog.Int64("bytes", obj.Size))
	return obj, nil
}

// QRPhrase returns a random phrase and a QR code image encoding it.
func (k *Kit) QRPhrase(size int) (string, image.Image, error) {
	s, err := k.Phrase.Random()
	if err != nil {
		return "", nil, err
	}
	img, err := k.Image.QRCode(s, size)
	if err != nil {
		return "", nil, err
	}
	return s, img, nil
}
