package imagegen

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/soupkit/pkg/logger"
	"github.com/dmitrymomot/soupkit/pkg/qrcode"
	"github.com/dmitrymomot/soupkit/pkg/rng"
	"github.com/dmitrymomot/soupkit/pkg/storage"
)

// DefaultTileSize is the checker tile side length in pixels.
const DefaultTileSize = 32

// PatternKind selects a Pattern variant.
type PatternKind string

const (
	Checker  PatternKind = "checker"
	Gradient PatternKind = "gradient"
	Noise    PatternKind = "noise"
)

// ParsePattern maps a name to a PatternKind.
func ParsePattern(s string) (PatternKind, error) {
	switch k := PatternKind(strings.ToLower(strings.TrimSpace(s))); k {
	case Checker, Gradient, Noise:
		return k, nil
	default:
		return "", fmt.Errorf("%w: unknown pattern %q", ErrInvalidArgument, s)
	}
}

// Generator produces random images.
type Generator struct {
	src      rng.Source
	tileSize int
	log      *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source. Defaults to rng.Default.
func WithSource(src rng.Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithTileSize sets the checker tile size. Non-positive values are ignored.
func WithTileSize(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.tileSize = n
		}
	}
}

// WithLogger sets the logger used to report written files.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// New creates an image Generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		src:      rng.Default(),
		tileSize: DefaultTileSize,
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With(logger.Component("imagegen"))
	return g
}

// Grayscale returns an image of w×h uniformly random gray levels.
func (g *Generator) Grayscale(w, h int) (*image.Gray, error) {
	if err := checkSize(w, h); err != nil {
		return nil, err
	}
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = rng.Byte(g.src)
	}
	return img, nil
}

// RGB returns an image of w×h pixels with uniformly random channels.
func (g *Generator) RGB(w, h int) (*RGB, error) {
	if err := checkSize(w, h); err != nil {
		return nil, err
	}
	img := NewRGB(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = rng.Byte(g.src)
	}
	return img, nil
}

// Pattern returns a w×h image of the given kind.
func (g *Generator) Pattern(kind PatternKind, w, h int) (*RGB, error) {
	switch kind {
	case Noise:
		return g.RGB(w, h)
	case Checker:
		return g.checker(w, h)
	case Gradient:
		return gradient(w, h)
	default:
		return nil, fmt.Errorf("%w: unknown pattern %q", ErrInvalidArgument, kind)
	}
}

// QRCode renders content as a size×size QR code.
func (g *Generator) QRCode(content string, size int) (image.Image, error) {
	img, err := qrcode.Image(content, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return img, nil
}

// WriteGrayscale generates a grayscale image and writes it to path.
func (g *Generator) WriteGrayscale(path string, w, h int) error {
	img, err := g.Grayscale(w, h)
	if err != nil {
		return err
	}
	return g.write(path, img)
}

// WriteRGB generates an RGB noise image and writes it to path.
func (g *Generator) WriteRGB(path string, w, h int) error {
	img, err := g.RGB(w, h)
	if err != nil {
		return err
	}
	return g.write(path, img)
}

// WritePattern generates a pattern image and writes it to path.
func (g *Generator) WritePattern(path string, kind PatternKind, w, h int) error {
	img, err := g.Pattern(kind, w, h)
	if err != nil {
		return err
	}
	return g.write(path, img)
}

// Upload encodes img for key's extension and stores it.
func (g *Generator) Upload(ctx context.Context, st storage.Storage, key string, img image.Image) (*storage.Object, error) {
	obj, err := Upload(ctx, st, key, img)
	if err != nil {
		g.log.Warn("image upload failed", logger.Path(key), logger.Error(err))
		return nil, err
	}
	g.log.Debug("image uploaded", logger.Path(obj.Key), slog.String("url", obj.URL))
	return obj, nil
}

func (g *Generator) write(path string, img image.Image) error {
	if err := Write(path, img); err != nil {
		g.log.Warn("image write failed", logger.Path(path), logger.Error(err))
		return err
	}
	b := img.Bounds()
	g.log.Debug("image written", logger.Path(path), logger.Size(b.Dx(), b.Dy()))
	return nil
}

func (g *Generator) checker(w, h int) (*RGB, error) {
	if err := checkSize(w, h); err != nil {
		return nil, err
	}
	tile := g.tileSize
	cols := (w + tile - 1) / tile
	rows := (h + tile - 1) / tile

	colors := make([][3]uint8, cols*rows)
	for i := range colors {
		colors[i] = [3]uint8{rng.Byte(g.src), rng.Byte(g.src), rng.Byte(g.src)}
	}

	img := NewRGB(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			c := colors[(y/tile)*cols+x/tile]
			img.SetRGB(x, y, c[0], c[1], c[2])
		}
	}
	return img, nil
}

// gradient maps x to red, y to green and the inverse of their mean to blue.
// Both axes reach 255 at the last column and row.
func gradient(w, h int) (*RGB, error) {
	if err := checkSize(w, h); err != nil {
		return nil, err
	}
	img := NewRGB(image.Rect(0, 0, w, h))
	for y := range h {
		fy := unit(y, h)
		for x := range w {
			fx := unit(x, w)
			img.SetRGB(x, y,
				channel(fx),
				channel(fy),
				channel(1-(fx+fy)/2),
			)
		}
	}
	return img, nil
}

func unit(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

func channel(f float64) uint8 {
	return uint8(f*255 + 0.5)
}

func checkSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidArgument, w, h)
	}
	return nil
}
