package imagegen

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/dmitrymomot/soupkit/pkg/storage"
)

// Format is an output encoding.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	GIF  Format = "gif"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

var extFormats = map[string]Format{
	".png":  PNG,
	".jpg":  JPEG,
	".jpeg": JPEG,
	".gif":  GIF,
	".bmp":  BMP,
	".tif":  TIFF,
	".tiff": TIFF,
}

// FormatFromPath returns the encoding implied by path's extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extFormats[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	return "image/" + string(f)
}

// Encode writes img to w in format f.
func Encode(w io.Writer, f Format, img image.Image) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case JPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	case GIF:
		err = gif.Encode(w, img, nil)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}

// Bytes encodes img in format f.
func Bytes(f Format, img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, f, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes img for path's extension and writes it atomically.
func Write(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Bytes(f, img)
	if err != nil {
		return err
	}
	return storage.WriteFileAtomic(path, data, 0o644)
}

// Upload encodes img for key's extension and stores it in st.
func Upload(ctx context.Context, st storage.Storage, key string, img image.Image) (*storage.Object, error) {
	f, err := FormatFromPath(key)
	if err != nil {
		return nil, err
	}
	data, err := Bytes(f, img)
	if err != nil {
		return nil, err
	}
	return st.Put(ctx, key, bytes.NewReader(data), f.ContentType())
}
