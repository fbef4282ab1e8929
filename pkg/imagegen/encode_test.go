package imagegen_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/dmitrymomot/soupkit/pkg/imagegen"
	"github.com/dmitrymomot/soupkit/pkg/rng"
	"github.com/dmitrymomot/soupkit/pkg/storage"
)

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := map[string]imagegen.Format{
		"a.png":      imagegen.PNG,
		"A.PNG":      imagegen.PNG,
		"b.jpg":      imagegen.JPEG,
		"b.jpeg":     imagegen.JPEG,
		"c.gif":      imagegen.GIF,
		"d.bmp":      imagegen.BMP,
		"dir/e.tif":  imagegen.TIFF,
		"dir/e.tiff": imagegen.TIFF,
	}
	for path, want := range tests {
		got, err := imagegen.FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	for _, path := range []string{"noext", "x.webp", "x.png.txt"} {
		_, err := imagegen.FormatFromPath(path)
		assert.ErrorIs(t, err, imagegen.ErrUnsupportedFormat, path)
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	t.Parallel()

	gen := imagegen.New(imagegen.WithSource(rng.New(10)))
	dir := t.TempDir()

	for _, name := range []string{"g.png", "g.jpg", "g.gif", "g.bmp", "g.tiff"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(dir, name)
			require.NoError(t, gen.WriteRGB(path, 20, 10))

			f, err := os.Open(path)
			require.NoError(t, err)
			defer f.Close()

			img, _, err := image.Decode(f)
			require.NoError(t, err)
			assert.Equal(t, 20, img.Bounds().Dx())
			assert.Equal(t, 10, img.Bounds().Dy())
		})
	}
}

func TestWriteGrayscale_PNGIsLossless(t *testing.T) {
	t.Parallel()

	gen := imagegen.New(imagegen.WithSource(rng.New(11)))
	src, err := imagegen.New(imagegen.WithSource(rng.New(11))).Grayscale(12, 7)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "gray.png")
	require.NoError(t, gen.WriteGrayscale(path, 12, 7))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	gray, ok := decoded.(*image.Gray)
	require.True(t, ok, "grayscale PNG decodes as *image.Gray")
	assert.Equal(t, src.Pix, gray.Pix)
}

func TestWrite_Failures(t *testing.T) {
	t.Parallel()

	gen := imagegen.New()

	t.Run("unsupported extension writes nothing", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "x.webp")
		err := gen.WriteRGB(path, 4, 4)
		require.ErrorIs(t, err, imagegen.ErrUnsupportedFormat)
		assert.NoFileExists(t, path)
	})

	t.Run("unwritable path is an io failure", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		blocker := filepath.Join(dir, "file")
		require.NoError(t, os.WriteFile(blocker, nil, 0o644))

		err := gen.WritePattern(filepath.Join(blocker, "x.png"), imagegen.Gradient, 4, 4)
		assert.ErrorIs(t, err, imagegen.ErrIOFailure)
	})

	t.Run("invalid size writes nothing", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "x.png")
		assert.ErrorIs(t, gen.WriteGrayscale(path, 0, 4), imagegen.ErrInvalidArgument)
		assert.NoFileExists(t, path)
	})
}

func TestUpload(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	st, err := storage.NewLocalStorage(dir, "/static")
	require.NoError(t, err)

	gen := imagegen.New(imagegen.WithSource(rng.New(12)))
	img, err := gen.Pattern(imagegen.Checker, 64, 64)
	require.NoError(t, err)

	obj, err := gen.Upload(context.Background(), st, "patterns/checker.png", img)
	require.NoError(t, err)
	assert.Equal(t, "image/png", obj.ContentType)
	assert.Equal(t, "/static/patterns/checker.png", obj.URL)
	assert.FileExists(t, filepath.Join(dir, "patterns", "checker.png"))

	_, err = gen.Upload(context.Background(), st, "patterns/checker.svg", img)
	assert.ErrorIs(t, err, imagegen.ErrUnsupportedFormat)
}
