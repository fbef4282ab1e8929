package qrcode_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/soupkit/pkg/qrcode"
)

func TestImage(t *testing.T) {
	t.Parallel()

	t.Run("requested size", func(t *testing.T) {
		t.Parallel()
		img, err := qrcode.Image("He was as tall as a tree.", 300)
		require.NoError(t, err)
		assert.Equal(t, 300, img.Bounds().Dx())
		assert.Equal(t, 300, img.Bounds().Dy())
	})

	t.Run("default size", func(t *testing.T) {
		t.Parallel()
		for _, size := range []int{0, -10} {
			img, err := qrcode.Image("soup", size)
			require.NoError(t, err)
			assert.Equal(t, qrcode.DefaultSize, img.Bounds().Dx())
		}
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		for _, content := range []string{"", "  \t\n"} {
			img, err := qrcode.Image(content, 100)
			require.ErrorIs(t, err, qrcode.ErrEmptyContent)
			assert.Nil(t, img)
		}
	})

	t.Run("content too long", func(t *testing.T) {
		t.Parallel()
		_, err := qrcode.Image(strings.Repeat("soup ", 2000), 100)
		assert.ErrorIs(t, err, qrcode.ErrFailedToGenerateQRCode)
	})
}

func TestPNG(t *testing.T) {
	t.Parallel()

	data, err := qrcode.PNG("Its not rocket science, just slowly grow it.", 128)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())

	_, err = qrcode.PNG("", 128)
	assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
}
