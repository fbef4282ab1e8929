package qrcode

import (
	"errors"
	"image"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyContent is returned when content string is empty or only whitespace
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrFailedToGenerateQRCode is returned when the QR code generation fails.
	ErrFailedToGenerateQRCode = errors.New("failed to generate QR code")
)

// DefaultSize is the side length in pixels used when no size is specified.
const DefaultSize = 256

// Image returns content encoded as a size×size QR code image.
func Image(content string, size int) (image.Image, error) {
	q, err := build(content)
	if err != nil {
		return nil, err
	}
	return q.Image(normalizeSize(size)), nil
}

// PNG returns content encoded as a size×size QR code in PNG format.
func PNG(content string, size int) ([]byte, error) {
	q, err := build(content)
	if err != nil {
		return nil, err
	}
	png, err := q.PNG(normalizeSize(size))
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}
	return png, nil
}

func build(content string) (*skipqrcode.QRCode, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	q, err := skipqrcode.New(content, skipqrcode.Medium)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}
	return q, nil
}

func normalizeSize(size int) int {
	if size <= 0 {
		return DefaultSize
	}
	return size
}
