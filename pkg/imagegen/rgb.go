package imagegen

import (
	"image"
	"image/color"
)

// RGB is an in-memory image of opaque 8-bit RGB pixels, three bytes per pixel.
// It implements image.Image so any codec can encode it.
type RGB struct {
	// Pix holds the pixels in R, G, B order, row-major.
	Pix []uint8
	// Stride is the Pix distance in bytes between vertically adjacent pixels.
	Stride int
	Rect   image.Rectangle
}

// NewRGB returns a zeroed RGB image with the given bounds.
func NewRGB(r image.Rectangle) *RGB {
	return &RGB{
		Pix:    make([]uint8, 3*r.Dx()*r.Dy()),
		Stride: 3 * r.Dx(),
		Rect:   r,
	}
}

func (p *RGB) ColorModel() color.Model { return color.RGBAModel }

func (p *RGB) Bounds() image.Rectangle { return p.Rect }

func (p *RGB) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

// RGBAAt returns the pixel at (x, y) with full alpha.
func (p *RGB) RGBAAt(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	return color.RGBA{R: s[0], G: s[1], B: s[2], A: 0xff}
}

// SetRGB sets the pixel at (x, y). Points outside the bounds are ignored.
func (p *RGB) SetRGB(x, y int, r, g, b uint8) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	s[0], s[1], s[2] = r, g, b
}

// PixOffset returns the index of the first element of Pix for the pixel at (x, y).
func (p *RGB) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

// Opaque reports whether the image is fully opaque, which is always true.
func (p *RGB) Opaque() bool { return true }
