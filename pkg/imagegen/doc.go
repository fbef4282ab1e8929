// Package imagegen produces random pixel data and writes it out as image
// files.
//
// Grayscale returns an h×w *image.Gray and RGB an h×w×3 *RGB. Every byte is
// drawn independently and uniformly from the closed interval [0, 255].
//
// Pattern adds position-derived variants:
//
//   - Checker: square tiles (32×32 by default), one random color per tile
//   - Gradient: deterministic, red follows x, green follows y, blue fades
//   - Noise: same as RGB
//
// QRCode renders text, typically a generated phrase, through pkg/qrcode.
//
// # Output
//
// Write picks the encoder from the path's extension (.png, .jpg/.jpeg, .gif,
// .bmp, .tif/.tiff). The image is encoded in memory first and then written
// with storage.WriteFileAtomic, so the target either receives the complete
// file or is left untouched. I/O failures wrap ErrIOFailure and are not
// retried. Upload sends the same bytes to any storage.Storage.
//
//	gen := imagegen.New()
//	if err := gen.WriteRGB("out/noise.png", 400, 400); err != nil {
//		// errors.Is(err, imagegen.ErrIOFailure)
//	}
package imagegen
