// Package qrcode renders text as QR code images through
// github.com/skip2/go-qrcode.
//
// soupkit uses it for "readable noise": placeholder images that encode a
// generated phrase, so a scanner shows the filler text behind the picture.
//
//	img, err := qrcode.Image("Tall tall tree grows slowly.", 256)
//	png, err := qrcode.PNG("He was as tall as a tree.", 0) // 256px default
//
// Empty or whitespace-only content returns ErrEmptyContent. A non-positive
// size falls back to DefaultSize.
package qrcode
