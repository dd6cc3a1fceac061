// Package render rasterizes the cart-pole scene into a fixed 64x64 RGB
// frame. Rasterization is pure and deterministic: no anti-aliasing, no
// randomness, pixel centers tested against exact scene geometry.
package render

import "image"

// Frame dimensions. The observation shape is fixed; arbitrary resolutions
// are out of scope.
const (
	Width    = 64
	Height   = 64
	Channels = 3
)

// Frame is a Width x Height x Channels buffer of 8-bit color values, row
// major, top row first. It is a value type: every render returns a fresh
// copy, so downstream consumers can never mutate an observation another
// holder sees.
type Frame struct {
	pix [Width * Height * Channels]uint8
}

// At returns the color of the pixel at column x, row y (row 0 is the top).
func (f *Frame) At(x, y int) (r, g, b uint8) {
	i := (y*Width + x) * Channels
	return f.pix[i], f.pix[i+1], f.pix[i+2]
}

func (f *Frame) set(x, y int, r, g, b uint8) {
	i := (y*Width + x) * Channels
	f.pix[i], f.pix[i+1], f.pix[i+2] = r, g, b
}

// Bytes returns the raw pixel data as a copy.
func (f *Frame) Bytes() []byte {
	out := make([]byte, len(f.pix))
	copy(out, f.pix[:])
	return out
}

// RGBA converts the frame to a standard library image for encoding.
func (f *Frame) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			r, g, b := f.At(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = 0xff
		}
	}
	return img
}
