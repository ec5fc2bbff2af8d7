package img2css

import (
	"fmt"
	"image/color"
)

// RGB represents a color in the RGB color space with 8-bit channels,
// where each channel ranges from 0 to 255. RGB is an immutable value
// type: equality and map keying compare the three channels and nothing
// else.
type RGB struct {
	R, G, B uint8
}

// Hex renders the color as a lowercase "#rrggbb" string, two
// zero-padded hex digits per channel.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ToColor converts the color to a fully opaque color.RGBA.
func (c RGB) ToColor() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// RGBFromColor converts any color.Color to RGB, dropping alpha.
// color.Color values are alpha-premultiplied, so partially transparent
// pixels arrive darkened; flatten transparency over a matte before
// sampling when that matters.
func RGBFromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}
