// SPDX-License-Identifier: Unlicense OR MIT

// Package f32color provides a float32 color for uniforms, vertex
// attributes and clear colors.
package f32color

import (
	"image/color"
	"math"
)

// RGBA is a 32 bit floating point linear color with straight alpha.
type RGBA struct {
	R, G, B, A float32
}

// Array returns rgba values in a [4]float32 array.
func (col RGBA) Array() [4]float32 {
	return [4]float32{col.R, col.G, col.B, col.A}
}

// Float32 returns r, g, b, a values.
func (col RGBA) Float32() (r, g, b, a float32) {
	return col.R, col.G, col.B, col.A
}

// Opaque returns the color without alpha component.
func (col RGBA) Opaque() RGBA {
	col.A = 1.0
	return col
}

// FromNRGBA converts c without gamma correction, mapping each 8 bit
// channel to [0, 1].
func FromNRGBA(c color.NRGBA) RGBA {
	return RGBA{
		R: float32(c.R) / 0xff,
		G: float32(c.G) / 0xff,
		B: float32(c.B) / 0xff,
		A: float32(c.A) / 0xff,
	}
}

// NRGBA converts col to 8 bit channels without gamma correction.
func (col RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(col.R),
		G: to8(col.G),
		B: to8(col.B),
		A: to8(col.A),
	}
}

// LinearFromSRGB converts from col in the sRGB colorspace to RGBA.
func LinearFromSRGB(col color.NRGBA) RGBA {
	return RGBA{
		R: sRGBToLinear(float32(col.R) / 0xff),
		G: sRGBToLinear(float32(col.G) / 0xff),
		B: sRGBToLinear(float32(col.B) / 0xff),
		A: float32(col.A) / 0xff,
	}
}

// SRGB converts col to the sRGB colorspace. Fully transparent colors
// convert to the zero color.
func (col RGBA) SRGB() color.NRGBA {
	if col.A == 0 {
		return color.NRGBA{}
	}
	return color.NRGBA{
		R: to8(linearTosRGB(col.R)),
		G: to8(linearTosRGB(col.G)),
		B: to8(linearTosRGB(col.B)),
		A: to8(col.A),
	}
}

func to8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	}
	return uint8(v*0xff + .5)
}

// linearTosRGB transforms color value from linear to sRGB.
func linearTosRGB(c float32) float32 {
	// Formula from EXT_sRGB.
	switch {
	case c <= 0:
		return 0
	case 0 < c && c < 0.0031308:
		return 12.92 * c
	case 0.0031308 <= c && c < 1:
		return 1.055*float32(math.Pow(float64(c), 1/2.4)) - 0.055
	}
	return 1
}

// sRGBToLinear transforms color value from sRGB to linear.
func sRGBToLinear(c float32) float32 {
	// Formula from EXT_sRGB.
	if c <= 0.04045 {
		return c / 12.92
	}
	return float32(math.Pow(float64((c+0.055)/1.055), 2.4))
}
