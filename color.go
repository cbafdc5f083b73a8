package gfx

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components,
// each in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// White is the default draw color when no color sequence is supplied.
var White = RGBA{R: 1, G: 1, B: 1, A: 1}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// Repeat builds a color sequence that applies this color to n vertices.
func (c RGBA) Repeat(n int) ColorSeq {
	seq := make(ColorSeq, 0, 4*n)
	for i := 0; i < n; i++ {
		seq = append(seq, float32(c.R), float32(c.G), float32(c.B), float32(c.A))
	}
	return seq
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
