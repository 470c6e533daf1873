// Package color provides a linear RGB value type used throughout the engine.
package color

import "github.com/chewxy/math32"

// RGB is a linear color with float32 channels. Values may exceed 1 during
// accumulation; MaxToOne clamps before display.
type RGB struct {
	R, G, B float32
}

// NewRGB creates a new color
func NewRGB(r, g, b float32) RGB {
	return RGB{R: r, G: g, B: b}
}

// Named colors
var (
	Red     = RGB{1, 0, 0}
	Blue    = RGB{0, 0, 1}
	Green   = RGB{0, 1, 0}
	Yellow  = RGB{1, 1, 0}
	Cyan    = RGB{0, 1, 1}
	Magenta = RGB{1, 0, 1}
	White   = RGB{1, 1, 1}
	Black   = RGB{0, 0, 0}
	Gray    = RGB{0.5, 0.5, 0.5}
)

// Add returns the component-wise sum
func (c RGB) Add(other RGB) RGB {
	return RGB{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the component-wise difference
func (c RGB) Subtract(other RGB) RGB {
	return RGB{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the component-wise product
func (c RGB) Multiply(other RGB) RGB {
	return RGB{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Scale returns the color scaled by a scalar
func (c RGB) Scale(s float32) RGB {
	return RGB{c.R * s, c.G * s, c.B * s}
}

// Divide returns the color divided by a scalar
func (c RGB) Divide(s float32) RGB {
	return RGB{c.R / s, c.G / s, c.B / s}
}

// Luminance returns the perceptual luminance using Rec. 709 weights
func (c RGB) Luminance() float32 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// MaxToOne divides by the largest channel when it exceeds 1, preserving hue.
// Serves as a cheap exposure clamp before 8-bit packing.
func (c RGB) MaxToOne() RGB {
	maxValue := math32.Max(c.R, math32.Max(c.G, c.B))
	if maxValue > 1 {
		return c.Divide(maxValue)
	}
	return c
}

// Lerp linearly interpolates between two colors
func Lerp(c1, c2 RGB, factor float32) RGB {
	return RGB{
		R: c1.R + (c2.R-c1.R)*factor,
		G: c1.G + (c2.G-c1.G)*factor,
		B: c1.B + (c2.B-c1.B)*factor,
	}
}
