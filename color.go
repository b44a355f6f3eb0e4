package raytracer

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an RGB color with nominal channel range [0, 1]. Channels may
// leave that range during arithmetic; clamping happens only when a color is
// quantized to a Pixel.
type Color struct {
	R, G, B float64
}

// Pixel is an 8-bit RGB device pixel produced by quantizing a Color.
type Pixel [3]uint8

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor returns the color (r, g, b).
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the channelwise sum c + o.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Sub returns the channelwise difference c - o.
func (c Color) Sub(o Color) Color {
	return Color{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Scale returns c with every channel multiplied by k.
func (c Color) Scale(k float64) Color {
	return Color{c.R * k, c.G * k, c.B * k}
}

// Mul returns the channelwise (Hadamard) product of c and o.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Equal reports whether c and o are approximately equal channelwise.
func (c Color) Equal(o Color) bool {
	return ApproxEqual(c.R, o.R) && ApproxEqual(c.G, o.G) && ApproxEqual(c.B, o.B)
}

// Pixel quantizes c to 8 bits per channel.
func (c Color) Pixel() Pixel {
	return Quantize(c)
}

func (c Color) String() string {
	return fmt.Sprintf("color(%g, %g, %g)", c.R, c.G, c.B)
}

// Quantize maps each channel of c to a byte: values at or above 1 become
// 255, values at or below 0 become 0, everything else rounds 255*v to the
// nearest integer.
func Quantize(c Color) Pixel {
	return Pixel{quantizeChannel(c.R), quantizeChannel(c.G), quantizeChannel(c.B)}
}

func quantizeChannel(v float64) uint8 {
	switch {
	case v >= 1:
		return 255
	case v <= 0, math.IsNaN(v):
		return 0
	default:
		return uint8(math.Round(255 * v))
	}
}

// RGBA implements color.Color. Pixels are always opaque.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: 0xff}.RGBA()
}
