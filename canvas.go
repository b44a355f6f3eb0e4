package raytracer

import (
	"image"
	"image/color"
	"math"
)

// Canvas is a fixed-size pixel buffer. Row 0 is the top of the image and
// pixels are stored row-major. Writes outside the canvas are clipped.
//
// Canvas implements image.Image, so it can be handed directly to any
// standard encoder.
type Canvas struct {
	width  int
	height int
	pix    []Pixel
}

// NewCanvas allocates a black canvas. Negative dimensions are treated as
// zero; a zero-area canvas is valid and every write to it is clipped.
func NewCanvas(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// InBounds reports whether (x, y) addresses a pixel of the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// SetPixel writes p at (x, y) and reports whether the write landed.
// Out-of-bounds writes are silently dropped.
func (c *Canvas) SetPixel(x, y int, p Pixel) bool {
	if !c.InBounds(x, y) {
		return false
	}
	c.pix[y*c.width+x] = p
	return true
}

// PixelAt returns the pixel at (x, y), or black when out of bounds.
func (c *Canvas) PixelAt(x, y int) Pixel {
	if !c.InBounds(x, y) {
		return Pixel{}
	}
	return c.pix[y*c.width+x]
}

// Fill sets every pixel to p.
func (c *Canvas) Fill(p Pixel) {
	for i := range c.pix {
		c.pix[i] = p
	}
}

// Paint writes p to every in-bounds pixel of the brush centered at (x, y)
// and returns the number of pixels written.
func (c *Canvas) Paint(x, y, radius int, p Pixel) int {
	n := 0
	for _, pt := range c.Neighbors(x, y, radius) {
		if c.SetPixel(pt.X, pt.Y, p) {
			n++
		}
	}
	return n
}

// Neighbors returns every in-bounds coordinate (x+dx, y+dy) with
// |dx| < radius and |dy| < radius, in row-major order. The center is
// included when it is in bounds. A radius of zero or less yields nothing.
func (c *Canvas) Neighbors(x, y, radius int) []image.Point {
	if radius <= 0 {
		return nil
	}
	var out []image.Point
	for py := y - radius + 1; py < y+radius; py++ {
		for px := x - radius + 1; px < x+radius; px++ {
			if c.InBounds(px, py) {
				out = append(out, image.Point{X: px, Y: py})
			}
		}
	}
	return out
}

// Bytes returns a copy of the pixel buffer as packed RGB triples,
// row-major and top-down: width*height*3 bytes.
func (c *Canvas) Bytes() []byte {
	out := make([]byte, 0, len(c.pix)*3)
	for _, p := range c.pix {
		out = append(out, p[0], p[1], p[2])
	}
	return out
}

// CopyRGBA writes the canvas into dst as opaque RGBA bytes, row-major and
// top-down, and returns the number of pixels copied. A short dst receives
// only the leading pixels.
func (c *Canvas) CopyRGBA(dst []byte) int {
	n := min(len(c.pix), len(dst)/4)
	for i, p := range c.pix[:n] {
		j := 4 * i
		dst[j+0] = p[0]
		dst[j+1] = p[1]
		dst[j+2] = p[2]
		dst[j+3] = 0xff
	}
	return n
}

// Clone returns an independent copy of c.
func (c *Canvas) Clone() *Canvas {
	pix := make([]Pixel, len(c.pix))
	copy(pix, c.pix)
	return &Canvas{width: c.width, height: c.height, pix: pix}
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.width, c.height) }

// At implements image.Image.
func (c *Canvas) At(x, y int) color.Color { return c.PixelAt(x, y) }

// Project maps a simulation position to the raster pixel it lands on and
// reports whether that pixel is on the canvas.
func (c *Canvas) Project(pos Point) (x, y int, ok bool) {
	x, y = ToRaster(pos.X, pos.Y, c.height)
	return x, y, c.InBounds(x, y)
}

// rasterLimit bounds raster coordinates so the float to int conversion is
// always defined and height - y cannot overflow a 32-bit int.
const rasterLimit = 1 << 30

// ToRaster converts a simulation coordinate, where y grows upward, to the
// raster coordinate of a canvas of the given height, where row 0 is the
// top: (x, height - y). Coordinates are rounded to the nearest pixel.
//
// Inputs are saturated to ±2^30 before conversion, and NaN maps to -2^30,
// so non-finite or huge coordinates always land far off any canvas.
func ToRaster(x, y float64, height int) (int, int) {
	return rasterCoord(x), height - rasterCoord(y)
}

func rasterCoord(v float64) int {
	switch {
	case math.IsNaN(v), v <= -rasterLimit:
		return -rasterLimit
	case v >= rasterLimit:
		return rasterLimit
	}
	return int(math.Round(v))
}
