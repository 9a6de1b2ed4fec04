// Package raster provides the opaque RGB pixel buffer that diagrams are
// drawn onto, together with the integer drawing primitives used by the
// layout engine.
//
// All writes are bounds-checked. Coordinates outside the canvas are
// silently dropped, so callers may place geometry partially off-canvas.
package raster

import (
	"errors"
	"image"
	"image/color"
)

// ErrInvalidSize is returned when a canvas cannot be encoded because one of
// its dimensions is not positive.
var ErrInvalidSize = errors.New("raster: invalid canvas size")

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Green = RGB{0, 255, 0}
	Blue  = RGB{0, 0, 255}
)

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Canvas is a fixed-size RGB pixel buffer, row-major, 3 bytes per pixel.
// A new canvas is white. Canvas is not safe for concurrent use.
type Canvas struct {
	width  int
	height int
	pix    []uint8
}

// NewCanvas creates a white canvas of the given size.
// Negative dimensions are treated as zero.
func NewCanvas(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	c := &Canvas{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*3),
	}
	c.Clear(White)
	return c
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Stride returns the number of bytes per row.
func (c *Canvas) Stride() int {
	return c.width * 3
}

// Pix returns the raw pixel data (RGB, row-major).
func (c *Canvas) Pix() []uint8 {
	return c.pix
}

// In reports whether (x, y) lies inside the canvas.
func (c *Canvas) In(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Set writes col at (x, y). Out-of-range coordinates are ignored.
func (c *Canvas) Set(x, y int, col RGB) {
	if !c.In(x, y) {
		return
	}
	i := (y*c.width + x) * 3
	c.pix[i+0] = col.R
	c.pix[i+1] = col.G
	c.pix[i+2] = col.B
}

// Blend mixes col into the pixel at (x, y) with the given alpha in [0, 1]:
//
//	new = (1-alpha)*old + alpha*col
//
// per channel, truncated toward zero. Out-of-range coordinates are ignored.
func (c *Canvas) Blend(x, y int, col RGB, alpha float32) {
	if !c.In(x, y) {
		return
	}
	i := (y*c.width + x) * 3
	c.pix[i+0] = blendChannel(c.pix[i+0], col.R, alpha)
	c.pix[i+1] = blendChannel(c.pix[i+1], col.G, alpha)
	c.pix[i+2] = blendChannel(c.pix[i+2], col.B, alpha)
}

func blendChannel(dst, src uint8, alpha float32) uint8 {
	return uint8((1-alpha)*float32(dst) + alpha*float32(src))
}

// RGBAt returns the color at (x, y), or White outside the canvas.
func (c *Canvas) RGBAt(x, y int) RGB {
	if !c.In(x, y) {
		return White
	}
	i := (y*c.width + x) * 3
	return RGB{c.pix[i+0], c.pix[i+1], c.pix[i+2]}
}

// Clear fills the entire canvas with col.
func (c *Canvas) Clear(col RGB) {
	for i := 0; i < len(c.pix); i += 3 {
		c.pix[i+0] = col.R
		c.pix[i+1] = col.G
		c.pix[i+2] = col.B
	}
}

// Clone returns a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	pix := make([]uint8, len(c.pix))
	copy(pix, c.pix)
	return &Canvas{width: c.width, height: c.height, pix: pix}
}

// ToImage converts the canvas to an opaque image.RGBA.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for i, j := 0, 0; i < len(c.pix); i, j = i+3, j+4 {
		img.Pix[j+0] = c.pix[i+0]
		img.Pix[j+1] = c.pix[i+1]
		img.Pix[j+2] = c.pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// FromImage creates a canvas from img, dropping alpha.
func FromImage(img image.Image) *Canvas {
	b := img.Bounds()
	c := NewCanvas(b.Dx(), b.Dy())
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			c.Set(x, y, RGB{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8)})
		}
	}
	return c
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.RGBAt(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}
