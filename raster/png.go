package raster

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// rgbImage exposes the canvas buffer to image/png without copying.
// Because it reports itself opaque, the encoder writes 8-bit truecolor
// (24-bit RGB) rows with stride width*3.
type rgbImage struct {
	*Canvas
}

// Opaque reports that every pixel is fully opaque.
func (rgbImage) Opaque() bool { return true }

// EncodePNG writes the canvas to w as a 24-bit RGB PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.width <= 0 || c.height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.width, c.height)
	}
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(w, rgbImage{c}); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to the file at path.
func (c *Canvas) SavePNG(path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("raster: close %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := c.EncodePNG(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// DecodePNG reads a PNG from r into a new canvas.
func DecodePNG(r io.Reader) (*Canvas, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("raster: decode png: %w", err)
	}
	return FromImage(img), nil
}

var _ image.Image = rgbImage{}
