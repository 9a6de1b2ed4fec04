package raster

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestEncodePNGRoundTrip(t *testing.T) {
	c := NewCanvas(32, 16)
	c.Rectangle(2, 2, 20, 10, Black, false)
	c.Triangle(10, 8, 6, Green)
	c.Blend(25, 5, Blue, 0.3)

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 32 || cfg.Height != 16 {
		t.Errorf("decoded size = %dx%d, want 32x16", cfg.Width, cfg.Height)
	}

	back, err := DecodePNG(&buf)
	if err != nil {
		t.Fatalf("DecodePNG: %v", err)
	}
	for i, v := range c.Pix() {
		if back.Pix()[i] != v {
			t.Fatalf("round trip differs at byte %d: got %d, want %d", i, back.Pix()[i], v)
		}
	}
}

// TestEncodePNGIsTruecolor checks the IHDR color type is 2 (RGB, 8-bit).
func TestEncodePNGIsTruecolor(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCanvas(4, 4).EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()
	// 8 byte signature, 4 length, 4 "IHDR", 4 width, 4 height, depth, color type.
	if depth, ctype := b[24], b[25]; depth != 8 || ctype != 2 {
		t.Errorf("bit depth %d color type %d, want 8 and 2", depth, ctype)
	}
}

func TestEncodePNGInvalidSize(t *testing.T) {
	var buf bytes.Buffer
	err := NewCanvas(0, 10).EncodePNG(&buf)
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("EncodePNG(0x10) error = %v, want ErrInvalidSize", err)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	c := NewCanvas(8, 8)
	c.Set(1, 1, Black)
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	back, err := DecodePNG(f)
	if err != nil {
		t.Fatal(err)
	}
	if back.RGBAt(1, 1) != Black {
		t.Error("saved pixel lost")
	}
}

func TestSavePNGUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "out.png")
	if err := NewCanvas(8, 8).SavePNG(path); err == nil {
		t.Error("SavePNG into a missing directory succeeded")
	}
}
