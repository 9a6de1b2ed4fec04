package text

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func goRegular(t *testing.T) *FontSource {
	t.Helper()
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource(goregular): %v", err)
	}
	return source
}

func TestNewFontSource(t *testing.T) {
	source := goRegular(t)
	if source.Name() != "Go" {
		t.Errorf("Name() = %q, want %q", source.Name(), "Go")
	}
	if source.Path() != "" {
		t.Errorf("Path() = %q, want empty for in-memory font", source.Path())
	}
}

func TestNewFontSourceEmptyData(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFontSource([]byte{}); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource([]) error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewFontSourceInvalidData(t *testing.T) {
	if _, err := NewFontSource([]byte("not a font file")); err == nil {
		t.Error("expected error for invalid font data")
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	source, err := NewFontSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewFontSourceFromFile: %v", err)
	}
	if source.Path() != path {
		t.Errorf("Path() = %q, want %q", source.Path(), path)
	}
}

func TestLoadFirst(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "go.ttf")
	if err := os.WriteFile(good, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.ttf")
	if err := os.WriteFile(bad, []byte("garbage"), 0o600); err != nil {
		t.Fatal(err)
	}

	source, err := LoadFirst([]string{filepath.Join(dir, "missing.ttf"), bad, good})
	if err != nil {
		t.Fatalf("LoadFirst: %v", err)
	}
	if source.Path() != good {
		t.Errorf("LoadFirst picked %q, want %q", source.Path(), good)
	}
}

func TestLoadFirstNone(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadFirst([]string{filepath.Join(dir, "a.ttf"), filepath.Join(dir, "b.ttf")})
	if !errors.Is(err, ErrNoFont) {
		t.Errorf("LoadFirst error = %v, want ErrNoFont", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFirst error = %v, want wrapped os.ErrNotExist", err)
	}

	if _, err := LoadFirst(nil); !errors.Is(err, ErrNoFont) {
		t.Errorf("LoadFirst(nil) error = %v, want ErrNoFont", err)
	}
}

func TestHasGlyph(t *testing.T) {
	source := goRegular(t)
	for _, r := range "AZaz09_." {
		if !source.HasGlyph(r) {
			t.Errorf("HasGlyph(%q) = false, want true", r)
		}
	}
	if source.HasGlyph('中') {
		t.Error("HasGlyph('中') = true, Go Regular has no CJK glyphs")
	}
}

func TestDefaultFontPaths(t *testing.T) {
	if len(DefaultFontPaths) != 7 {
		t.Fatalf("len(DefaultFontPaths) = %d, want 7", len(DefaultFontPaths))
	}
	if DefaultFontPaths[0] != "C:/Windows/Fonts/arial.ttf" {
		t.Errorf("first candidate = %q", DefaultFontPaths[0])
	}
}
