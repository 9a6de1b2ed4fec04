package text

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// DefaultFontPaths is the ordered list of system fonts tried by LoadFirst
// when no explicit font is configured.
var DefaultFontPaths = []string{
	"C:/Windows/Fonts/arial.ttf",
	"C:/Windows/Fonts/times.ttf",
	"C:/Windows/Fonts/calibri.ttf",
	"C:/Windows/Fonts/segoeui.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/Library/Fonts/Arial.ttf",
}

// FontSource represents a loaded scalable font.
// FontSource is read-only after creation and safe for concurrent use;
// per-goroutine state lives in Rasterizer.
type FontSource struct {
	font *sfnt.Font

	// cmap answers coverage queries. Nil when go-text could not parse the
	// face; HasGlyph then falls back to the sfnt cmap.
	cmap *gotext.Face

	name string
	path string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &FontSource{font: f}
	if face, err := gotext.ParseTTF(bytes.NewReader(dataCopy)); err == nil {
		s.cmap = face
	}
	s.name = extractFontName(f)
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	s, err := NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.path = path
	return s, nil
}

// LoadFirst tries every path in order and returns the first font that
// loads. When none does, the returned error wraps ErrNoFont and every
// individual failure.
func LoadFirst(paths []string) (*FontSource, error) {
	errs := []error{ErrNoFont}
	for _, p := range paths {
		s, err := NewFontSourceFromFile(p)
		if err == nil {
			return s, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	return s.name
}

// Path returns the file the font was loaded from, or "" for in-memory data.
func (s *FontSource) Path() string {
	return s.path
}

// HasGlyph reports whether the font maps r to a real glyph.
// Runes without one still render, as the font's .notdef glyph.
func (s *FontSource) HasGlyph(r rune) bool {
	if s.cmap != nil {
		_, ok := s.cmap.NominalGlyph(r)
		return ok
	}
	idx, err := s.font.GlyphIndex(nil, r)
	return err == nil && idx != 0
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(f *sfnt.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
