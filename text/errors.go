package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoFont is returned by LoadFirst when none of the candidate paths
	// holds a loadable font.
	ErrNoFont = errors.New("text: no loadable font")
)

// GlyphError reports a rune whose glyph could not be loaded.
type GlyphError struct {
	Rune rune
	Err  error
}

func (e *GlyphError) Error() string {
	return "text: load glyph " + string(e.Rune) + ": " + e.Err.Error()
}

func (e *GlyphError) Unwrap() error {
	return e.Err
}
