package text

import (
	"unicode/utf8"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fbtpng/raster"
)

// Style selects synthetic text styles. Styles combine with |.
type Style uint8

const (
	// Italic shears glyph outlines with ItalicShear.
	Italic Style = 1 << iota

	// Bold redraws each glyph at the eight surrounding one-pixel offsets
	// before the centered pass.
	Bold
)

// Regular is the zero Style.
const Regular Style = 0

// Target receives alpha-blended text pixels. *raster.Canvas implements
// Target; out-of-range coordinates must be ignored by the implementation.
type Target interface {
	Blend(x, y int, c raster.RGB, alpha float32)
}

// fallbackAdvance is the per-rune width estimate, as a fraction of the
// font size, used when no font is loaded.
const fallbackAdvance = 0.6

// glyphLoader is the part of the font context a Renderer draws through.
// *Rasterizer implements it.
type glyphLoader interface {
	Push(size int, m Matrix) (restore func())
	Advance(ch rune) (fixed.Int26_6, error)
	LoadGlyph(ch rune) (*Glyph, error)
}

// Renderer measures and draws single-line labels.
// A Renderer without a font measures heuristically and draws nothing.
//
// Renderer is not safe for concurrent use.
type Renderer struct {
	rast   *Rasterizer
	glyphs glyphLoader
}

// NewRenderer creates a renderer for src. src may be nil.
func NewRenderer(src *FontSource) *Renderer {
	if src == nil {
		return &Renderer{}
	}
	rast := NewRasterizer(src)
	return &Renderer{rast: rast, glyphs: rast}
}

// HasFont reports whether the renderer has a font to draw with.
func (r *Renderer) HasFont() bool {
	return r != nil && r.rast != nil
}

// Rasterizer returns the font context, or nil without a font.
func (r *Renderer) Rasterizer() *Rasterizer {
	if r == nil {
		return nil
	}
	return r.rast
}

// Measure returns the pen advance of s at size pixels. Runes whose glyph
// fails to load contribute nothing. Without a font the width is estimated
// as runes*size*0.6, truncated.
func (r *Renderer) Measure(s string, size int) int {
	if !r.HasFont() {
		return int(float64(utf8.RuneCountInString(s)*size) * fallbackAdvance)
	}

	restore := r.glyphs.Push(size, Identity())
	defer restore()

	width := 0
	for _, ch := range s {
		adv, err := r.glyphs.Advance(ch)
		if err != nil {
			continue
		}
		width += int(adv >> 6)
	}
	return width
}

// Missing returns the runes of s that the font has no glyph for. Such
// runes are drawn as the font's .notdef glyph. Without a font every rune
// is missing.
func (r *Renderer) Missing(s string) []rune {
	var out []rune
	for _, ch := range s {
		if !r.HasFont() || !r.rast.Source().HasGlyph(ch) {
			out = append(out, ch)
		}
	}
	return out
}

// Draw blends s onto dst with its pen starting at (x, y) in color c.
//
// y is treated as the vertical center of the label rather than a true
// baseline: every glyph row is shifted down by size/2. The transform of the
// font context is restored to identity when Draw returns.
func (r *Renderer) Draw(dst Target, s string, x, y int, c raster.RGB, size int, style Style) {
	if !r.HasFont() {
		return
	}

	m := Identity()
	if style&Italic != 0 {
		m = ItalicShear()
	}
	restore := r.glyphs.Push(size, m)
	defer restore()

	if style&Bold != 0 {
		penX := x
		for _, ch := range s {
			g, err := r.glyphs.LoadGlyph(ch)
			if err != nil {
				continue
			}
			for ox := -1; ox <= 1; ox++ {
				for oy := -1; oy <= 1; oy++ {
					if ox == 0 && oy == 0 {
						continue
					}
					blit(dst, g, penX, y, size, ox, oy, c)
				}
			}
			penX += int(g.AdvanceX >> 6)
		}
	}

	penX := x
	for _, ch := range s {
		g, err := r.glyphs.LoadGlyph(ch)
		if err != nil {
			continue
		}
		blit(dst, g, penX, y, size, 0, 0, c)
		penX += int(g.AdvanceX >> 6)
	}
}

// blit blends every covered pixel of g, offset by (ox, oy), onto dst.
func blit(dst Target, g *Glyph, penX, y, size, ox, oy int, c raster.RGB) {
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			a := g.Coverage[row*g.Stride+col]
			if a == 0 {
				continue
			}
			px := penX + g.BearingX + col + ox
			py := y - g.BearingY + row + size/2 + oy
			dst.Blend(px, py, c, float32(a)/255)
		}
	}
}
