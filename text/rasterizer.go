package text

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Glyph is a rasterized glyph: a coverage bitmap plus layout metrics.
// Coverage is row-major, Stride bytes per row, one byte (0-255) per pixel.
// Glyphs returned by a Rasterizer are shared and must not be modified.
type Glyph struct {
	Width    int
	Height   int
	Stride   int
	Coverage []byte

	// BearingX is the offset from the pen position to the left edge of
	// the bitmap. BearingY is the distance from the baseline up to the
	// top row of the bitmap.
	BearingX int
	BearingY int

	// AdvanceX is the horizontal pen movement after this glyph.
	AdvanceX fixed.Int26_6
}

// CoverageAt returns the coverage at (col, row), or 0 outside the bitmap.
func (g *Glyph) CoverageAt(col, row int) uint8 {
	if col < 0 || col >= g.Width || row < 0 || row >= g.Height {
		return 0
	}
	return g.Coverage[row*g.Stride+col]
}

// outlineSeg is an sfnt segment after transformation, in pixels (y down).
type outlineSeg struct {
	op  sfnt.SegmentOp
	pts [3][2]float32
}

// Rasterizer is the font context: a face plus the current pixel size and
// transform. Loaded glyphs are kept in a small LRU keyed by rune, size and
// transform.
//
// Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	src    *FontSource
	buf    sfnt.Buffer
	size   int
	matrix Matrix

	vec     *vector.Rasterizer
	scratch []outlineSeg
	glyphs  *glyphCache
}

// NewRasterizer creates a font context for src with an identity transform.
func NewRasterizer(src *FontSource) *Rasterizer {
	return &Rasterizer{
		src:    src,
		size:   10,
		matrix: Identity(),
		glyphs: newGlyphCache(defaultGlyphCacheSize),
	}
}

// Source returns the face this context renders.
func (r *Rasterizer) Source() *FontSource {
	return r.src
}

// SetPixelSize sets the em size in pixels for subsequent glyph loads.
func (r *Rasterizer) SetPixelSize(px int) {
	r.size = px
}

// PixelSize returns the current em size in pixels.
func (r *Rasterizer) PixelSize() int {
	return r.size
}

// SetTransform sets the outline transform for subsequent glyph loads.
func (r *Rasterizer) SetTransform(m Matrix) {
	r.matrix = m
}

// Transform returns the current outline transform.
func (r *Rasterizer) Transform() Matrix {
	return r.matrix
}

// Push sets the pixel size and transform and returns a function that
// restores the identity transform. Callers defer the restore so the
// transform never outlives the draw that set it:
//
//	restore := r.Push(12, ItalicShear())
//	defer restore()
func (r *Rasterizer) Push(size int, m Matrix) (restore func()) {
	r.SetPixelSize(size)
	r.SetTransform(m)
	return func() {
		r.SetTransform(Identity())
	}
}

func (r *Rasterizer) ppem() fixed.Int26_6 {
	return fixed.I(r.size)
}

// glyphIndex maps ch to a glyph. Unmapped runes resolve to glyph 0, the
// font's .notdef glyph.
func (r *Rasterizer) glyphIndex(ch rune) (sfnt.GlyphIndex, error) {
	idx, err := r.src.font.GlyphIndex(&r.buf, ch)
	if err != nil {
		return 0, &GlyphError{Rune: ch, Err: err}
	}
	return idx, nil
}

// Advance returns the hinted advance of ch at the current size, after the
// current transform.
func (r *Rasterizer) Advance(ch rune) (fixed.Int26_6, error) {
	idx, err := r.glyphIndex(ch)
	if err != nil {
		return 0, err
	}
	return r.advance(ch, idx)
}

func (r *Rasterizer) advance(ch rune, idx sfnt.GlyphIndex) (fixed.Int26_6, error) {
	adv, err := r.src.font.GlyphAdvance(&r.buf, idx, r.ppem(), font.HintingFull)
	if err != nil {
		return 0, &GlyphError{Rune: ch, Err: err}
	}
	return fixed.Int26_6(r.matrix.scaleAdvance(int32(adv))), nil
}

// LoadGlyph rasterizes ch at the current size and transform.
// Glyphs without contours (such as space) have an empty bitmap but a
// valid advance.
func (r *Rasterizer) LoadGlyph(ch rune) (*Glyph, error) {
	key := glyphKey{ch: ch, size: r.size, m: r.matrix}
	if g, ok := r.glyphs.get(key); ok {
		return g, nil
	}
	g, err := r.loadGlyph(ch)
	if err != nil {
		return nil, err
	}
	r.glyphs.set(key, g)
	return g, nil
}

func (r *Rasterizer) loadGlyph(ch rune) (*Glyph, error) {
	idx, err := r.glyphIndex(ch)
	if err != nil {
		return nil, err
	}

	segments, err := r.src.font.LoadGlyph(&r.buf, idx, r.ppem(), nil)
	if err != nil {
		return nil, &GlyphError{Rune: ch, Err: err}
	}

	// segments aliases r.buf, so transform it before the next font call.
	minX, minY, maxX, maxY := r.transformSegments(segments)

	adv, err := r.advance(ch, idx)
	if err != nil {
		return nil, err
	}

	g := &Glyph{AdvanceX: adv}
	if len(r.scratch) == 0 || maxX <= minX || maxY <= minY {
		return g, nil
	}

	x0 := int(math.Floor(float64(minX)))
	y0 := int(math.Floor(float64(minY)))
	x1 := int(math.Ceil(float64(maxX)))
	y1 := int(math.Ceil(float64(maxY)))
	g.Width = x1 - x0
	g.Height = y1 - y0
	g.BearingX = x0
	g.BearingY = -y0

	mask := r.rasterize(g.Width, g.Height, float32(x0), float32(y0))
	g.Stride = mask.Stride
	g.Coverage = mask.Pix
	return g, nil
}

// transformSegments copies segments into r.scratch, converting to pixels
// and applying the current transform, and returns the control-point bounds.
func (r *Rasterizer) transformSegments(segments sfnt.Segments) (minX, minY, maxX, maxY float32) {
	r.scratch = r.scratch[:0]
	minX, minY = math.MaxFloat32, math.MaxFloat32
	maxX, maxY = -math.MaxFloat32, -math.MaxFloat32

	identity := r.matrix.IsIdentity()
	for _, seg := range segments {
		out := outlineSeg{op: seg.Op}
		for i := 0; i < pointCount(seg.Op); i++ {
			x := float32(seg.Args[i].X) / 64
			y := float32(seg.Args[i].Y) / 64
			if !identity {
				x, y = r.matrix.apply(x, y)
			}
			out.pts[i] = [2]float32{x, y}
			minX = min(minX, x)
			minY = min(minY, y)
			maxX = max(maxX, x)
			maxY = max(maxY, y)
		}
		r.scratch = append(r.scratch, out)
	}
	return minX, minY, maxX, maxY
}

// rasterize fills the transformed outline into a w x h coverage mask whose
// origin sits at (ox, oy) in glyph space.
func (r *Rasterizer) rasterize(w, h int, ox, oy float32) *image.Alpha {
	if r.vec == nil {
		r.vec = vector.NewRasterizer(w, h)
	} else {
		r.vec.Reset(w, h)
	}
	// Reset restores draw.Over.
	r.vec.DrawOp = draw.Src

	for _, s := range r.scratch {
		p := s.pts
		switch s.op {
		case sfnt.SegmentOpMoveTo:
			r.vec.MoveTo(p[0][0]-ox, p[0][1]-oy)
		case sfnt.SegmentOpLineTo:
			r.vec.LineTo(p[0][0]-ox, p[0][1]-oy)
		case sfnt.SegmentOpQuadTo:
			r.vec.QuadTo(p[0][0]-ox, p[0][1]-oy, p[1][0]-ox, p[1][1]-oy)
		case sfnt.SegmentOpCubeTo:
			r.vec.CubeTo(p[0][0]-ox, p[0][1]-oy, p[1][0]-ox, p[1][1]-oy, p[2][0]-ox, p[2][1]-oy)
		}
	}
	r.vec.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.vec.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

func pointCount(op sfnt.SegmentOp) int {
	switch op {
	case sfnt.SegmentOpQuadTo:
		return 2
	case sfnt.SegmentOpCubeTo:
		return 3
	default:
		return 1
	}
}
