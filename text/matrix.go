package text

// Matrix is a 2x2 linear transform in 16.16 fixed point, applied to glyph
// outlines in y-up font space:
//
//	x' = XX*x + XY*y
//	y' = YX*x + YY*y
type Matrix struct {
	XX, XY int32
	YX, YY int32
}

// one is 1.0 in 16.16 fixed point.
const one = 0x10000

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{XX: one, YY: one}
}

// ItalicShear returns the transform used for synthetic italic: a
// horizontal shear of 0x6000/0x10000 = 0.375.
func ItalicShear() Matrix {
	return Matrix{XX: one, XY: 0x06000, YX: 0, YY: one}
}

// IsIdentity reports whether m is the identity transform.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// apply maps a y-down outline point (as produced by sfnt) through m.
// The y axis is flipped around the multiplication because m is defined
// in y-up space.
func (m Matrix) apply(x, y float32) (float32, float32) {
	xx := float32(m.XX) / one
	xy := float32(m.XY) / one
	yx := float32(m.YX) / one
	yy := float32(m.YY) / one
	return xx*x - xy*y, -yx*x + yy*y
}

// scaleAdvance transforms a horizontal advance in 26.6 fixed point and
// returns the x component.
func (m Matrix) scaleAdvance(adv int32) int32 {
	return int32((int64(adv) * int64(m.XX)) >> 16)
}
