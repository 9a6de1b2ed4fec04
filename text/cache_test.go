package text

import "testing"

func TestGlyphCacheGetSet(t *testing.T) {
	c := newGlyphCache(0)
	k := glyphKey{ch: 'A', size: 12, m: Identity()}

	if _, ok := c.get(k); ok {
		t.Fatal("get on empty cache succeeded")
	}
	g := &Glyph{Width: 3}
	c.set(k, g)
	if got, ok := c.get(k); !ok || got != g {
		t.Errorf("get = %v, %v; want stored glyph", got, ok)
	}

	italic := glyphKey{ch: 'A', size: 12, m: ItalicShear()}
	if _, ok := c.get(italic); ok {
		t.Error("transform not part of the key")
	}
	if _, ok := c.get(glyphKey{ch: 'A', size: 9, m: Identity()}); ok {
		t.Error("size not part of the key")
	}
}

func TestGlyphCacheEviction(t *testing.T) {
	c := newGlyphCache(8)
	for i := range 8 {
		c.set(glyphKey{ch: rune('a' + i), size: 10}, &Glyph{})
	}
	// Touch 'a' so it is the most recently used.
	if _, ok := c.get(glyphKey{ch: 'a', size: 10}); !ok {
		t.Fatal("'a' missing before eviction")
	}

	c.set(glyphKey{ch: 'z', size: 10}, &Glyph{})
	if got := c.len(); got != 6 {
		t.Errorf("len after eviction = %d, want 6", got)
	}
	for _, ch := range []rune{'a', 'z'} {
		if _, ok := c.get(glyphKey{ch: ch, size: 10}); !ok {
			t.Errorf("recently used %q evicted", ch)
		}
	}
	for _, ch := range []rune{'b', 'c', 'd'} {
		if _, ok := c.get(glyphKey{ch: ch, size: 10}); ok {
			t.Errorf("stale %q kept", ch)
		}
	}
}

func TestLoadGlyphCached(t *testing.T) {
	r := NewRasterizer(goRegular(t))
	r.SetPixelSize(12)

	first, err := r.LoadGlyph('E')
	if err != nil {
		t.Fatal(err)
	}
	again, err := r.LoadGlyph('E')
	if err != nil {
		t.Fatal(err)
	}
	if first != again {
		t.Error("second load of the same glyph was not served from the cache")
	}

	r.SetTransform(ItalicShear())
	slanted, err := r.LoadGlyph('E')
	if err != nil {
		t.Fatal(err)
	}
	if slanted == first {
		t.Error("italic load returned the upright glyph")
	}
}
