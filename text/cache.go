package text

import (
	"cmp"
	"slices"
)

// glyphKey identifies a rasterized glyph: the rune, the pixel size and the
// transform it was loaded with.
type glyphKey struct {
	ch   rune
	size int
	m    Matrix
}

// defaultGlyphCacheSize bounds the glyphs kept per Rasterizer. A diagram
// uses a handful of sizes over a small alphabet.
const defaultGlyphCacheSize = 512

// glyphCache is an LRU cache with a soft limit. When it grows past
// softLimit the least recently used quarter is evicted.
//
// glyphCache is not safe for concurrent use; it belongs to one Rasterizer.
type glyphCache struct {
	entries   map[glyphKey]*glyphEntry
	softLimit int
	tick      int64 // monotonic access counter
}

type glyphEntry struct {
	glyph *Glyph
	atime int64
}

// newGlyphCache creates a cache. A softLimit of 0 means unlimited.
func newGlyphCache(softLimit int) *glyphCache {
	return &glyphCache{
		entries:   make(map[glyphKey]*glyphEntry),
		softLimit: softLimit,
	}
}

func (c *glyphCache) get(k glyphKey) (*Glyph, bool) {
	e, ok := c.entries[k]
	if !ok {
		return nil, false
	}
	c.tick++
	e.atime = c.tick
	return e.glyph, true
}

func (c *glyphCache) set(k glyphKey, g *Glyph) {
	c.tick++
	c.entries[k] = &glyphEntry{glyph: g, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
}

func (c *glyphCache) len() int {
	return len(c.entries)
}

// evictOldest drops entries until three quarters of softLimit remain.
func (c *glyphCache) evictOldest() {
	target := max(1, c.softLimit*3/4)
	n := len(c.entries) - target
	if n <= 0 {
		return
	}

	type aged struct {
		key   glyphKey
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{k, e.atime})
	}
	slices.SortFunc(all, func(a, b aged) int { return cmp.Compare(a.atime, b.atime) })

	for _, a := range all[:n] {
		delete(c.entries, a.key)
	}
}
