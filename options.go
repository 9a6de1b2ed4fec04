package fbtpng

import "github.com/gogpu/fbtpng/text"

// GeneratorOption configures a Generator during creation.
//
// Example:
//
//	// System fonts from text.DefaultFontPaths
//	g := fbtpng.NewGenerator()
//
//	// Shared, already parsed font (one per worker pool)
//	g := fbtpng.NewGenerator(fbtpng.WithFontSource(src))
type GeneratorOption func(*generatorOptions)

type generatorOptions struct {
	source     *text.FontSource
	fontPaths  []string
	goFallback bool
}

func defaultGeneratorOptions() generatorOptions {
	return generatorOptions{
		fontPaths: text.DefaultFontPaths,
	}
}

// WithFontSource uses src for all text instead of searching font paths.
// A FontSource is read-only and may be shared by many generators.
func WithFontSource(src *text.FontSource) GeneratorOption {
	return func(o *generatorOptions) {
		o.source = src
	}
}

// WithFontPaths replaces the ordered list of font files to try.
// An empty list disables the search.
func WithFontPaths(paths ...string) GeneratorOption {
	return func(o *generatorOptions) {
		o.fontPaths = paths
	}
}

// WithGoFontFallback makes the generator fall back to the embedded Go
// Regular face when none of the font paths can be loaded.
func WithGoFontFallback() GeneratorOption {
	return func(o *generatorOptions) {
		o.goFallback = true
	}
}
