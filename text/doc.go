// Package text draws short labels onto a raster canvas.
//
// The pipeline has three layers:
//
//   - FontSource: a parsed scalable face, shared read-only.
//   - Rasterizer: the mutable font context (pixel size and 2x2 transform)
//     that turns a rune into a coverage bitmap plus metrics.
//   - Renderer: measures strings and alpha-blends glyph bitmaps onto a
//     Target, with synthetic italic and bold.
//
// # Example usage
//
//	source, err := text.LoadFirst(text.DefaultFontPaths)
//	if err != nil {
//	    // No font: the renderer still measures, but draws nothing.
//	}
//	r := text.NewRenderer(source)
//	w := r.Measure("E_DELAY", 12)
//	r.Draw(canvas, "E_DELAY", 100, 100, raster.Black, 12, text.Italic)
//
// # Synthetic styles
//
// Italic shears glyph outlines with ItalicShear before rasterization.
// Bold redraws every glyph at the eight surrounding one-pixel offsets before
// the centered pass. Neither uses a real font variant.
//
// A Rasterizer is not safe for concurrent use. Give every goroutine its own
// Renderer; a FontSource may be shared.
package text
