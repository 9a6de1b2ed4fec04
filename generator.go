package fbtpng

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/fbtpng/fbt"
	"github.com/gogpu/fbtpng/raster"
	"github.com/gogpu/fbtpng/text"
)

// Generator turns function block interfaces into PNG diagrams.
//
// A Generator owns its font context and canvas and is not safe for
// concurrent use. Create one per goroutine; they may share a FontSource.
type Generator struct {
	renderer *text.Renderer
	canvas   *raster.Canvas
}

// NewGenerator creates a generator.
//
// Without WithFontSource the font paths are tried in order. If no font can
// be loaded the generator still works: labels are measured by estimate and
// not drawn, and a warning is logged. An empty path list without the Go
// font fallback selects that mode silently.
func NewGenerator(opts ...GeneratorOption) *Generator {
	o := defaultGeneratorOptions()
	for _, opt := range opts {
		opt(&o)
	}

	src := o.source
	if src == nil && (len(o.fontPaths) > 0 || o.goFallback) {
		src = LoadFont(o.fontPaths, o.goFallback)
	}
	return &Generator{
		renderer: text.NewRenderer(src),
		canvas:   raster.NewCanvas(CanvasWidth, CanvasHeight),
	}
}

// LoadFont returns the first loadable font in paths, or the embedded Go
// Regular face when goFallback is set. It returns nil when neither is
// available.
func LoadFont(paths []string, goFallback bool) *text.FontSource {
	src, err := text.LoadFirst(paths)
	if err == nil {
		Logger().Info("font loaded", "path", src.Path(), "name", src.Name())
		return src
	}
	if goFallback {
		if src, ferr := text.NewFontSource(goregular.TTF); ferr == nil {
			Logger().Info("font loaded", "name", src.Name(), "embedded", true)
			return src
		}
	}
	Logger().Warn("no font available, text will not be drawn", "err", err)
	return nil
}

// HasFont reports whether the generator draws text.
func (g *Generator) HasFont() bool {
	return g.renderer.HasFont()
}

// Renderer returns the generator's text renderer.
func (g *Generator) Renderer() *text.Renderer {
	return g.renderer
}

// Render draws spec and returns the canvas. The canvas is reused by the
// next call; clone it to keep it.
func (g *Generator) Render(spec fbt.InterfaceSpec) (*raster.Canvas, Layout) {
	g.canvas.Clear(raster.White)
	l := Draw(g.canvas, spec, g.renderer)

	log := Logger()
	log.Debug("diagram rendered",
		"name", spec.Name,
		"version", spec.Version,
		"x", l.Block.X, "y", l.Block.Y,
		"width", l.Block.Width, "height", l.Block.Height,
		"eventInputs", len(spec.EventInputs), "eventOutputs", len(spec.EventOutputs),
		"inputVars", len(spec.InputVars), "outputVars", len(spec.OutputVars),
	)
	if g.renderer.HasFont() {
		if missing := g.renderer.Missing(labels(spec)); len(missing) > 0 {
			log.Debug("runes without glyphs drawn as .notdef", "name", spec.Name, "runes", string(missing))
		}
	}
	return g.canvas, l
}

// Generate renders spec and writes it as a PNG to outPath.
func (g *Generator) Generate(spec fbt.InterfaceSpec, outPath string) error {
	c, _ := g.Render(spec)
	if err := c.SavePNG(outPath); err != nil {
		return fmt.Errorf("fbtpng: %s: %w", spec.Name, err)
	}
	Logger().Info("created", "path", outPath)
	return nil
}

// GenerateFile parses the block file at inPath and writes its diagram to
// OutputPath(inPath, outDir). It returns the path written.
func (g *Generator) GenerateFile(inPath, outDir string) (string, error) {
	root, err := fbt.ParseFile(inPath)
	if err != nil {
		return "", err
	}
	out := OutputPath(inPath, outDir)
	if err := g.Generate(fbt.FromNode(root), out); err != nil {
		return "", err
	}
	return out, nil
}

// OutputPath returns outDir/<stem>.png for the input file inPath.
func OutputPath(inPath, outDir string) string {
	base := filepath.Base(inPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, stem+".png")
}

// labels concatenates every string the diagram draws.
func labels(spec fbt.InterfaceSpec) string {
	var b strings.Builder
	b.WriteString(spec.Name)
	b.WriteString(spec.Version)
	for _, e := range spec.EventInputs {
		b.WriteString(e.Name)
	}
	for _, e := range spec.EventOutputs {
		b.WriteString(e.Name)
	}
	for _, v := range spec.InputVars {
		b.WriteString(v.Name)
		b.WriteString(v.Type)
	}
	for _, v := range spec.OutputVars {
		b.WriteString(v.Name)
		b.WriteString(v.Type)
	}
	return b.String()
}
