package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/fbtpng"
	"github.com/gogpu/fbtpng/fbt"
	"github.com/gogpu/fbtpng/text"
)

func newInspectCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the element tree, interface and block geometry of a block file",
		Long: `Parse a function block type file and print its element tree, the
interface derived from it and the geometry the diagram would use.

Examples:
  fbtpng inspect xml/E_DELAY.fbt
  fbtpng inspect --go-font xml/E_SPLIT.fbt`,
		Args: cobra.ExactArgs(1),
		RunE: c.runInspect,
	}
}

func (c *cli) runInspect(_ *cobra.Command, args []string) error {
	root, err := fbt.ParseFile(args[0])
	if err != nil {
		return err
	}

	w := c.outW
	if err := root.Dump(w); err != nil {
		return err
	}

	spec := fbt.FromNode(root)
	fmt.Fprintln(w)
	printInterface(w, spec)

	r := text.NewRenderer(fbtpng.LoadFont(c.fontPaths(), c.cfg.GoFontFallback))
	l := fbtpng.ComputeLayout(spec, r)
	b := l.Block
	fmt.Fprintf(w, "Block: x=%d y=%d width=%d height=%d\n", b.X, b.Y, b.Width, b.Height)
	if !r.HasFont() {
		fmt.Fprintln(w, "Font: none (text widths estimated)")
	} else {
		fmt.Fprintf(w, "Font: %s\n", r.Rasterizer().Source().Name())
	}
	return nil
}

func printInterface(w io.Writer, spec fbt.InterfaceSpec) {
	fmt.Fprintf(w, "Name: %s\n", spec.Name)
	fmt.Fprintf(w, "Version: %s\n", spec.Version)

	events := func(label string, evs []fbt.Event) {
		names := make([]string, len(evs))
		for i, e := range evs {
			names[i] = e.Name
		}
		fmt.Fprintf(w, "%s (%d): %s\n", label, len(evs), strings.Join(names, ", "))
	}
	vars := func(label string, vs []fbt.Var) {
		decls := make([]string, len(vs))
		for i, v := range vs {
			decls[i] = v.Name + ":" + v.Type
		}
		fmt.Fprintf(w, "%s (%d): %s\n", label, len(vs), strings.Join(decls, ", "))
	}
	events("Event inputs", spec.EventInputs)
	events("Event outputs", spec.EventOutputs)
	vars("Input vars", spec.InputVars)
	vars("Output vars", spec.OutputVars)
}
