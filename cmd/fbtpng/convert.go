package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/fbtpng"
	"github.com/gogpu/fbtpng/internal/fsutil"
)

func (c *cli) runConvert(cmd *cobra.Command, _ []string) error {
	cfg := c.cfg
	out, errW := c.outW, c.errW

	fmt.Fprintln(out, "FBT to PNG Converter")
	fmt.Fprintln(out, "====================")

	dirs := cfg.InputDirs()
	dir, files, ok, err := fsutil.FirstDirWithFiles(dirs, cfg.Extension)
	if err != nil {
		return fmt.Errorf("failed to search for %s files: %w", cfg.Extension, err)
	}
	if !ok {
		fmt.Fprintf(errW, "ERROR: No %s files found in any of the expected directories!\n", cfg.Extension)
		fmt.Fprintln(errW, "Please make sure your files are in one of these locations:")
		for _, d := range dirs {
			fmt.Fprintf(errW, "  - %s\n", d)
		}
		return &ExitError{Code: 1}
	}

	fmt.Fprintf(out, "Found %d %s files in: %s\n", len(files), cfg.Extension, dir)
	for _, f := range files {
		fmt.Fprintf(out, "  - %s\n", f)
	}

	// One parsed font shared read-only by every worker.
	src := fbtpng.LoadFont(c.fontPaths(), cfg.GoFontFallback)
	newGen := func() *fbtpng.Generator {
		if src == nil {
			return fbtpng.NewGenerator(fbtpng.WithFontPaths())
		}
		return fbtpng.NewGenerator(fbtpng.WithFontSource(src))
	}

	sum, err := fbtpng.ConvertAll(cmd.Context(), files, cfg.OutputDir, cfg.Workers, newGen)
	fmt.Fprintln(out)
	for _, r := range sum.Results {
		if r.Err != nil {
			fmt.Fprintf(errW, "✗ Failed: %s: %v\n", r.Input, r.Err)
			continue
		}
		fmt.Fprintf(out, "✓ Created: %s\n", r.Output)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\n=== Conversion Summary ===")
	fmt.Fprintf(out, "Success: %d files\n", sum.Succeeded())
	fmt.Fprintf(out, "Errors: %d files\n", sum.Failed())
	fmt.Fprintf(out, "Total: %d files processed\n", sum.Total())

	if sum.Failed() > 0 {
		return &ExitError{Code: 1}
	}
	return nil
}
