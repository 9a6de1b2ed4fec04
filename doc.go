// Package fbtpng renders IEC 61499 function block interfaces as PNG
// diagrams.
//
// # Overview
//
// A block file (.fbt) is parsed by package fbt into an [fbt.InterfaceSpec]:
// the block name, its version and the ordered event and variable pins on
// each side. [Render] lays the block out on a fixed 800x600 canvas and
// draws it with the primitives of package raster and the labels of
// package text.
//
// # Quick Start
//
//	root, err := fbt.ParseFile("xml/E_DELAY.fbt")
//	if err != nil {
//		return err
//	}
//	g := fbtpng.NewGenerator()
//	err = g.Generate(fbt.FromNode(root), "xml_png/E_DELAY.png")
//
// # Layout
//
// The block is at least 200x100 and grows with the wider of its name and
// version labels and with the larger pin count of each kind. It is centered
// on the canvas. Event pins start 25px below the block top, 22px apart;
// variable pins start 20px below the block middle, 18px apart. The first
// event pin on each side carries a green triangle and every variable pin a
// blue one. Input pins get a marker square left of the block, and a
// vertical line joins the first and last input rows.
//
// # Fonts
//
// A [Generator] loads the first available file of [text.DefaultFontPaths]
// unless given a font with [WithFontSource]. Without a font labels are
// measured by estimate and not drawn; the diagram is still produced.
//
// # Batches
//
// [ConvertAll] converts many files in parallel, one [Generator] per worker.
// Failures are recorded per file in the returned [Summary].
//
// # Logging
//
// Nothing is logged until [SetLogger] installs a logger.
package fbtpng
