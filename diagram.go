package fbtpng

import (
	"github.com/gogpu/fbtpng/fbt"
	"github.com/gogpu/fbtpng/raster"
	"github.com/gogpu/fbtpng/text"
)

const (
	eventLabel    = "Event"
	lineThickness = 1
)

// Render draws the interface of spec onto a new white canvas of
// CanvasWidth x CanvasHeight. r may hold no font, in which case text is
// measured by estimate and not drawn.
func Render(spec fbt.InterfaceSpec, r *text.Renderer) *raster.Canvas {
	c := raster.NewCanvas(CanvasWidth, CanvasHeight)
	Draw(c, spec, r)
	return c
}

// Draw paints the diagram onto c and returns the layout it used.
// c is expected to be white and CanvasWidth x CanvasHeight; pixels outside
// it are clipped.
func Draw(c *raster.Canvas, spec fbt.InterfaceSpec, r *text.Renderer) Layout {
	l := ComputeLayout(spec, r)
	b := l.Block

	c.Rectangle(b.X, b.Y, b.Width, b.Height, raster.Black, false)

	r.Draw(c, spec.Name, b.X+b.Width/2-l.NameWidth/2, b.Y+b.Height/2-titleGap, raster.Black, nameSize, text.Italic)
	r.Draw(c, l.Version, b.X+b.Width/2-l.VersionWidth/2, b.Y+b.Height/2+titleGap, raster.Black, versionSize, text.Regular)

	for i, ev := range spec.EventInputs {
		y := l.EventRows[i]
		inputStub(c, l, y, eventStub)
		if i == 0 {
			c.Triangle(b.X, y, eventTriangleSize, raster.Green)
		}
		r.Draw(c, eventLabel, b.X-eventLabelLeft, y-labelRaise, raster.Black, eventLabelSize, text.Regular)
		r.Draw(c, ev.Name, b.X+pinNameInset, y-labelRaise, raster.Black, pinNameSize, text.Regular)
	}

	for i, ev := range spec.EventOutputs {
		y := l.EventRows[i]
		if i == 0 {
			c.Triangle(b.Right()-outputInset, y, eventTriangleSize, raster.Green)
		}
		c.Line(b.Right(), y, b.Right()+eventStub, y, raster.Black, lineThickness)
		r.Draw(c, eventLabel, b.Right()+eventLabelRight, y-labelRaise, raster.Black, eventLabelSize, text.Regular)
		r.Draw(c, ev.Name, b.Right()-outputNameInset, y-labelRaise, raster.Black, pinNameSize, text.Regular)
	}

	for i, v := range spec.InputVars {
		y := l.VarRows[i]
		inputStub(c, l, y, varStub)
		c.Triangle(b.X, y, varTriangleSize, raster.Blue)
		r.Draw(c, v.Name, b.X+pinNameInset, y-labelRaise, raster.Black, pinNameSize, text.Regular)
		r.Draw(c, v.Type, b.X-typeLabelLeft, y-labelRaise, raster.Black, typeLabelSize, text.Regular)
	}

	for i, v := range spec.OutputVars {
		y := l.VarRows[i]
		c.Triangle(b.Right()-outputInset, y, varTriangleSize, raster.Blue)
		c.Line(b.Right(), y, b.Right()+varStub, y, raster.Black, lineThickness)
		r.Draw(c, v.Name, b.Right()-outputNameInset, y-labelRaise, raster.Black, pinNameSize, text.Regular)
		r.Draw(c, v.Type, b.Right()+typeLabelRight, y-labelRaise, raster.Black, typeLabelSize, text.Regular)
	}

	if top, bottom, ok := l.Bus(spec); ok {
		c.Line(l.MarkerX, top, l.MarkerX, bottom, raster.Black, lineThickness)
		c.Square(l.MarkerX, top, markerSize, raster.Black, false)
		c.Square(l.MarkerX, bottom, markerSize, raster.Black, false)
	}
	return l
}

// inputStub draws the marker square of an input pin, the line joining it
// to the block edge and the outward line of the given length.
func inputStub(c *raster.Canvas, l Layout, y, length int) {
	x := l.Block.X
	c.Square(l.MarkerX, y, markerSize, raster.Black, false)
	c.Line(l.MarkerX, y, x, y, raster.Black, lineThickness)
	c.Line(x-length, y, l.MarkerX, y, raster.Black, lineThickness)
}
