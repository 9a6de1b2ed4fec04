package fbtpng

import "github.com/gogpu/fbtpng/fbt"

// Canvas size of every generated diagram.
const (
	CanvasWidth  = 800
	CanvasHeight = 600
)

// Text sizes, in pixels per em.
const (
	nameSize       = 12
	versionSize    = 8
	eventLabelSize = 8
	pinNameSize    = 9
	typeLabelSize  = 7
)

// Block sizing.
const (
	minBlockWidth  = 200
	minBlockHeight = 100
	namePadding    = 40
	titleGap       = 8 // name above, version below the block middle
	baseHeight     = 80
	eventRowHeight = 25
	varRowHeight   = 20
)

// Pin placement.
const (
	eventStartOffset = 25 // first event row below the block top
	eventStep        = 22
	varStartOffset   = 20 // first var row below the block middle
	varStep          = 18

	markerOffset = 15 // input marker squares sit left of the block edge
	markerSize   = 8

	eventTriangleSize = 10
	varTriangleSize   = 8
	outputInset       = 5 // output triangles sit inside the right edge

	eventStub = 30 // outward line length for event pins
	varStub   = 45 // outward line length for variable pins

	eventLabelLeft  = 70
	eventLabelRight = 35
	typeLabelLeft   = 110
	typeLabelRight  = 50
	pinNameInset    = 8
	outputNameInset = 40
	labelRaise      = 4
)

// Measurer reports the pixel width of a string at a font size.
// *text.Renderer implements it.
type Measurer interface {
	Measure(s string, size int) int
}

// Geometry is the position and size of the block rectangle.
type Geometry struct {
	X, Y          int
	Width, Height int
}

// Layout is the computed placement of a diagram.
type Layout struct {
	Block Geometry

	Version      string // "v" + version, as drawn
	NameWidth    int
	VersionWidth int

	// MarkerX is the x of the input-side marker squares.
	MarkerX int

	// EventRows and VarRows are the y of each pin row. Input and output
	// pins share the same rows.
	EventRows []int
	VarRows   []int
}

// ComputeLayout sizes the block to fit the name and the pin counts and
// centers it on the canvas.
func ComputeLayout(spec fbt.InterfaceSpec, m Measurer) Layout {
	l := Layout{Version: "v" + spec.Version}
	l.NameWidth = m.Measure(spec.Name, nameSize)
	l.VersionWidth = m.Measure(l.Version, versionSize)

	w := max(minBlockWidth, max(l.NameWidth, l.VersionWidth)+namePadding)
	h := max(minBlockHeight, baseHeight+spec.MaxEvents()*eventRowHeight+spec.MaxVars()*varRowHeight)
	l.Block = Geometry{
		X:      (CanvasWidth - w) / 2,
		Y:      (CanvasHeight - h) / 2,
		Width:  w,
		Height: h,
	}
	l.MarkerX = l.Block.X - markerOffset

	l.EventRows = rows(l.Block.Y+eventStartOffset, eventStep, spec.MaxEvents())
	l.VarRows = rows(l.Block.Y+l.Block.Height/2+varStartOffset, varStep, spec.MaxVars())
	return l
}

func rows(start, step, n int) []int {
	ys := make([]int, n)
	for i := range ys {
		ys[i] = start + i*step
	}
	return ys
}

// Right returns the x of the block's right edge.
func (g Geometry) Right() int { return g.X + g.Width }

// Bus returns the vertical span of the input-side connector line.
// ok is false when there is nothing on the input side to connect, or when
// the span collapses to a single row.
func (l *Layout) Bus(spec fbt.InterfaceSpec) (top, bottom int, ok bool) {
	events, vars := len(spec.EventInputs), len(spec.InputVars)
	if events == 0 && vars == 0 {
		return 0, 0, false
	}
	if events > 0 {
		top = l.EventRows[0]
	} else {
		top = l.VarRows[0]
	}
	if vars > 0 {
		bottom = l.VarRows[vars-1]
	} else {
		bottom = l.EventRows[events-1]
	}
	if top <= 0 || bottom <= 0 || top == bottom {
		return 0, 0, false
	}
	return top, bottom, true
}
