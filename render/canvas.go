// Package render draws isologo scenes onto a 2D canvas.
//
// Canvas is the subset of the HTML Canvas 2D API the renderers need.
// integration/ggcanvas implements it on a gogpu/gg Context; the recording
// package implements it as a command recorder.
package render

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/isologo"
)

// RadialGradient is a circular gradient centered at (X, Y) running from
// radius R0 (offset 0) to R1 (offset 1).
type RadialGradient struct {
	X, Y   float64
	R0, R1 float64
	Stops  []gg.ColorStop
}

// Canvas is a stateful 2D drawing surface in the style of Canvas 2D.
//
// Style state (colors, gradients, line width, dash, composite operation,
// shadow) is saved and restored by Save/Restore. The current path is not
// part of the saved state.
//
// Shadows: while the shadow blur is positive, Fill first paints the path in
// the shadow color blurred by the given radius, then paints the fill itself.
// A fully transparent fill therefore leaves only the shadow.
type Canvas interface {
	Width() int
	Height() int

	Clear(c gg.RGBA)
	Save()
	Restore()

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()

	SetFillColor(c gg.RGBA)
	SetFillGradient(g RadialGradient)
	SetStrokeColor(c gg.RGBA)
	SetStrokeGradient(g RadialGradient)
	SetLineWidth(w float64)
	SetLineDash(dash []float64, offset float64)
	SetComposite(op isologo.CompositeOp)
	SetShadow(blur float64, c gg.RGBA)

	Fill()
	Stroke()
}

// CanvasRenderer holds the canvas shared by the concrete renderers and the
// path helpers they use.
type CanvasRenderer struct {
	Canvas Canvas
}

// Path replaces the current path with the closed polygon through pts,
// using their x and y. Fewer than two points leave a degenerate path that
// draws nothing.
func (r *CanvasRenderer) Path(pts []isologo.Point) {
	c := r.Canvas
	c.BeginPath()
	if len(pts) == 0 {
		return
	}
	c.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

// Segments replaces the current path with independent line segments.
func (r *CanvasRenderer) Segments(segs [][2]isologo.Point) {
	c := r.Canvas
	c.BeginPath()
	for _, s := range segs {
		c.MoveTo(s[0].X, s[0].Y)
		c.LineTo(s[1].X, s[1].Y)
	}
}

// Size returns the canvas size as floats.
func (r *CanvasRenderer) Size() (w, h float64) {
	return float64(r.Canvas.Width()), float64(r.Canvas.Height())
}
