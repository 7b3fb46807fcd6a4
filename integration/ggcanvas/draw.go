package ggcanvas

import (
	"fmt"
	"slices"

	"github.com/anthonynsimon/bild/blur"
	"github.com/gogpu/gg"

	"github.com/gogpu/isologo"
	"github.com/gogpu/isologo/render"
)

// style is the state saved by Save and restored by Restore.
type style struct {
	fill        gg.Brush
	stroke      gg.Brush
	lineWidth   float64
	dash        []float64
	dashOffset  float64
	composite   isologo.CompositeOp
	shadowBlur  float64
	shadowColor gg.RGBA
}

func defaultStyle() style {
	return style{
		fill:      gg.Solid(gg.Black),
		stroke:    gg.Solid(gg.Black),
		lineWidth: 1,
	}
}

type subpath struct {
	points []gg.Point
	closed bool
}

// blendModes maps composite operations to gg layer blend modes.
var blendModes = [...]gg.BlendMode{
	isologo.CompositeSourceOver: gg.BlendNormal,
	isologo.CompositeMultiply:   gg.BlendMultiply,
	isologo.CompositeScreen:     gg.BlendScreen,
	isologo.CompositeOverlay:    gg.BlendOverlay,
}

// Clear fills the whole canvas with col, ignoring composite and shadow.
func (c *Canvas) Clear(col gg.RGBA) {
	if c.check() {
		c.ctx.ClearWithColor(col)
		c.dirty = true
	}
}

// Save pushes the style state and the gg context state.
func (c *Canvas) Save() {
	if !c.check() {
		return
	}
	s := c.state
	s.dash = slices.Clone(s.dash)
	c.stack = append(c.stack, s)
	c.ctx.Push()
}

// Restore pops the state pushed by the matching Save. Unbalanced calls are
// ignored.
func (c *Canvas) Restore() {
	if !c.check() || len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.ctx.Pop()
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.path = c.path[:0]
}

// MoveTo starts a new subpath at (x, y).
func (c *Canvas) MoveTo(x, y float64) {
	c.path = append(c.path, subpath{points: []gg.Point{gg.Pt(x, y)}})
}

// LineTo extends the current subpath. Without one it starts a new subpath.
func (c *Canvas) LineTo(x, y float64) {
	if len(c.path) == 0 || c.path[len(c.path)-1].closed {
		c.MoveTo(x, y)
		return
	}
	sp := &c.path[len(c.path)-1]
	sp.points = append(sp.points, gg.Pt(x, y))
}

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() {
	if len(c.path) > 0 {
		c.path[len(c.path)-1].closed = true
	}
}

func (c *Canvas) SetFillColor(col gg.RGBA) { c.state.fill = gg.Solid(col) }

func (c *Canvas) SetFillGradient(g render.RadialGradient) { c.state.fill = radialBrush(g) }

func (c *Canvas) SetStrokeColor(col gg.RGBA) { c.state.stroke = gg.Solid(col) }

func (c *Canvas) SetStrokeGradient(g render.RadialGradient) { c.state.stroke = radialBrush(g) }

func (c *Canvas) SetLineWidth(w float64) { c.state.lineWidth = w }

func (c *Canvas) SetLineDash(dash []float64, offset float64) {
	c.state.dash = slices.Clone(dash)
	c.state.dashOffset = offset
}

func (c *Canvas) SetComposite(op isologo.CompositeOp) { c.state.composite = op }

func (c *Canvas) SetShadow(blur float64, col gg.RGBA) {
	c.state.shadowBlur = blur
	c.state.shadowColor = col
}

func radialBrush(g render.RadialGradient) gg.Brush {
	b := gg.NewRadialGradientBrush(g.X, g.Y, g.R0, g.R1)
	for _, s := range g.Stops {
		b.AddColorStop(s.Offset, s.Color)
	}
	return b
}

// Fill fills the current path. The path is kept for further calls.
func (c *Canvas) Fill() {
	if !c.check() || len(c.path) == 0 {
		return
	}
	if c.state.shadowBlur > 0 && c.state.shadowColor.A > 0 {
		c.drawShadow()
	}
	if isTransparent(c.state.fill) {
		return
	}
	c.composite(func() error {
		c.ctx.SetFillBrush(c.state.fill)
		c.replay(c.ctx)
		return c.ctx.Fill()
	})
}

// Stroke strokes the current path. The path is kept for further calls.
func (c *Canvas) Stroke() {
	if !c.check() || len(c.path) == 0 || c.state.lineWidth <= 0 {
		return
	}
	c.composite(func() error {
		c.ctx.SetStrokeBrush(c.state.stroke)
		c.ctx.SetLineWidth(c.state.lineWidth)
		if len(c.state.dash) > 0 {
			c.ctx.SetDash(c.state.dash...)
			c.ctx.SetDashOffset(c.state.dashOffset)
		} else {
			c.ctx.ClearDash()
		}
		c.replay(c.ctx)
		return c.ctx.Stroke()
	})
}

// composite runs fn directly for source-over, otherwise inside a layer
// blended with the current composite operation.
func (c *Canvas) composite(fn func() error) {
	op := c.state.composite
	layered := op != isologo.CompositeSourceOver && int(op) < len(blendModes)
	if layered {
		c.ctx.PushLayer(blendModes[op], 1)
	}
	if err := fn(); err != nil {
		c.setErr(fmt.Errorf("%w: %w", ErrDrawFailed, err))
	}
	if layered {
		c.ctx.PopLayer()
	}
	c.dirty = true
}

// drawShadow paints the current path in the shadow color on an offscreen
// context, blurs it and draws the result under the fill.
func (c *Canvas) drawShadow() {
	off := gg.NewContext(c.width, c.height)
	defer off.Close()

	off.SetFillBrush(gg.Solid(c.state.shadowColor))
	c.replay(off)
	if err := off.Fill(); err != nil {
		c.setErr(fmt.Errorf("%w: shadow: %w", ErrDrawFailed, err))
		return
	}

	// Canvas shadow blur is twice the standard deviation.
	blurred := blur.Gaussian(off.Image(), c.state.shadowBlur/2)
	c.ctx.DrawImageEx(gg.ImageBufFromImage(blurred), gg.DrawImageOptions{
		Opacity:   1,
		BlendMode: gg.BlendNormal,
	})
	c.dirty = true
}

func (c *Canvas) replay(ctx *gg.Context) {
	ctx.ClearPath()
	for _, sp := range c.path {
		for i, p := range sp.points {
			if i == 0 {
				ctx.MoveTo(p.X, p.Y)
			} else {
				ctx.LineTo(p.X, p.Y)
			}
		}
		if sp.closed {
			ctx.ClosePath()
		}
	}
}

// check reports whether drawing may proceed, recording ErrCanvasClosed
// otherwise.
func (c *Canvas) check() bool {
	if c.closed {
		c.setErr(ErrCanvasClosed)
		return false
	}
	return true
}

func isTransparent(b gg.Brush) bool {
	s, ok := b.(gg.SolidBrush)
	return ok && s.Color.A == 0
}
