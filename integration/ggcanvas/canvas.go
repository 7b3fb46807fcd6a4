package ggcanvas

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/gogpu/isologo"
	"github.com/gogpu/isologo/render"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("ggcanvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("ggcanvas: invalid dimensions")

	// ErrDrawFailed wraps an error reported by the gg rasterizer.
	ErrDrawFailed = errors.New("ggcanvas: draw failed")
)

var _ render.Canvas = (*Canvas)(nil)

// Canvas implements render.Canvas on a gg.Context.
//
// gg keeps a single brush for fill and stroke and clears the path after
// every Fill or Stroke, so Canvas keeps its own style state and path and
// applies them to the context right before each drawing call.
//
// Canvas is NOT safe for concurrent use. Create one Canvas per goroutine,
// or use external synchronization.
type Canvas struct {
	ctx    *gg.Context
	width  int
	height int
	dirty  bool
	closed bool
	err    error

	path  []subpath
	state style
	stack []style
}

// New creates a Canvas of the given size.
//
// Returns error if dimensions are invalid.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &Canvas{
		ctx:    gg.NewContext(width, height),
		width:  width,
		height: height,
		dirty:  true,
		state:  defaultStyle(),
	}, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNew(width, height int) *Canvas {
	c, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return c
}

// Context returns the gg drawing context.
//
// Returns nil if the canvas is closed.
func (c *Canvas) Context() *gg.Context {
	if c.closed {
		return nil
	}
	return c.ctx
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Size returns width and height as a convenience.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// MarkDirty flags the canvas content as changed.
func (c *Canvas) MarkDirty() {
	c.dirty = true
}

// IsDirty returns true if the canvas changed since the last Image or
// CopyTo call.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// Err returns the first error reported while drawing, if any.
func (c *Canvas) Err() error {
	return c.err
}

func (c *Canvas) setErr(err error) {
	if err != nil && c.err == nil {
		c.err = err
		isologo.Logger().Warn("ggcanvas: drawing error", "err", err)
	}
}

// Resize changes canvas dimensions.
// This recreates internal buffers and clears the canvas.
//
// Returns error if dimensions are invalid or canvas is closed.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if width == c.width && height == c.height {
		return nil
	}
	if err := c.ctx.Resize(width, height); err != nil {
		return err
	}
	c.width = width
	c.height = height
	c.dirty = true
	return nil
}

// Image returns a snapshot of the canvas pixels and clears the dirty flag.
func (c *Canvas) Image() (*image.RGBA, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}
	c.dirty = false
	return toRGBA(c.ctx.Image()), nil
}

// CopyTo copies the canvas pixels into dst, which must have the canvas
// bounds, and clears the dirty flag.
func (c *Canvas) CopyTo(dst *image.RGBA) error {
	img, err := c.Image()
	if err != nil {
		return err
	}
	draw.Copy(dst, dst.Bounds().Min, img, img.Bounds(), draw.Src, nil)
	return nil
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if c.closed {
		return ErrCanvasClosed
	}
	return c.ctx.SavePNG(path)
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.closed {
		return ErrCanvasClosed
	}
	return c.ctx.EncodePNG(w)
}

// Close releases all resources associated with the Canvas.
// After Close, the Canvas should not be used.
// Close is idempotent - multiple calls are safe.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.path = nil
	c.stack = nil
	return c.ctx.Close()
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
