package logo

import (
	"fmt"
	"time"

	"github.com/gogpu/isologo/animate"
)

// DragMode selects how pointer drags map to rotations.
type DragMode uint8

const (
	// DragXY spins about the vertical axis, then tilts about x.
	DragXY DragMode = iota
	// DragXYAlt tilts about the screen diagonal before spinning.
	DragXYAlt
)

var dragModeNames = [...]string{
	DragXY:    "xy",
	DragXYAlt: "xy-alt",
}

// String returns the configuration name of the mode.
func (m DragMode) String() string {
	if int(m) < len(dragModeNames) {
		return dragModeNames[m]
	}
	return fmt.Sprintf("DragMode(%d)", m)
}

// ParseDragMode parses "xy" or "xy-alt".
func ParseDragMode(s string) (DragMode, bool) {
	for i, n := range dragModeNames {
		if n == s {
			return DragMode(i), true
		}
	}
	return DragXY, false
}

// Option configures a Logo during creation.
//
// Example:
//
//	l := logo.New(canvas,
//	    logo.WithDragMode(logo.DragXYAlt),
//	    logo.WithPalette(p))
type Option func(*options)

type options struct {
	palette     Palette
	blocks      []Cell
	scale       float64
	alpha       float64
	dragMode    DragMode
	sensitivity float64
	maxTilt     float64
	shadowBlur  float64
	gridSpacing float64
	intro       bool
	background  bool
	animator    []animate.Option
}

func defaultOptions() options {
	return options{
		palette:     DefaultPalette(),
		blocks:      Blocks,
		alpha:       0.08,
		dragMode:    DragXY,
		sensitivity: 0.01,
		maxTilt:     0.12,
		shadowBlur:  0.1,
		gridSpacing: 32,
		intro:       true,
		background:  true,
	}
}

// WithPalette sets the colors.
func WithPalette(p Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithBlocks replaces the block arrangement. Render order is calibrated
// for the stock arrangement only.
func WithBlocks(b []Cell) Option {
	return func(o *options) {
		if len(b) > 0 {
			o.blocks = b
		}
	}
}

// WithScale sets the size in pixels of one block. Zero picks a scale from
// the canvas size.
func WithScale(s float64) Option {
	return func(o *options) {
		o.scale = s
	}
}

// WithSmoothing sets the accumulator alpha used for every eased input.
func WithSmoothing(alpha float64) Option {
	return func(o *options) {
		o.alpha = alpha
	}
}

// WithDragMode selects the drag-to-rotation mapping.
func WithDragMode(m DragMode) Option {
	return func(o *options) {
		o.dragMode = m
	}
}

// WithSensitivity sets the drag rotation in radians per pixel.
func WithSensitivity(radPerPixel float64) Option {
	return func(o *options) {
		o.sensitivity = radPerPixel
	}
}

// WithShadowBlur sets the blur per pixel of shadow distance.
func WithShadowBlur(f float64) Option {
	return func(o *options) {
		o.shadowBlur = f
	}
}

// WithGrid sets the background grid spacing in pixels; zero disables the
// grid.
func WithGrid(spacing float64) Option {
	return func(o *options) {
		o.gridSpacing = spacing
	}
}

// WithIntro enables or disables the intro animation.
func WithIntro(on bool) Option {
	return func(o *options) {
		o.intro = on
	}
}

// WithBackground enables or disables painting the background. Disable it
// when the host paints its own.
func WithBackground(on bool) Option {
	return func(o *options) {
		o.background = on
	}
}

// WithAnimator passes options to the underlying animate.Animator, such as
// the host scheduler.
func WithAnimator(opts ...animate.Option) Option {
	return func(o *options) {
		o.animator = append(o.animator, opts...)
	}
}

// Timing of the intro.
const (
	introGrow   = 700 * time.Millisecond
	introPause  = 150 * time.Millisecond
	introCorner = 450 * time.Millisecond

	// bobPeriod and bobHeight shape the idle float of the model.
	bobPeriod = 4 * time.Second
	bobHeight = 0.06

	// dashSpeed is how far the top-face dashes march per frame, in pixels.
	dashSpeed = 0.25

	// parallax factors convert the scroll accumulator into pixel offsets.
	sceneParallax = 0.15
	gridParallax  = 0.5
	maxScroll     = 400
)
