package render

import "github.com/gogpu/gg"

// Option configures a SceneRenderer during creation.
//
// Example:
//
//	r := render.NewSceneRenderer(canvas, scene,
//	    render.WithScale(60),
//	    render.WithShadow(0.15, gg.RGBA2(0, 0, 0, 0.3)))
type Option func(*options)

// options holds optional configuration for renderer creation.
type options struct {
	scale       float64
	shadowBlur  float64
	shadowColor gg.RGBA
	cornerWidth float64
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		scale:       50,
		shadowBlur:  0.1,
		shadowColor: gg.RGBA2(0, 0, 0, 0.25),
		cornerWidth: 2,
	}
}

// WithScale sets the size in pixels of one world unit.
func WithScale(s float64) Option {
	return func(o *options) {
		o.scale = s
	}
}

// WithShadow sets the blur factor and default color of drop shadows.
func WithShadow(blur float64, c gg.RGBA) Option {
	return func(o *options) {
		o.shadowBlur = blur
		o.shadowColor = c
	}
}

// WithCornerWidth sets the stroke width of corner highlights.
func WithCornerWidth(w float64) Option {
	return func(o *options) {
		o.cornerWidth = w
	}
}
