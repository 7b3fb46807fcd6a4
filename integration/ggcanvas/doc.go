// Package ggcanvas implements render.Canvas on a gogpu/gg drawing context.
//
// The data flow is:
//
//	SceneRenderer -> Canvas (style state, path) -> gg.Context -> image.RGBA
//
// # Usage
//
//	canvas := ggcanvas.MustNew(800, 600)
//	defer canvas.Close()
//
//	r := render.NewSceneRenderer(canvas, scene)
//	r.RenderLogo()
//
//	if err := canvas.Err(); err != nil {
//		return err
//	}
//	return canvas.SavePNG("logo.png")
//
// # Composite operations and shadows
//
// Non source-over composite operations draw into a gg layer that is blended
// back with the matching gg.BlendMode. Shadows are rasterized on an
// offscreen context, blurred with a Gaussian kernel and drawn under the
// fill.
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Create one Canvas per goroutine,
// or use external synchronization.
package ggcanvas
