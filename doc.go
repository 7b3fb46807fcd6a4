// Package isologo models and animates an isometric block logo.
//
// # Overview
//
// The root package holds the geometry core: a 4x4 homogeneous Matrix,
// 3D Points, Quaternions, and the drawable primitives built from them
// (Face, Corner, Shape) arranged in a SceneModel graph.
//
// Sub-packages add the rest of the pipeline:
//   - animate: Accumulator, Timeline, Ticker and the frame-driven Animator
//   - render: Canvas abstraction, SceneRenderer and BackgroundRenderer
//   - integration/ggcanvas: render.Canvas on top of a gogpu/gg Context
//   - recording: render.Canvas that records typed commands
//   - logo: the shipped scene and its pointer-driven controller
//   - config: TOML/YAML settings with hot reload
//   - host, host/ebitenhost: input translation and the ebiten desktop viewer
//
// The isologo command (cmd/isologo) renders PNG frames, dumps a frame's
// drawing commands, or opens the viewer.
//
// # Quick Start
//
//	cube := isologo.UnitRect()
//	scene := isologo.NewSceneModel(cube)
//	scene.Transform(isologo.NewMatrix().Translate(5, 0, 0))
//
//	scene.EachRenderable(isologo.NewMatrix(), func(n isologo.Node, m *isologo.Matrix) {
//	    // m.Translation() == (5, 0, 0)
//	})
//
// # Coordinate System
//
// World space is right-handed with y up. Transforms apply in call order,
// see Matrix. Rendering flips y so the canvas origin sits at the top-left.
//
// # Concurrency
//
// Nothing in this module is safe for concurrent use. The model is a single
// cooperative loop: the host calls the Animator once per frame, every
// tickable runs, then the scene is rendered once.
package isologo
