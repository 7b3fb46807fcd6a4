// Package logo builds and animates the isometric block logo.
//
// NewScene joins unit cubes into one body, colors its faces by direction,
// adds corner glows and ground shadows, and fixes the render order (see
// calibration.go). Logo wires a Scene to a SceneRenderer, a
// BackgroundRenderer and an Animator, and turns pointer, touch and scroll
// input into eased rotation, tilt, highlight and parallax.
//
//	l := logo.New(canvas, logo.WithAnimator(animate.WithScheduler(host)))
//	l.Start()
//	// host input:
//	l.PointerMove(x, y)
package logo
