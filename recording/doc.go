// Package recording provides a render.Canvas that records drawing
// operations as typed commands instead of rasterizing them.
//
// Each Fill or Stroke becomes one self-contained command carrying the path
// and the fully resolved style (brush, line width, dash, composite
// operation, shadow). A Recording can be inspected, printed, or played back
// onto any other render.Canvas.
//
// Design follows Cairo's approach of typed command structs for
// inspectability rather than a binary serialization format.
//
// # Example
//
//	rec := recording.NewRecorder(800, 600)
//	r := render.NewSceneRenderer(rec, scene)
//	r.RenderLogo()
//
//	out := rec.FinishRecording()
//	fmt.Print(out)          // one line per command
//	out.Playback(ggCanvas) // draw it for real
package recording
