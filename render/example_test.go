package render_test

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/isologo"
	"github.com/gogpu/isologo/recording"
	"github.com/gogpu/isologo/render"
)

// ExampleSceneRenderer draws one triangle into a command recorder.
func ExampleSceneRenderer() {
	f := isologo.NewFace(isologo.Pt(0, 0, 0), isologo.Pt(1, 0, 0), isologo.Pt(0, 1, 0))
	f.Fill = gg.Hex("#ff0000")
	f.Stroke = gg.Black
	f.LineWidth = 2

	rec := recording.NewRecorder(100, 100)
	r := render.NewSceneRenderer(rec, isologo.Group(isologo.NewShape(f)), render.WithScale(20))
	r.RenderLogo()

	fmt.Print(rec.FinishRecording())
	// Output:
	// FillPath pts=3 brush=#ff0000ff
	// StrokePath pts=3 brush=#000000ff width=2
}

// ExampleBackgroundRenderer paints a plain background.
func ExampleBackgroundRenderer() {
	rec := recording.NewRecorder(64, 64)
	render.NewBackgroundRenderer(rec, gg.Hex("#0f1424"), gg.Transparent, 16).Render()

	fmt.Print(rec.FinishRecording())
	// Output:
	// Clear #0f1424ff
}
