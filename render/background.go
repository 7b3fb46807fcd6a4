package render

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/isologo"
)

// BackgroundRenderer paints a flat background with an isometric grid:
// vertical lines plus two families rising and falling at 30 degrees.
type BackgroundRenderer struct {
	CanvasRenderer

	Color     gg.RGBA
	GridColor gg.RGBA
	Spacing   float64
	LineWidth float64

	// OffsetX and OffsetY shift the grid for parallax.
	OffsetX, OffsetY float64
}

// NewBackgroundRenderer creates a background renderer on c.
func NewBackgroundRenderer(c Canvas, bg, grid gg.RGBA, spacing float64) *BackgroundRenderer {
	return &BackgroundRenderer{
		CanvasRenderer: CanvasRenderer{Canvas: c},
		Color:          bg,
		GridColor:      grid,
		Spacing:        spacing,
		LineWidth:      1,
	}
}

// gridDirections are the unit directions of the three line families.
var gridDirections = [3]gg.Vec2{
	{X: 0, Y: 1},
	{X: math.Cos(math.Pi / 6), Y: math.Sin(math.Pi / 6)},
	{X: math.Cos(math.Pi / 6), Y: -math.Sin(math.Pi / 6)},
}

// Render clears the canvas and draws the grid.
func (r *BackgroundRenderer) Render() {
	c := r.Canvas
	c.Clear(r.Color)
	if r.Spacing <= 0 || r.GridColor.A == 0 {
		return
	}

	w, h := r.Size()
	corners := [4]gg.Vec2{{X: 0, Y: 0}, {X: w, Y: 0}, {X: 0, Y: h}, {X: w, Y: h}}
	diag := math.Hypot(w, h)
	offset := gg.V2(r.OffsetX, r.OffsetY)

	var segs [][2]isologo.Point
	for _, d := range gridDirections {
		n := d.Perp()
		o := offset.Dot(n)

		lo, hi := math.Inf(1), math.Inf(-1)
		for _, p := range corners {
			v := p.Dot(n)
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}

		first := math.Ceil((lo - o) / r.Spacing)
		last := math.Floor((hi - o) / r.Spacing)
		for k := first; k <= last; k++ {
			mid := n.Mul(k*r.Spacing + o)
			a := mid.Sub(d.Mul(diag))
			b := mid.Add(d.Mul(diag))
			segs = append(segs, [2]isologo.Point{
				isologo.Pt(a.X, a.Y, 0),
				isologo.Pt(b.X, b.Y, 0),
			})
		}
	}

	r.Segments(segs)
	c.SetLineWidth(r.LineWidth)
	c.SetStrokeColor(r.GridColor)
	c.Stroke()
}
