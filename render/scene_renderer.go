package render

import (
	"slices"

	"github.com/gogpu/gg"
	"github.com/gogpu/isologo"
)

// SceneRenderer draws a SceneModel through the isometric projection.
//
// Faces are painted in ascending Face.Order across the whole scene; ties
// keep traversal order. Order is calibration data chosen for a specific
// scene, not a depth computed from geometry, so other block arrangements
// need their own values.
type SceneRenderer struct {
	CanvasRenderer

	Scene *isologo.SceneModel

	// Rotation is applied to the model before the camera. Nil means none.
	Rotation *isologo.Matrix

	// Scale is the size in pixels of one world unit.
	Scale float64

	// OffsetX and OffsetY move the projected origin away from the canvas
	// center, in pixels.
	OffsetX, OffsetY float64

	// ShadowBlur converts the screen distance between a shadow face and the
	// face casting it into a blur radius.
	ShadowBlur  float64
	ShadowColor gg.RGBA

	// CornerWidth is the stroke width of corner highlights in pixels.
	CornerWidth float64

	faces   []*isologo.Face
	corners []*isologo.Corner
}

// NewSceneRenderer creates a renderer for scene on c.
func NewSceneRenderer(c Canvas, scene *isologo.SceneModel, opts ...Option) *SceneRenderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &SceneRenderer{
		CanvasRenderer: CanvasRenderer{Canvas: c},
		Scene:          scene,
		Scale:          o.scale,
		ShadowBlur:     o.shadowBlur,
		ShadowColor:    o.shadowColor,
		CornerWidth:    o.cornerWidth,
	}
}

// Projection returns the current world-to-canvas transform.
func (r *SceneRenderer) Projection() *isologo.Matrix {
	w, h := r.Size()
	return Projection(r.Rotation, r.Scale, w/2+r.OffsetX, h/2+r.OffsetY)
}

// RenderLogo projects the scene and draws it: drop shadows, then faces,
// then corner highlights.
func (r *SceneRenderer) RenderLogo() {
	r.project()
	r.renderShadows()
	r.renderFaces()
	r.renderCorners()
}

// project traverses the scene once, fills every projection cache and
// collects faces in render order.
func (r *SceneRenderer) project() {
	r.faces = r.faces[:0]
	r.corners = r.corners[:0]
	if r.Scene == nil {
		return
	}

	r.Scene.EachRenderable(r.Projection(), func(n isologo.Node, m *isologo.Matrix) {
		switch v := n.(type) {
		case *isologo.Shape:
			v.Project(m)
			r.faces = append(r.faces, v.Faces...)
		case *isologo.Corner:
			v.Project(m)
			r.corners = append(r.corners, v)
		}
	})

	slices.SortStableFunc(r.faces, func(a, b *isologo.Face) int {
		return a.Order - b.Order
	})
}

func (r *SceneRenderer) renderShadows() {
	c := r.Canvas
	for _, f := range r.faces {
		src := f.DropShadowOf
		if src == nil {
			continue
		}
		d := screenDistance(f.ProjectedCenter, src.ProjectedCenter)
		color := r.ShadowColor
		if f.Fill.A > 0 {
			color = f.Fill
		}

		c.Save()
		c.SetShadow(d*r.ShadowBlur, color)
		c.SetFillColor(gg.Transparent)
		r.Path(f.Projected)
		c.Fill()
		c.Restore()
	}
}

func (r *SceneRenderer) renderFaces() {
	c := r.Canvas
	for _, f := range r.faces {
		if f.DropShadowOf != nil {
			continue
		}
		r.Path(f.Projected)

		if f.Fill.A > 0 {
			c.SetFillColor(f.Fill)
			c.Fill()
		}

		if len(f.Overlays) > 0 {
			for _, op := range isologo.CompositeOps() {
				col, ok := f.Overlays[op]
				if !ok {
					continue
				}
				c.SetComposite(op)
				c.SetFillColor(col)
				c.Fill()
			}
			c.SetComposite(isologo.CompositeSourceOver)
		}

		if f.Stroke.A > 0 {
			c.SetLineWidth(f.LineWidth)
			c.SetLineDash(f.LineDash, f.LineDashOffset)
			c.SetStrokeColor(f.Stroke)
			c.Stroke()
			if len(f.LineDash) > 0 {
				c.SetLineDash(nil, 0)
			}
		}
	}
}

func (r *SceneRenderer) renderCorners() {
	c := r.Canvas
	segs := make([][2]isologo.Point, 3)
	for _, k := range r.corners {
		if k.Color.A == 0 {
			continue
		}
		center := k.ProjectedCenter
		fade := k.Color
		fade.A = 0

		copy(segs, k.Projected[:])
		r.Segments(segs)
		c.SetLineWidth(r.CornerWidth)
		c.SetStrokeGradient(RadialGradient{
			X: center.X, Y: center.Y,
			R0: 0, R1: k.Radius * r.Scale,
			Stops: []gg.ColorStop{
				{Offset: 0, Color: k.Color},
				{Offset: 1, Color: fade},
			},
		})
		c.Stroke()
	}
}

// Faces returns the faces of the last frame in the order they were drawn,
// shadow faces included.
func (r *SceneRenderer) Faces() []*isologo.Face {
	return r.faces
}

func screenDistance(a, b isologo.Point) float64 {
	return gg.Pt(a.X, a.Y).Distance(gg.Pt(b.X, b.Y))
}
