package isologo

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/gogpu/gg"
)

// CompositeOp selects how an overlay color is composited onto a face.
type CompositeOp uint8

// Composite operations supported by the renderers.
const (
	// CompositeSourceOver paints the overlay on top with normal alpha blending.
	CompositeSourceOver CompositeOp = iota

	// CompositeMultiply darkens the face by the overlay color.
	CompositeMultiply

	// CompositeScreen lightens the face by the overlay color.
	CompositeScreen

	// CompositeOverlay multiplies dark areas and screens light ones.
	CompositeOverlay

	numCompositeOps
)

var compositeOpNames = [...]string{
	CompositeSourceOver: "source-over",
	CompositeMultiply:   "multiply",
	CompositeScreen:     "screen",
	CompositeOverlay:    "overlay",
}

func (op CompositeOp) String() string {
	if op < numCompositeOps {
		return compositeOpNames[op]
	}
	return "unknown"
}

// CompositeOps returns every composite operation in rendering order.
func CompositeOps() []CompositeOp {
	ops := make([]CompositeOp, 0, numCompositeOps)
	for op := CompositeSourceOver; op < numCompositeOps; op++ {
		ops = append(ops, op)
	}
	return ops
}

// ParseCompositeOp returns the operation with the given canvas name.
func ParseCompositeOp(name string) (CompositeOp, bool) {
	for op, n := range compositeOpNames {
		if n == name {
			return CompositeOp(op), true
		}
	}
	return 0, false
}

// Face is a planar polygon with rendering attributes. It is the atomic
// drawable unit of a Shape.
//
// Projected and ProjectedCenter are per-frame caches filled by Project;
// they are only meaningful for the transform of the current frame.
type Face struct {
	Points []Point

	// Fill and Stroke are skipped when their alpha is zero.
	Fill      gg.RGBA
	Stroke    gg.RGBA
	LineWidth float64

	// Overlays are painted over the fill, one pass per composite operation,
	// in CompositeOps order.
	Overlays map[CompositeOp]gg.RGBA

	LineDash       []float64
	LineDashOffset float64

	// Order is the render priority: lower values are drawn first.
	Order int

	// DropShadowOf marks this face as the shadow cast by another face.
	DropShadowOf *Face

	Projected       []Point
	ProjectedCenter Point
}

// NewFace creates a face from an ordered list of points.
func NewFace(points ...Point) *Face {
	return &Face{Points: points, LineWidth: 1}
}

// Reverse flips the winding of the face in place.
func (f *Face) Reverse() *Face {
	slices.Reverse(f.Points)
	return f
}

// SetOverlay sets the overlay color for op.
func (f *Face) SetOverlay(op CompositeOp, c gg.RGBA) *Face {
	if f.Overlays == nil {
		f.Overlays = make(map[CompositeOp]gg.RGBA, 1)
	}
	f.Overlays[op] = c
	return f
}

// Center returns the average of the face's points.
func (f *Face) Center() Point {
	return centroid(f.Points)
}

// Transform applies m to every point in place.
func (f *Face) Transform(m *Matrix) *Face {
	for i := range f.Points {
		f.Points[i].Transform(m)
	}
	return f
}

// Project fills the per-frame projection caches using m.
func (f *Face) Project(m *Matrix) {
	f.Projected = f.Projected[:0]
	for _, p := range f.Points {
		f.Projected = append(f.Projected, p.Transformed(m))
	}
	f.ProjectedCenter = centroid(f.Projected)
}

// Key returns the canonical identity of the face's geometry: its points
// sorted by x, then y, then z, serialized as JSON. Two faces are the same
// face only when their keys match exactly.
func (f *Face) Key() string {
	pts := make([][3]float64, len(f.Points))
	for i, p := range f.Points {
		pts[i] = [3]float64{p.X, p.Y, p.Z}
	}
	slices.SortFunc(pts, func(a, b [3]float64) int {
		for i := range a {
			switch {
			case a[i] < b[i]:
				return -1
			case a[i] > b[i]:
				return 1
			}
		}
		return 0
	})
	b, err := json.Marshal(pts)
	if err != nil {
		// NaN or Inf coordinates; such faces never match another face.
		return fmt.Sprintf("invalid:%p", f)
	}
	return string(b)
}

// Clone returns a deep copy of the face. DropShadowOf is shared.
func (f *Face) Clone() *Face {
	c := *f
	c.Points = slices.Clone(f.Points)
	c.LineDash = slices.Clone(f.LineDash)
	c.Projected = nil
	if f.Overlays != nil {
		c.Overlays = make(map[CompositeOp]gg.RGBA, len(f.Overlays))
		for op, col := range f.Overlays {
			c.Overlays[op] = col
		}
	}
	return &c
}

// Corner is a vertex highlight: three edge segments meeting at a point,
// drawn as a glow rather than a filled face.
type Corner struct {
	Segments [3][2]Point
	Center   Point

	Color  gg.RGBA
	Radius float64

	Projected       [3][2]Point
	ProjectedCenter Point
}

// NewCorner builds a corner at v whose three segments run dx, dy and dz
// along the x, y and z axes.
func NewCorner(v Point, dx, dy, dz float64) *Corner {
	return &Corner{
		Segments: [3][2]Point{
			{v, v.Add(Pt(dx, 0, 0))},
			{v, v.Add(Pt(0, dy, 0))},
			{v, v.Add(Pt(0, 0, dz))},
		},
		Center: v,
		Color:  gg.White,
		Radius: 1,
	}
}

// Project fills the per-frame projection caches using m.
func (c *Corner) Project(m *Matrix) {
	for i, seg := range c.Segments {
		c.Projected[i] = [2]Point{seg[0].Transformed(m), seg[1].Transformed(m)}
	}
	c.ProjectedCenter = c.Center.Transformed(m)
}

func (*Corner) isNode() {}
