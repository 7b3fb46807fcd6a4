package render

import (
	"math"

	"github.com/gogpu/isologo"
)

// isoTilt is the camera pitch of a true isometric view: asin(tan(30deg)).
var isoTilt = math.Atan(1 / math.Sqrt2)

// Isometric returns the fixed camera rotation: -45 degrees about y, then the
// isometric tilt about x. The camera looks at the origin from the (+x, +y,
// +z) corner, so x runs to the lower right and z to the lower left. It does
// not flip y or scale.
func Isometric() *isologo.Matrix {
	return isologo.NewMatrix().RotY(-math.Pi / 4).RotX(isoTilt)
}

// Projection builds the world-to-canvas transform: the optional model
// rotation, the isometric camera, a uniform scale with y flipped for canvas
// coordinates, then a translation to (cx, cy).
//
// The renderers only use the projected x and y.
func Projection(rotation *isologo.Matrix, scale, cx, cy float64) *isologo.Matrix {
	m := isologo.NewMatrix()
	if rotation != nil {
		m.Multiply(rotation)
	}
	return m.Multiply(Isometric()).
		Scale(scale, -scale, scale).
		Translate(cx, cy, 0)
}
