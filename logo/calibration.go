package logo

import (
	"math"

	"github.com/gogpu/isologo"
)

// Render order calibration for the logo.
//
// The renderer paints faces by ascending Face.Order and never sorts by
// projected depth. The values below are fixed when the scene is built and
// are tuned for the rest pose seen from the (+x, +y, +z) corner: faces
// turned away from the camera go first, faces toward it last, and within
// each band nearer faces (larger x+y+z at their center) go later. Drag
// rotations stay small enough that this order holds; a different block
// arrangement or camera needs new values.
const (
	shadowOrder = 0
	hiddenBase  = 100
	visibleBase = 200

	// depthStep converts rest-pose depth into order units. Face centers
	// lie on a half-unit grid, so x+y+z moves in steps of 0.5.
	depthStep = 2
)

var kindBase = [...]int{
	kindTop:    visibleBase,
	kindLeft:   visibleBase,
	kindRight:  visibleBase,
	kindBottom: hiddenBase,
	kindBack:   hiddenBase,
	kindRear:   hiddenBase,
}

// calibrate assigns Order to every face of s.
func calibrate(s *Scene) {
	for _, f := range s.Shadows {
		f.Order = shadowOrder
	}
	for _, f := range s.Body.Faces {
		f.Order = kindBase[s.kinds[f]] + restDepth(f)
	}
}

func restDepth(f *isologo.Face) int {
	c := f.Center()
	return int(math.Round((c.X + c.Y + c.Z) * depthStep))
}
