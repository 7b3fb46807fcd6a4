package isologo

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix is a 4x4 homogeneous transform backed by an mgl64.Mat4.
//
// Points are column vectors with an implicit w of 1. M returns the values
// in row-major order:
//
//	| M[0]  M[1]  M[2]  M[3]  |
//	| M[4]  M[5]  M[6]  M[7]  |
//	| M[8]  M[9]  M[10] M[11] |
//	| M[12] M[13] M[14] M[15] |
//
// so the translation lives in M[3], M[7] and M[11].
//
// Every transform method mutates the receiver and returns it for chaining.
// Transforms apply in call order: NewMatrix().Translate(5, 0, 0).Scale(2)
// first translates, then scales the translated result.
//
// The zero value is the zero matrix, not the identity; use NewMatrix.
type Matrix struct {
	mat   mgl64.Mat4
	saved mgl64.Mat4
}

// NewMatrix returns an identity matrix.
func NewMatrix() *Matrix {
	return &Matrix{mat: mgl64.Ident4(), saved: mgl64.Ident4()}
}

// MatrixOf returns a matrix holding the given row-major values.
func MatrixOf(m [16]float64) *Matrix {
	return &Matrix{mat: mgl64.Mat4(m).Transpose(), saved: mgl64.Ident4()}
}

// M returns the values in row-major order.
func (m *Matrix) M() [16]float64 {
	return m.mat.Transpose()
}

// Mat4 returns the underlying column-major mgl64 matrix.
func (m *Matrix) Mat4() mgl64.Mat4 {
	return m.mat
}

// Compose pre-multiplies the row-major n onto the accumulated transform
// (M = n * M), so n takes effect after everything already composed into
// the receiver.
func (m *Matrix) Compose(n [16]float64) *Matrix {
	return m.apply(mgl64.Mat4(n).Transpose())
}

func (m *Matrix) apply(n mgl64.Mat4) *Matrix {
	m.mat = n.Mul4(m.mat)
	return m
}

// Multiply composes another matrix. See Compose.
func (m *Matrix) Multiply(n *Matrix) *Matrix {
	return m.apply(n.mat)
}

// Translate composes a translation.
func (m *Matrix) Translate(x, y, z float64) *Matrix {
	return m.apply(mgl64.Translate3D(x, y, z))
}

// Scale composes a scale. With no arguments it is the identity scale, one
// argument scales uniformly, two scale x and y, three scale x, y and z.
func (m *Matrix) Scale(s ...float64) *Matrix {
	sx, sy, sz := 1.0, 1.0, 1.0
	switch len(s) {
	case 0:
	case 1:
		sx, sy, sz = s[0], s[0], s[0]
	case 2:
		sx, sy = s[0], s[1]
	default:
		sx, sy, sz = s[0], s[1], s[2]
	}
	return m.apply(mgl64.Scale3D(sx, sy, sz))
}

// RotX composes a rotation of theta radians about the x axis.
func (m *Matrix) RotX(theta float64) *Matrix {
	return m.apply(mgl64.HomogRotate3DX(theta))
}

// RotY composes a rotation of theta radians about the y axis.
func (m *Matrix) RotY(theta float64) *Matrix {
	return m.apply(mgl64.HomogRotate3DY(theta))
}

// RotZ composes a rotation of theta radians about the z axis.
func (m *Matrix) RotZ(theta float64) *Matrix {
	return m.apply(mgl64.HomogRotate3DZ(theta))
}

// Copy returns a deep copy, including the saved checkpoint.
func (m *Matrix) Copy() *Matrix {
	c := *m
	return &c
}

// Save stores the current values in a single checkpoint slot.
// A second Save overwrites the first; there is no stack.
func (m *Matrix) Save() *Matrix {
	m.saved = m.mat
	return m
}

// Restore returns to the values stored by the last Save.
func (m *Matrix) Restore() *Matrix {
	m.mat = m.saved
	return m
}

// Reset sets the matrix back to the identity.
func (m *Matrix) Reset() *Matrix {
	m.mat = mgl64.Ident4()
	return m
}

// Translation returns the translation component.
func (m *Matrix) Translation() Point {
	c := m.mat.Col(3)
	return Point{X: c[0], Y: c[1], Z: c[2]}
}

// Invert returns the inverse of m, or false when m is singular.
func (m *Matrix) Invert() (*Matrix, bool) {
	if math.Abs(m.mat.Det()) < 1e-12 {
		return nil, false
	}
	return &Matrix{mat: m.mat.Inv(), saved: mgl64.Ident4()}, true
}

// Approx reports whether every entry of m is within epsilon of o.
func (m *Matrix) Approx(o *Matrix, epsilon float64) bool {
	return m.mat.ApproxFuncEqual(o.mat, func(a, b float64) bool {
		return math.Abs(a-b) <= epsilon
	})
}

// IsIdentity returns true if the matrix is exactly the identity.
func (m *Matrix) IsIdentity() bool {
	return m.mat == mgl64.Ident4()
}

func (m *Matrix) String() string {
	r := m.M()
	return fmt.Sprintf("[%g %g %g %g | %g %g %g %g | %g %g %g %g | %g %g %g %g]",
		r[0], r[1], r[2], r[3],
		r[4], r[5], r[6], r[7],
		r[8], r[9], r[10], r[11],
		r[12], r[13], r[14], r[15])
}
