package isologo

import "github.com/go-gl/mathgl/mgl64"

// Quaternion represents a rotation as x*i + y*j + z*k + w.
type Quaternion struct {
	X, Y, Z, W float64
}

// IdentityQuaternion returns the rotation that does nothing.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

func quatOf(q mgl64.Quat) Quaternion {
	return Quaternion{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}

func (q Quaternion) quat() mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

// PointAngle returns the unit quaternion rotating theta radians about axis.
// The axis does not need to be normalized.
func PointAngle(axis Point, theta float64) Quaternion {
	a := axis.Normalize()
	return quatOf(mgl64.QuatRotate(theta, mgl64.Vec3{a.X, a.Y, a.Z}))
}

// Multiply returns the Hamilton product q*r: the rotation r followed by q.
func (q Quaternion) Multiply(r Quaternion) Quaternion {
	return quatOf(q.quat().Mul(r.quat()))
}

// Length returns the norm of q.
func (q Quaternion) Length() float64 {
	return q.quat().Len()
}

// Normalize returns q scaled to unit length. A zero quaternion becomes the identity.
func (q Quaternion) Normalize() Quaternion {
	return quatOf(q.quat().Normalize())
}

// Conjugate returns the inverse rotation of a unit quaternion.
func (q Quaternion) Conjugate() Quaternion {
	return quatOf(q.quat().Conjugate())
}

// Matrix returns the rotation matrix equivalent to q.
func (q Quaternion) Matrix() *Matrix {
	return &Matrix{mat: q.quat().Mat4(), saved: mgl64.Ident4()}
}

// XY maps a pointer drag of (dx, dy) radians to a rotation: dx spins about
// the vertical axis, then dy tilts about the x axis.
func XY(dx, dy float64) Quaternion {
	qx := PointAngle(Pt(0, 1, 0), dx)
	qy := PointAngle(Pt(1, 0, 0), dy)
	return qy.Multiply(qx)
}

// XYAlt is the alternate drag mapping. It tilts about the screen-aligned
// diagonal (1, 0, -1) and applies the tilt before the spin, which feels
// heavier on vertical drags than XY. Keep both; they are not interchangeable.
func XYAlt(dx, dy float64) Quaternion {
	qx := PointAngle(Pt(0, 1, 0), dx)
	qy := PointAngle(Pt(1, 0, -1), dy)
	return qx.Multiply(qy)
}
