package isologo

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point represents a 3D point or vector.
//
// Arithmetic methods take and return values, so intermediate results never
// alias the receiver. Transform is the exception: it mutates in place.
type Point struct {
	X, Y, Z float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Scale returns the point scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Div returns the point divided by s.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s, Z: p.Z / s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product p x q.
func (p Point) Cross(q Point) Point {
	return Point{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.Dot(p))
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return p.Div(l)
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
		Z: p.Z + (q.Z-p.Z)*t,
	}
}

// Approx reports whether p and q differ by at most epsilon on every axis.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) <= epsilon &&
		math.Abs(p.Y-q.Y) <= epsilon &&
		math.Abs(p.Z-q.Z) <= epsilon
}

// Transform applies m to the point in place (w is taken as 1) and returns
// the receiver for chaining.
func (p *Point) Transform(m *Matrix) *Point {
	v := m.mat.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	p.X, p.Y, p.Z = v[0], v[1], v[2]
	return p
}

// Transformed returns a transformed copy of p.
func (p Point) Transformed(m *Matrix) Point {
	q := p
	q.Transform(m)
	return q
}

// centroid returns the average of pts, or the zero point for an empty slice.
func centroid(pts []Point) Point {
	var c Point
	if len(pts) == 0 {
		return c
	}
	for _, p := range pts {
		c = c.Add(p)
	}
	return c.Div(float64(len(pts)))
}
