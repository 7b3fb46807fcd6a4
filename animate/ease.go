package animate

import "math"

// EaseFunc maps linear progress in [0, 1] to eased progress.
// Overshooting curves such as OutBack may leave [0, 1] mid-way but always
// return 0 at 0 and 1 at 1.
type EaseFunc func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// InQuad accelerates from rest.
func InQuad(t float64) float64 { return t * t }

// OutQuad decelerates to rest.
func OutQuad(t float64) float64 { return t * (2 - t) }

// InOutCubic accelerates then decelerates.
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 1 + u*u*u/2
}

// OutBack overshoots the target slightly before settling.
func OutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}

// OutElastic springs past the target a few times before settling.
func OutElastic(t float64) float64 {
	if t <= 0 || t >= 1 {
		return t
	}
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*(2*math.Pi/3)) + 1
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Eased wraps a keyframe callback so it receives eased progress.
func Eased(ease EaseFunc, fn func(t float64)) func(t float64) {
	return func(t float64) { fn(ease(t)) }
}
