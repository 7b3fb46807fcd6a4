// Package host turns per-frame input snapshots from a windowing backend
// into logo pointer events, and drives a logo from a fixed-rate frame loop.
//
// Backends such as host/ebitenhost sample their input once per update into
// a Sample and hand it to Input.Apply; the edge detection, the choice
// between touch and mouse, and the leave events live here so that they can
// be tested without a window.
package host

// Pointer receives pointer events. *logo.Logo implements it.
type Pointer interface {
	PointerMove(x, y float64)
	PointerDown(x, y float64)
	PointerUp()
	PointerLeave()
	TouchStart(x, y float64)
	TouchMove(x, y float64)
	TouchEnd()
	Scroll(dy float64)
}

// Touch is one active touch point.
type Touch struct {
	ID   int
	X, Y float64
}

// Sample is the input state observed during one update.
type Sample struct {
	X, Y    float64 // cursor position in canvas pixels
	Inside  bool    // cursor over the canvas
	Pressed bool    // primary mouse button held
	Wheel   float64 // vertical wheel delta; positive scrolls up
	Touches []Touch
}

// WheelStep is the scroll distance in pixels of one wheel notch.
const WheelStep = 40

// Input tracks the previous Sample and emits the differences.
// The zero value is ready to use.
type Input struct {
	prev     Sample
	touching bool
	touchID  int
	touchX   float64
	touchY   float64
}

// Apply compares s with the previous sample and forwards the changes to p.
//
// The first touch point wins while it stays down; mouse state is ignored
// while a touch is active.
func (in *Input) Apply(s Sample, p Pointer) {
	if in.applyTouch(s, p) {
		in.prev = s
		return
	}

	switch {
	case s.Inside:
		if !in.prev.Inside || s.X != in.prev.X || s.Y != in.prev.Y {
			p.PointerMove(s.X, s.Y)
		}
		if s.Pressed && !in.prev.Pressed {
			p.PointerDown(s.X, s.Y)
		}
		if !s.Pressed && in.prev.Pressed {
			p.PointerUp()
		}
	case in.prev.Inside:
		p.PointerLeave()
	}

	if s.Wheel != 0 {
		p.Scroll(-s.Wheel * WheelStep)
	}
	in.prev = s
}

// applyTouch handles the primary touch and reports whether touch input
// consumed this sample.
func (in *Input) applyTouch(s Sample, p Pointer) bool {
	if in.touching {
		for _, t := range s.Touches {
			if t.ID != in.touchID {
				continue
			}
			if t.X != in.touchX || t.Y != in.touchY {
				in.touchX, in.touchY = t.X, t.Y
				p.TouchMove(t.X, t.Y)
			}
			return true
		}
		in.touching = false
		p.TouchEnd()
		return true
	}
	if len(s.Touches) == 0 {
		return false
	}
	t := s.Touches[0]
	in.touching = true
	in.touchID, in.touchX, in.touchY = t.ID, t.X, t.Y
	p.TouchStart(t.X, t.Y)
	return true
}
