package animate

import "time"

// Tickable is advanced once per animation frame.
//
// elapsed is the time since the Animator was started. Tick reports whether
// the Tickable wants the animator to keep requesting frames.
type Tickable interface {
	Tick(elapsed time.Duration) bool
}

// TickFunc adapts an ordinary function to the Tickable interface.
type TickFunc func(elapsed time.Duration) bool

// Tick calls f(elapsed).
func (f TickFunc) Tick(elapsed time.Duration) bool {
	return f(elapsed)
}

// Accumulator is an exponentially smoothed scalar. Every tick moves Value
// a fixed fraction Alpha of the remaining distance toward Target.
//
// Accumulators never finish: Tick always returns true.
type Accumulator struct {
	Value  float64
	Target float64
	Alpha  float64
}

// NewAccumulator returns an accumulator at rest on value.
func NewAccumulator(value, alpha float64) *Accumulator {
	return &Accumulator{Value: value, Target: value, Alpha: alpha}
}

// SetTarget changes the value the accumulator converges toward.
func (a *Accumulator) SetTarget(target float64) {
	a.Target = target
}

// Snap jumps to v and stops any motion.
func (a *Accumulator) Snap(v float64) {
	a.Value = v
	a.Target = v
}

// Tick implements Tickable.
func (a *Accumulator) Tick(time.Duration) bool {
	a.Value += (a.Target - a.Value) * a.Alpha
	return true
}

// Ticker calls a function every frame and never finishes.
type Ticker struct {
	fn func()
}

// NewTicker returns a Ticker calling fn.
func NewTicker(fn func()) *Ticker {
	return &Ticker{fn: fn}
}

// Tick implements Tickable.
func (t *Ticker) Tick(time.Duration) bool {
	if t.fn != nil {
		t.fn()
	}
	return true
}
