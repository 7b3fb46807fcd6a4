package animate

import (
	"time"

	"github.com/gogpu/isologo"
)

// Animator drives registered Tickables from host frames.
//
// Each frame runs, in order: elapsed = now - start; Tick(elapsed) on every
// Tickable in registration order; the render hook once. The next frame is
// requested only if at least one Tickable returned true (continue while
// any). Otherwise the animator goes idle until Start is called again.
//
// Animator is not safe for concurrent use; call it from the host's frame
// goroutine only.
type Animator struct {
	tickables []Tickable
	scheduler Scheduler
	render    func()
	clock     func() time.Time

	start   time.Time
	frame   FrameID
	gen     uint64
	running bool
	cont    bool
	frames  uint64
}

// New creates an Animator.
// Without WithScheduler it uses a ManualScheduler starting at time.Now.
func New(opts ...Option) *Animator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.scheduler == nil {
		o.scheduler = NewManualScheduler(time.Now())
	}
	if o.clock == nil {
		if c, ok := o.scheduler.(Clock); ok {
			o.clock = c.Now
		} else {
			o.clock = time.Now
		}
	}
	return &Animator{
		scheduler: o.scheduler,
		render:    o.render,
		clock:     o.clock,
	}
}

// Add registers a Tickable. Tickables live as long as the Animator.
func (a *Animator) Add(t Tickable) {
	a.tickables = append(a.tickables, t)
}

// Accumulator registers and returns a new Accumulator.
func (a *Animator) Accumulator(value, alpha float64) *Accumulator {
	acc := NewAccumulator(value, alpha)
	a.Add(acc)
	return acc
}

// Ticker registers and returns a Ticker calling fn every frame.
func (a *Animator) Ticker(fn func()) *Ticker {
	t := NewTicker(fn)
	a.Add(t)
	return t
}

// Timeline registers and returns an empty Timeline.
func (a *Animator) Timeline() *Timeline {
	tl := NewTimeline()
	a.Add(tl)
	return tl
}

// SetRender replaces the per-frame render hook.
func (a *Animator) SetRender(fn func()) {
	a.render = fn
}

// Start records the start time and requests a frame. Starting a running
// animator does nothing.
func (a *Animator) Start() {
	if a.running {
		return
	}
	a.running = true
	a.gen++
	a.start = a.clock()
	a.request()
}

// request schedules the next frame for the current run. Frames requested
// by an earlier run are ignored when they fire.
func (a *Animator) request() {
	gen := a.gen
	a.frame = a.scheduler.RequestFrame(func(now time.Time) {
		if a.running && gen == a.gen {
			a.tick(now)
		}
	})
}

// Stop cancels the pending frame. Registered Tickables are kept; Start
// resumes them.
func (a *Animator) Stop() {
	if !a.running {
		return
	}
	a.running = false
	if a.frame != 0 {
		a.scheduler.CancelFrame(a.frame)
		a.frame = 0
	}
	isologo.Logger().Debug("animate: stopped", "frames", a.frames)
}

// IsRunning reports whether the animator has a frame pending or is inside
// one.
func (a *Animator) IsRunning() bool {
	return a.running
}

// Frames returns the number of frames run so far.
func (a *Animator) Frames() uint64 {
	return a.frames
}

// tick runs one frame.
func (a *Animator) tick(now time.Time) {
	a.frame = 0
	elapsed := now.Sub(a.start)

	cont := false
	for _, t := range a.tickables {
		if t.Tick(elapsed) {
			cont = true
		}
	}
	a.cont = cont
	a.frames++

	if a.render != nil {
		a.render()
	}

	// A tickable or the render hook may have called Stop, or Stop and
	// Start, which already requested the next frame.
	if !a.running || a.frame != 0 {
		return
	}
	if !cont {
		a.running = false
		isologo.Logger().Debug("animate: idle", "frames", a.frames, "elapsed", elapsed)
		return
	}
	a.request()
}
