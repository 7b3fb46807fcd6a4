package host

import (
	"time"

	"github.com/gogpu/isologo"
	"github.com/gogpu/isologo/animate"
	"github.com/gogpu/isologo/config"
	"github.com/gogpu/isologo/logo"
)

// Loop adapts a fixed-rate update callback into an animate.Scheduler.
// Each Step advances the scheduler clock by the wall time since the
// previous step and runs the frame requests that were pending.
//
// Loop is not safe for concurrent use; call Step from the backend's update
// goroutine, which is also where logo input must be delivered.
type Loop struct {
	sched *animate.ManualScheduler
	now   func() time.Time
	last  time.Time
}

// NewLoop returns a loop reading time from now, or time.Now when nil.
func NewLoop(now func() time.Time) *Loop {
	if now == nil {
		now = time.Now
	}
	t := now()
	return &Loop{
		sched: animate.NewManualScheduler(t),
		now:   now,
		last:  t,
	}
}

// Scheduler returns the scheduler to pass to animate.WithScheduler.
func (l *Loop) Scheduler() *animate.ManualScheduler {
	return l.sched
}

// Step runs one frame and returns the number of callbacks run.
func (l *Loop) Step() int {
	t := l.now()
	d := t.Sub(l.last)
	if d < 0 {
		d = 0
	}
	l.last = t
	return l.sched.Advance(d)
}

// ApplyConfig updates a running logo with the settings that can change
// without rebuilding it: palette, drag mode, scale, shadow blur and grid.
// Canvas size, fps, smoothing and intro only take effect on restart.
func ApplyConfig(l *logo.Logo, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	p, err := cfg.LogoPalette()
	if err != nil {
		return err
	}
	mode, _ := logo.ParseDragMode(cfg.DragMode)

	l.SetPalette(p)
	l.SetDragMode(mode)
	if cfg.Scale > 0 {
		l.Renderer().Scale = cfg.Scale
	}
	l.Renderer().ShadowBlur = cfg.ShadowBlur
	l.Background().Spacing = cfg.GridSpacing
	l.Animator.Start()
	isologo.Logger().Info("host: config applied", "drag", mode)
	return nil
}
