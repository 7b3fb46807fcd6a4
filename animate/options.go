package animate

import "time"

// Option configures an Animator during creation.
//
// Example:
//
//	sched := animate.NewManualScheduler(time.Now())
//	a := animate.New(animate.WithScheduler(sched), animate.WithRender(draw))
type Option func(*options)

// options holds optional configuration for Animator creation.
type options struct {
	scheduler Scheduler
	render    func()
	clock     func() time.Time
}

// defaultOptions returns the default animator options.
func defaultOptions() options {
	return options{
		scheduler: nil, // Will be set to a ManualScheduler if nil
		clock:     nil, // Scheduler clock, or time.Now
	}
}

// WithScheduler sets the host frame scheduler.
func WithScheduler(s Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}

// WithRender sets the hook called once per frame after every tick.
func WithRender(fn func()) Option {
	return func(o *options) {
		o.render = fn
	}
}

// WithClock overrides the time source used by Start.
// By default the scheduler's Clock is used when it has one, else time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}
