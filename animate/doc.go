// Package animate provides a cooperative, single-threaded animation
// scheduler.
//
// An Animator owns an ordered list of Tickables. Once per host frame it
// computes the time elapsed since Start, ticks every Tickable in
// registration order, calls its render hook exactly once, and requests the
// next frame only if at least one Tickable asked to continue:
//
//	a := animate.New(animate.WithScheduler(sched), animate.WithRender(draw))
//	x := a.Accumulator(0, 0.08) // eased toward x.Target every frame
//	intro := a.Timeline()
//	intro.Tween(800*time.Millisecond, animate.Eased(animate.OutBack, func(t float64) {
//	    scale = t
//	}))
//	a.Start()
//
// Accumulators and Tickers always continue, so registering one keeps the
// animator running until Stop. Timelines stop asking for frames when their
// queue is empty.
//
// The host supplies frames through the Scheduler interface. ManualScheduler
// is a deterministic implementation for tests and offline rendering.
package animate
