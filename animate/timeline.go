package animate

import "time"

// keyframe is one queued step of a Timeline.
type keyframe struct {
	duration time.Duration
	fn       func(t float64)
	start    time.Duration
}

// Timeline is a queue of timed keyframes played one after another.
//
// Each tick advances the head keyframe and passes its progress t in [0, 1]
// to the keyframe callback. A keyframe finishing mid-frame hands the
// remaining time to its successor, so a late frame catches up through
// several keyframes. A zero-duration keyframe fires once with t = 1 and
// ends the frame's processing: later keyframes wait for the next tick.
//
// The first keyframe queued on an idle timeline starts at the last elapsed
// time the timeline observed (zero before its first tick). Tick returns
// false once the queue is empty.
type Timeline struct {
	queue []*keyframe
	now   time.Duration
}

// NewTimeline returns an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Tween queues a keyframe calling fn with progress over d.
func (tl *Timeline) Tween(d time.Duration, fn func(t float64)) *Timeline {
	k := &keyframe{duration: d, fn: fn}
	if len(tl.queue) == 0 {
		k.start = tl.now
	}
	tl.queue = append(tl.queue, k)
	return tl
}

// Wait queues a pause of d.
func (tl *Timeline) Wait(d time.Duration) *Timeline {
	return tl.Tween(d, nil)
}

// Call queues a zero-duration keyframe calling fn once.
func (tl *Timeline) Call(fn func()) *Timeline {
	return tl.Tween(0, func(float64) { fn() })
}

// Reset drops every pending keyframe. The timeline stays usable and stays
// registered with its Animator.
func (tl *Timeline) Reset() {
	tl.queue = nil
}

// Len returns the number of pending keyframes.
func (tl *Timeline) Len() int {
	return len(tl.queue)
}

// Tick implements Tickable.
func (tl *Timeline) Tick(elapsed time.Duration) bool {
	if elapsed < tl.now && len(tl.queue) > 0 {
		// The animator was restarted; keep the head's progress.
		tl.queue[0].start -= tl.now - elapsed
	}
	tl.now = elapsed

	for len(tl.queue) > 0 {
		k := tl.queue[0]
		t := 1.0
		if k.duration > 0 {
			t = clamp01(float64(elapsed-k.start) / float64(k.duration))
		}
		if k.fn != nil {
			k.fn(t)
		}
		if t < 1 {
			return true
		}
		tl.pop(k)
		if k.duration <= 0 {
			return len(tl.queue) > 0
		}
	}
	return false
}

// pop removes k if it is still the head; the callback may have reset or
// rebuilt the queue.
func (tl *Timeline) pop(k *keyframe) {
	if len(tl.queue) == 0 || tl.queue[0] != k {
		return
	}
	tl.queue[0] = nil
	tl.queue = tl.queue[1:]
	if len(tl.queue) > 0 {
		tl.queue[0].start = k.start + k.duration
	}
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}
