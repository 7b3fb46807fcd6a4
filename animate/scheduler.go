package animate

import "time"

// FrameID identifies a pending frame request. Zero is never issued.
type FrameID uint64

// Scheduler is the host's animation-frame primitive, the equivalent of a
// browser's requestAnimationFrame / cancelAnimationFrame pair.
//
// RequestFrame arranges for fn to be called once, on the host's next frame,
// with that frame's timestamp. Implementations call fn on the host's frame
// goroutine and never concurrently with another frame callback.
type Scheduler interface {
	RequestFrame(fn func(now time.Time)) FrameID
	CancelFrame(id FrameID)
}

// Clock is implemented by schedulers that own their notion of time.
// An Animator started on such a scheduler reads its start time from it.
type Clock interface {
	Now() time.Time
}

type frameRequest struct {
	id FrameID
	fn func(now time.Time)
}

// ManualScheduler is a deterministic Scheduler driven by explicit calls to
// Advance. It is used by tests and by offline frame export.
//
// ManualScheduler is not safe for concurrent use.
type ManualScheduler struct {
	now     time.Time
	lastID  FrameID
	pending []frameRequest
}

// NewManualScheduler returns a scheduler whose clock reads start.
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

// Now implements Clock.
func (s *ManualScheduler) Now() time.Time {
	return s.now
}

// RequestFrame implements Scheduler.
func (s *ManualScheduler) RequestFrame(fn func(now time.Time)) FrameID {
	s.lastID++
	s.pending = append(s.pending, frameRequest{id: s.lastID, fn: fn})
	return s.lastID
}

// CancelFrame implements Scheduler. Unknown IDs are ignored.
func (s *ManualScheduler) CancelFrame(id FrameID) {
	for i, r := range s.pending {
		if r.id == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of outstanding frame requests.
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}

// Advance moves the clock forward by d and runs one frame: every request
// pending before the call. Requests made by those callbacks wait for the
// next Advance. It returns the number of callbacks run.
func (s *ManualScheduler) Advance(d time.Duration) int {
	s.now = s.now.Add(d)
	batch := s.pending
	s.pending = nil
	for _, r := range batch {
		r.fn(s.now)
	}
	return len(batch)
}
