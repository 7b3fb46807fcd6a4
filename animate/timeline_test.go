package animate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ms = time.Millisecond

func TestTimelineProgress(t *testing.T) {
	var got []float64
	tl := NewTimeline().Tween(1000*ms, func(p float64) { got = append(got, p) })

	assert.True(t, tl.Tick(500*ms))
	require.Len(t, got, 1)
	assert.InDelta(t, 0.5, got[0], 1e-9)

	assert.False(t, tl.Tick(1200*ms), "queue exhausted")
	require.Len(t, got, 2)
	assert.Equal(t, 1.0, got[1])

	assert.False(t, tl.Tick(1300*ms))
	assert.Len(t, got, 2, "finished keyframe must not fire again")
}

func TestTimelineZeroDurationIsBarrier(t *testing.T) {
	var order []string
	tl := NewTimeline().
		Call(func() { order = append(order, "a") }).
		Call(func() { order = append(order, "b") })

	assert.True(t, tl.Tick(0), "second keyframe still pending")
	assert.Equal(t, []string{"a"}, order)

	assert.False(t, tl.Tick(16*ms))
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestTimelineZeroDurationFiresWithOne(t *testing.T) {
	var got []float64
	tl := NewTimeline().Tween(0, func(p float64) { got = append(got, p) })
	assert.False(t, tl.Tick(5*ms))
	assert.Equal(t, []float64{1}, got)
}

func TestTimelineCatchesUpAcrossKeyframes(t *testing.T) {
	var a, b []float64
	tl := NewTimeline().
		Tween(100*ms, func(p float64) { a = append(a, p) }).
		Tween(100*ms, func(p float64) { b = append(b, p) })

	assert.True(t, tl.Tick(150*ms))
	assert.Equal(t, []float64{1}, a)
	require.Len(t, b, 1)
	assert.InDelta(t, 0.5, b[0], 1e-9, "second keyframe starts where the first ended")
}

func TestTimelineWait(t *testing.T) {
	fired := false
	tl := NewTimeline().Wait(200 * ms).Call(func() { fired = true })

	assert.True(t, tl.Tick(100*ms))
	assert.False(t, fired)
	assert.False(t, tl.Tick(250*ms))
	assert.True(t, fired)
}

func TestTimelineIdleStartsAtLastTick(t *testing.T) {
	tl := NewTimeline()
	assert.False(t, tl.Tick(400*ms))

	var got float64
	tl.Tween(100*ms, func(p float64) { got = p })
	assert.True(t, tl.Tick(450*ms))
	assert.InDelta(t, 0.5, got, 1e-9)
}

func TestTimelineReset(t *testing.T) {
	calls := 0
	tl := NewTimeline().Tween(100*ms, func(float64) { calls++ }).Wait(time.Second)
	assert.Equal(t, 2, tl.Len())

	tl.Reset()
	assert.Equal(t, 0, tl.Len())
	assert.False(t, tl.Tick(50*ms))
	assert.Zero(t, calls)

	// Still usable after a reset.
	tl.Call(func() { calls++ })
	assert.False(t, tl.Tick(60*ms))
	assert.Equal(t, 1, calls)
}

func TestTimelineResetFromCallback(t *testing.T) {
	tl := NewTimeline()
	tl.Tween(100*ms, func(p float64) {
		if p == 1 {
			tl.Reset()
		}
	}).Wait(time.Second)

	assert.False(t, tl.Tick(200*ms))
	assert.Zero(t, tl.Len())
}

func TestTimelineAppendFromCallback(t *testing.T) {
	loops := 0
	tl := NewTimeline()
	var loop func()
	loop = func() {
		loops++
		if loops < 3 {
			tl.Wait(10 * ms).Call(loop)
		}
	}
	tl.Call(loop)

	for i := 0; i < 10 && tl.Tick(time.Duration(i*20)*ms); i++ {
	}
	assert.Equal(t, 3, loops)
}

func TestTimelineRestartKeepsProgress(t *testing.T) {
	var got float64
	tl := NewTimeline()
	tl.Tick(5000 * ms)

	tl.Tween(1000*ms, func(p float64) { got = p })
	tl.Tick(5400 * ms)
	assert.InDelta(t, 0.4, got, 1e-9)

	// Animator restarted: elapsed jumps back near zero. Progress resumes
	// from where it was instead of waiting for the old timestamps.
	tl.Tick(100 * ms)
	assert.InDelta(t, 0.4, got, 1e-9)
	tl.Tick(200 * ms)
	assert.InDelta(t, 0.5, got, 1e-9)
}

func TestEasing(t *testing.T) {
	for name, ease := range map[string]EaseFunc{
		"linear":     Linear,
		"inQuad":     InQuad,
		"outQuad":    OutQuad,
		"inOutCubic": InOutCubic,
		"outBack":    OutBack,
		"outElastic": OutElastic,
	} {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0, ease(0), 1e-9)
			assert.InDelta(t, 1, ease(1), 1e-9)
		})
	}
	assert.Greater(t, OutBack(0.8), 1.0, "OutBack overshoots")
	assert.InDelta(t, 0.5, InOutCubic(0.5), 1e-9)
	assert.Equal(t, 15.0, Lerp(10, 20, 0.5))

	var got float64
	Eased(InQuad, func(p float64) { got = p })(0.5)
	assert.Equal(t, 0.25, got)
}
