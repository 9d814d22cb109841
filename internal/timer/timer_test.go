package timer

import (
	"context"
	"sync"
	"testing"
	"time"

	errorvalues "github.com/limbo/cookstreak/internal/error_values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 5, 14, 18, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type wakeCall struct {
	op    string
	id    string
	after time.Duration
}

// recordingWaker collects schedule/cancel calls for testing.
type recordingWaker struct {
	mu    sync.Mutex
	calls []wakeCall
}

func (w *recordingWaker) Schedule(id string, after time.Duration, _ string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls = append(w.calls, wakeCall{op: "schedule", id: id, after: after})
}

func (w *recordingWaker) Cancel(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls = append(w.calls, wakeCall{op: "cancel", id: id})
}

func (w *recordingWaker) scheduled() []time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []time.Duration
	for _, c := range w.calls {
		if c.op == "schedule" {
			out = append(out, c.after)
		}
	}
	return out
}

func (w *recordingWaker) last() wakeCall {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.calls[len(w.calls)-1]
}

func TestStopwatchExcludesPauses(t *testing.T) {
	clock := newFakeClock()
	sw := NewStopwatch(clock)
	require.NoError(t, sw.Start())
	clock.Advance(5 * time.Second)
	require.NoError(t, sw.Pause())
	clock.Advance(3 * time.Second)
	assert.Equal(t, 5*time.Second, sw.Elapsed())
	assert.Equal(t, 3*time.Second, sw.PausedTotal())
	require.NoError(t, sw.Resume())
	clock.Advance(2 * time.Second)
	assert.Equal(t, 7*time.Second, sw.Elapsed())
	actual, err := sw.Finish()
	require.NoError(t, err)
	assert.Equal(t, 7*time.Second, actual)
	assert.Equal(t, StateFinished, sw.State())
	clock.Advance(time.Minute)
	assert.Equal(t, 7*time.Second, sw.Elapsed())
}

func TestStopwatchFinishWhilePaused(t *testing.T) {
	clock := newFakeClock()
	sw := NewStopwatch(clock)
	require.NoError(t, sw.Start())
	clock.Advance(10 * time.Minute)
	require.NoError(t, sw.Pause())
	clock.Advance(4 * time.Minute)
	actual, err := sw.Finish()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, actual)
}

func TestStopwatchTransitions(t *testing.T) {
	clock := newFakeClock()
	sw := NewStopwatch(clock)
	assert.Equal(t, StateIdle, sw.State())
	assert.ErrorIs(t, sw.Pause(), errorvalues.ErrInvalidState)
	assert.ErrorIs(t, sw.Resume(), errorvalues.ErrInvalidState)
	_, err := sw.Finish()
	assert.ErrorIs(t, err, errorvalues.ErrInvalidState)

	require.NoError(t, sw.Start())
	assert.ErrorIs(t, sw.Start(), errorvalues.ErrInvalidState)
	assert.ErrorIs(t, sw.Resume(), errorvalues.ErrInvalidState)
	require.NoError(t, sw.Pause())
	assert.ErrorIs(t, sw.Pause(), errorvalues.ErrInvalidState)

	sw.Cancel()
	assert.Equal(t, StateIdle, sw.State())
	assert.Equal(t, time.Duration(0), sw.Elapsed())
	assert.True(t, sw.StartedAt().IsZero())

	require.NoError(t, sw.Start())
	clock.Advance(time.Second)
	_, err = sw.Finish()
	require.NoError(t, err)
	assert.ErrorIs(t, sw.Start(), errorvalues.ErrInvalidState)
	sw.Cancel()
	assert.NoError(t, sw.Start())
}

func TestCountdownRunsToZero(t *testing.T) {
	clock := newFakeClock()
	waker := &recordingWaker{}
	var finishedCalls int
	cd := NewCountdown("t1", "pasta", 10*time.Second,
		WithClock(clock),
		WithWaker(waker),
		WithTickInterval(time.Hour),
		WithOnFinish(func(*Countdown) { finishedCalls++ }),
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, cd.Start(ctx))
	assert.Equal(t, []time.Duration{10 * time.Second}, waker.scheduled())

	clock.Advance(4 * time.Second)
	assert.False(t, cd.tick())
	assert.Equal(t, 6*time.Second, cd.Remaining())

	clock.Advance(6 * time.Second)
	assert.True(t, cd.tick())
	assert.Equal(t, StateFinished, cd.State())
	assert.Equal(t, time.Duration(0), cd.Remaining())
	select {
	case <-cd.Done():
	default:
		t.Fatal("done channel not closed")
	}
	assert.True(t, cd.tick())
	assert.Equal(t, 1, finishedCalls)
}

func TestCountdownPauseResume(t *testing.T) {
	clock := newFakeClock()
	waker := &recordingWaker{}
	cd := NewCountdown("t2", "rice", time.Minute, WithClock(clock), WithWaker(waker), WithTickInterval(time.Hour))
	ctx := context.Background()

	require.NoError(t, cd.Start(ctx))
	clock.Advance(20 * time.Second)
	require.NoError(t, cd.Pause())
	assert.Equal(t, StatePaused, cd.State())
	assert.Equal(t, wakeCall{op: "cancel", id: "t2"}, waker.last())

	// Time spent paused or suspended does not count.
	clock.Advance(10 * time.Minute)
	assert.Equal(t, 40*time.Second, cd.Remaining())
	cd.tick()
	assert.Equal(t, StatePaused, cd.State())

	require.NoError(t, cd.Resume(ctx))
	assert.Equal(t, []time.Duration{time.Minute, 40 * time.Second}, waker.scheduled())

	clock.Advance(39 * time.Second)
	assert.False(t, cd.tick())
	assert.Equal(t, time.Second, cd.Remaining())
	clock.Advance(time.Second)
	assert.True(t, cd.tick())
	assert.Equal(t, StateFinished, cd.State())
	cd.Cancel()
	assert.Equal(t, StateFinished, cd.State())
}

func TestCountdownBackgroundedCatchesUp(t *testing.T) {
	clock := newFakeClock()
	cd := NewCountdown("t3", "eggs", 5*time.Minute, WithClock(clock), WithTickInterval(time.Hour))
	require.NoError(t, cd.Start(context.Background()))
	// No ticks at all while "backgrounded".
	clock.Advance(7 * time.Minute)
	assert.Equal(t, time.Duration(0), cd.Remaining())
	assert.True(t, cd.tick())
	assert.Equal(t, StateFinished, cd.State())
}

func TestCountdownCancel(t *testing.T) {
	clock := newFakeClock()
	waker := &recordingWaker{}
	cd := NewCountdown("t4", "sauce", time.Minute, WithClock(clock), WithWaker(waker), WithTickInterval(time.Hour))
	assert.ErrorIs(t, cd.Pause(), errorvalues.ErrInvalidState)
	assert.ErrorIs(t, cd.Resume(context.Background()), errorvalues.ErrInvalidState)

	require.NoError(t, cd.Start(context.Background()))
	assert.ErrorIs(t, cd.Start(context.Background()), errorvalues.ErrInvalidState)
	clock.Advance(30 * time.Second)
	cd.Cancel()
	assert.Equal(t, StateIdle, cd.State())
	assert.Equal(t, time.Minute, cd.Remaining())
	assert.Equal(t, wakeCall{op: "cancel", id: "t4"}, waker.last())
}

func TestCountdownRejectsZeroDuration(t *testing.T) {
	cd := NewCountdown("t5", "nothing", 0)
	assert.ErrorIs(t, cd.Start(context.Background()), errorvalues.ErrInvalidState)
}

func TestCountdownNilClockKeepsSystemClock(t *testing.T) {
	cd := NewCountdown("t7", "rice", time.Hour, WithClock(nil), WithTickInterval(time.Hour))
	require.NoError(t, cd.Start(context.Background()))
	defer cd.Cancel()
	assert.Equal(t, StateRunning, cd.State())
	assert.LessOrEqual(t, cd.Remaining(), time.Hour)
	assert.Greater(t, cd.Remaining(), 59*time.Minute)
}

func TestCountdownTickerFires(t *testing.T) {
	cd := NewCountdown("t6", "real", 30*time.Millisecond, WithTickInterval(5*time.Millisecond))
	require.NoError(t, cd.Start(context.Background()))
	select {
	case <-cd.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("countdown did not finish")
	}
	assert.Equal(t, StateFinished, cd.State())
}

func TestLogWaker(t *testing.T) {
	w := NewLogWaker(nil)
	w.Schedule("a", time.Hour, "first")
	w.Schedule("a", time.Hour, "replaced")
	w.Schedule("b", time.Hour, "second")
	assert.Equal(t, 2, w.Pending())
	w.Cancel("a")
	assert.Equal(t, 1, w.Pending())
	require.NoError(t, w.Stop())
	assert.Equal(t, 0, w.Pending())

	w.Schedule("c", time.Millisecond, "fires")
	assert.Eventually(t, func() bool { return w.Pending() == 0 }, time.Second, 5*time.Millisecond)
}
