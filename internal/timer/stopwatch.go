package timer

import (
	"sync"
	"time"

	errorvalues "github.com/limbo/cookstreak/internal/error_values"
)

// Stopwatch is the count-up cooking session timer. Elapsed time is always
// derived from the wall clock minus accumulated pauses, never from a tick
// counter, so it stays correct while the process is suspended.
type Stopwatch struct {
	clock Clock

	mu          sync.Mutex
	state       State
	startedAt   time.Time
	pausedAt    time.Time
	pausedTotal time.Duration
	final       time.Duration
}

func NewStopwatch(clock Clock) *Stopwatch {
	if clock == nil {
		clock = SystemClock()
	}
	return &Stopwatch{clock: clock}
}

func (sw *Stopwatch) Start() error {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if sw.state != StateIdle {
		return errorvalues.ErrInvalidState
	}
	sw.startedAt = sw.clock.Now()
	sw.pausedTotal = 0
	sw.final = 0
	sw.state = StateRunning
	return nil
}

func (sw *Stopwatch) Pause() error {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if sw.state != StateRunning {
		return errorvalues.ErrInvalidState
	}
	sw.pausedAt = sw.clock.Now()
	sw.state = StatePaused
	return nil
}

func (sw *Stopwatch) Resume() error {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if sw.state != StatePaused {
		return errorvalues.ErrInvalidState
	}
	sw.pausedTotal += sw.clock.Now().Sub(sw.pausedAt)
	sw.pausedAt = time.Time{}
	sw.state = StateRunning
	return nil
}

// Finish stops the stopwatch and returns the actual cooking time, pauses
// excluded. Finishing while paused closes the open pause first.
func (sw *Stopwatch) Finish() (time.Duration, error) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if sw.state != StateRunning && sw.state != StatePaused {
		return 0, errorvalues.ErrInvalidState
	}
	sw.final = sw.elapsedLocked()
	sw.state = StateFinished
	return sw.final, nil
}

// Cancel drops all accumulated state and returns to idle.
func (sw *Stopwatch) Cancel() {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	sw.state = StateIdle
	sw.startedAt = time.Time{}
	sw.pausedAt = time.Time{}
	sw.pausedTotal = 0
	sw.final = 0
}

func (sw *Stopwatch) Elapsed() time.Duration {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.elapsedLocked()
}

func (sw *Stopwatch) elapsedLocked() time.Duration {
	var d time.Duration
	switch sw.state {
	case StateRunning:
		d = sw.clock.Now().Sub(sw.startedAt) - sw.pausedTotal
	case StatePaused:
		d = sw.pausedAt.Sub(sw.startedAt) - sw.pausedTotal
	case StateFinished:
		return sw.final
	default:
		return 0
	}
	if d < 0 {
		return 0
	}
	return d
}

// PausedTotal includes the pause currently in progress, if any.
func (sw *Stopwatch) PausedTotal() time.Duration {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if sw.state == StatePaused {
		return sw.pausedTotal + sw.clock.Now().Sub(sw.pausedAt)
	}
	return sw.pausedTotal
}

func (sw *Stopwatch) State() State {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.state
}

func (sw *Stopwatch) StartedAt() time.Time {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.startedAt
}
