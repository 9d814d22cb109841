package timer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	errorvalues "github.com/limbo/cookstreak/internal/error_values"
)

// Option configures a countdown.
type Option func(*Countdown)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(cd *Countdown) {
		if c != nil {
			cd.clock = c
		}
	}
}

// WithTickInterval sets how often a running countdown checks for expiry.
func WithTickInterval(d time.Duration) Option {
	return func(cd *Countdown) {
		cd.tickInterval = d
	}
}

// WithWaker sets the scheduler re-armed on every transition into running.
func WithWaker(w Waker) Option {
	return func(cd *Countdown) {
		if w != nil {
			cd.waker = w
		}
	}
}

// WithOnFinish registers a callback run once when the countdown reaches zero.
func WithOnFinish(f func(*Countdown)) Option {
	return func(cd *Countdown) {
		cd.onFinish = f
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(cd *Countdown) {
		cd.log = l
	}
}

// Countdown is the helper count-down timer. While running, the remaining
// time is the distance to a wall-clock deadline; the ticker only decides
// when to notice that the deadline passed.
type Countdown struct {
	id           string
	label        string
	duration     time.Duration
	clock        Clock
	tickInterval time.Duration
	waker        Waker
	onFinish     func(*Countdown)
	log          *slog.Logger

	mu        sync.Mutex
	state     State
	remaining time.Duration
	deadline  time.Time
	stop      context.CancelFunc
	done      chan struct{}
}

func NewCountdown(id, label string, duration time.Duration, opts ...Option) *Countdown {
	cd := &Countdown{
		id:           id,
		label:        label,
		duration:     duration,
		clock:        SystemClock(),
		tickInterval: 1 * time.Second,
		waker:        noopWaker{},
		log:          slog.Default(),
		remaining:    duration,
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(cd)
	}
	return cd
}

func (cd *Countdown) ID() string              { return cd.id }
func (cd *Countdown) Label() string           { return cd.label }
func (cd *Countdown) Duration() time.Duration { return cd.duration }

// Done is closed once, when the countdown reaches zero.
func (cd *Countdown) Done() <-chan struct{} { return cd.done }

// Start arms the countdown for its full duration. The ticker goroutine
// lives until ctx is cancelled or the countdown leaves the running state.
func (cd *Countdown) Start(ctx context.Context) error {
	cd.mu.Lock()
	defer cd.mu.Unlock()
	if cd.state != StateIdle {
		return errorvalues.ErrInvalidState
	}
	if cd.duration <= 0 {
		return errorvalues.ErrInvalidState
	}
	cd.remaining = cd.duration
	cd.runLocked(ctx)
	cd.log.Debug("countdown started", slog.String("timer_id", cd.id), slog.Duration("duration", cd.duration))
	return nil
}

// Pause freezes the remaining time and disarms the wake-up.
func (cd *Countdown) Pause() error {
	cd.mu.Lock()
	if cd.state != StateRunning {
		cd.mu.Unlock()
		return errorvalues.ErrInvalidState
	}
	remaining := cd.deadline.Sub(cd.clock.Now())
	if remaining <= 0 {
		finished := cd.finishLocked()
		cd.mu.Unlock()
		cd.notifyFinished(finished)
		return errorvalues.ErrInvalidState
	}
	cd.remaining = remaining
	cd.haltLocked()
	cd.state = StatePaused
	cd.mu.Unlock()
	cd.log.Debug("countdown paused", slog.String("timer_id", cd.id), slog.Duration("remaining", remaining))
	return nil
}

// Resume continues counting down from where Pause left off.
func (cd *Countdown) Resume(ctx context.Context) error {
	cd.mu.Lock()
	defer cd.mu.Unlock()
	if cd.state != StatePaused {
		return errorvalues.ErrInvalidState
	}
	cd.runLocked(ctx)
	cd.log.Debug("countdown resumed", slog.String("timer_id", cd.id), slog.Duration("remaining", cd.remaining))
	return nil
}

// Cancel returns the countdown to idle with its full duration.
func (cd *Countdown) Cancel() {
	cd.mu.Lock()
	defer cd.mu.Unlock()
	if cd.state == StateFinished {
		return
	}
	cd.haltLocked()
	cd.state = StateIdle
	cd.remaining = cd.duration
	cd.deadline = time.Time{}
}

func (cd *Countdown) Remaining() time.Duration {
	cd.mu.Lock()
	defer cd.mu.Unlock()
	if cd.state == StateRunning {
		if r := cd.deadline.Sub(cd.clock.Now()); r > 0 {
			return r
		}
		return 0
	}
	return cd.remaining
}

func (cd *Countdown) State() State {
	cd.mu.Lock()
	defer cd.mu.Unlock()
	return cd.state
}

// runLocked moves into running: sets the deadline, re-arms the wake-up for
// the current remaining time and starts the ticker.
func (cd *Countdown) runLocked(ctx context.Context) {
	cd.deadline = cd.clock.Now().Add(cd.remaining)
	cd.waker.Cancel(cd.id)
	cd.waker.Schedule(cd.id, cd.remaining, cd.label)
	loopCtx, cancel := context.WithCancel(ctx)
	cd.stop = cancel
	cd.state = StateRunning
	go cd.loop(loopCtx)
}

func (cd *Countdown) haltLocked() {
	if cd.stop != nil {
		cd.stop()
		cd.stop = nil
	}
	cd.waker.Cancel(cd.id)
}

func (cd *Countdown) loop(ctx context.Context) {
	ticker := time.NewTicker(cd.tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if cd.tick() {
				return
			}
		}
	}
}

// tick checks the deadline once. Reports whether the countdown is no longer
// running.
func (cd *Countdown) tick() bool {
	cd.mu.Lock()
	if cd.state != StateRunning {
		cd.mu.Unlock()
		return true
	}
	if cd.clock.Now().Before(cd.deadline) {
		cd.mu.Unlock()
		return false
	}
	finished := cd.finishLocked()
	cd.mu.Unlock()
	cd.notifyFinished(finished)
	return true
}

func (cd *Countdown) finishLocked() bool {
	if cd.state == StateFinished {
		return false
	}
	if cd.stop != nil {
		cd.stop()
		cd.stop = nil
	}
	cd.state = StateFinished
	cd.remaining = 0
	close(cd.done)
	return true
}

func (cd *Countdown) notifyFinished(finished bool) {
	if !finished {
		return
	}
	cd.log.Info("countdown finished", slog.String("timer_id", cd.id), slog.String("label", cd.label))
	if cd.onFinish != nil {
		cd.onFinish(cd)
	}
}
