package timer

import (
	"log/slog"
	"sync"
	"time"
)

// Waker schedules an out-of-band wake-up for a running countdown, so the
// user hears about it even if nothing polls the countdown. Scheduling an id
// that is already armed replaces the earlier wake-up.
type Waker interface {
	Schedule(id string, after time.Duration, label string)
	Cancel(id string)
}

type noopWaker struct{}

func (noopWaker) Schedule(string, time.Duration, string) {}
func (noopWaker) Cancel(string)                          {}

// LogWaker arms in-process timers and logs when one fires. It stands in for
// a device notification scheduler.
type LogWaker struct {
	log *slog.Logger

	mu     sync.Mutex
	timers map[string]*time.Timer
}

func NewLogWaker(log *slog.Logger) *LogWaker {
	if log == nil {
		log = slog.Default()
	}
	return &LogWaker{
		log:    log,
		timers: make(map[string]*time.Timer),
	}
}

func (w *LogWaker) Schedule(id string, after time.Duration, label string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.timers[id]; ok {
		t.Stop()
	}
	var armed *time.Timer
	armed = time.AfterFunc(after, func() {
		w.mu.Lock()
		if w.timers[id] == armed {
			delete(w.timers, id)
		}
		w.mu.Unlock()
		w.log.Info("countdown wake-up", slog.String("timer_id", id), slog.String("label", label))
	})
	w.timers[id] = armed
	w.log.Debug("wake-up scheduled", slog.String("timer_id", id), slog.Duration("after", after))
}

func (w *LogWaker) Cancel(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.timers[id]; ok {
		t.Stop()
		delete(w.timers, id)
	}
}

// Pending reports how many wake-ups are armed.
func (w *LogWaker) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.timers)
}

// Stop disarms everything. Registered as a cleanup job on shutdown.
func (w *LogWaker) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for id, t := range w.timers {
		t.Stop()
		delete(w.timers, id)
	}
	return nil
}
