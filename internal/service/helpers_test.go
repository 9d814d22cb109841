package service_test

import (
	"sync"
	"time"

	"github.com/limbo/cookstreak/internal/service"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func testCalendar() (service.Calendar, *fakeClock) {
	clock := &fakeClock{now: testNow}
	return service.Calendar{
		Location:  time.UTC,
		WeekStart: time.Monday,
		Clock:     clock,
	}, clock
}
