package service

import (
	"time"

	"github.com/limbo/cookstreak/internal/timer"
)

// Calendar decides what "today" and "this week" mean for streaks and
// daily bonuses.
type Calendar struct {
	Location  *time.Location
	WeekStart time.Weekday
	Clock     timer.Clock
}

func DefaultCalendar() Calendar {
	return Calendar{
		Location:  time.Local,
		WeekStart: time.Monday,
		Clock:     timer.SystemClock(),
	}
}

func (c Calendar) now() time.Time {
	if c.Clock == nil {
		return time.Now().In(c.loc())
	}
	return c.Clock.Now().In(c.loc())
}

func (c Calendar) loc() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}
