package gamification

import (
	"sort"
	"time"
)

type StreakSummary struct {
	CurrentStreak     int `json:"current_streak"`
	LongestStreak     int `json:"longest_streak"`
	TotalDistinctDays int `json:"total_days"`
	DaysThisWeek      int `json:"days_this_week"`
	DaysThisMonth     int `json:"days_this_month"`
}

// StartOfDay truncates t to local midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DistinctDays reduces timestamps to the sorted set of calendar days in loc.
func DistinctDays(times []time.Time, loc *time.Location) []time.Time {
	seen := make(map[time.Time]struct{}, len(times))
	days := make([]time.Time, 0, len(times))
	for _, t := range times {
		if t.IsZero() {
			continue
		}
		day := StartOfDay(t, loc)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})
	return days
}

// CurrentStreak counts consecutive days ending today. A day without a record
// yet does not break the streak: when today is missing the walk starts from
// yesterday.
func CurrentStreak(days []time.Time, now time.Time, loc *time.Location) int {
	if len(days) == 0 {
		return 0
	}
	set := make(map[time.Time]struct{}, len(days))
	for _, d := range days {
		set[StartOfDay(d, loc)] = struct{}{}
	}
	cursor := StartOfDay(now, loc)
	if _, ok := set[cursor]; !ok {
		cursor = cursor.AddDate(0, 0, -1)
	}
	streak := 0
	for {
		if _, ok := set[cursor]; !ok {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak expects days sorted ascending and distinct, as returned by
// DistinctDays.
func LongestStreak(days []time.Time) int {
	if len(days) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// StartOfWeek returns midnight of the first day of the week containing t.
func StartOfWeek(t time.Time, loc *time.Location, firstDay time.Weekday) time.Time {
	day := StartOfDay(t, loc)
	offset := (int(day.Weekday()) - int(firstDay) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

func StartOfMonth(t time.Time, loc *time.Location) time.Time {
	day := StartOfDay(t, loc)
	return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
}

func Summarize(times []time.Time, now time.Time, loc *time.Location, firstDay time.Weekday) StreakSummary {
	days := DistinctDays(times, loc)
	if len(days) == 0 {
		return StreakSummary{}
	}
	weekStart := StartOfWeek(now, loc, firstDay)
	weekEnd := weekStart.AddDate(0, 0, 7)
	monthStart := StartOfMonth(now, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	summary := StreakSummary{
		CurrentStreak:     CurrentStreak(days, now, loc),
		LongestStreak:     LongestStreak(days),
		TotalDistinctDays: len(days),
	}
	for _, d := range days {
		if !d.Before(weekStart) && d.Before(weekEnd) {
			summary.DaysThisWeek++
		}
		if !d.Before(monthStart) && d.Before(monthEnd) {
			summary.DaysThisMonth++
		}
	}
	return summary
}
