// Package gamification holds the experience, leveling, streak and badge
// rules. Everything here is a pure computation over values handed in by the
// caller; nothing touches storage or the wall clock.
package gamification

import (
	"time"

	"github.com/limbo/cookstreak/pkg/entity"
)

// ExperiencePerLevel is the flat XP distance between two adjacent levels.
const ExperiencePerLevel = 150

// XPThresholdForLevel returns the minimum experience needed to be at level.
func XPThresholdForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return ExperiencePerLevel * (level - 1)
}

// LevelForExperience maps cumulative experience to a level, starting at 1.
func LevelForExperience(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/ExperiencePerLevel + 1
}

func Progress(xp int) entity.LevelProgress {
	if xp < 0 {
		xp = 0
	}
	level := LevelForExperience(xp)
	floor := XPThresholdForLevel(level)
	next := XPThresholdForLevel(level + 1)
	return entity.LevelProgress{
		Level:         level,
		Experience:    xp,
		LevelFloorXP:  floor,
		NextLevelXP:   next,
		Fraction:      float64(xp-floor) / float64(next-floor),
		ToNextLevelXP: next - xp,
	}
}

// AddExperience credits amount to the user and recomputes the level.
// Reports whether the level went up. Non-positive amounts are ignored.
func AddExperience(user *entity.User, amount int, now time.Time) bool {
	if user == nil || amount <= 0 {
		return false
	}
	before := LevelForExperience(user.ExperiencePoints)
	user.ExperiencePoints += amount
	user.Level = LevelForExperience(user.ExperiencePoints)
	user.UpdatedAt = now
	return user.Level > before
}
