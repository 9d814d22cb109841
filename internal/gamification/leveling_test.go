package gamification_test

import (
	"testing"
	"time"

	"github.com/limbo/cookstreak/internal/gamification"
	"github.com/limbo/cookstreak/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestLevelForExperience(t *testing.T) {
	testCases := []struct {
		Desc  string
		XP    int
		Level int
	}{
		{Desc: "zero", XP: 0, Level: 1},
		{Desc: "negative", XP: -10, Level: 1},
		{Desc: "just below level 2", XP: 149, Level: 1},
		{Desc: "exactly level 2", XP: 150, Level: 2},
		{Desc: "middle of level 3", XP: 370, Level: 3},
		{Desc: "large", XP: 15000, Level: 101},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Level, gamification.LevelForExperience(tc.XP))
		})
	}
}

func TestLevelThresholdRoundTrip(t *testing.T) {
	for level := 1; level <= 200; level++ {
		threshold := gamification.XPThresholdForLevel(level)
		assert.Equal(t, level, gamification.LevelForExperience(threshold))
		if level > 1 {
			assert.Equal(t, level-1, gamification.LevelForExperience(threshold-1))
		}
	}
}

func TestLevelMonotonic(t *testing.T) {
	prev := gamification.LevelForExperience(0)
	for xp := 1; xp < 5000; xp++ {
		cur := gamification.LevelForExperience(xp)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestProgress(t *testing.T) {
	p := gamification.Progress(225)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 150, p.LevelFloorXP)
	assert.Equal(t, 300, p.NextLevelXP)
	assert.Equal(t, 75, p.ToNextLevelXP)
	assert.InDelta(t, 0.5, p.Fraction, 1e-9)

	p = gamification.Progress(0)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 0.0, p.Fraction)
}

func TestAddExperience(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	t.Run("no level up", func(t *testing.T) {
		user := &entity.User{Level: 1, ExperiencePoints: 0}
		assert.False(t, gamification.AddExperience(user, 100, now))
		assert.Equal(t, 100, user.ExperiencePoints)
		assert.Equal(t, 1, user.Level)
		assert.Equal(t, now, user.UpdatedAt)
	})
	t.Run("level up", func(t *testing.T) {
		user := &entity.User{Level: 1, ExperiencePoints: 100}
		assert.True(t, gamification.AddExperience(user, 60, now))
		assert.Equal(t, 160, user.ExperiencePoints)
		assert.Equal(t, 2, user.Level)
	})
	t.Run("multiple levels at once", func(t *testing.T) {
		user := &entity.User{Level: 1, ExperiencePoints: 0}
		assert.True(t, gamification.AddExperience(user, 460, now))
		assert.Equal(t, 4, user.Level)
	})
	t.Run("non-positive amount ignored", func(t *testing.T) {
		user := &entity.User{Level: 2, ExperiencePoints: 200}
		assert.False(t, gamification.AddExperience(user, 0, now))
		assert.False(t, gamification.AddExperience(user, -50, now))
		assert.Equal(t, 200, user.ExperiencePoints)
		assert.True(t, user.UpdatedAt.IsZero())
	})
	t.Run("nil user", func(t *testing.T) {
		assert.False(t, gamification.AddExperience(nil, 10, now))
	})
}
