package gamification

import (
	"github.com/limbo/cookstreak/pkg/entity"
)

const PhotoMasterTarget = 10

type BadgeRule struct {
	Type        entity.BadgeType `json:"badge_type"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Target      int              `json:"target"`
}

var badgeRules = []BadgeRule{
	{Type: entity.BadgeFirstCook, Title: "First Dish", Description: "Finish your first cooking session", Target: 1},
	{Type: entity.BadgeStreak3, Title: "Warming Up", Description: "Cook 3 days in a row", Target: 3},
	{Type: entity.BadgeStreak7, Title: "Weekly Chef", Description: "Cook 7 days in a row", Target: 7},
	{Type: entity.BadgeStreak30, Title: "Kitchen Regular", Description: "Cook 30 days in a row", Target: 30},
	{Type: entity.BadgeSpeed15, Title: "Lightning Cook", Description: "Finish a dish in 15 minutes or less", Target: 15},
	{Type: entity.BadgeSpeed30, Title: "Quick Cook", Description: "Finish a dish in 30 minutes or less", Target: 30},
	{Type: entity.BadgePerfectTime, Title: "Right On Time", Description: "Finish within 2 minutes of the estimate", Target: 2},
	{Type: entity.BadgePhotoMaster, Title: "Photo Master", Description: "Attach 10 photos across your records", Target: PhotoMasterTarget},
}

// Highest first so only the top threshold reached is considered. When that
// badge is already earned nothing is granted: lower tiers skipped on the way
// up stay locked.
var streakBadges = []BadgeRule{badgeRules[3], badgeRules[2], badgeRules[1]}

// Tightest first.
var speedBadges = []BadgeRule{badgeRules[4], badgeRules[5]}

// BadgeRules returns a copy of the badge catalogue in display order.
func BadgeRules() []BadgeRule {
	out := make([]BadgeRule, len(badgeRules))
	copy(out, badgeRules)
	return out
}

func RuleFor(t entity.BadgeType) (BadgeRule, bool) {
	for _, r := range badgeRules {
		if r.Type == t {
			return r, true
		}
	}
	return BadgeRule{}, false
}

// BadgeInput is the state after the completion being evaluated is counted.
type BadgeInput struct {
	TotalRecords     int
	CurrentStreak    int
	ActualMinutes    int
	EstimatedMinutes int
	TotalPhotos      int
}

// EvaluateBadges returns the badge types this completion newly unlocks.
// Types present in earned are never returned again.
func EvaluateBadges(in BadgeInput, earned map[entity.BadgeType]bool) []entity.BadgeType {
	var unlocked []entity.BadgeType
	grant := func(t entity.BadgeType) {
		if earned[t] {
			return
		}
		for _, u := range unlocked {
			if u == t {
				return
			}
		}
		unlocked = append(unlocked, t)
	}

	if in.TotalRecords == 1 {
		grant(entity.BadgeFirstCook)
	}

	for _, rule := range streakBadges {
		if in.CurrentStreak >= rule.Target {
			grant(rule.Type)
			break
		}
	}

	if in.ActualMinutes > 0 {
		for _, rule := range speedBadges {
			if in.ActualMinutes <= rule.Target {
				grant(rule.Type)
				break
			}
		}
	}

	if in.EstimatedMinutes > 0 {
		diff := in.ActualMinutes - in.EstimatedMinutes
		if diff < 0 {
			diff = -diff
		}
		if diff <= 2 {
			grant(entity.BadgePerfectTime)
		}
	}

	if in.TotalPhotos >= PhotoMasterTarget {
		grant(entity.BadgePhotoMaster)
	}

	return unlocked
}
