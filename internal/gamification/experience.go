package gamification

import (
	"math"
	"time"

	"github.com/limbo/cookstreak/pkg/entity"
)

const (
	BaseCompletionXP         = 20
	CompletionMultiplier     = 1.5
	NewCategoryXP            = 25
	DailyRegistrationXP      = 10
	DailyRegistrationsPerDay = 1
)

var difficultyMultipliers = map[int]float64{
	1: 0.90,
	2: 0.95,
	3: 1.00,
	4: 1.05,
	5: 1.10,
}

type bonusTier struct {
	threshold int
	bonus     int
}

// Ordered tightest first; threshold is the max deviation in percent.
var timePrecisionTiers = []bonusTier{
	{threshold: 5, bonus: 30},
	{threshold: 10, bonus: 20},
	{threshold: 15, bonus: 10},
}

// Ordered highest first; threshold is the min streak length in days.
var streakTiers = []bonusTier{
	{threshold: 30, bonus: 200},
	{threshold: 7, bonus: 50},
	{threshold: 2, bonus: 5},
}

var difficultyBonuses = map[int]int{
	4: 20,
	5: 30,
}

func DifficultyMultiplier(difficulty int) float64 {
	if m, ok := difficultyMultipliers[difficulty]; ok {
		return m
	}
	return 1.0
}

func BaseExperience(difficulty int, hasPhotosOrNotes bool) int {
	completion := 1.0
	if hasPhotosOrNotes {
		completion = CompletionMultiplier
	}
	return int(math.Round(BaseCompletionXP * DifficultyMultiplier(difficulty) * completion))
}

// TimePrecisionBonus rewards finishing close to the recipe estimate. The
// deviation is compared in integer percent so 1 of 20 minutes is exactly 5%.
func TimePrecisionBonus(estimatedMinutes, actualMinutes int) int {
	if estimatedMinutes <= 0 || actualMinutes < 0 {
		return 0
	}
	diff := actualMinutes - estimatedMinutes
	if diff < 0 {
		diff = -diff
	}
	for _, tier := range timePrecisionTiers {
		if diff*100 <= tier.threshold*estimatedMinutes {
			return tier.bonus
		}
	}
	return 0
}

func ConsecutiveCookingBonus(streak int) int {
	for _, tier := range streakTiers {
		if streak >= tier.threshold {
			return tier.bonus
		}
	}
	return 0
}

func DifficultyBonus(difficulty int) int {
	return difficultyBonuses[difficulty]
}

// NewCategoryBonus must be evaluated before the recipe carrying the category
// is stored, otherwise the category always exists.
func NewCategoryBonus(categoryExists bool) int {
	if categoryExists {
		return 0
	}
	return NewCategoryXP
}

// DailyRegistrationBonus records one recipe registration at the given time
// and returns the updated activity row with the XP it earns. Only the first
// registration of a calendar day pays out; a row from another day is treated
// as absent.
func DailyRegistrationBonus(activity *entity.DailyActivity, at time.Time, loc *time.Location) (entity.DailyActivity, int) {
	day := StartOfDay(at, loc)
	updated := entity.DailyActivity{Date: day}
	if activity != nil {
		updated.UserID = activity.UserID
		if sameCalendarDate(activity.Date, day) {
			updated.RecipeRegistrationCount = activity.RecipeRegistrationCount
			updated.LastRecipeRegistrationTime = activity.LastRecipeRegistrationTime
		}
	}
	bonus := 0
	if updated.RecipeRegistrationCount < DailyRegistrationsPerDay {
		bonus = DailyRegistrationXP
	}
	updated.RecipeRegistrationCount++
	registeredAt := at
	updated.LastRecipeRegistrationTime = &registeredAt
	return updated, bonus
}

// sameCalendarDate compares dates in each value's own location. Rows read
// back from a DATE column come as UTC midnight of the stored date.
func sameCalendarDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

type CompletionInput struct {
	Difficulty       int
	EstimatedMinutes int
	ActualMinutes    int
	HasPhotosOrNotes bool
	// Current streak including the completion being evaluated.
	Streak int
}

type ExperienceBreakdown struct {
	Base          int `json:"base"`
	TimePrecision int `json:"time_precision"`
	Streak        int `json:"streak"`
	Difficulty    int `json:"difficulty"`
	Total         int `json:"total"`
}

func CompletionExperience(in CompletionInput) ExperienceBreakdown {
	b := ExperienceBreakdown{
		Base:          BaseExperience(in.Difficulty, in.HasPhotosOrNotes),
		TimePrecision: TimePrecisionBonus(in.EstimatedMinutes, in.ActualMinutes),
		Streak:        ConsecutiveCookingBonus(in.Streak),
		Difficulty:    DifficultyBonus(in.Difficulty),
	}
	b.Total = b.Base + b.TimePrecision + b.Streak + b.Difficulty
	return b
}

type RegistrationBreakdown struct {
	NewCategory       int `json:"new_category"`
	DailyRegistration int `json:"daily_registration"`
	Total             int `json:"total"`
}

// RegistrationExperience combines the grants tied to creating a recipe.
// It returns the activity row to persist for the day.
func RegistrationExperience(categoryExists bool, activity *entity.DailyActivity, at time.Time, loc *time.Location) (RegistrationBreakdown, entity.DailyActivity) {
	updated, daily := DailyRegistrationBonus(activity, at, loc)
	b := RegistrationBreakdown{
		NewCategory:       NewCategoryBonus(categoryExists),
		DailyRegistration: daily,
	}
	b.Total = b.NewCategory + b.DailyRegistration
	return b, updated
}
