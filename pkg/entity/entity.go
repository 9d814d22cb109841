package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	PasswordHash     string    `json:"-"`
	Level            int       `json:"level"`
	ExperiencePoints int       `json:"experience_points"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Recipe struct {
	ID                   uuid.UUID `json:"id"`
	UserID               uuid.UUID `json:"uid"`
	Title                string    `json:"title"`
	Category             string    `json:"category"`
	Difficulty           int       `json:"difficulty"`
	EstimatedTimeMinutes int       `json:"estimated_time_minutes"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// CookingRecord is written once per finished cooking session. RecipeID is a
// soft link: the recipe may be deleted later and the record survives.
type CookingRecord struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"uid"`
	RecipeID           *uuid.UUID `json:"recipe_id,omitempty"`
	CookingTimeMinutes int        `json:"cooking_time_minutes"`
	ExperienceGained   int        `json:"experience_gained"`
	CookedAt           time.Time  `json:"cooked_at"`
	Notes              string     `json:"notes,omitempty"`
	PhotoPaths         []string   `json:"photo_paths,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type BadgeType string

const (
	BadgeFirstCook   BadgeType = "first_cook"
	BadgeStreak3     BadgeType = "streak_3"
	BadgeStreak7     BadgeType = "streak_7"
	BadgeStreak30    BadgeType = "streak_30"
	BadgeSpeed15     BadgeType = "speed_15"
	BadgeSpeed30     BadgeType = "speed_30"
	BadgePerfectTime BadgeType = "perfect_time"
	BadgePhotoMaster BadgeType = "photo_master"
)

type Badge struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	BadgeType BadgeType `json:"badge_type"`
	EarnedAt  time.Time `json:"earned_at"`
}

// DailyActivity is one row per user per calendar day. Date is local midnight.
type DailyActivity struct {
	UserID                     uuid.UUID  `json:"uid"`
	Date                       time.Time  `json:"date"`
	RecipeRegistrationCount    int        `json:"recipe_registration_count"`
	LastRecipeRegistrationTime *time.Time `json:"last_recipe_registration_time,omitempty"`
}

// ProgressUpdate is the stored level and experience after a grant.
type ProgressUpdate struct {
	Level      int
	Experience int
	LeveledUp  bool
}

type LevelProgress struct {
	Level         int     `json:"level"`
	Experience    int     `json:"experience_points"`
	LevelFloorXP  int     `json:"level_floor_xp"`
	NextLevelXP   int     `json:"next_level_xp"`
	Fraction      float64 `json:"progress"`
	ToNextLevelXP int     `json:"to_next_level_xp"`
}

type CookingStats struct {
	TotalRecords        int           `json:"total_records"`
	TotalCookingMinutes int           `json:"total_cooking_minutes"`
	TotalPhotos         int           `json:"total_photos"`
	CurrentStreak       int           `json:"current_streak"`
	LongestStreak       int           `json:"longest_streak"`
	TotalDistinctDays   int           `json:"total_days"`
	DaysThisWeek        int           `json:"days_this_week"`
	DaysThisMonth       int           `json:"days_this_month"`
	LastCookedAt        *time.Time    `json:"last_cooked_at,omitempty"`
	Progress            LevelProgress `json:"level"`
}

type RecordTotals struct {
	Count        int
	Minutes      int
	Photos       int
	LastCookedAt *time.Time
}
