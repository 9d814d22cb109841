package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/cookstreak/internal/gamification"
	"github.com/limbo/cookstreak/internal/timer"
	"github.com/limbo/cookstreak/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type RecipeRequest struct {
	Title                string `validate:"required,min=1,max=200"`
	Category             string `validate:"required,min=1,max=100"`
	Difficulty           int    `validate:"min=1,max=5"`
	EstimatedTimeMinutes int    `validate:"min=0,max=1440"`
}

type CompleteCookingRequest struct {
	// Nil when the dish was cooked without a stored recipe
	RecipeID           *uuid.UUID
	CookingTimeMinutes int `validate:"min=0,max=1440"`
	// Zero means now
	CookedAt   time.Time
	Notes      string   `validate:"max=2000"`
	PhotoPaths []string `validate:"max=20,dive,required,max=512"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type Profile struct {
	User     *entity.User         `json:"user"`
	Progress entity.LevelProgress `json:"progress"`
	Badges   []entity.Badge       `json:"badges"`
}

type RecipeCreated struct {
	Recipe     *entity.Recipe                     `json:"recipe"`
	Experience gamification.RegistrationBreakdown `json:"experience"`
	LeveledUp  bool                               `json:"leveled_up"`
	Progress   entity.LevelProgress               `json:"progress"`
}

type CompletionResult struct {
	Record     *entity.CookingRecord            `json:"record"`
	Experience gamification.ExperienceBreakdown `json:"experience"`
	Streak     int                              `json:"streak"`
	NewBadges  []entity.Badge                   `json:"new_badges"`
	LeveledUp  bool                             `json:"leveled_up"`
	Progress   entity.LevelProgress             `json:"progress"`
}

type BadgeStatus struct {
	gamification.BadgeRule
	Earned   bool       `json:"earned"`
	EarnedAt *time.Time `json:"earned_at,omitempty"`
}

type CountdownStatus struct {
	ID        string        `json:"id"`
	Label     string        `json:"label"`
	Duration  time.Duration `json:"duration_ns"`
	Remaining time.Duration `json:"remaining_ns"`
	State     timer.State   `json:"state"`
}

type SessionStatus struct {
	RecipeID   *uuid.UUID        `json:"recipe_id,omitempty"`
	State      timer.State       `json:"state"`
	StartedAt  time.Time         `json:"started_at"`
	Elapsed    time.Duration     `json:"elapsed_ns"`
	Paused     time.Duration     `json:"paused_ns"`
	Countdowns []CountdownStatus `json:"timers"`
}

type FinishSessionRequest struct {
	Notes      string
	PhotoPaths []string
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	// User with level progress and earned badges
	GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type RecipesServiceI interface {
	// Stores recipe and grants new-category and daily registration XP
	CreateRecipe(ctx context.Context, uid uuid.UUID, req *RecipeRequest) (*RecipeCreated, error)
	GetRecipe(ctx context.Context, uid, id uuid.UUID) (*entity.Recipe, error)
	ListRecipes(ctx context.Context, uid uuid.UUID, category string, pagination PaginationOpts) ([]*entity.Recipe, error)
	UpdateRecipe(ctx context.Context, uid, id uuid.UUID, req *RecipeRequest) (*entity.Recipe, error)
	DeleteRecipe(ctx context.Context, uid, id uuid.UUID) error
	ListCategories(ctx context.Context, uid uuid.UUID) ([]string, error)
}

type CookingServiceI interface {
	// Computes XP and badges for the completion and stores everything atomically
	CompleteCooking(ctx context.Context, uid uuid.UUID, req *CompleteCookingRequest) (*CompletionResult, error)
	ListRecords(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.CookingRecord, error)
	GetRecord(ctx context.Context, uid, id uuid.UUID) (*entity.CookingRecord, error)
	DeleteRecord(ctx context.Context, uid, id uuid.UUID) error
	GetStats(ctx context.Context, uid uuid.UUID) (*entity.CookingStats, error)
}

type BadgeCatalogI interface {
	// Every badge type with earned flag, in display order
	List(ctx context.Context, uid uuid.UUID) ([]BadgeStatus, error)
}

type SessionServiceI interface {
	Start(ctx context.Context, uid uuid.UUID, recipeID *uuid.UUID) (*SessionStatus, error)
	Pause(uid uuid.UUID) (*SessionStatus, error)
	Resume(uid uuid.UUID) (*SessionStatus, error)
	Status(uid uuid.UUID) (*SessionStatus, error)
	Cancel(uid uuid.UUID) error
	// Stops the stopwatch and records the completion
	Finish(ctx context.Context, uid uuid.UUID, req *FinishSessionRequest) (*CompletionResult, error)

	StartCountdown(uid uuid.UUID, label string, duration time.Duration) (*CountdownStatus, error)
	PauseCountdown(uid uuid.UUID, id string) (*CountdownStatus, error)
	ResumeCountdown(uid uuid.UUID, id string) (*CountdownStatus, error)
	CancelCountdown(uid uuid.UUID, id string) error
	ListCountdowns(uid uuid.UUID) ([]CountdownStatus, error)
}
