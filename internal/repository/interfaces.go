package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/cookstreak/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's name and password hash
	Update(ctx context.Context, user *entity.User) error
	// Adds experience under a row lock and recomputes the level
	AddExperience(ctx context.Context, uid uuid.UUID, amount int, at time.Time) (*entity.ProgressUpdate, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type RecipesRepositoryI interface {
	// Creates new recipe. ID and timestamps are generated by database
	Create(ctx context.Context, recipe *entity.Recipe) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)
	// Lists user's recipes, newest first. Empty category means any
	GetByUserID(ctx context.Context, uid uuid.UUID, category string, limit, offset int) ([]*entity.Recipe, error)
	// Updates title, category, difficulty and estimate by ID
	Update(ctx context.Context, recipe *entity.Recipe) error
	// Deletes recipe. Cooking records keep a NULL reference
	Delete(ctx context.Context, id uuid.UUID) error
	// Exact, case-sensitive match on category among user's recipes
	CategoryExists(ctx context.Context, uid uuid.UUID, category string) (bool, error)
	ListCategories(ctx context.Context, uid uuid.UUID) ([]string, error)
}

type CookingRecordsRepositoryI interface {
	// Atomically stores the record, adds its experience to the user and stores newly earned badges.
	// Sets generated record ID, returns the user's progress after the grant
	SaveCompletion(ctx context.Context, record *entity.CookingRecord, badges []entity.Badge, at time.Time) (*entity.ProgressUpdate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CookingRecord, error)
	// Lists user's records, most recent first
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.CookingRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Returns cooked_at of every record of the user
	ListCookedAt(ctx context.Context, uid uuid.UUID) ([]time.Time, error)
	// Returns records count, cooking minutes and photos in total
	Totals(ctx context.Context, uid uuid.UUID) (*entity.RecordTotals, error)
}

type BadgesRepositoryI interface {
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]entity.Badge, error)
}

type DailyActivityRepositoryI interface {
	// Counts one recipe registration for (user, day) and returns the day's count including it
	RegisterRecipe(ctx context.Context, uid uuid.UUID, day, at time.Time) (int, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
