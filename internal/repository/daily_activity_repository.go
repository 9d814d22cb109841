package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/cookstreak/internal/error_values"
)

type DailyActivityRepository struct {
	conn PgConnection
}

func NewDailyActivityRepo(cfg DBConfig) *DailyActivityRepository {
	return &DailyActivityRepository{
		conn: Connect(cfg),
	}
}

func NewDailyActivityRepoWithConn(conn PgConnection) *DailyActivityRepository {
	mustPing(conn, "dailyActivityRepo")
	return &DailyActivityRepository{
		conn: conn,
	}
}

const registerRecipeQuery = `INSERT INTO daily_activities (user_id, day, recipe_registration_count, last_recipe_registration_time) VALUES ($1, $2, 1, $3)
	ON CONFLICT (user_id, day) DO UPDATE SET recipe_registration_count = daily_activities.recipe_registration_count + 1, last_recipe_registration_time = EXCLUDED.last_recipe_registration_time
	RETURNING recipe_registration_count;`

func (dar *DailyActivityRepository) RegisterRecipe(ctx context.Context, uid uuid.UUID, day, at time.Time) (int, error) {
	var count int
	err := dar.conn.QueryRow(ctx, registerRecipeQuery, uid, day, at).Scan(&count)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return 0, errorvalues.ErrOwnerNotFound
		}
		return 0, errors.New("registering daily activity error: " + err.Error())
	}
	return count, nil
}
