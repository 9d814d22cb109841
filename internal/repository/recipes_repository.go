package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/cookstreak/internal/error_values"
	"github.com/limbo/cookstreak/pkg/entity"
)

type RecipesRepository struct {
	conn PgConnection
}

func NewRecipesRepo(cfg DBConfig) *RecipesRepository {
	return &RecipesRepository{
		conn: Connect(cfg),
	}
}

func NewRecipesRepoWithConn(conn PgConnection) *RecipesRepository {
	mustPing(conn, "recipesRepo")
	return &RecipesRepository{
		conn: conn,
	}
}

func (rr *RecipesRepository) Create(ctx context.Context, recipe *entity.Recipe) (uuid.UUID, error) {
	var id uuid.UUID
	row := rr.conn.QueryRow(ctx, `INSERT INTO recipes (user_id, title, category, difficulty, estimated_time_minutes) VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		recipe.UserID,
		recipe.Title,
		recipe.Category,
		recipe.Difficulty,
		recipe.EstimatedTimeMinutes,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.Nil, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.Nil, errors.New("creating recipe db error: " + err.Error())
	}
	return id, nil
}

func (rr *RecipesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	var recipe entity.Recipe
	recipe.ID = id
	row := rr.conn.QueryRow(ctx, `SELECT user_id, title, category, difficulty, estimated_time_minutes, created_at, updated_at FROM recipes WHERE id = $1;`, id)
	err := row.Scan(
		&recipe.UserID,
		&recipe.Title,
		&recipe.Category,
		&recipe.Difficulty,
		&recipe.EstimatedTimeMinutes,
		&recipe.CreatedAt,
		&recipe.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrRecipeNotFound
		}
		return nil, errors.New("getting recipe by id error: " + err.Error())
	}
	return &recipe, nil
}

func (rr *RecipesRepository) GetByUserID(ctx context.Context, uid uuid.UUID, category string, limit, offset int) ([]*entity.Recipe, error) {
	recipes := make([]*entity.Recipe, 0)
	rows, err := rr.conn.Query(ctx, `SELECT id, user_id, title, category, difficulty, estimated_time_minutes, created_at, updated_at
		FROM recipes WHERE user_id = $1 AND ($2 = '' OR category = $2) ORDER BY created_at DESC LIMIT $3 OFFSET $4;`, uid, category, limit, offset)
	if err != nil {
		return nil, errors.New("getting recipes by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		r := entity.Recipe{}
		err = rows.Scan(&r.ID, &r.UserID, &r.Title, &r.Category, &r.Difficulty, &r.EstimatedTimeMinutes, &r.CreatedAt, &r.UpdatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling recipe error: " + err.Error())
		}
		recipes = append(recipes, &r)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning recipes: " + err.Error())
	}
	return recipes, nil
}

func (rr *RecipesRepository) Update(ctx context.Context, recipe *entity.Recipe) error {
	ct, err := rr.conn.Exec(ctx, `UPDATE recipes SET title = $1, category = $2, difficulty = $3, estimated_time_minutes = $4, updated_at = NOW() WHERE id = $5;`,
		recipe.Title, recipe.Category, recipe.Difficulty, recipe.EstimatedTimeMinutes, recipe.ID,
	)
	if err != nil {
		return errors.New("error updating recipe: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrRecipeNotFound
	}
	return nil
}

func (rr *RecipesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := rr.conn.Exec(ctx, `DELETE FROM recipes WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting recipe: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrRecipeNotFound
	}
	return nil
}

func (rr *RecipesRepository) CategoryExists(ctx context.Context, uid uuid.UUID, category string) (bool, error) {
	var exists bool
	row := rr.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM recipes WHERE user_id = $1 AND category = $2);`, uid, category)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting if category exists error: " + err.Error())
	}
	return exists, nil
}

func (rr *RecipesRepository) ListCategories(ctx context.Context, uid uuid.UUID) ([]string, error) {
	rows, err := rr.conn.Query(ctx, `SELECT DISTINCT category FROM recipes WHERE user_id = $1 ORDER BY category;`, uid)
	if err != nil {
		return nil, errors.New("listing categories error: " + err.Error())
	}
	defer rows.Close()
	categories := make([]string, 0)
	for rows.Next() {
		var c string
		if err = rows.Scan(&c); err != nil {
			return nil, errors.New("category row parsing error: " + err.Error())
		}
		categories = append(categories, c)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected category rows error: " + err.Error())
	}
	return categories, nil
}
