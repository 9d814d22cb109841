package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/cookstreak/internal/error_values"
	"github.com/limbo/cookstreak/pkg/entity"
)

type CookingRecordsRepository struct {
	conn PgConnection
}

func NewCookingRecordsRepo(cfg DBConfig) *CookingRecordsRepository {
	return &CookingRecordsRepository{
		conn: Connect(cfg),
	}
}

func NewCookingRecordsRepoWithConn(conn PgConnection) *CookingRecordsRepository {
	mustPing(conn, "cookingRecordsRepo")
	return &CookingRecordsRepository{
		conn: conn,
	}
}

const (
	insertRecordQuery = `INSERT INTO cooking_records (user_id, recipe_id, cooking_time_minutes, experience_gained, cooked_at, notes, photo_paths) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at;`
	insertBadgeQuery  = `INSERT INTO badges (user_id, badge_type, earned_at) VALUES ($1, $2, $3) ON CONFLICT (user_id, badge_type) DO NOTHING;`
)

// SaveCompletion locks the user row first: the record insert takes a key share
// lock on it through the foreign key, and upgrading that later can deadlock.
func (crr *CookingRecordsRepository) SaveCompletion(ctx context.Context, record *entity.CookingRecord, badges []entity.Badge, at time.Time) (*entity.ProgressUpdate, error) {
	if record == nil {
		return nil, errors.New("record is nil")
	}
	photos := record.PhotoPaths
	if photos == nil {
		photos = []string{}
	}
	tx, err := crr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("starting transaction error: " + err.Error())
	}
	update, err := grantExperience(ctx, tx, record.UserID, record.ExperienceGained, at)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}
	var id uuid.UUID
	var createdAt time.Time
	err = tx.QueryRow(ctx, insertRecordQuery,
		record.UserID,
		record.RecipeID,
		record.CookingTimeMinutes,
		record.ExperienceGained,
		record.CookedAt,
		record.Notes,
		photos,
	).Scan(&id, &createdAt)
	if err != nil {
		_ = tx.Rollback(ctx)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return nil, errorvalues.ErrOwnerNotFound
			}
		}
		return nil, errors.New("creating cooking record error: " + err.Error())
	}
	for _, b := range badges {
		_, err = tx.Exec(ctx, insertBadgeQuery, b.UserID, string(b.BadgeType), b.EarnedAt)
		if err != nil {
			_ = tx.Rollback(ctx)
			return nil, errors.New("creating badge error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing completion error: " + err.Error())
	}
	record.ID = id
	record.CreatedAt = createdAt
	return update, nil
}

func (crr *CookingRecordsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CookingRecord, error) {
	row := crr.conn.QueryRow(ctx, `SELECT id, user_id, recipe_id, cooking_time_minutes, experience_gained, cooked_at, notes, photo_paths, created_at FROM cooking_records WHERE id = $1;`, id)
	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrRecordNotFound
		}
		return nil, errors.New("getting cooking record by id error: " + err.Error())
	}
	return record, nil
}

func (crr *CookingRecordsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.CookingRecord, error) {
	rows, err := crr.conn.Query(ctx, `SELECT id, user_id, recipe_id, cooking_time_minutes, experience_gained, cooked_at, notes, photo_paths, created_at
		FROM cooking_records WHERE user_id = $1 ORDER BY cooked_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting cooking records by uid error: " + err.Error())
	}
	defer rows.Close()
	records := make([]*entity.CookingRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, errors.New("cooking record row parsing error: " + err.Error())
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected cooking record rows error: " + err.Error())
	}
	return records, nil
}

func scanRecord(row pgx.Row) (*entity.CookingRecord, error) {
	var r entity.CookingRecord
	err := row.Scan(&r.ID, &r.UserID, &r.RecipeID, &r.CookingTimeMinutes, &r.ExperienceGained, &r.CookedAt, &r.Notes, &r.PhotoPaths, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (crr *CookingRecordsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := crr.conn.Exec(ctx, `DELETE FROM cooking_records WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting cooking record error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrRecordNotFound
	}
	return nil
}

func (crr *CookingRecordsRepository) ListCookedAt(ctx context.Context, uid uuid.UUID) ([]time.Time, error) {
	rows, err := crr.conn.Query(ctx, `SELECT cooked_at FROM cooking_records WHERE user_id = $1 ORDER BY cooked_at;`, uid)
	if err != nil {
		return nil, errors.New("listing cooking dates error: " + err.Error())
	}
	defer rows.Close()
	result := make([]time.Time, 0)
	for rows.Next() {
		var t time.Time
		if err = rows.Scan(&t); err != nil {
			return nil, errors.New("cooking date row parsing error: " + err.Error())
		}
		result = append(result, t)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected cooking date rows error: " + err.Error())
	}
	return result, nil
}

func (crr *CookingRecordsRepository) Totals(ctx context.Context, uid uuid.UUID) (*entity.RecordTotals, error) {
	var totals entity.RecordTotals
	row := crr.conn.QueryRow(ctx, `SELECT COUNT(*), COALESCE(SUM(cooking_time_minutes), 0), COALESCE(SUM(cardinality(photo_paths)), 0), MAX(cooked_at) FROM cooking_records WHERE user_id = $1;`, uid)
	if err := row.Scan(&totals.Count, &totals.Minutes, &totals.Photos, &totals.LastCookedAt); err != nil {
		return nil, errors.New("counting cooking totals error: " + err.Error())
	}
	return &totals, nil
}
