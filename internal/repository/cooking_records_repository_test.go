package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/cookstreak/internal/error_values"
	"github.com/limbo/cookstreak/internal/repository"
	"github.com/limbo/cookstreak/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recordColumns = []string{"id", "user_id", "recipe_id", "cooking_time_minutes", "experience_gained", "cooked_at", "notes", "photo_paths", "created_at"}

func TestSaveCompletion(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewCookingRecordsRepoWithConn(mock)
	lockQuery := regexp.QuoteMeta(`SELECT id, name, password_hash, level, experience_points, created_at, updated_at FROM users WHERE id = $1 FOR UPDATE;`)
	insertQuery := regexp.QuoteMeta(`INSERT INTO cooking_records (user_id, recipe_id, cooking_time_minutes, experience_gained, cooked_at, notes, photo_paths) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at;`)
	progressQuery := regexp.QuoteMeta(`UPDATE users SET level = $1, experience_points = $2, updated_at = $3 WHERE id = $4;`)
	badgeQuery := regexp.QuoteMeta(`INSERT INTO badges (user_id, badge_type, earned_at) VALUES ($1, $2, $3) ON CONFLICT (user_id, badge_type) DO NOTHING;`)

	now := time.Date(2025, 5, 10, 19, 0, 0, 0, time.UTC)
	joined := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	recipeID := uuid.New()
	record := entity.CookingRecord{
		UserID:             userID,
		RecipeID:           &recipeID,
		CookingTimeMinutes: 28,
		ExperienceGained:   60,
		CookedAt:           now,
		Notes:              "a bit too salty",
	}
	badges := []entity.Badge{{UserID: userID, BadgeType: entity.BadgeFirstCook, EarnedAt: now}}
	rid := uuid.New()
	// 120 stored points, the record brings the user to level 2
	lockedUser := func() *pgxmock.Rows {
		return pgxmock.NewRows([]string{"id", "name", "password_hash", "level", "experience_points", "created_at", "updated_at"}).
			AddRow(userID, "cook", "hash", 1, 120, joined, joined)
	}
	expectGrant := func() {
		mock.ExpectQuery(lockQuery).WithArgs(userID).WillReturnRows(lockedUser())
		mock.ExpectExec(progressQuery).
			WithArgs(2, 180, now, userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	}

	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "successful",
			MockPrepFunc: func() {
				mock.ExpectBegin()
				expectGrant()
				mock.ExpectQuery(insertQuery).
					WithArgs(record.UserID, record.RecipeID, record.CookingTimeMinutes, record.ExperienceGained, record.CookedAt, record.Notes, []string{}).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(rid, now))
				mock.ExpectExec(badgeQuery).
					WithArgs(userID, string(entity.BadgeFirstCook), now).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectCommit()
			},
		},
		{
			Desc:  "user not found",
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(lockQuery).WithArgs(userID).WillReturnError(pgx.ErrNoRows)
				mock.ExpectRollback()
			},
		},
		{
			Desc:  "recipe reference violated",
			Error: errorvalues.ErrOwnerNotFound,
			MockPrepFunc: func() {
				mock.ExpectBegin()
				expectGrant()
				mock.ExpectQuery(insertQuery).
					WithArgs(record.UserID, record.RecipeID, record.CookingTimeMinutes, record.ExperienceGained, record.CookedAt, record.Notes, []string{}).
					WillReturnError(&pgconn.PgError{Code: "23503"})
				mock.ExpectRollback()
			},
		},
		{
			Desc:  "badge insert error",
			Error: errors.New("creating badge error: db error"),
			MockPrepFunc: func() {
				mock.ExpectBegin()
				expectGrant()
				mock.ExpectQuery(insertQuery).
					WithArgs(record.UserID, record.RecipeID, record.CookingTimeMinutes, record.ExperienceGained, record.CookedAt, record.Notes, []string{}).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(rid, now))
				mock.ExpectExec(badgeQuery).
					WithArgs(userID, string(entity.BadgeFirstCook), now).
					WillReturnError(errors.New("db error"))
				mock.ExpectRollback()
			},
		},
		{
			Desc:  "begin error",
			Error: errors.New("starting transaction error: db error"),
			MockPrepFunc: func() {
				mock.ExpectBegin().WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			r := record
			update, err := repo.SaveCompletion(ctx, &r, badges, now)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				assert.Nil(t, update)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, &entity.ProgressUpdate{Level: 2, Experience: 180, LeveledUp: true}, update)
				assert.Equal(t, rid, r.ID)
				assert.Equal(t, now, r.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetRecordByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewCookingRecordsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, user_id, recipe_id, cooking_time_minutes, experience_gained, cooked_at, notes, photo_paths, created_at FROM cooking_records WHERE id = $1;`)
	now := time.Date(2025, 5, 10, 19, 0, 0, 0, time.UTC)
	recipeID := uuid.New()
	record := entity.CookingRecord{
		ID:                 uuid.New(),
		UserID:             userID,
		RecipeID:           &recipeID,
		CookingTimeMinutes: 31,
		ExperienceGained:   45,
		CookedAt:           now,
		Notes:              "",
		PhotoPaths:         []string{"a.jpg", "b.jpg"},
		CreatedAt:          now,
	}
	ctx := context.Background()
	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(record.ID).
			WillReturnRows(pgxmock.NewRows(recordColumns).AddRow(
				record.ID, record.UserID, record.RecipeID, record.CookingTimeMinutes, record.ExperienceGained,
				record.CookedAt, record.Notes, record.PhotoPaths, record.CreatedAt,
			))
		result, err := repo.GetByID(ctx, record.ID)
		assert.NoError(t, err)
		assert.Equal(t, record, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(record.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, record.ID)
		assert.ErrorIs(t, err, errorvalues.ErrRecordNotFound)
	})
}

func TestGetRecordsByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewCookingRecordsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, user_id, recipe_id, cooking_time_minutes, experience_gained, cooked_at, notes, photo_paths, created_at
		FROM cooking_records WHERE user_id = $1 ORDER BY cooked_at DESC LIMIT $2 OFFSET $3;`)
	now := time.Date(2025, 5, 10, 19, 0, 0, 0, time.UTC)
	recipeID := uuid.New()
	records := []*entity.CookingRecord{
		{ID: uuid.New(), UserID: userID, RecipeID: &recipeID, CookingTimeMinutes: 12, ExperienceGained: 30, CookedAt: now, PhotoPaths: []string{}, CreatedAt: now},
		{ID: uuid.New(), UserID: userID, RecipeID: &recipeID, CookingTimeMinutes: 40, ExperienceGained: 20, CookedAt: now.AddDate(0, 0, -1), PhotoPaths: []string{"x.png"}, CreatedAt: now},
	}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows(recordColumns)
		for _, r := range records {
			rows.AddRow(r.ID, r.UserID, r.RecipeID, r.CookingTimeMinutes, r.ExperienceGained, r.CookedAt, r.Notes, r.PhotoPaths, r.CreatedAt)
		}
		mock.ExpectQuery(query).WithArgs(userID, 20, 0).WillReturnRows(rows)
		result, err := repo.GetByUserID(ctx, userID, 20, 0)
		assert.NoError(t, err)
		assert.Equal(t, records, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, 20, 0).WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserID(ctx, userID, 20, 0)
		assert.EqualError(t, err, "getting cooking records by uid error: db error")
	})
}

func TestDeleteRecord(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewCookingRecordsRepoWithConn(mock)
	id := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM cooking_records WHERE id = $1;`)
	ctx := context.Background()
	mock.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(ctx, id))
	mock.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(ctx, id), errorvalues.ErrRecordNotFound)
}

func TestListCookedAt(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewCookingRecordsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT cooked_at FROM cooking_records WHERE user_id = $1 ORDER BY cooked_at;`)
	day := time.Date(2025, 5, 10, 19, 0, 0, 0, time.UTC)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"cooked_at"}).AddRow(day.AddDate(0, 0, -1)).AddRow(day))
		result, err := repo.ListCookedAt(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, []time.Time{day.AddDate(0, 0, -1), day}, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("db error"))
		_, err := repo.ListCookedAt(ctx, userID)
		assert.EqualError(t, err, "listing cooking dates error: db error")
	})
}

func TestRecordTotals(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewCookingRecordsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT COUNT(*), COALESCE(SUM(cooking_time_minutes), 0), COALESCE(SUM(cardinality(photo_paths)), 0), MAX(cooked_at) FROM cooking_records WHERE user_id = $1;`)
	last := time.Date(2025, 5, 10, 19, 0, 0, 0, time.UTC)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"count", "minutes", "photos", "max"}).AddRow(4, 130, 7, &last))
		totals, err := repo.Totals(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, entity.RecordTotals{Count: 4, Minutes: 130, Photos: 7, LastCookedAt: &last}, *totals)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("db error"))
		_, err := repo.Totals(ctx, userID)
		assert.EqualError(t, err, "counting cooking totals error: db error")
	})
}
