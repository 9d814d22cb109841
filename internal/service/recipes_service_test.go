package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/cookstreak/internal/error_values"
	"github.com/limbo/cookstreak/internal/gamification"
	"github.com/limbo/cookstreak/internal/repository/mocks"
	"github.com/limbo/cookstreak/internal/service"
	"github.com/limbo/cookstreak/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRecipe(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	recipesRepo := mocks.NewMockRecipesRepositoryI(ctrl)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	activityRepo := mocks.NewMockDailyActivityRepositoryI(ctrl)
	cal, _ := testCalendar()
	rs := service.NewRecipesService(recipesRepo, usersRepo, activityRepo, cal)

	uid := uuid.New()
	rid := uuid.New()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	req := service.RecipeRequest{Title: "Cacio e pepe", Category: "pasta", Difficulty: 2, EstimatedTimeMinutes: 20}
	stored := &entity.Recipe{ID: rid, UserID: uid, Title: req.Title, Category: req.Category, Difficulty: 2, EstimatedTimeMinutes: 20}

	testCases := []struct {
		Desc         string
		Req          service.RecipeRequest
		Error        error
		Experience   gamification.RegistrationBreakdown
		LeveledUp    bool
		MockPrepFunc func()
	}{
		{
			Desc:       "new category and first recipe of the day",
			Req:        req,
			Experience: gamification.RegistrationBreakdown{NewCategory: 25, DailyRegistration: 10, Total: 35},
			LeveledUp:  true,
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.User{ID: uid, Level: 1, ExperiencePoints: 140}, nil)
				gomock.InOrder(
					recipesRepo.EXPECT().CategoryExists(gomock.Any(), uid, "pasta").Return(false, nil),
					recipesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(rid, nil),
				)
				activityRepo.EXPECT().RegisterRecipe(gomock.Any(), uid, day, testNow).Return(1, nil)
				usersRepo.EXPECT().AddExperience(gomock.Any(), uid, 35, testNow).
					Return(&entity.ProgressUpdate{Level: 2, Experience: 175, LeveledUp: true}, nil)
				recipesRepo.EXPECT().GetByID(gomock.Any(), rid).Return(stored, nil)
			},
		},
		{
			Desc:       "known category, second recipe of the day",
			Req:        req,
			Experience: gamification.RegistrationBreakdown{},
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.User{ID: uid, Level: 1, ExperiencePoints: 10}, nil)
				recipesRepo.EXPECT().CategoryExists(gomock.Any(), uid, "pasta").Return(true, nil)
				recipesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(rid, nil)
				// no experience is granted, so AddExperience is not expected
				activityRepo.EXPECT().RegisterRecipe(gomock.Any(), uid, day, testNow).Return(2, nil)
				recipesRepo.EXPECT().GetByID(gomock.Any(), rid).Return(stored, nil)
			},
		},
		{
			Desc:       "new category, daily bonus taken by a concurrent registration",
			Req:        req,
			Experience: gamification.RegistrationBreakdown{NewCategory: 25, Total: 25},
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.User{ID: uid, Level: 1, ExperiencePoints: 10}, nil)
				recipesRepo.EXPECT().CategoryExists(gomock.Any(), uid, "pasta").Return(false, nil)
				recipesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(rid, nil)
				activityRepo.EXPECT().RegisterRecipe(gomock.Any(), uid, day, testNow).Return(3, nil)
				usersRepo.EXPECT().AddExperience(gomock.Any(), uid, 25, testNow).
					Return(&entity.ProgressUpdate{Level: 1, Experience: 45}, nil)
				recipesRepo.EXPECT().GetByID(gomock.Any(), rid).Return(stored, nil)
			},
		},
		{
			Desc:         "invalid difficulty",
			Req:          service.RecipeRequest{Title: "x", Category: "y", Difficulty: 6},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:  "user not found",
			Req:   req,
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(nil, errorvalues.ErrUserNotFound)
			},
		},
		{
			Desc:  "repository error",
			Req:   req,
			Error: errors.New("recipes repository error: db error"),
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.User{ID: uid, Level: 1}, nil)
				recipesRepo.EXPECT().CategoryExists(gomock.Any(), uid, "pasta").Return(false, errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			res, err := rs.CreateRecipe(ctx, uid, &tc.Req)
			if tc.Error != nil {
				if errors.Is(tc.Error, errorvalues.ErrValidation) || errors.Is(tc.Error, errorvalues.ErrUserNotFound) {
					assert.ErrorIs(t, err, tc.Error)
				} else {
					assert.EqualError(t, err, tc.Error.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored, res.Recipe)
			assert.Equal(t, tc.Experience, res.Experience)
			assert.Equal(t, tc.LeveledUp, res.LeveledUp)
		})
	}
}

func TestRecipeOwnership(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	recipesRepo := mocks.NewMockRecipesRepositoryI(ctrl)
	cal, _ := testCalendar()
	rs := service.NewRecipesService(recipesRepo, mocks.NewMockUsersRepositoryI(ctrl), mocks.NewMockDailyActivityRepositoryI(ctrl), cal)
	uid := uuid.New()
	rid := uuid.New()
	ctx := context.Background()
	req := service.RecipeRequest{Title: "Soup", Category: "soup", Difficulty: 1, EstimatedTimeMinutes: 15}

	t.Run("get foreign recipe", func(t *testing.T) {
		recipesRepo.EXPECT().GetByID(gomock.Any(), rid).Return(&entity.Recipe{ID: rid, UserID: uuid.New()}, nil)
		_, err := rs.GetRecipe(ctx, uid, rid)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("delete missing recipe", func(t *testing.T) {
		recipesRepo.EXPECT().GetByID(gomock.Any(), rid).Return(nil, errorvalues.ErrRecipeNotFound)
		err := rs.DeleteRecipe(ctx, uid, rid)
		assert.ErrorIs(t, err, errorvalues.ErrRecipeNotFound)
	})
	t.Run("delete own recipe", func(t *testing.T) {
		recipesRepo.EXPECT().GetByID(gomock.Any(), rid).Return(&entity.Recipe{ID: rid, UserID: uid}, nil)
		recipesRepo.EXPECT().Delete(gomock.Any(), rid).Return(nil)
		assert.NoError(t, rs.DeleteRecipe(ctx, uid, rid))
	})
	t.Run("update own recipe", func(t *testing.T) {
		recipesRepo.EXPECT().GetByID(gomock.Any(), rid).Return(&entity.Recipe{ID: rid, UserID: uid, Title: "Old"}, nil)
		recipesRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *entity.Recipe) error {
			assert.Equal(t, "Soup", r.Title)
			assert.Equal(t, 15, r.EstimatedTimeMinutes)
			return nil
		})
		recipesRepo.EXPECT().GetByID(gomock.Any(), rid).Return(&entity.Recipe{ID: rid, UserID: uid, Title: "Soup"}, nil)
		updated, err := rs.UpdateRecipe(ctx, uid, rid, &req)
		require.NoError(t, err)
		assert.Equal(t, "Soup", updated.Title)
	})
	t.Run("list with category filter", func(t *testing.T) {
		recipesRepo.EXPECT().GetByUserID(gomock.Any(), uid, "soup", 10, 20).Return([]*entity.Recipe{}, nil)
		list, err := rs.ListRecipes(ctx, uid, "soup", service.PaginationOpts{Limit: 10, Offset: 20})
		assert.NoError(t, err)
		assert.Empty(t, list)
	})
}
