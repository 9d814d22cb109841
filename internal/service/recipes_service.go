package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/cookstreak/internal/error_values"
	"github.com/limbo/cookstreak/internal/gamification"
	"github.com/limbo/cookstreak/internal/repository"
	"github.com/limbo/cookstreak/pkg/entity"
)

type RecipesService struct {
	recipesRepo  repository.RecipesRepositoryI
	usersRepo    repository.UsersRepositoryI
	activityRepo repository.DailyActivityRepositoryI
	cal          Calendar
}

func NewRecipesService(recipesRepo repository.RecipesRepositoryI, usersRepo repository.UsersRepositoryI, activityRepo repository.DailyActivityRepositoryI, cal Calendar) *RecipesService {
	if recipesRepo == nil || usersRepo == nil || activityRepo == nil {
		log.Fatal("on recipes service provided nil repos")
	}
	return &RecipesService{
		recipesRepo:  recipesRepo,
		usersRepo:    usersRepo,
		activityRepo: activityRepo,
		cal:          cal,
	}
}

func (rs *RecipesService) CreateRecipe(ctx context.Context, uid uuid.UUID, req *RecipeRequest) (*RecipeCreated, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	user, err := rs.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	// Has to be checked before the recipe is stored
	categoryExists, err := rs.recipesRepo.CategoryExists(ctx, uid, req.Category)
	if err != nil {
		return nil, errors.New("recipes repository error: " + err.Error())
	}
	now := rs.cal.now()
	day := gamification.StartOfDay(now, rs.cal.loc())

	recipe := entity.Recipe{
		UserID:               uid,
		Title:                req.Title,
		Category:             req.Category,
		Difficulty:           req.Difficulty,
		EstimatedTimeMinutes: req.EstimatedTimeMinutes,
	}
	id, err := rs.recipesRepo.Create(ctx, &recipe)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("recipes repository error: " + err.Error())
	}

	count, err := rs.activityRepo.RegisterRecipe(ctx, uid, day, now)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("daily activity repository error: " + err.Error())
	}
	// The counter already includes this recipe, the bonus depends on the count before it
	var before *entity.DailyActivity
	if count > 1 {
		before = &entity.DailyActivity{UserID: uid, Date: day, RecipeRegistrationCount: count - 1}
	}
	breakdown, _ := gamification.RegistrationExperience(categoryExists, before, now, rs.cal.loc())
	progress := gamification.Progress(user.ExperiencePoints)
	leveledUp := false
	if breakdown.Total > 0 {
		update, err := rs.usersRepo.AddExperience(ctx, uid, breakdown.Total, now)
		if err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				return nil, err
			}
			return nil, errors.New("users repository error: " + err.Error())
		}
		progress = gamification.Progress(update.Experience)
		leveledUp = update.LeveledUp
	}

	stored, err := rs.recipesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("recipes repository error: " + err.Error())
	}
	return &RecipeCreated{
		Recipe:     stored,
		Experience: breakdown,
		LeveledUp:  leveledUp,
		Progress:   progress,
	}, nil
}

func (rs *RecipesService) GetRecipe(ctx context.Context, uid, id uuid.UUID) (*entity.Recipe, error) {
	return rs.ownedRecipe(ctx, uid, id)
}

func (rs *RecipesService) ListRecipes(ctx context.Context, uid uuid.UUID, category string, pagination PaginationOpts) ([]*entity.Recipe, error) {
	recipes, err := rs.recipesRepo.GetByUserID(ctx, uid, category, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("recipes repository error: " + err.Error())
	}
	return recipes, nil
}

func (rs *RecipesService) UpdateRecipe(ctx context.Context, uid, id uuid.UUID, req *RecipeRequest) (*entity.Recipe, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	recipe, err := rs.ownedRecipe(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	recipe.Title = req.Title
	recipe.Category = req.Category
	recipe.Difficulty = req.Difficulty
	recipe.EstimatedTimeMinutes = req.EstimatedTimeMinutes
	if err = rs.recipesRepo.Update(ctx, recipe); err != nil {
		if errors.Is(err, errorvalues.ErrRecipeNotFound) {
			return nil, err
		}
		return nil, errors.New("recipes repository error: " + err.Error())
	}
	updated, err := rs.recipesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("recipes repository error: " + err.Error())
	}
	return updated, nil
}

func (rs *RecipesService) DeleteRecipe(ctx context.Context, uid, id uuid.UUID) error {
	if _, err := rs.ownedRecipe(ctx, uid, id); err != nil {
		return err
	}
	err := rs.recipesRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRecipeNotFound) {
			return err
		}
		return errors.New("recipes repository error: " + err.Error())
	}
	return nil
}

func (rs *RecipesService) ListCategories(ctx context.Context, uid uuid.UUID) ([]string, error) {
	categories, err := rs.recipesRepo.ListCategories(ctx, uid)
	if err != nil {
		return nil, errors.New("recipes repository error: " + err.Error())
	}
	return categories, nil
}

func (rs *RecipesService) ownedRecipe(ctx context.Context, uid, id uuid.UUID) (*entity.Recipe, error) {
	recipe, err := rs.recipesRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRecipeNotFound) {
			return nil, err
		}
		return nil, errors.New("recipes repository error: " + err.Error())
	}
	if recipe.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return recipe, nil
}
