package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/cookstreak/internal/error_values"
	"github.com/limbo/cookstreak/internal/gamification"
	"github.com/limbo/cookstreak/internal/repository"
	"github.com/limbo/cookstreak/pkg/entity"
	"golang.org/x/sync/errgroup"
)

// A client clock slightly ahead of ours should not be rejected.
const cookedAtTolerance = time.Minute

type CookingService struct {
	recordsRepo repository.CookingRecordsRepositoryI
	recipesRepo repository.RecipesRepositoryI
	usersRepo   repository.UsersRepositoryI
	badgesRepo  repository.BadgesRepositoryI
	cal         Calendar
}

func NewCookingService(
	recordsRepo repository.CookingRecordsRepositoryI,
	recipesRepo repository.RecipesRepositoryI,
	usersRepo repository.UsersRepositoryI,
	badgesRepo repository.BadgesRepositoryI,
	cal Calendar,
) *CookingService {
	if recordsRepo == nil || recipesRepo == nil || usersRepo == nil || badgesRepo == nil {
		log.Fatal("on cooking service provided nil repos")
	}
	return &CookingService{
		recordsRepo: recordsRepo,
		recipesRepo: recipesRepo,
		usersRepo:   usersRepo,
		badgesRepo:  badgesRepo,
		cal:         cal,
	}
}

type cookingHistory struct {
	cookedAt []time.Time
	totals   *entity.RecordTotals
	badges   []entity.Badge
}

func (cs *CookingService) loadHistory(ctx context.Context, uid uuid.UUID) (*cookingHistory, error) {
	var h cookingHistory
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		h.cookedAt, err = cs.recordsRepo.ListCookedAt(gctx, uid)
		return err
	})
	g.Go(func() error {
		var err error
		h.totals, err = cs.recordsRepo.Totals(gctx, uid)
		return err
	})
	g.Go(func() error {
		var err error
		h.badges, err = cs.badgesRepo.GetByUserID(gctx, uid)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errors.New("loading cooking history error: " + err.Error())
	}
	return &h, nil
}

func (cs *CookingService) CompleteCooking(ctx context.Context, uid uuid.UUID, req *CompleteCookingRequest) (*CompletionResult, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	now := cs.cal.now()
	cookedAt := req.CookedAt
	if cookedAt.IsZero() {
		cookedAt = now
	}
	if cookedAt.After(now.Add(cookedAtTolerance)) {
		return nil, errorvalues.ErrCookedAtNotAllow
	}

	// Without a recipe the default multiplier applies and there is no estimate
	difficulty, estimated := 0, 0
	if req.RecipeID != nil {
		recipe, err := cs.recipesRepo.GetByID(ctx, *req.RecipeID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrRecipeNotFound) {
				return nil, err
			}
			return nil, errors.New("recipes repository error: " + err.Error())
		}
		if recipe.UserID != uid {
			return nil, errorvalues.ErrWrongOwner
		}
		difficulty, estimated = recipe.Difficulty, recipe.EstimatedTimeMinutes
	}

	history, err := cs.loadHistory(ctx, uid)
	if err != nil {
		return nil, err
	}

	loc := cs.cal.loc()
	days := gamification.DistinctDays(append(history.cookedAt, cookedAt), loc)
	streak := gamification.CurrentStreak(days, cookedAt, loc)

	breakdown := gamification.CompletionExperience(gamification.CompletionInput{
		Difficulty:       difficulty,
		EstimatedMinutes: estimated,
		ActualMinutes:    req.CookingTimeMinutes,
		HasPhotosOrNotes: len(req.PhotoPaths) > 0 || req.Notes != "",
		Streak:           streak,
	})

	earned := make(map[entity.BadgeType]bool, len(history.badges))
	for _, b := range history.badges {
		earned[b.BadgeType] = true
	}
	unlocked := gamification.EvaluateBadges(gamification.BadgeInput{
		TotalRecords:     history.totals.Count + 1,
		CurrentStreak:    streak,
		ActualMinutes:    req.CookingTimeMinutes,
		EstimatedMinutes: estimated,
		TotalPhotos:      history.totals.Photos + len(req.PhotoPaths),
	}, earned)
	newBadges := make([]entity.Badge, 0, len(unlocked))
	for _, t := range unlocked {
		newBadges = append(newBadges, entity.Badge{UserID: uid, BadgeType: t, EarnedAt: now})
	}

	photos := req.PhotoPaths
	if photos == nil {
		photos = []string{}
	}
	record := &entity.CookingRecord{
		UserID:             uid,
		RecipeID:           req.RecipeID,
		CookingTimeMinutes: req.CookingTimeMinutes,
		ExperienceGained:   breakdown.Total,
		CookedAt:           cookedAt,
		Notes:              req.Notes,
		PhotoPaths:         photos,
	}
	update, err := cs.recordsRepo.SaveCompletion(ctx, record, newBadges, now)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrOwnerNotFound), errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("cooking records repository error: " + err.Error())
	}
	return &CompletionResult{
		Record:     record,
		Experience: breakdown,
		Streak:     streak,
		NewBadges:  newBadges,
		LeveledUp:  update.LeveledUp,
		Progress:   gamification.Progress(update.Experience),
	}, nil
}

func (cs *CookingService) ListRecords(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.CookingRecord, error) {
	records, err := cs.recordsRepo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("cooking records repository error: " + err.Error())
	}
	return records, nil
}

func (cs *CookingService) GetRecord(ctx context.Context, uid, id uuid.UUID) (*entity.CookingRecord, error) {
	record, err := cs.recordsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRecordNotFound) {
			return nil, err
		}
		return nil, errors.New("cooking records repository error: " + err.Error())
	}
	if record.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return record, nil
}

// DeleteRecord removes the record only. Granted XP and badges stay.
func (cs *CookingService) DeleteRecord(ctx context.Context, uid, id uuid.UUID) error {
	if _, err := cs.GetRecord(ctx, uid, id); err != nil {
		return err
	}
	err := cs.recordsRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRecordNotFound) {
			return err
		}
		return errors.New("cooking records repository error: " + err.Error())
	}
	return nil
}

func (cs *CookingService) GetStats(ctx context.Context, uid uuid.UUID) (*entity.CookingStats, error) {
	var (
		user     *entity.User
		cookedAt []time.Time
		totals   *entity.RecordTotals
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = cs.usersRepo.FindByID(gctx, uid)
		return err
	})
	g.Go(func() error {
		var err error
		cookedAt, err = cs.recordsRepo.ListCookedAt(gctx, uid)
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = cs.recordsRepo.Totals(gctx, uid)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("loading stats error: " + err.Error())
	}
	summary := gamification.Summarize(cookedAt, cs.cal.now(), cs.cal.loc(), cs.cal.WeekStart)
	return &entity.CookingStats{
		TotalRecords:        totals.Count,
		TotalCookingMinutes: totals.Minutes,
		TotalPhotos:         totals.Photos,
		CurrentStreak:       summary.CurrentStreak,
		LongestStreak:       summary.LongestStreak,
		TotalDistinctDays:   summary.TotalDistinctDays,
		DaysThisWeek:        summary.DaysThisWeek,
		DaysThisMonth:       summary.DaysThisMonth,
		LastCookedAt:        totals.LastCookedAt,
		Progress:            gamification.Progress(user.ExperiencePoints),
	}, nil
}
