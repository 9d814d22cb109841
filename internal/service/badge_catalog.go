package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/limbo/cookstreak/internal/gamification"
	"github.com/limbo/cookstreak/internal/repository"
)

type BadgeCatalog struct {
	repo repository.BadgesRepositoryI
}

func NewBadgeCatalog(badgesRepo repository.BadgesRepositoryI) *BadgeCatalog {
	if badgesRepo == nil {
		log.Fatal("provided nil badgesRepo")
	}
	return &BadgeCatalog{
		repo: badgesRepo,
	}
}

func (bc *BadgeCatalog) List(ctx context.Context, uid uuid.UUID) ([]BadgeStatus, error) {
	earned, err := bc.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("badges repository error: " + err.Error())
	}
	rules := gamification.BadgeRules()
	out := make([]BadgeStatus, 0, len(rules))
	for _, rule := range rules {
		st := BadgeStatus{BadgeRule: rule}
		for _, b := range earned {
			if b.BadgeType == rule.Type {
				at := b.EarnedAt
				st.Earned = true
				st.EarnedAt = &at
				break
			}
		}
		out = append(out, st)
	}
	return out, nil
}
