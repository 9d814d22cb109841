package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/cookstreak/internal/gamification"
	"github.com/limbo/cookstreak/internal/repository/mocks"
	"github.com/limbo/cookstreak/internal/service"
	"github.com/limbo/cookstreak/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgeCatalogList(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	badgesRepo := mocks.NewMockBadgesRepositoryI(ctrl)
	bc := service.NewBadgeCatalog(badgesRepo)
	uid := uuid.New()
	ctx := context.Background()

	t.Run("marks earned badges", func(t *testing.T) {
		badgesRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return([]entity.Badge{
			{UserID: uid, BadgeType: entity.BadgeFirstCook, EarnedAt: testNow},
			{UserID: uid, BadgeType: entity.BadgeStreak3, EarnedAt: testNow},
		}, nil)
		list, err := bc.List(ctx, uid)
		require.NoError(t, err)
		require.Len(t, list, len(gamification.BadgeRules()))
		earned := 0
		for _, st := range list {
			if st.Earned {
				earned++
				require.NotNil(t, st.EarnedAt)
				assert.Equal(t, testNow, *st.EarnedAt)
				continue
			}
			assert.Nil(t, st.EarnedAt)
		}
		assert.Equal(t, 2, earned)
		assert.Equal(t, entity.BadgeFirstCook, list[0].Type)
		assert.True(t, list[0].Earned)
	})
	t.Run("repository error", func(t *testing.T) {
		badgesRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(nil, errors.New("db error"))
		_, err := bc.List(ctx, uid)
		assert.EqualError(t, err, "badges repository error: db error")
	})
}
