package jwtservice_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/cookstreak/internal/error_values"
	"github.com/limbo/cookstreak/pkg/entity"
	jwtservice "github.com/limbo/cookstreak/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()
	s := jwtservice.New("secret", time.Hour)
	user := &entity.User{ID: uuid.New(), Name: "chef_anna"}

	token, err := s.GenerateToken(user)
	require.NoError(t, err)
	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Name, claims.Username)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseTokenRejects(t *testing.T) {
	t.Parallel()
	user := &entity.User{ID: uuid.New(), Name: "chef_anna"}
	foreign, err := jwtservice.New("other secret", time.Hour).GenerateToken(user)
	require.NoError(t, err)

	testCases := []struct {
		Desc  string
		Token string
	}{
		{Desc: "signed with another secret", Token: foreign},
		{Desc: "garbage", Token: "not.a.token"},
	}
	s := jwtservice.New("secret", time.Hour)
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := s.ParseToken(tc.Token)
			assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
		})
	}
}
