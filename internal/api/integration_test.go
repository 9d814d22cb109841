package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	_ "github.com/lib/pq"
	"github.com/limbo/cookstreak/internal/api"
	"github.com/limbo/cookstreak/internal/repository"
	"github.com/limbo/cookstreak/internal/service"
	"github.com/limbo/cookstreak/pkg/entity"
	jwtservice "github.com/limbo/cookstreak/pkg/jwt_service"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestCookingFlowIntegrational(t *testing.T) {
	cfg := setupTestDB(t)
	usersRepo := repository.NewUsersRepo(cfg)
	recipesRepo := repository.NewRecipesRepo(cfg)
	recordsRepo := repository.NewCookingRecordsRepo(cfg)
	badgesRepo := repository.NewBadgesRepo(cfg)
	activityRepo := repository.NewDailyActivityRepo(cfg)
	cal := service.Calendar{Location: time.UTC, WeekStart: time.Monday}

	recipesService := service.NewRecipesService(recipesRepo, usersRepo, activityRepo, cal)
	cookingService := service.NewCookingService(recordsRepo, recipesRepo, usersRepo, badgesRepo, cal)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	serv := api.New(&api.ServicesList{
		UserService:    service.NewUserService(usersRepo, badgesRepo),
		RecipesService: recipesService,
		CookingService: cookingService,
		SessionService: service.NewSessionService(ctx, cookingService, recipesService),
		BadgeCatalog:   service.NewBadgeCatalog(badgesRepo),
		JwtService:     jwtservice.New("secret", time.Hour),
	})
	handler := serv.Handler()

	do := func(method, path, token string, body any) *httptest.ResponseRecorder {
		var payload []byte
		if body != nil {
			payload = mustMarshal(t, body)
		}
		r := httptest.NewRequest(method, path, bytes.NewReader(payload))
		if token != "" {
			r.Header.Set("Authorization", "Bearer "+token)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, r)
		return rr
	}

	creds := api.RegisterRequest{Name: username, Password: password}
	rr := do(http.MethodPost, "/api/v1/auth/register", "", creds)
	require.Equal(t, http.StatusCreated, rr.Code)
	rr = do(http.MethodPost, "/api/v1/auth/register", "", creds)
	require.Equal(t, http.StatusConflict, rr.Code)

	rr = do(http.MethodPost, "/api/v1/auth/login", "", creds)
	require.Equal(t, http.StatusOK, rr.Code)
	login := make(map[string]any)
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&login))
	token := login["token"].(string)

	rr = do(http.MethodPost, "/api/v1/recipes", token, api.RecipeRequest{
		Title: "Ramen", Category: "noodles", Difficulty: 4, EstimatedTimeMinutes: 30,
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	var created service.RecipeCreated
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&created))
	assert.Equal(t, 35, created.Experience.Total)

	rr = do(http.MethodPost, "/api/v1/records", token, api.CreateRecordRequest{
		RecipeID:           &created.Recipe.ID,
		CookingTimeMinutes: 29,
		PhotoPaths:         []string{"ramen.jpg"},
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	var completion service.CompletionResult
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&completion))
	assert.Equal(t, 1, completion.Streak)
	require.NotEmpty(t, completion.NewBadges)
	assert.Equal(t, entity.BadgeFirstCook, completion.NewBadges[0].BadgeType)

	rr = do(http.MethodGet, "/api/v1/stats", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var stats entity.CookingStats
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&stats))
	assert.Equal(t, 1, stats.TotalRecords)
	assert.Equal(t, 1, stats.TotalPhotos)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 35+completion.Experience.Total, stats.Progress.Experience)

	rr = do(http.MethodDelete, "/api/v1/recipes/"+created.Recipe.ID.String(), token, nil)
	require.Equal(t, http.StatusNoContent, rr.Code)
	rr = do(http.MethodGet, "/api/v1/records", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var records api.GetRecordsResponse
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&records))
	require.Len(t, records.Records, 1)
	assert.Nil(t, records.Records[0].RecipeID)
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) *testPGConfig {
	if os.Getenv("INTEGRATION_TESTS") != "1" {
		t.Skip("set INTEGRATION_TESTS=1 to run tests against a postgres container")
	}
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("kitchen"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}

	conn.Close()
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	return &testPGConfig{
		connStr: connStr,
	}
}
