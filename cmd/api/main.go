// @title Cooking streak API
// @description API for the cooking habit tracker "Cookstreak"
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/cookstreak/internal/api"
	"github.com/limbo/cookstreak/internal/repository"
	"github.com/limbo/cookstreak/internal/service"
	"github.com/limbo/cookstreak/internal/timer"
	"github.com/limbo/cookstreak/pkg/cleanup"
	"github.com/limbo/cookstreak/pkg/config"
	jwtservice "github.com/limbo/cookstreak/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.Connect(&dbCfg)
	usersRepo := repository.NewUsersRepoWithConn(pool)
	recipesRepo := repository.NewRecipesRepoWithConn(pool)
	recordsRepo := repository.NewCookingRecordsRepoWithConn(pool)
	badgesRepo := repository.NewBadgesRepoWithConn(pool)
	activityRepo := repository.NewDailyActivityRepoWithConn(pool)

	cal := service.Calendar{
		Location:  cfg.Location(),
		WeekStart: cfg.WeekStart(),
		Clock:     timer.SystemClock(),
	}

	waker := timer.NewLogWaker(slog.Default().With(slog.String("component", "waker")))
	cleanup.Register(&cleanup.Job{Name: "stopping countdown waker", F: waker.Stop})

	sessionsCtx, stopSessions := context.WithCancel(context.Background())
	userService := service.NewUserService(usersRepo, badgesRepo)
	recipesService := service.NewRecipesService(recipesRepo, usersRepo, activityRepo, cal)
	cookingService := service.NewCookingService(recordsRepo, recipesRepo, usersRepo, badgesRepo, cal)
	sessionService := service.NewSessionService(sessionsCtx, cookingService, recipesService,
		service.WithSessionWaker(waker),
		service.WithCountdownTick(cfg.GetDuration("COUNTDOWN_TICK", time.Second)),
	)
	cleanup.Register(&cleanup.Job{Name: "dropping cooking sessions", F: func() error {
		defer stopSessions()
		return sessionService.Shutdown()
	}})

	serv := api.New(&api.ServicesList{
		UserService:    userService,
		RecipesService: recipesService,
		CookingService: cookingService,
		SessionService: sessionService,
		BadgeCatalog:   service.NewBadgeCatalog(badgesRepo),
		JwtService:     jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", 24*time.Hour)),
	})

	errCh := make(chan error, 1)
	go func() {
		addr := cfg.GetStringOr("API_ADDRESS", ":8080")
		slog.Info("server started", slog.String("address", addr))
		errCh <- serv.Run(addr)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case s := <-sig:
		slog.Info("shutting down", slog.String("signal", s.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Println("Server error: " + err.Error())
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := serv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown error", slog.String("error", err.Error()))
	}
	cleanup.CleanUp()
}
