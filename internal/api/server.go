package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/limbo/cookstreak/docs"
	"github.com/limbo/cookstreak/internal/service"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	mx             *chi.Mux
	mu             sync.Mutex
	httpServer     *http.Server
	userService    service.UserServiceI
	recipesService service.RecipesServiceI
	cookingService service.CookingServiceI
	sessionService service.SessionServiceI
	badgeCatalog   service.BadgeCatalogI
	jwtService     JWTServiceI
}

type ServicesList struct {
	UserService    service.UserServiceI
	RecipesService service.RecipesServiceI
	CookingService service.CookingServiceI
	SessionService service.SessionServiceI
	BadgeCatalog   service.BadgeCatalogI
	JwtService     JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:             chi.NewMux(),
		userService:    servicesOptions.UserService,
		recipesService: servicesOptions.RecipesService,
		cookingService: servicesOptions.CookingService,
		sessionService: servicesOptions.SessionService,
		badgeCatalog:   servicesOptions.BadgeCatalog,
		jwtService:     servicesOptions.JwtService,
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)

	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Get("/me", s.GetProfile)
			r.Delete("/me", s.DeleteAccount)

			r.Route("/recipes", func(r chi.Router) {
				r.Post("/", s.CreateRecipe)
				r.Get("/", s.GetRecipes)
				r.Get("/categories", s.GetCategories)
				r.Get("/{id}", s.GetRecipe)
				r.Put("/{id}", s.UpdateRecipe)
				r.Delete("/{id}", s.DeleteRecipe)
			})

			r.Route("/records", func(r chi.Router) {
				r.Post("/", s.CreateRecord)
				r.Get("/", s.GetRecords)
				r.Get("/{id}", s.GetRecord)
				r.Delete("/{id}", s.DeleteRecord)
			})

			r.Get("/stats", s.GetStats)
			r.Get("/badges", s.GetBadges)

			r.Route("/session", func(r chi.Router) {
				r.Get("/", s.GetSession)
				r.Post("/start", s.StartSession)
				r.Post("/pause", s.PauseSession)
				r.Post("/resume", s.ResumeSession)
				r.Post("/finish", s.FinishSession)
				r.Post("/cancel", s.CancelSession)

				r.Post("/timers", s.StartTimer)
				r.Get("/timers", s.GetTimers)
				r.Post("/timers/{id}/pause", s.PauseTimer)
				r.Post("/timers/{id}/resume", s.ResumeTimer)
				r.Delete("/timers/{id}", s.CancelTimer)
			})
		})
	})
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run blocks until the server is shut down. http.ErrServerClosed is
// returned after a graceful Shutdown.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       time.Minute,
	}
	s.mu.Lock()
	s.httpServer = srv
	s.mu.Unlock()
	return srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpServer
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
