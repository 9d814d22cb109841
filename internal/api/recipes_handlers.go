package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/limbo/cookstreak/internal/service"
	"github.com/limbo/cookstreak/pkg/entity"
	"github.com/limbo/cookstreak/pkg/httputil"
)

type RecipeRequest struct {
	Title                string `json:"title"`
	Category             string `json:"category"`
	Difficulty           int    `json:"difficulty"`
	EstimatedTimeMinutes int    `json:"estimated_time_minutes"`
}

func (req RecipeRequest) toService() *service.RecipeRequest {
	return &service.RecipeRequest{
		Title:                req.Title,
		Category:             req.Category,
		Difficulty:           req.Difficulty,
		EstimatedTimeMinutes: req.EstimatedTimeMinutes,
	}
}

type GetRecipesResponse struct {
	UserID   string           `json:"uid"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
	Category string           `json:"category,omitempty"`
	Recipes  []*entity.Recipe `json:"recipes"`
}

func (s *Server) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create recipe error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req RecipeRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Error("create recipe error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	created, err := s.recipesService.CreateRecipe(ctx, uid, req.toService())
	if err != nil {
		writeServiceError(w, logger, "creating recipe", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, created)
	logger.Info("recipe created")
}

func (s *Server) GetRecipes(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get recipes error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, page := paginationFromQuery(r)
	category := r.URL.Query().Get("category")
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	recipes, err := s.recipesService.ListRecipes(ctx, uid, category, service.PaginationOpts{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		writeServiceError(w, logger, "getting recipes", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetRecipesResponse{
		UserID:   uid.String(),
		Page:     page,
		Limit:    limit,
		Category: category,
		Recipes:  recipes,
	})
}

func (s *Server) GetCategories(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get categories error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	categories, err := s.recipesService.ListCategories(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "getting categories", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"categories": categories})
}

func (s *Server) GetRecipe(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get recipe error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get recipe error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid recipe id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	recipe, err := s.recipesService.GetRecipe(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "getting recipe", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, recipe)
}

func (s *Server) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update recipe error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update recipe error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid recipe id in path value", nil)
		return
	}
	var req RecipeRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Error("update recipe error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	recipe, err := s.recipesService.UpdateRecipe(ctx, uid, id, req.toService())
	if err != nil {
		writeServiceError(w, logger, "updating recipe", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, recipe)
	logger.Info("recipe updated")
}

func (s *Server) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("recipe deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("recipe deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid recipe id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	if err = s.recipesService.DeleteRecipe(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "deleting recipe", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("recipe deleted")
}
