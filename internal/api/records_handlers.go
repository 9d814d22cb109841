package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/cookstreak/internal/service"
	"github.com/limbo/cookstreak/pkg/entity"
	"github.com/limbo/cookstreak/pkg/httputil"
)

type CreateRecordRequest struct {
	RecipeID           *uuid.UUID `json:"recipe_id,omitempty"`
	CookingTimeMinutes int        `json:"cooking_time_minutes"`
	CookedAt           *time.Time `json:"cooked_at,omitempty"`
	Notes              string     `json:"notes"`
	PhotoPaths         []string   `json:"photo_paths"`
}

type GetRecordsResponse struct {
	UserID  string                  `json:"uid"`
	Page    int                     `json:"page"`
	Limit   int                     `json:"limit"`
	Records []*entity.CookingRecord `json:"records"`
}

// CreateRecord logs a cooking completion without a live session.
func (s *Server) CreateRecord(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create record error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateRecordRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Error("create record error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	completion := &service.CompleteCookingRequest{
		RecipeID:           req.RecipeID,
		CookingTimeMinutes: req.CookingTimeMinutes,
		Notes:              req.Notes,
		PhotoPaths:         req.PhotoPaths,
	}
	if req.CookedAt != nil {
		completion.CookedAt = *req.CookedAt
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	result, err := s.cookingService.CompleteCooking(ctx, uid, completion)
	if err != nil {
		writeServiceError(w, logger, "creating record", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, result)
	logger.Info("cooking record created", "xp", result.Experience.Total, "badges", len(result.NewBadges))
}

func (s *Server) GetRecords(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get records error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, page := paginationFromQuery(r)
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	records, err := s.cookingService.ListRecords(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		writeServiceError(w, logger, "getting records", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetRecordsResponse{
		UserID:  uid.String(),
		Page:    page,
		Limit:   limit,
		Records: records,
	})
}

func (s *Server) GetRecord(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get record error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get record error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid record id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	record, err := s.cookingService.GetRecord(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "getting record", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, record)
}

func (s *Server) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("record deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("record deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid record id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	if err = s.cookingService.DeleteRecord(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "deleting record", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("cooking record deleted")
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	stats, err := s.cookingService.GetStats(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "getting stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) GetBadges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get badges error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	badges, err := s.badgeCatalog.List(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "getting badges", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"badges": badges})
}
