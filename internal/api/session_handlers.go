package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/cookstreak/internal/service"
	"github.com/limbo/cookstreak/pkg/httputil"
)

type StartSessionRequest struct {
	RecipeID *uuid.UUID `json:"recipe_id,omitempty"`
}

type FinishSessionRequest struct {
	Notes      string   `json:"notes"`
	PhotoPaths []string `json:"photo_paths"`
}

type StartTimerRequest struct {
	Label           string `json:"label"`
	DurationSeconds int    `json:"duration_seconds"`
}

func (s *Server) StartSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("start session error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req StartSessionRequest
	if err = decodeOptionalBody(r, &req); err != nil {
		logger.Error("start session error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	status, err := s.sessionService.Start(ctx, uid, req.RecipeID)
	if err != nil {
		writeServiceError(w, logger, "starting session", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, status)
}

func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	s.sessionTransition(w, r, "getting session", s.sessionService.Status)
}

func (s *Server) PauseSession(w http.ResponseWriter, r *http.Request) {
	s.sessionTransition(w, r, "pausing session", s.sessionService.Pause)
}

func (s *Server) ResumeSession(w http.ResponseWriter, r *http.Request) {
	s.sessionTransition(w, r, "resuming session", s.sessionService.Resume)
}

func (s *Server) sessionTransition(w http.ResponseWriter, r *http.Request, op string, f func(uuid.UUID) (*service.SessionStatus, error)) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	status, err := f(uid)
	if err != nil {
		writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, status)
}

func (s *Server) CancelSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("cancel session error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	if err = s.sessionService.Cancel(uid); err != nil {
		writeServiceError(w, logger, "cancelling session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) FinishSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("finish session error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req FinishSessionRequest
	if err = decodeOptionalBody(r, &req); err != nil {
		logger.Error("finish session error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	result, err := s.sessionService.Finish(ctx, uid, &service.FinishSessionRequest{
		Notes:      req.Notes,
		PhotoPaths: req.PhotoPaths,
	})
	if err != nil {
		writeServiceError(w, logger, "finishing session", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, result)
	logger.Info("cooking session recorded", "minutes", result.Record.CookingTimeMinutes, "xp", result.Experience.Total)
}

func (s *Server) StartTimer(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("start timer error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req StartTimerRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Error("start timer error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	status, err := s.sessionService.StartCountdown(uid, req.Label, time.Duration(req.DurationSeconds)*time.Second)
	if err != nil {
		writeServiceError(w, logger, "starting timer", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, status)
}

func (s *Server) GetTimers(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get timers error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	timers, err := s.sessionService.ListCountdowns(uid)
	if err != nil {
		writeServiceError(w, logger, "getting timers", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"timers": timers})
}

func (s *Server) PauseTimer(w http.ResponseWriter, r *http.Request) {
	s.timerTransition(w, r, "pausing timer", s.sessionService.PauseCountdown)
}

func (s *Server) ResumeTimer(w http.ResponseWriter, r *http.Request) {
	s.timerTransition(w, r, "resuming timer", s.sessionService.ResumeCountdown)
}

func (s *Server) timerTransition(w http.ResponseWriter, r *http.Request, op string, f func(uuid.UUID, string) (*service.CountdownStatus, error)) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id := r.PathValue("id")
	if id == "" {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "missing timer id in path value", nil)
		return
	}
	status, err := f(uid, id)
	if err != nil {
		writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, status)
}

func (s *Server) CancelTimer(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("cancel timer error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id := r.PathValue("id")
	if id == "" {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "missing timer id in path value", nil)
		return
	}
	if err = s.sessionService.CancelCountdown(uid, id); err != nil {
		writeServiceError(w, logger, "cancelling timer", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
