package service

import (
	"context"
	"log"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/cookstreak/internal/error_values"
	"github.com/limbo/cookstreak/internal/timer"
)

const maxCountdownsPerSession = 10

type SessionOption func(*SessionService)

func WithSessionClock(c timer.Clock) SessionOption {
	return func(s *SessionService) {
		if c != nil {
			s.clock = c
		}
	}
}

func WithSessionWaker(w timer.Waker) SessionOption {
	return func(s *SessionService) {
		s.waker = w
	}
}

func WithCountdownTick(d time.Duration) SessionOption {
	return func(s *SessionService) {
		if d > 0 {
			s.tick = d
		}
	}
}

func WithSessionLogger(l *slog.Logger) SessionOption {
	return func(s *SessionService) {
		if l != nil {
			s.log = l
		}
	}
}

type cookingSession struct {
	recipeID   *uuid.UUID
	stopwatch  *timer.Stopwatch
	countdowns map[string]*timer.Countdown
	order      []string
	// set while a Finish is recording the completion
	finishing bool
}

// SessionService keeps at most one live cooking session per user in memory.
// Countdown tickers run on the service context, not on request contexts.
type SessionService struct {
	baseCtx context.Context
	cooking CookingServiceI
	recipes RecipesServiceI
	clock   timer.Clock
	waker   timer.Waker
	tick    time.Duration
	log     *slog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*cookingSession
}

func NewSessionService(ctx context.Context, cooking CookingServiceI, recipes RecipesServiceI, opts ...SessionOption) *SessionService {
	if cooking == nil || recipes == nil {
		log.Fatal("on session service provided nil services")
	}
	s := &SessionService{
		baseCtx:  ctx,
		cooking:  cooking,
		recipes:  recipes,
		clock:    timer.SystemClock(),
		tick:     time.Second,
		log:      slog.Default(),
		sessions: make(map[uuid.UUID]*cookingSession),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SessionService) Start(ctx context.Context, uid uuid.UUID, recipeID *uuid.UUID) (*SessionStatus, error) {
	if recipeID != nil {
		if _, err := s.recipes.GetRecipe(ctx, uid, *recipeID); err != nil {
			return nil, err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.sessions[uid]; ok {
		if old.finishing || old.stopwatch.State() != timer.StateFinished {
			return nil, errorvalues.ErrSessionExists
		}
		s.dropLocked(uid, old)
	}
	sess := &cookingSession{
		recipeID:   recipeID,
		stopwatch:  timer.NewStopwatch(s.clock),
		countdowns: make(map[string]*timer.Countdown),
	}
	if err := sess.stopwatch.Start(); err != nil {
		return nil, err
	}
	s.sessions[uid] = sess
	s.log.Info("cooking session started", slog.String("uid", uid.String()))
	return sess.status(), nil
}

func (s *SessionService) Pause(uid uuid.UUID) (*SessionStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[uid]
	if !ok {
		return nil, errorvalues.ErrSessionNotFound
	}
	if err := sess.stopwatch.Pause(); err != nil {
		return nil, err
	}
	return sess.status(), nil
}

func (s *SessionService) Resume(uid uuid.UUID) (*SessionStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[uid]
	if !ok {
		return nil, errorvalues.ErrSessionNotFound
	}
	if err := sess.stopwatch.Resume(); err != nil {
		return nil, err
	}
	return sess.status(), nil
}

func (s *SessionService) Status(uid uuid.UUID) (*SessionStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[uid]
	if !ok {
		return nil, errorvalues.ErrSessionNotFound
	}
	return sess.status(), nil
}

func (s *SessionService) Cancel(uid uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[uid]
	if !ok {
		return errorvalues.ErrSessionNotFound
	}
	if sess.finishing {
		return errorvalues.ErrInvalidState
	}
	sess.stopwatch.Cancel()
	s.dropLocked(uid, sess)
	s.log.Info("cooking session cancelled", slog.String("uid", uid.String()))
	return nil
}

// Finish freezes the stopwatch and records the completion. If recording
// fails the session stays finished and Finish can be retried. Only one
// Finish per session records at a time, others get ErrInvalidState.
func (s *SessionService) Finish(ctx context.Context, uid uuid.UUID, req *FinishSessionRequest) (*CompletionResult, error) {
	s.mu.Lock()
	sess, ok := s.sessions[uid]
	if !ok {
		s.mu.Unlock()
		return nil, errorvalues.ErrSessionNotFound
	}
	if sess.finishing {
		s.mu.Unlock()
		return nil, errorvalues.ErrInvalidState
	}
	if sess.stopwatch.State() != timer.StateFinished {
		if _, err := sess.stopwatch.Finish(); err != nil {
			s.mu.Unlock()
			return nil, err
		}
	}
	elapsed := sess.stopwatch.Elapsed()
	recipeID := sess.recipeID
	sess.finishing = true
	s.mu.Unlock()

	if req == nil {
		req = &FinishSessionRequest{}
	}
	result, err := s.cooking.CompleteCooking(ctx, uid, &CompleteCookingRequest{
		RecipeID:           recipeID,
		CookingTimeMinutes: SessionMinutes(elapsed),
		CookedAt:           s.clock.Now(),
		Notes:              req.Notes,
		PhotoPaths:         req.PhotoPaths,
	})

	s.mu.Lock()
	sess.finishing = false
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if s.sessions[uid] == sess {
		s.dropLocked(uid, sess)
	}
	s.mu.Unlock()
	s.log.Info("cooking session finished", slog.String("uid", uid.String()), slog.Duration("elapsed", elapsed))
	return result, nil
}

// SessionMinutes rounds the stopwatch time to whole minutes. A finished
// session always counts at least one minute.
func SessionMinutes(elapsed time.Duration) int {
	m := int(math.Round(elapsed.Minutes()))
	if m < 1 {
		return 1
	}
	return m
}

func (s *SessionService) StartCountdown(uid uuid.UUID, label string, duration time.Duration) (*CountdownStatus, error) {
	if duration <= 0 || duration > 24*time.Hour {
		return nil, errorvalues.ErrValidation
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[uid]
	if !ok {
		return nil, errorvalues.ErrSessionNotFound
	}
	if len(sess.countdowns) >= maxCountdownsPerSession {
		return nil, errorvalues.ErrValidation
	}
	id := uuid.NewString()
	logger := s.log.With(slog.String("uid", uid.String()))
	cd := timer.NewCountdown(id, label, duration,
		timer.WithClock(s.clock),
		timer.WithTickInterval(s.tick),
		timer.WithWaker(s.waker),
		timer.WithLogger(logger),
	)
	if err := cd.Start(s.baseCtx); err != nil {
		return nil, err
	}
	sess.countdowns[id] = cd
	sess.order = append(sess.order, id)
	st := countdownStatus(cd)
	return &st, nil
}

func (s *SessionService) PauseCountdown(uid uuid.UUID, id string) (*CountdownStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cd, err := s.countdownLocked(uid, id)
	if err != nil {
		return nil, err
	}
	if err = cd.Pause(); err != nil {
		return nil, err
	}
	st := countdownStatus(cd)
	return &st, nil
}

func (s *SessionService) ResumeCountdown(uid uuid.UUID, id string) (*CountdownStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cd, err := s.countdownLocked(uid, id)
	if err != nil {
		return nil, err
	}
	if err = cd.Resume(s.baseCtx); err != nil {
		return nil, err
	}
	st := countdownStatus(cd)
	return &st, nil
}

func (s *SessionService) CancelCountdown(uid uuid.UUID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cd, err := s.countdownLocked(uid, id)
	if err != nil {
		return err
	}
	cd.Cancel()
	sess := s.sessions[uid]
	delete(sess.countdowns, id)
	for i, cid := range sess.order {
		if cid == id {
			sess.order = append(sess.order[:i], sess.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *SessionService) ListCountdowns(uid uuid.UUID) ([]CountdownStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[uid]
	if !ok {
		return nil, errorvalues.ErrSessionNotFound
	}
	return sess.countdownStatuses(), nil
}

// Shutdown cancels every live session. Used as a cleanup job.
func (s *SessionService) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for uid, sess := range s.sessions {
		s.dropLocked(uid, sess)
	}
	return nil
}

func (s *SessionService) countdownLocked(uid uuid.UUID, id string) (*timer.Countdown, error) {
	sess, ok := s.sessions[uid]
	if !ok {
		return nil, errorvalues.ErrSessionNotFound
	}
	cd, ok := sess.countdowns[id]
	if !ok {
		return nil, errorvalues.ErrCountdownMissing
	}
	return cd, nil
}

func (s *SessionService) dropLocked(uid uuid.UUID, sess *cookingSession) {
	for _, cd := range sess.countdowns {
		cd.Cancel()
	}
	delete(s.sessions, uid)
}

func (sess *cookingSession) status() *SessionStatus {
	return &SessionStatus{
		RecipeID:   sess.recipeID,
		State:      sess.stopwatch.State(),
		StartedAt:  sess.stopwatch.StartedAt(),
		Elapsed:    sess.stopwatch.Elapsed(),
		Paused:     sess.stopwatch.PausedTotal(),
		Countdowns: sess.countdownStatuses(),
	}
}

func (sess *cookingSession) countdownStatuses() []CountdownStatus {
	out := make([]CountdownStatus, 0, len(sess.order))
	for _, id := range sess.order {
		out = append(out, countdownStatus(sess.countdowns[id]))
	}
	return out
}

func countdownStatus(cd *timer.Countdown) CountdownStatus {
	return CountdownStatus{
		ID:        cd.ID(),
		Label:     cd.Label(),
		Duration:  cd.Duration(),
		Remaining: cd.Remaining(),
		State:     cd.State(),
	}
}
