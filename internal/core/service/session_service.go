package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/interviewsim/interview-api/internal/api/metrics"
	"github.com/interviewsim/interview-api/internal/core/domain"
	"github.com/interviewsim/interview-api/internal/core/ports"
)

// SessionService implements the interview session lifecycle. A session opens
// as IN_PROGRESS and terminates as either COMPLETED or CANCELLED.
type SessionService struct {
	sessions ports.SessionRepository
	users    ports.UserRepository
	log      zerolog.Logger
}

func NewSessionService(sessions ports.SessionRepository, users ports.UserRepository, log zerolog.Logger) *SessionService {
	return &SessionService{sessions: sessions, users: users, log: log}
}

// Start opens a session for the user. The single-active-session invariant is
// checked here and enforced again by the storage layer on insert, so two
// concurrent starts cannot both succeed.
func (s *SessionService) Start(ctx context.Context, userID string) (*domain.InterviewSession, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	session := &domain.InterviewSession{
		UserID:    user.ID,
		Username:  user.Username,
		StartTime: time.Now().UTC(),
		Status:    domain.StatusInProgress,
	}

	created, err := s.sessions.Create(ctx, session)
	if err != nil {
		return nil, err
	}

	metrics.SessionsStartedTotal.Inc()
	s.log.Info().Str("session_id", created.ID).Str("user_id", user.ID).Msg("interview session started")
	return created, nil
}

// End completes an IN_PROGRESS session and stamps its end time.
func (s *SessionService) End(ctx context.Context, sessionID string) (*domain.InterviewSession, error) {
	return s.finish(ctx, sessionID, domain.StatusCompleted)
}

// Cancel aborts an IN_PROGRESS session and stamps its end time.
func (s *SessionService) Cancel(ctx context.Context, sessionID string) (*domain.InterviewSession, error) {
	return s.finish(ctx, sessionID, domain.StatusCancelled)
}

func (s *SessionService) finish(ctx context.Context, sessionID string, status domain.SessionStatus) (*domain.InterviewSession, error) {
	updated, err := s.sessions.Finish(ctx, sessionID, status, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	metrics.SessionsFinishedTotal.WithLabelValues(string(status)).Inc()
	s.log.Info().
		Str("session_id", updated.ID).
		Str("status", string(status)).
		Int64("duration_minutes", updated.DurationMinutes(time.Now().UTC())).
		Msg("interview session finished")
	return updated, nil
}

func (s *SessionService) GetByID(ctx context.Context, sessionID string) (*domain.InterviewSession, error) {
	return s.sessions.FindByID(ctx, sessionID)
}

// GetUserSessions lists every session owned by the user, verifying the user
// exists first so an unknown id is a 404 rather than an empty list.
func (s *SessionService) GetUserSessions(ctx context.Context, userID string) ([]domain.InterviewSession, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.sessions.FindByUserID(ctx, user.ID)
}

func (s *SessionService) List(ctx context.Context, page, size int) (*ports.SessionList, error) {
	page, size = normalizePaging(page, size)
	items, total, err := s.sessions.List(ctx, page, size)
	if err != nil {
		return nil, err
	}
	return &ports.SessionList{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages(total, size),
	}, nil
}
