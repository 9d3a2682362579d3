package ports

import (
	"context"
	"time"

	"github.com/interviewsim/interview-api/internal/core/domain"
)

// SessionRepository defines the persistence interface for interview sessions.
type SessionRepository interface {
	// Create inserts a new session. Returns domain.ErrActiveSessionExists
	// when the user already has an IN_PROGRESS session (enforced by a
	// partial unique index at the storage layer, so concurrent starts
	// cannot both succeed).
	Create(ctx context.Context, s *domain.InterviewSession) (*domain.InterviewSession, error)
	FindByID(ctx context.Context, id string) (*domain.InterviewSession, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.InterviewSession, error)
	List(ctx context.Context, page, size int) ([]domain.InterviewSession, int64, error)
	// Finish transitions an IN_PROGRESS session to the given terminal status
	// with a conditional update. Returns domain.ErrSessionNotInProgress when
	// the session exists but is no longer active, domain.ErrSessionNotFound
	// when the id is unknown.
	Finish(ctx context.Context, id string, status domain.SessionStatus, endTime time.Time) (*domain.InterviewSession, error)
}
