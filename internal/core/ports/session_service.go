package ports

import (
	"context"

	"github.com/interviewsim/interview-api/internal/core/domain"
)

// SessionList is a single page of sessions plus paging totals.
type SessionList struct {
	Items      []domain.InterviewSession
	Total      int64
	Page       int
	Size       int
	TotalPages int
}

type SessionService interface {
	// Start opens an IN_PROGRESS session for the user. Fails with
	// domain.ErrActiveSessionExists when one is already running and
	// domain.ErrUserNotFound when the user id is unknown.
	Start(ctx context.Context, userID string) (*domain.InterviewSession, error)
	// End completes an IN_PROGRESS session. Fails with
	// domain.ErrSessionNotInProgress on any other state, including a second
	// End on an already terminal session.
	End(ctx context.Context, sessionID string) (*domain.InterviewSession, error)
	// Cancel has the same precondition as End but sets CANCELLED.
	Cancel(ctx context.Context, sessionID string) (*domain.InterviewSession, error)
	GetByID(ctx context.Context, sessionID string) (*domain.InterviewSession, error)
	GetUserSessions(ctx context.Context, userID string) ([]domain.InterviewSession, error)
	List(ctx context.Context, page, size int) (*SessionList, error)
}
