package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/interviewsim/interview-api/internal/core/domain"
)

func newSessionFixture(t *testing.T) (*SessionService, *stubUserRepo, *domain.User) {
	t.Helper()
	users := newStubUserRepo()
	user, err := users.Create(context.Background(), &domain.User{
		Username: "alice",
		Email:    "alice@example.com",
		Roles:    []string{domain.RoleUser},
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	svc := NewSessionService(newStubSessionRepo(), users, zerolog.Nop())
	return svc, users, user
}

func TestSessionService_Start(t *testing.T) {
	svc, _, user := newSessionFixture(t)

	session, err := svc.Start(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if session.Status != domain.StatusInProgress {
		t.Fatalf("expected IN_PROGRESS, got %s", session.Status)
	}
	if session.UserID != user.ID || session.Username != "alice" {
		t.Fatalf("unexpected ownership: %+v", session)
	}
	if session.StartTime.IsZero() {
		t.Fatalf("expected start time to be set")
	}
	if session.EndTime != nil {
		t.Fatalf("expected no end time on a fresh session")
	}
}

func TestSessionService_Start_AlreadyActive(t *testing.T) {
	svc, _, user := newSessionFixture(t)

	if _, err := svc.Start(context.Background(), user.ID); err != nil {
		t.Fatalf("first start failed: %v", err)
	}
	if _, err := svc.Start(context.Background(), user.ID); !errors.Is(err, domain.ErrActiveSessionExists) {
		t.Fatalf("expected ErrActiveSessionExists, got %v", err)
	}
}

func TestSessionService_Start_AfterEnd(t *testing.T) {
	svc, _, user := newSessionFixture(t)

	first, _ := svc.Start(context.Background(), user.ID)
	if _, err := svc.End(context.Background(), first.ID); err != nil {
		t.Fatalf("end failed: %v", err)
	}
	if _, err := svc.Start(context.Background(), user.ID); err != nil {
		t.Fatalf("expected start to succeed after ending, got %v", err)
	}
}

func TestSessionService_Start_UnknownUser(t *testing.T) {
	svc, _, _ := newSessionFixture(t)

	if _, err := svc.Start(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSessionService_End(t *testing.T) {
	svc, _, user := newSessionFixture(t)

	session, _ := svc.Start(context.Background(), user.ID)
	ended, err := svc.End(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("End returned error: %v", err)
	}
	if ended.Status != domain.StatusCompleted {
		t.Fatalf("expected COMPLETED, got %s", ended.Status)
	}
	if ended.EndTime == nil {
		t.Fatalf("expected end time to be set")
	}
	if ended.DurationMinutes(time.Now().UTC()) < 0 {
		t.Fatalf("expected non-negative duration")
	}
}

func TestSessionService_End_Twice(t *testing.T) {
	svc, _, user := newSessionFixture(t)

	session, _ := svc.Start(context.Background(), user.ID)
	if _, err := svc.End(context.Background(), session.ID); err != nil {
		t.Fatalf("first end failed: %v", err)
	}
	if _, err := svc.End(context.Background(), session.ID); !errors.Is(err, domain.ErrSessionNotInProgress) {
		t.Fatalf("expected ErrSessionNotInProgress, got %v", err)
	}
}

func TestSessionService_Cancel(t *testing.T) {
	svc, _, user := newSessionFixture(t)

	session, _ := svc.Start(context.Background(), user.ID)
	cancelled, err := svc.Cancel(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if cancelled.Status != domain.StatusCancelled {
		t.Fatalf("expected CANCELLED, got %s", cancelled.Status)
	}
	if cancelled.EndTime == nil {
		t.Fatalf("expected end time to be set")
	}

	// A cancelled session is terminal for End as well.
	if _, err := svc.End(context.Background(), session.ID); !errors.Is(err, domain.ErrSessionNotInProgress) {
		t.Fatalf("expected ErrSessionNotInProgress, got %v", err)
	}
}

func TestSessionService_End_UnknownSession(t *testing.T) {
	svc, _, _ := newSessionFixture(t)

	if _, err := svc.End(context.Background(), "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionService_GetUserSessions(t *testing.T) {
	svc, users, user := newSessionFixture(t)

	first, _ := svc.Start(context.Background(), user.ID)
	_, _ = svc.End(context.Background(), first.ID)
	_, _ = svc.Start(context.Background(), user.ID)

	sessions, err := svc.GetUserSessions(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("GetUserSessions returned error: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}

	other, _ := users.Create(context.Background(), &domain.User{Username: "bob", Email: "bob@example.com"})
	sessions, err = svc.GetUserSessions(context.Background(), other.ID)
	if err != nil {
		t.Fatalf("GetUserSessions returned error: %v", err)
	}
	if len(sessions) != 0 {
		t.Fatalf("expected no sessions for other user, got %d", len(sessions))
	}

	if _, err := svc.GetUserSessions(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
