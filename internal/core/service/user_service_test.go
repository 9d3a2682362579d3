package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/interviewsim/interview-api/internal/core/domain"
)

func newUserFixture(t *testing.T) (*UserService, *domain.User) {
	t.Helper()
	repo := newStubUserRepo()
	user, err := repo.Create(context.Background(), &domain.User{
		Username: "alice",
		Email:    "alice@example.com",
		Roles:    []string{domain.RoleUser},
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return NewUserService(repo, zerolog.Nop()), user
}

func TestUserService_GetByID(t *testing.T) {
	svc, user := newUserFixture(t)

	got, err := svc.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Username != "alice" {
		t.Fatalf("unexpected username: %s", got.Username)
	}

	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_GetByUsername(t *testing.T) {
	svc, _ := newUserFixture(t)

	got, err := svc.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUsername returned error: %v", err)
	}
	if got.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %s", got.Email)
	}

	if _, err := svc.GetByUsername(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_UpdateEmail(t *testing.T) {
	svc, user := newUserFixture(t)

	updated, err := svc.UpdateEmail(context.Background(), user.ID, "new@example.com")
	if err != nil {
		t.Fatalf("UpdateEmail returned error: %v", err)
	}
	if updated.Email != "new@example.com" {
		t.Fatalf("unexpected email: %s", updated.Email)
	}
	if updated.Username != "alice" {
		t.Fatalf("username should be unchanged, got %s", updated.Username)
	}

	if _, err := svc.UpdateEmail(context.Background(), "missing", "x@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	svc, user := newUserFixture(t)

	if err := svc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}

func TestUserService_List(t *testing.T) {
	svc, _ := newUserFixture(t)

	page, err := svc.List(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.Total != 1 || len(page.Items) != 1 {
		t.Fatalf("expected a single user, got total=%d items=%d", page.Total, len(page.Items))
	}
}
