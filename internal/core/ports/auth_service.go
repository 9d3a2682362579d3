package ports

import (
	"context"

	"github.com/interviewsim/interview-api/internal/core/domain"
)

// AuthService implements account registration and credential login.
// Both return a signed bearer token alongside the stored user.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
