package ports

import (
	"context"

	"github.com/interviewsim/interview-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, page, size int) ([]domain.User, int64, error)
	UpdateEmail(ctx context.Context, id, email string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
