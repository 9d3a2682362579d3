package ports

import (
	"context"

	"github.com/interviewsim/interview-api/internal/core/domain"
)

// UserList is a single page of users plus paging totals.
type UserList struct {
	Items      []domain.User
	Total      int64
	Page       int
	Size       int
	TotalPages int
}

type UserService interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, page, size int) (*UserList, error)
	// UpdateEmail is the only mutation exposed through the profile API.
	UpdateEmail(ctx context.Context, id, email string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
