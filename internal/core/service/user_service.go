package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/interviewsim/interview-api/internal/core/domain"
	"github.com/interviewsim/interview-api/internal/core/ports"
)

// UserService implements profile reads, the email-only update, and delete.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.FindByUsername(ctx, username)
}

func (s *UserService) List(ctx context.Context, page, size int) (*ports.UserList, error) {
	page, size = normalizePaging(page, size)
	items, total, err := s.users.List(ctx, page, size)
	if err != nil {
		return nil, err
	}
	return &ports.UserList{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages(total, size),
	}, nil
}

func (s *UserService) UpdateEmail(ctx context.Context, id, email string) (*domain.User, error) {
	updated, err := s.users.UpdateEmail(ctx, id, email)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Msg("user email updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
