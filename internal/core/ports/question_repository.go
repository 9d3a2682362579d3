package ports

import (
	"context"

	"github.com/interviewsim/interview-api/internal/core/domain"
)

// QuestionFilter narrows question lookups. Zero values mean "any".
type QuestionFilter struct {
	Category   domain.QuestionCategory
	Difficulty domain.QuestionDifficulty
}

// QuestionRepository defines the persistence interface for the question bank.
type QuestionRepository interface {
	Create(ctx context.Context, q *domain.Question) (*domain.Question, error)
	FindByID(ctx context.Context, id string) (*domain.Question, error)
	Find(ctx context.Context, filter QuestionFilter) ([]domain.Question, error)
	Search(ctx context.Context, keyword string) ([]domain.Question, error)
	// FindRandom returns up to limit questions matching the filter, selected
	// without any deterministic order. Repeated calls may return different
	// subsets.
	FindRandom(ctx context.Context, filter QuestionFilter, limit int) ([]domain.Question, error)
	List(ctx context.Context, page, size int) ([]domain.Question, int64, error)
	Update(ctx context.Context, q *domain.Question) (*domain.Question, error)
	Delete(ctx context.Context, id string) error
}
