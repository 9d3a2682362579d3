package ports

import (
	"context"

	"github.com/interviewsim/interview-api/internal/core/domain"
)

// CreateQuestionInput carries the fields required to add a question.
type CreateQuestionInput struct {
	Text       string
	Category   domain.QuestionCategory
	Difficulty domain.QuestionDifficulty
}

// UpdateQuestionInput carries a partial update. Empty fields leave the stored
// value untouched; a field cannot be cleared through this path.
type UpdateQuestionInput struct {
	Text       string
	Category   domain.QuestionCategory
	Difficulty domain.QuestionDifficulty
}

// QuestionList is a single page of questions plus paging totals.
type QuestionList struct {
	Items      []domain.Question
	Total      int64
	Page       int
	Size       int
	TotalPages int
}

type QuestionService interface {
	Create(ctx context.Context, in CreateQuestionInput) (*domain.Question, error)
	GetByID(ctx context.Context, id string) (*domain.Question, error)
	GetByCategory(ctx context.Context, category domain.QuestionCategory) ([]domain.Question, error)
	GetByDifficulty(ctx context.Context, difficulty domain.QuestionDifficulty) ([]domain.Question, error)
	Search(ctx context.Context, keyword string) ([]domain.Question, error)
	GetRandom(ctx context.Context, filter QuestionFilter, limit int) ([]domain.Question, error)
	List(ctx context.Context, page, size int) (*QuestionList, error)
	Update(ctx context.Context, id string, in UpdateQuestionInput) (*domain.Question, error)
	Delete(ctx context.Context, id string) error
}
