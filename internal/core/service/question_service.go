package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/interviewsim/interview-api/internal/api/metrics"
	"github.com/interviewsim/interview-api/internal/core/domain"
	"github.com/interviewsim/interview-api/internal/core/ports"
)

const defaultRandomLimit = 5

// QuestionCache abstracts the read cache (Redis). A miss is not an error;
// cache failures degrade to the repository.
type QuestionCache interface {
	Get(ctx context.Context, id string) (*domain.Question, error)
	Set(ctx context.Context, q *domain.Question) error
	Invalidate(ctx context.Context, id string) error
}

// QuestionService implements CRUD plus filtered and random retrieval over
// the question bank.
type QuestionService struct {
	repo  ports.QuestionRepository
	cache QuestionCache
	log   zerolog.Logger
}

func NewQuestionService(repo ports.QuestionRepository, cache QuestionCache, log zerolog.Logger) *QuestionService {
	return &QuestionService{repo: repo, cache: cache, log: log}
}

func (s *QuestionService) Create(ctx context.Context, in ports.CreateQuestionInput) (*domain.Question, error) {
	now := time.Now().UTC()
	q := &domain.Question{
		Text:       in.Text,
		Category:   in.Category,
		Difficulty: in.Difficulty,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return s.repo.Create(ctx, q)
}

func (s *QuestionService) GetByID(ctx context.Context, id string) (*domain.Question, error) {
	if s.cache != nil {
		if q, err := s.cache.Get(ctx, id); err != nil {
			s.log.Warn().Err(err).Str("question_id", id).Msg("question cache read failed")
		} else if q != nil {
			metrics.QuestionCacheTotal.WithLabelValues("hit").Inc()
			return q, nil
		} else {
			metrics.QuestionCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, q); err != nil {
			s.log.Warn().Err(err).Str("question_id", id).Msg("question cache write failed")
		}
	}
	return q, nil
}

func (s *QuestionService) GetByCategory(ctx context.Context, category domain.QuestionCategory) ([]domain.Question, error) {
	return s.repo.Find(ctx, ports.QuestionFilter{Category: category})
}

func (s *QuestionService) GetByDifficulty(ctx context.Context, difficulty domain.QuestionDifficulty) ([]domain.Question, error) {
	return s.repo.Find(ctx, ports.QuestionFilter{Difficulty: difficulty})
}

func (s *QuestionService) Search(ctx context.Context, keyword string) ([]domain.Question, error) {
	return s.repo.Search(ctx, keyword)
}

// GetRandom returns up to limit questions matching the filter. Fewer matching
// rows than limit returns all of them; selection order is unspecified.
func (s *QuestionService) GetRandom(ctx context.Context, filter ports.QuestionFilter, limit int) ([]domain.Question, error) {
	if limit <= 0 {
		limit = defaultRandomLimit
	}

	questions, err := s.repo.FindRandom(ctx, filter, limit)
	if err != nil {
		return nil, err
	}

	metrics.RandomQuestionsServedTotal.Add(float64(len(questions)))
	return questions, nil
}

func (s *QuestionService) List(ctx context.Context, page, size int) (*ports.QuestionList, error) {
	page, size = normalizePaging(page, size)
	items, total, err := s.repo.List(ctx, page, size)
	if err != nil {
		return nil, err
	}
	return &ports.QuestionList{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages(total, size),
	}, nil
}

// Update applies a partial update: empty input fields keep the stored value.
func (s *QuestionService) Update(ctx context.Context, id string, in ports.UpdateQuestionInput) (*domain.Question, error) {
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Text != "" {
		q.Text = in.Text
	}
	if in.Category != "" {
		q.Category = in.Category
	}
	if in.Difficulty != "" {
		q.Difficulty = in.Difficulty
	}
	q.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, q)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	return updated, nil
}

func (s *QuestionService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *QuestionService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("question_id", id).Msg("question cache invalidation failed")
	}
}
