package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/interviewsim/interview-api/internal/core/domain"
	"github.com/interviewsim/interview-api/internal/core/ports"
)

// In-memory stand-ins for the Mongo repositories, shared by the service tests.

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Roles = append([]string(nil), u.Roles...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, page, size int) ([]domain.User, int64, error) {
	var users []domain.User
	for _, u := range r.users {
		users = append(users, *cloneUser(u))
	}
	return users, int64(len(r.users)), nil
}

func (r *stubUserRepo) UpdateEmail(_ context.Context, id, email string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Email = email
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubSessionRepo struct {
	sessions map[string]*domain.InterviewSession
	nextID   int
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[string]*domain.InterviewSession)}
}

func cloneSession(s *domain.InterviewSession) *domain.InterviewSession {
	clone := *s
	if s.EndTime != nil {
		end := *s.EndTime
		clone.EndTime = &end
	}
	return &clone
}

func (r *stubSessionRepo) Create(_ context.Context, s *domain.InterviewSession) (*domain.InterviewSession, error) {
	for _, existing := range r.sessions {
		if existing.UserID == s.UserID && existing.Status == domain.StatusInProgress {
			return nil, domain.ErrActiveSessionExists
		}
	}
	r.nextID++
	copy := cloneSession(s)
	copy.ID = fmt.Sprintf("session-%d", r.nextID)
	r.sessions[copy.ID] = cloneSession(copy)
	return copy, nil
}

func (r *stubSessionRepo) FindByID(_ context.Context, id string) (*domain.InterviewSession, error) {
	if s, ok := r.sessions[id]; ok {
		return cloneSession(s), nil
	}
	return nil, domain.ErrSessionNotFound
}

func (r *stubSessionRepo) FindByUserID(_ context.Context, userID string) ([]domain.InterviewSession, error) {
	var out []domain.InterviewSession
	for _, s := range r.sessions {
		if s.UserID == userID {
			out = append(out, *cloneSession(s))
		}
	}
	return out, nil
}

func (r *stubSessionRepo) List(_ context.Context, page, size int) ([]domain.InterviewSession, int64, error) {
	var out []domain.InterviewSession
	for _, s := range r.sessions {
		out = append(out, *cloneSession(s))
	}
	return out, int64(len(out)), nil
}

func (r *stubSessionRepo) Finish(_ context.Context, id string, status domain.SessionStatus, endTime time.Time) (*domain.InterviewSession, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if s.Status != domain.StatusInProgress {
		return nil, domain.ErrSessionNotInProgress
	}
	s.Status = status
	s.EndTime = &endTime
	return cloneSession(s), nil
}

type stubQuestionRepo struct {
	questions map[string]*domain.Question
	nextID    int
}

func newStubQuestionRepo() *stubQuestionRepo {
	return &stubQuestionRepo{questions: make(map[string]*domain.Question)}
}

func (r *stubQuestionRepo) Create(_ context.Context, q *domain.Question) (*domain.Question, error) {
	r.nextID++
	copy := *q
	copy.ID = fmt.Sprintf("question-%d", r.nextID)
	r.questions[copy.ID] = &copy
	clone := copy
	return &clone, nil
}

func (r *stubQuestionRepo) FindByID(_ context.Context, id string) (*domain.Question, error) {
	if q, ok := r.questions[id]; ok {
		clone := *q
		return &clone, nil
	}
	return nil, domain.ErrQuestionNotFound
}

func (r *stubQuestionRepo) matches(q *domain.Question, f ports.QuestionFilter) bool {
	if f.Category != "" && q.Category != f.Category {
		return false
	}
	if f.Difficulty != "" && q.Difficulty != f.Difficulty {
		return false
	}
	return true
}

func (r *stubQuestionRepo) Find(_ context.Context, f ports.QuestionFilter) ([]domain.Question, error) {
	var out []domain.Question
	for _, q := range r.questions {
		if r.matches(q, f) {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (r *stubQuestionRepo) Search(_ context.Context, keyword string) ([]domain.Question, error) {
	var out []domain.Question
	for _, q := range r.questions {
		if strings.Contains(strings.ToLower(q.Text), strings.ToLower(keyword)) {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (r *stubQuestionRepo) FindRandom(_ context.Context, f ports.QuestionFilter, limit int) ([]domain.Question, error) {
	var out []domain.Question
	for _, q := range r.questions {
		if !r.matches(q, f) {
			continue
		}
		out = append(out, *q)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *stubQuestionRepo) List(_ context.Context, page, size int) ([]domain.Question, int64, error) {
	var out []domain.Question
	for _, q := range r.questions {
		out = append(out, *q)
	}
	return out, int64(len(out)), nil
}

func (r *stubQuestionRepo) Update(_ context.Context, q *domain.Question) (*domain.Question, error) {
	if _, ok := r.questions[q.ID]; !ok {
		return nil, domain.ErrQuestionNotFound
	}
	copy := *q
	r.questions[q.ID] = &copy
	clone := copy
	return &clone, nil
}

func (r *stubQuestionRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.questions[id]; !ok {
		return domain.ErrQuestionNotFound
	}
	delete(r.questions, id)
	return nil
}

// stubQuestionCache records cache traffic so tests can assert on it.
type stubQuestionCache struct {
	entries     map[string]*domain.Question
	invalidated []string
}

func newStubQuestionCache() *stubQuestionCache {
	return &stubQuestionCache{entries: make(map[string]*domain.Question)}
}

func (c *stubQuestionCache) Get(_ context.Context, id string) (*domain.Question, error) {
	if q, ok := c.entries[id]; ok {
		clone := *q
		return &clone, nil
	}
	return nil, nil
}

func (c *stubQuestionCache) Set(_ context.Context, q *domain.Question) error {
	clone := *q
	c.entries[q.ID] = &clone
	return nil
}

func (c *stubQuestionCache) Invalidate(_ context.Context, id string) error {
	delete(c.entries, id)
	c.invalidated = append(c.invalidated, id)
	return nil
}
