package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/interviewsim/interview-api/internal/core/domain"
)

const questionCacheTTL = time.Hour

// QuestionCache is a read cache for question-by-id lookups backed by Redis.
// Key format: question:<id>. Values are JSON-encoded questions.
type QuestionCache struct {
	client *redis.Client
}

// NewQuestionCache creates a QuestionCache wrapping the given Redis client.
func NewQuestionCache(client *redis.Client) *QuestionCache {
	return &QuestionCache{client: client}
}

// Get returns the cached question or (nil, nil) on a miss.
func (c *QuestionCache) Get(ctx context.Context, id string) (*domain.Question, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("question cache get: %w", err)
	}

	var q domain.Question
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, fmt.Errorf("question cache decode: %w", err)
	}
	return &q, nil
}

// Set stores the question for questionCacheTTL.
func (c *QuestionCache) Set(ctx context.Context, q *domain.Question) error {
	raw, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("question cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(q.ID), raw, questionCacheTTL).Err()
}

// Invalidate removes the cached entry after an update or delete.
func (c *QuestionCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *QuestionCache) key(id string) string {
	return "question:" + id
}
