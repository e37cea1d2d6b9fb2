// Package problemcache keeps loaded problems in Redis in front of the problem store.
package problemcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
)

const problemKeyPrefix = "problem:"

var _ secondary.ProblemPort = (*ProblemCache)(nil)

// ProblemCache is a read-through cache over another ProblemPort.
// Redis failures are logged and the store is used directly.
type ProblemCache struct {
	redisClient *redis.Client
	next        secondary.ProblemPort
	ttl         time.Duration
	logger      primary.Logger
}

// NewProblemCache wraps next with a Redis cache whose entries expire after ttl
func NewProblemCache(redisClient *redis.Client, next secondary.ProblemPort, ttl time.Duration, logger primary.Logger) *ProblemCache {
	return &ProblemCache{
		redisClient: redisClient,
		next:        next,
		ttl:         ttl,
		logger:      logger,
	}
}

func problemKey(problemID uuid.UUID) string {
	return fmt.Sprintf("%s%s", problemKeyPrefix, problemID)
}

// LoadProblem returns the cached problem or loads and caches it
func (c *ProblemCache) LoadProblem(ctx context.Context, problemID uuid.UUID) (*domain.Problem, error) {
	cached, err := c.get(ctx, problemID)
	if err != nil {
		c.logger.Warn("Problem cache read failed", "problemId", problemID, "error", err)
	}
	if cached != nil {
		return cached, nil
	}

	problem, err := c.next.LoadProblem(ctx, problemID)
	if err != nil {
		return nil, err
	}

	if err := c.set(ctx, problem); err != nil {
		c.logger.Warn("Problem cache write failed", "problemId", problemID, "error", err)
	}

	return problem, nil
}

func (c *ProblemCache) get(ctx context.Context, problemID uuid.UUID) (*domain.Problem, error) {
	problemJSON, err := c.redisClient.Get(ctx, problemKey(problemID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached problem: %w", err)
	}

	var problem domain.Problem
	if err := json.Unmarshal(problemJSON, &problem); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached problem: %w", err)
	}

	return &problem, nil
}

func (c *ProblemCache) set(ctx context.Context, problem *domain.Problem) error {
	problemJSON, err := json.Marshal(problem)
	if err != nil {
		return fmt.Errorf("failed to marshal problem: %w", err)
	}

	if err := c.redisClient.Set(ctx, problemKey(problem.ID), problemJSON, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache problem: %w", err)
	}

	return nil
}
