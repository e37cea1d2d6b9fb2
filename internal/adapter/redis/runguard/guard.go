// Package runguard rejects overlapping evaluations of the same code slot using Redis locks.
package runguard

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/static/errs"
)

const lockKeyPrefix = "evaluation:lock:"

// releaseScript deletes the lock only while it still holds our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

var _ secondary.RunGuard = (*RunGuard)(nil)

// RunGuard implements secondary.RunGuard with SET NX locks
type RunGuard struct {
	redisClient *redis.Client
	logger      primary.Logger
}

// NewRunGuard creates a new Redis run guard
func NewRunGuard(redisClient *redis.Client, logger primary.Logger) *RunGuard {
	return &RunGuard{
		redisClient: redisClient,
		logger:      logger,
	}
}

// Acquire takes the lock for key or fails with errs.ErrRunInFlight
func (g *RunGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	lockKey := lockKeyPrefix + key
	token := uuid.NewString()

	ok, err := g.redisClient.SetNX(ctx, lockKey, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire run lock: %w", err)
	}
	if !ok {
		return nil, errs.ErrRunInFlight
	}

	release := func() {
		if err := releaseScript.Run(context.Background(), g.redisClient, []string{lockKey}, token).Err(); err != nil {
			g.logger.Error("Failed to release run lock", "key", lockKey, "error", err)
		}
	}
	return release, nil
}
