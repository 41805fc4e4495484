package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"gitlab.com/codeclass-2026.net/internal/core/ports/primary"
	"gitlab.com/codeclass-2026.net/internal/core/ports/secondary"
)

const submitKeyPrefix = "submit:rate:"

var _ secondary.SubmissionLimiter = (*SubmissionLimiter)(nil)

// SubmissionLimiter is a fixed-window counter: every sandbox run costs real
// CPU, so one user gets at most `limit` grading requests per window.
type SubmissionLimiter struct {
	redisClient *redis.Client
	limit       int
	window      time.Duration
	logger      primary.Logger
}

func NewSubmissionLimiter(redisClient *redis.Client, limit int, logger primary.Logger) *SubmissionLimiter {
	return &SubmissionLimiter{
		redisClient: redisClient,
		limit:       limit,
		window:      time.Minute,
		logger:      logger,
	}
}

func (l *SubmissionLimiter) Allow(ctx context.Context, userID string) (bool, error) {
	key := submitKeyPrefix + userID
	count, err := l.redisClient.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("increment submission counter: %w", err)
	}
	if count == 1 {
		if err := l.redisClient.Expire(ctx, key, l.window).Err(); err != nil {
			l.logger.Warn("Failed to set counter expiry", "key", key, "error", err)
		}
	}
	return count <= int64(l.limit), nil
}
