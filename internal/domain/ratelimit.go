package domain

import (
	"context"
	"time"
)

// RateLimitDecision is the outcome of one admission check against a
// fixed-window counter.
type RateLimitDecision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RateLimiter guards the unauthenticated login endpoints.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (RateLimitDecision, error)
}
