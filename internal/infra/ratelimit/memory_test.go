package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestMemoryLimiter_WindowResets(t *testing.T) {
	current := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	limiter := NewMemoryLimiter(func() time.Time { return current })
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		decision, err := limiter.Allow(ctx, "ip:10.0.0.1", 3, time.Minute)
		if err != nil || !decision.Allowed {
			t.Fatalf("attempt %d should be allowed: %+v %v", i+1, decision, err)
		}
	}

	decision, err := limiter.Allow(ctx, "ip:10.0.0.1", 3, time.Minute)
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if decision.Allowed || decision.Remaining != 0 {
		t.Fatalf("fourth attempt should be limited, got %+v", decision)
	}

	current = current.Add(2 * time.Minute)
	decision, err = limiter.Allow(ctx, "ip:10.0.0.1", 3, time.Minute)
	if err != nil || !decision.Allowed {
		t.Fatalf("new window should be allowed, got %+v %v", decision, err)
	}
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewMemoryLimiter(nil)
	ctx := context.Background()

	if decision, _ := limiter.Allow(ctx, "ip:10.0.0.1", 1, time.Minute); !decision.Allowed {
		t.Fatalf("first key should be allowed")
	}
	if decision, _ := limiter.Allow(ctx, "ip:10.0.0.1", 1, time.Minute); decision.Allowed {
		t.Fatalf("first key should now be limited")
	}
	if decision, _ := limiter.Allow(ctx, "ip:10.0.0.2", 1, time.Minute); !decision.Allowed {
		t.Fatalf("second key should be unaffected")
	}
}

func TestMemoryLimiter_ZeroLimitDisables(t *testing.T) {
	limiter := NewMemoryLimiter(nil)
	for i := 0; i < 10; i++ {
		decision, err := limiter.Allow(context.Background(), "any", 0, time.Minute)
		if err != nil || !decision.Allowed {
			t.Fatalf("disabled limiter should always allow, got %+v %v", decision, err)
		}
	}
}
