package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Result describes one rate limit decision
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter is a fixed-window counter kept in Redis. Each key lives for one
// window and is evicted by Redis when it expires.
type Limiter struct {
	client redis.Cmdable
	prefix string
	limit  int
	window time.Duration
}

// NewLimiter creates a limiter allowing limit hits per window and key
func NewLimiter(client redis.Cmdable, prefix string, limit int, window time.Duration) *Limiter {
	return &Limiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

// Allow counts one hit for key and reports whether it is within the limit
func (l *Limiter) Allow(ctx context.Context, key string) (*Result, error) {
	redisKey := l.prefix + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return nil, fmt.Errorf("rate limit incr: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return nil, fmt.Errorf("rate limit expire: %w", err)
		}
	}

	ttl, err := l.client.TTL(ctx, redisKey).Result()
	if err != nil {
		return nil, fmt.Errorf("rate limit ttl: %w", err)
	}
	if ttl < 0 {
		// counter lost its expiry, start a new window
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return nil, fmt.Errorf("rate limit expire: %w", err)
		}
		ttl = l.window
	}

	remaining := l.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	result := &Result{
		Allowed:   int(count) <= l.limit,
		Limit:     l.limit,
		Remaining: remaining,
	}
	if !result.Allowed {
		result.RetryAfter = ttl
	}
	return result, nil
}

// NewClient parses a redis:// URL and checks the connection
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
