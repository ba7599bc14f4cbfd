package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/karishma-dev/link-sharing-app-backend/internal/observability"
	"github.com/karishma-dev/link-sharing-app-backend/pkg/httpx"
)

// Limiter decides whether a request from the given key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// MemoryLimiter is a fixed-window request counter held in process memory.
// Each key owns a list of request timestamps; entries older than the
// window are swept on every check. Counters are not shared across
// processes, so this limiter is only correct for single-instance
// deployments — use RedisLimiter otherwise.
type MemoryLimiter struct {
	mu          sync.Mutex
	requests    map[string][]time.Time
	maxRequests int
	window      time.Duration
	now         func() time.Time
}

// NewMemoryLimiter creates an in-memory limiter allowing maxRequests per
// window per key.
func NewMemoryLimiter(maxRequests int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		requests:    make(map[string][]time.Time),
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
}

// Allow records the request and reports whether it fits in the window.
func (l *MemoryLimiter) Allow(ctx context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	kept := l.requests[key][:0]
	for _, t := range l.requests[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= l.maxRequests {
		l.requests[key] = kept
		return false, nil
	}

	l.requests[key] = append(kept, now)
	return true, nil
}

// RedisLimiter is a fixed-window counter backed by Redis, shared across
// instances. Keys carry the window start timestamp, so INCR plus a TTL is
// all that is needed.
type RedisLimiter struct {
	client      redis.Cmdable
	keyPrefix   string
	maxRequests int
	window      time.Duration
}

// NewRedisLimiter creates a Redis-backed limiter allowing maxRequests per
// window per key.
func NewRedisLimiter(client redis.Cmdable, maxRequests int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:      client,
		keyPrefix:   "ratelimit:",
		maxRequests: maxRequests,
		window:      window,
	}
}

// Allow increments the current window's counter and checks the limit.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowID := time.Now().Truncate(l.window).Unix()
	redisKey := fmt.Sprintf("%s%s:%d", l.keyPrefix, key, windowID)

	pipe := l.client.Pipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit check failed: %w", err)
	}

	return incr.Val() <= int64(l.maxRequests), nil
}

// RateLimit throttles requests per client address. Limiter failures
// (e.g. Redis unavailable) fail open with a log line rather than taking
// the endpoint down.
func RateLimit(limiter Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Printf("ratelimit: check failed for %s: %v", c.ClientIP(), err)
			c.Next()
			return
		}
		if !allowed {
			observability.RateLimitRejectedTotal.Inc()
			httpx.RespondError(c, http.StatusTooManyRequests, "rate limit exceeded, try again later")
			return
		}
		c.Next()
	}
}
