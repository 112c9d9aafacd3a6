package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"swipemall/pkg/logger"
)

// RateLimiter is a token bucket keyed by caller identity (user id when
// authenticated, client IP otherwise). Buckets refill continuously over the
// window; an exhausted caller is rejected with 429 and a retry hint.
type RateLimiter struct {
	buckets map[string]*bucket
	mu      sync.Mutex
	rate    int
	window  time.Duration
}

type bucket struct {
	tokens     float64
	lastRefill time.Time
}

func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		rate:    rate,
		window:  window,
	}
	go rl.evictStale()
	return rl
}

func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.RealIP()
		if uid, ok := c.Get("uid").(string); ok && uid != "" {
			key = uid
		}

		if allowed, retryAfter := rl.take(key); !allowed {
			logger.Warn("Rate limit hit for %s on %s", key, c.Path())
			c.Response().Header().Set("Retry-After", retryAfter.Round(time.Second).String())
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests")
		}

		return next(c)
	}
}

func (rl *RateLimiter) take(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: float64(rl.rate), lastRefill: now}
		rl.buckets[key] = b
	}

	perToken := rl.window / time.Duration(rl.rate)
	b.tokens += float64(now.Sub(b.lastRefill)) / float64(perToken)
	if b.tokens > float64(rl.rate) {
		b.tokens = float64(rl.rate)
	}
	b.lastRefill = now

	if b.tokens < 1 {
		wait := time.Duration((1 - b.tokens) * float64(perToken))
		return false, wait
	}

	b.tokens--
	return true, 0
}

// Shared limiters. Credential endpoints get a tight budget against brute
// force; swipes get a generous one sized for fast flick sessions.
var (
	authLimiter  = NewRateLimiter(5, time.Minute)
	swipeLimiter = NewRateLimiter(120, time.Minute)
)

func AuthRateLimit() echo.MiddlewareFunc {
	return authLimiter.Limit
}

func SwipeRateLimit() echo.MiddlewareFunc {
	return swipeLimiter.Limit
}

func (rl *RateLimiter) evictStale() {
	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		cutoff := time.Now().Add(-2 * time.Hour)
		for key, b := range rl.buckets {
			if b.lastRefill.Before(cutoff) {
				delete(rl.buckets, key)
			}
		}
		rl.mu.Unlock()
	}
}
