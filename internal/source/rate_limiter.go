package source

import (
	"context"
	"sync"
	"time"
)

const (
	defaultRateLimit = 5000
	lowWaterMark     = 10
	minCallDelay     = 100 * time.Millisecond
)

// RateLimiter paces GitHub API calls. It enforces a minimum delay between
// requests and blocks until the limit window resets once the remaining
// budget runs low.
type RateLimiter struct {
	mu        sync.Mutex
	remaining int
	resetTime time.Time
	lastCall  time.Time
}

// NewRateLimiter creates a rate limiter primed with GitHub's default
// hourly budget
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		remaining: defaultRateLimit,
		resetTime: time.Now().Add(time.Hour),
	}
}

// Wait blocks until it is safe to make another API call
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.remaining <= lowWaterMark {
		waitDuration := time.Until(r.resetTime)
		if waitDuration > 0 {
			r.mu.Unlock()
			select {
			case <-ctx.Done():
				r.mu.Lock()
				return ctx.Err()
			case <-time.After(waitDuration):
				r.mu.Lock()
			}
		}
		r.remaining = defaultRateLimit
		r.resetTime = time.Now().Add(time.Hour)
	}

	elapsed := time.Since(r.lastCall)
	if elapsed < minCallDelay {
		r.mu.Unlock()
		select {
		case <-ctx.Done():
			r.mu.Lock()
			return ctx.Err()
		case <-time.After(minCallDelay - elapsed):
			r.mu.Lock()
		}
	}

	r.lastCall = time.Now()
	return nil
}

// Update records the budget reported by an API response
func (r *RateLimiter) Update(remaining int, resetTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.remaining = remaining
	r.resetTime = resetTime
}
