package aws

import (
	"context"
	"math"
	"sync"
	"time"

	"budgetplanner/internal/config"
)

// RateLimiter is a token bucket guarding outbound Price List API calls
type RateLimiter struct {
	tokens   chan struct{}
	interval time.Duration
	stop     chan struct{}
	once     sync.Once
}

// NewRateLimiter creates a new rate limiter with the specified rate.
// If cfg is nil, it uses the DefaultRateLimitConfig.
func NewRateLimiter(cfg *config.RateLimitConfig) *RateLimiter {
	if cfg == nil {
		cfg = &config.DefaultRateLimitConfig
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = config.DefaultRateLimitConfig.RequestsPerSecond
	}
	if rps <= 0 {
		rps = 5
	}

	tokenCount := int(math.Ceil(rps))
	interval := time.Duration(float64(time.Second) / rps)

	rl := &RateLimiter{
		tokens:   make(chan struct{}, tokenCount),
		interval: interval,
		stop:     make(chan struct{}),
	}

	for i := 0; i < tokenCount; i++ {
		rl.tokens <- struct{}{}
	}

	go rl.replenish()

	return rl
}

// replenish continuously replenishes tokens at the specified rate
func (rl *RateLimiter) replenish() {
	ticker := time.NewTicker(rl.interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			select {
			case rl.tokens <- struct{}{}:
			default:
				// Token bucket is full
			}
		}
	}
}

// Wait blocks until a token is available or ctx is done
func (rl *RateLimiter) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-rl.tokens:
		return nil
	}
}

// Close stops token replenishment
func (rl *RateLimiter) Close() {
	rl.once.Do(func() { close(rl.stop) })
}
