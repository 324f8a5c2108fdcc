package aws

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetplanner/internal/config"
)

func TestRateLimiterBurst(t *testing.T) {
	rl := NewRateLimiter(&config.RateLimitConfig{RequestsPerSecond: 3})
	defer rl.Close()

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, rl.Wait(ctx))
	}
}

func TestRateLimiterHonoursContext(t *testing.T) {
	rl := NewRateLimiter(&config.RateLimitConfig{RequestsPerSecond: 1})
	defer rl.Close()

	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, rl.Wait(ctx), context.DeadlineExceeded)
}

func TestRateLimiterDefaultsOnInvalidRate(t *testing.T) {
	rl := NewRateLimiter(&config.RateLimitConfig{RequestsPerSecond: 0})
	defer rl.Close()

	assert.Greater(t, rl.interval, time.Duration(0))
	assert.NoError(t, rl.Wait(context.Background()))
}

func TestRateLimiterCloseIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(nil)
	rl.Close()
	assert.NotPanics(t, rl.Close)
}
