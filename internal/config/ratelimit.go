package config

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// RequestsPerSecond is the number of Price List API calls allowed per second
	RequestsPerSecond float64
}

var (
	// DefaultRateLimitConfig provides default values for rate limiting
	DefaultRateLimitConfig = RateLimitConfig{
		RequestsPerSecond: 5.0,
	}
)
