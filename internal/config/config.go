package config

import "time"

// GlobalConfig holds the global configuration for the application
type GlobalConfig struct {
	// Profile is the AWS profile used for Price List API credentials
	Profile string

	// Region is the AWS region whose prices are quoted
	Region string

	// LogFormat is the format for logging
	LogFormat string

	// LogLevel is the minimum level written by the logger
	LogLevel string

	// ListenAddr is the address the HTTP server binds to
	ListenAddr string

	// AllowedOrigin is the single origin allowed by the CORS policy
	AllowedOrigin string

	// ShutdownTimeout bounds graceful server shutdown
	ShutdownTimeout time.Duration

	// CacheSize is the capacity of the price lookup LRU
	CacheSize int

	// LookupTimeout bounds a single batch of price lookups, zero disables it
	LookupTimeout time.Duration
}

// Config is the global configuration instance
var Config = Default()

// Default returns the configuration used when nothing else is set
func Default() *GlobalConfig {
	return &GlobalConfig{
		Profile:         "default",
		Region:          "us-east-1",
		LogFormat:       "text",
		LogLevel:        "INFO",
		ListenAddr:      ":8000",
		AllowedOrigin:   "http://localhost:5173",
		ShutdownTimeout: 10 * time.Second,
		CacheSize:       100,
	}
}
