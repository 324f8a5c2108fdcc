package config

import (
	"fmt"
	"os"
	"strings"

	"budgetplanner/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override
const EnvPrefix = "BUDGETPLANNER"

// DefaultConfigContent is written by `init config`
const DefaultConfigContent = `# Budget Planner Configuration File

# AWS Configuration
aws:
  profile: default  # AWS profile used for Price List API credentials
  region: us-east-1  # Region whose prices are quoted

# Application Configuration
app:
  log_format: text  # Log output format (text or json)
  log_level: INFO  # Set logging level (DEBUG, INFO, WARN, ERROR)

# HTTP Server Configuration
server:
  listen_addr: ":8000"
  allowed_origin: http://localhost:5173  # Single CORS origin (Vite dev server)
  shutdown_timeout: 10s

# Price Lookup Configuration
pricing:
  cache_size: 100  # Entries kept in the lookup LRU
  requests_per_second: 5  # Price List API call rate
  timeout: 0s  # Upper bound for one batch of lookups (0 disables)
`

// flagNames maps config keys to flag names
var flagNames = map[string]string{
	"aws.profile":                 "profile",
	"aws.region":                  "region",
	"app.log_format":              "log-format",
	"app.log_level":               "log-level",
	"server.listen_addr":          "listen",
	"server.allowed_origin":       "allowed-origin",
	"server.shutdown_timeout":     "shutdown-timeout",
	"pricing.cache_size":          "cache-size",
	"pricing.requests_per_second": "requests-per-second",
	"pricing.timeout":             "lookup-timeout",
}

// parameterSource tracks where each parameter value came from
type parameterSource struct {
	Key    string
	Value  interface{}
	Source string
}

// getParameterSource determines where a parameter value came from (config file, env var, flag, or default)
func getParameterSource(key string, cmd *cobra.Command) parameterSource {
	value := viper.Get(key)
	envKey := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))

	flagName := flagNames[key]
	if flagName == "" {
		flagName = strings.ReplaceAll(key, ".", "-")
	}

	if cmd != nil {
		if f := cmd.Flags().Lookup(flagName); f != nil && f.Changed {
			return parameterSource{key, value, "command line flag"}
		}

		// Walk up the command chain checking persistent flags
		for current := cmd; current != nil; current = current.Parent() {
			if f := current.PersistentFlags().Lookup(flagName); f != nil && f.Changed {
				return parameterSource{key, value, "command line flag"}
			}
		}
	}

	if _, exists := os.LookupEnv(envKey); exists {
		return parameterSource{key, value, "environment variable"}
	}

	if viper.GetViper().InConfig(key) {
		return parameterSource{key, value, "config file"}
	}

	return parameterSource{key, value, "default value"}
}

// LogConfigurationSources logs the source of each configuration parameter
func LogConfigurationSources(shouldLog bool, cmd *cobra.Command) {
	if !shouldLog {
		return
	}

	logging.Debug("Configuration parameter sources:", nil)
	for _, key := range ConfigKeys() {
		source := getParameterSource(key, cmd)
		logging.Debug(fmt.Sprintf("  %s = %v (from %s)", source.Key, source.Value, source.Source), nil)
	}
}

// ConfigKeys returns every recognised configuration key
func ConfigKeys() []string {
	return []string{
		"aws.profile",
		"aws.region",
		"app.log_format",
		"app.log_level",
		"server.listen_addr",
		"server.allowed_origin",
		"server.shutdown_timeout",
		"pricing.cache_size",
		"pricing.requests_per_second",
		"pricing.timeout",
	}
}

// InitConfig initializes the Viper configuration
func InitConfig(shouldLog bool) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	defaults := Default()
	viper.SetDefault("aws.profile", defaults.Profile)
	viper.SetDefault("aws.region", defaults.Region)
	viper.SetDefault("app.log_format", defaults.LogFormat)
	viper.SetDefault("app.log_level", defaults.LogLevel)
	viper.SetDefault("server.listen_addr", defaults.ListenAddr)
	viper.SetDefault("server.allowed_origin", defaults.AllowedOrigin)
	viper.SetDefault("server.shutdown_timeout", defaults.ShutdownTimeout)
	viper.SetDefault("pricing.cache_size", defaults.CacheSize)
	viper.SetDefault("pricing.requests_per_second", DefaultRateLimitConfig.RequestsPerSecond)
	viper.SetDefault("pricing.timeout", defaults.LookupTimeout)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		if shouldLog {
			logging.Debug("No config file found, using defaults and environment variables", nil)
		}
	} else if shouldLog {
		logging.Debug("Loaded config file", map[string]interface{}{
			"path": viper.ConfigFileUsed(),
		})
	}

	return nil
}

// BindFlags binds the persistent flags of cmd to their config keys
func BindFlags(cmd *cobra.Command) error {
	for key, name := range flagNames {
		f := cmd.PersistentFlags().Lookup(name)
		if f == nil {
			f = cmd.Flags().Lookup(name)
		}
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// SetConfigFile sets a custom config file path and reloads the configuration
func SetConfigFile(configFile string) error {
	viper.SetConfigFile(configFile)

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// Load copies the resolved viper values into Config
func Load() *GlobalConfig {
	Config = &GlobalConfig{
		Profile:         viper.GetString("aws.profile"),
		Region:          viper.GetString("aws.region"),
		LogFormat:       viper.GetString("app.log_format"),
		LogLevel:        viper.GetString("app.log_level"),
		ListenAddr:      viper.GetString("server.listen_addr"),
		AllowedOrigin:   viper.GetString("server.allowed_origin"),
		ShutdownTimeout: viper.GetDuration("server.shutdown_timeout"),
		CacheSize:       viper.GetInt("pricing.cache_size"),
		LookupTimeout:   viper.GetDuration("pricing.timeout"),
	}
	DefaultRateLimitConfig.RequestsPerSecond = viper.GetFloat64("pricing.requests_per_second")
	return Config
}
