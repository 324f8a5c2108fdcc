package cmd

import (
	initCmd "budgetplanner/cmd/init"
	"budgetplanner/cmd/list"
	"budgetplanner/cmd/prices"
	"budgetplanner/cmd/projects"
	"budgetplanner/cmd/serve"
	"budgetplanner/cmd/version"
	"budgetplanner/internal/config"
	"budgetplanner/internal/logging"

	"github.com/spf13/cobra"
)

// skipConfig lists commands that run without loading configuration
var skipConfig = map[string]bool{
	"version":    true,
	"help":       true,
	"completion": true,
}

// NewRootCmd builds the full command tree
func NewRootCmd() *cobra.Command {
	var configFile string

	defaults := config.Default()

	rootCmd := &cobra.Command{
		Use:   "budgetplanner",
		Short: "Budget Planner - AWS starter project cost estimator",
		Long: `Budget Planner estimates the monthly AWS cost of common starter projects
using live on-demand prices from the AWS Price List API, and shows which of
them fit a given budget. It can run as an HTTP API or answer from the command line.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipConfig[cmd.Name()] {
				return nil
			}

			// Debug output is only wanted once the level is known, so
			// resolve the level from flags first
			level, _ := cmd.Flags().GetString("log-level")
			shouldLog := logging.ParseLevel(level) == logging.DEBUG

			if err := config.InitConfig(shouldLog); err != nil {
				return err
			}
			if configFile != "" {
				if err := config.SetConfigFile(configFile); err != nil {
					return err
				}
			}
			if err := config.BindFlags(cmd); err != nil {
				return err
			}

			cfg := config.Load()
			logging.Configure(logging.LogConfig{
				Level:  logging.ParseLevel(cfg.LogLevel),
				Format: logging.ParseFormat(cfg.LogFormat),
			})
			config.LogConfigurationSources(logging.ParseLevel(cfg.LogLevel) == logging.DEBUG, cmd)

			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "Path to config file")
	flags.StringP("profile", "p", defaults.Profile, "AWS profile to use (supports SSO profiles)")
	flags.StringP("region", "r", defaults.Region, "AWS region whose prices are quoted")
	flags.String("log-format", defaults.LogFormat, "Log output format (text or json)")
	flags.String("log-level", defaults.LogLevel, "Set logging level (DEBUG, INFO, WARN, ERROR)")
	flags.Int("cache-size", defaults.CacheSize, "Number of price lookups kept in memory")
	flags.Float64("requests-per-second", config.DefaultRateLimitConfig.RequestsPerSecond, "Maximum Price List API calls per second")
	flags.Duration("lookup-timeout", defaults.LookupTimeout, "Upper bound for one batch of price lookups (0 disables)")

	rootCmd.AddCommand(serve.NewServeCmd())
	rootCmd.AddCommand(projects.NewProjectsCmd())
	rootCmd.AddCommand(prices.NewPricesCmd())
	rootCmd.AddCommand(list.NewListCmd())
	rootCmd.AddCommand(initCmd.NewInitCmd())
	rootCmd.AddCommand(version.NewVersionCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
