package serve

import (
	"fmt"

	"budgetplanner/internal/app"
	"budgetplanner/internal/config"
	"budgetplanner/internal/logging"
	"budgetplanner/internal/server"
	"budgetplanner/internal/shutdown"
	"budgetplanner/internal/version"

	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the budget planner HTTP API",
		Long: `Run the budget planner HTTP API.

The server answers JSON on /, /api/projects, /api/projects/all and /api/health.
Prices are looked up live and memoized; when any lookup fails every template
is computed from fallback prices instead.`,
		Example: `  # Serve on the default port
  budgetplanner serve

  # Serve on another port for a different frontend origin
  budgetplanner serve --listen :9000 --allowed-origin http://localhost:3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, config.Config)
		},
	}

	cmd.Flags().String("listen", defaults.ListenAddr, "Address to listen on")
	cmd.Flags().String("allowed-origin", defaults.AllowedOrigin, "Origin allowed by the CORS policy")
	cmd.Flags().Duration("shutdown-timeout", defaults.ShutdownTimeout, "Time allowed for in-flight requests on shutdown")

	return cmd
}

func runServe(cmd *cobra.Command, cfg *config.GlobalConfig) error {
	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer a.Close()

	ctx, stop := shutdown.WithSignals(cmd.Context())
	defer stop()

	srv := server.New(a.Catalog, server.Options{
		ListenAddr:      cfg.ListenAddr,
		AllowedOrigin:   cfg.AllowedOrigin,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Version:         version.Version,
	})

	logging.Info("Starting budget planner", map[string]interface{}{
		"version": version.String(),
		"region":  a.Client.Region(),
	})
	return srv.Run(ctx)
}
