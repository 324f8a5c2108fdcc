package app

import (
	"fmt"

	internalaws "budgetplanner/internal/aws"
	"budgetplanner/internal/aws/pricing"
	"budgetplanner/internal/config"
	"budgetplanner/internal/logging"
	"budgetplanner/internal/projects"
)

// App owns the pricing client and the catalog built on top of it
type App struct {
	Client  *pricing.Client
	Catalog *projects.Catalog
}

// New wires a pricing client and catalog from cfg. Callers must Close the App.
func New(cfg *config.GlobalConfig) (*App, error) {
	sess, err := internalaws.NewPricingSession(cfg.Profile, cfg.LookupTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create pricing session: %w", err)
	}

	client, err := pricing.NewClientFromSession(sess, pricing.Options{
		Region:    cfg.Region,
		CacheSize: cfg.CacheSize,
		RateLimit: &config.DefaultRateLimitConfig,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pricing client: %w", err)
	}

	logging.Info("Pricing client initialized", map[string]interface{}{
		"profile":    cfg.Profile,
		"region":     client.Region(),
		"cache_size": cfg.CacheSize,
	})

	return &App{
		Client:  client,
		Catalog: projects.NewCatalog(client, cfg.LookupTimeout),
	}, nil
}

// Close releases the pricing client
func (a *App) Close() {
	a.Client.Close()
	logging.Debug("Pricing client closed", map[string]interface{}{
		"cache": a.Client.CacheStats(),
	})
}
