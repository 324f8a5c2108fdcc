package projects

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"budgetplanner/internal/aws/pricing/models"
	"budgetplanner/internal/logging"
)

// PriceSource resolves the unit prices the catalog depends on
type PriceSource interface {
	EC2Price(ctx context.Context, instanceType string) models.PriceResult
	RDSPrice(ctx context.Context, instanceType, engine string) models.PriceResult
	LambdaPrices(ctx context.Context) models.LambdaResult
}

// Assembly is one batch of templates and the provenance of their prices
type Assembly struct {
	Templates []ProjectTemplate `json:"projects"`
	Prices    Prices            `json:"prices"`
	Source    PricingSource     `json:"pricing_source"`
}

// Catalog assembles project templates from live or fallback prices
type Catalog struct {
	source  PriceSource
	timeout time.Duration
}

// NewCatalog creates a catalog. A nil source always yields fallback prices;
// a positive timeout bounds each batch of lookups.
func NewCatalog(source PriceSource, timeout time.Duration) *Catalog {
	return &Catalog{source: source, timeout: timeout}
}

// Assemble builds all templates. If any live lookup does not produce a price,
// every live result is discarded and the whole batch uses FallbackPrices.
func (c *Catalog) Assemble(ctx context.Context) Assembly {
	prices, err := c.livePrices(ctx)
	if err != nil {
		logging.Warn("Using fallback pricing", map[string]interface{}{
			"reason": err.Error(),
		})
		fallback := FallbackPrices()
		return Assembly{
			Templates: Build(fallback, SourceFallback),
			Prices:    fallback,
			Source:    SourceFallback,
		}
	}

	return Assembly{
		Templates: Build(prices, SourceLive),
		Prices:    prices,
		Source:    SourceLive,
	}
}

// livePrices runs the three lookups concurrently; the first failure cancels the rest
func (c *Catalog) livePrices(ctx context.Context) (Prices, error) {
	if c.source == nil {
		return Prices{}, errors.New("no price source configured")
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var (
		ec2    models.PriceResult
		rds    models.PriceResult
		lambda models.LambdaResult
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ec2 = c.source.EC2Price(ctx, ComputeInstanceType)
		return ec2.Cause()
	})
	g.Go(func() error {
		rds = c.source.RDSPrice(ctx, DatabaseInstanceType, DatabaseEngine)
		return rds.Cause()
	})
	g.Go(func() error {
		lambda = c.source.LambdaPrices(ctx)
		return lambda.Cause()
	})
	if err := g.Wait(); err != nil {
		return Prices{}, err
	}

	return Prices{
		EC2Hourly: ec2.Price,
		RDSHourly: rds.Price,
		Lambda:    lambda.Pricing(),
	}, nil
}
