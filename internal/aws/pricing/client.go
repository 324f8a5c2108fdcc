package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	awssdk "github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/pricing"
	"github.com/aws/aws-sdk-go/service/pricing/pricingiface"

	internalaws "budgetplanner/internal/aws"
	"budgetplanner/internal/aws/pricing/cache"
	"budgetplanner/internal/aws/pricing/calculators"
	pricingconfig "budgetplanner/internal/aws/pricing/config"
	"budgetplanner/internal/aws/pricing/models"
	"budgetplanner/internal/config"
	"budgetplanner/internal/logging"
)

// Options configures a Client
type Options struct {
	// Region whose prices are quoted, defaults to us-east-1
	Region string
	// CacheSize bounds the lookup LRU, defaults to cache.DefaultSize
	CacheSize int
	// RateLimit throttles Price List API calls, defaults to config.DefaultRateLimitConfig
	RateLimit *config.RateLimitConfig
}

// filterBuilder is implemented by every calculator that can be looked up
type filterBuilder interface {
	GetPricingFilters(query models.PriceQuery, location string) ([]*pricing.Filter, error)
}

// Client looks up on-demand unit prices in the AWS Price List API
type Client struct {
	api         pricingiface.PricingAPI
	region      string
	priceCache  *cache.PriceCache
	rateLimiter *internalaws.RateLimiter
	calculators map[string]filterBuilder
}

// NewClient creates a Client around an existing Price List API implementation
func NewClient(api pricingiface.PricingAPI, opts Options) (*Client, error) {
	if api == nil {
		return nil, fmt.Errorf("pricing API client is required")
	}

	region := opts.Region
	if region == "" {
		region = internalaws.PricingAPIRegion
	}
	if _, ok := pricingconfig.GetLocationForRegion(region); !ok {
		logging.Warn("Region not in pricing location table, using default location", map[string]interface{}{
			"region":   region,
			"location": pricingconfig.DefaultLocation,
		})
	}

	pc, err := cache.NewPriceCache(opts.CacheSize)
	if err != nil {
		return nil, err
	}

	return &Client{
		api:         api,
		region:      region,
		priceCache:  pc,
		rateLimiter: internalaws.NewRateLimiter(opts.RateLimit),
		calculators: map[string]filterBuilder{
			models.ServiceEC2:    &calculators.EC2Calculator{},
			models.ServiceRDS:    &calculators.RDSCalculator{},
			models.ServiceLambda: &calculators.LambdaCalculator{},
		},
	}, nil
}

// NewClientFromSession creates a Client using the pricing endpoint of sess
func NewClientFromSession(sess *session.Session, opts Options) (*Client, error) {
	// The Price List API is only served from a few regions; pin the endpoint
	cfg := awssdk.NewConfig().WithRegion(internalaws.PricingAPIRegion)
	return NewClient(pricing.New(sess, cfg), opts)
}

// Close releases the client's background resources
func (c *Client) Close() {
	c.rateLimiter.Close()
}

// Region returns the region whose prices are quoted
func (c *Client) Region() string {
	return c.region
}

// CacheStats returns the lookup cache counters
func (c *Client) CacheStats() cache.Stats {
	return c.priceCache.Stats()
}

// EC2Price returns the hourly on-demand price of a Linux, shared-tenancy instance
func (c *Client) EC2Price(ctx context.Context, instanceType string) models.PriceResult {
	return c.lookup(ctx, models.PriceQuery{
		Service:      models.ServiceEC2,
		Region:       c.region,
		InstanceType: instanceType,
	})
}

// RDSPrice returns the hourly on-demand price of a Single-AZ database instance
func (c *Client) RDSPrice(ctx context.Context, instanceType, engine string) models.PriceResult {
	if engine == "" {
		engine = calculators.DefaultEngine
	}
	return c.lookup(ctx, models.PriceQuery{
		Service:      models.ServiceRDS,
		Region:       c.region,
		InstanceType: instanceType,
		Engine:       engine,
	})
}

// LambdaPrices returns the per-request and per-GB-second Lambda prices
func (c *Client) LambdaPrices(ctx context.Context) models.LambdaResult {
	return models.LambdaResult{
		Requests: c.lookup(ctx, models.PriceQuery{
			Service: models.ServiceLambda,
			Region:  c.region,
			Group:   models.GroupLambdaRequests,
		}),
		Duration: c.lookup(ctx, models.PriceQuery{
			Service: models.ServiceLambda,
			Region:  c.region,
			Group:   models.GroupLambdaDuration,
		}),
	}
}

// lookup resolves one query through the cache and the Price List API
func (c *Client) lookup(ctx context.Context, query models.PriceQuery) models.PriceResult {
	key := query.CacheKey()
	if price, ok := c.priceCache.Get(key); ok {
		return models.PriceResult{Query: query, Status: models.Found, Price: price}
	}

	result := c.fetch(ctx, query)
	logging.PriceLookup(key, result.Status.String(), result.Price, result.Err)

	if result.OK() {
		c.priceCache.Set(key, result.Price)
	}
	return result
}

func (c *Client) fetch(ctx context.Context, query models.PriceQuery) models.PriceResult {
	failed := func(err error) models.PriceResult {
		return models.PriceResult{Query: query, Status: models.Failed, Err: err}
	}

	calc, ok := c.calculators[query.Service]
	if !ok {
		return failed(fmt.Errorf("unsupported service: %s", query.Service))
	}

	filters, err := calc.GetPricingFilters(query, pricingconfig.LocationForRegion(query.Region))
	if err != nil {
		return failed(err)
	}

	price, err := c.getPriceFromAPI(ctx, query.Service, filters)
	switch {
	case errors.Is(err, models.ErrNotFound):
		return models.PriceResult{Query: query, Status: models.NotFound}
	case err != nil:
		return failed(err)
	}

	return models.PriceResult{Query: query, Status: models.Found, Price: price}
}

// getPriceFromAPI retrieves the first on-demand USD price matching filters
func (c *Client) getPriceFromAPI(ctx context.Context, serviceCode string, filters []*pricing.Filter) (float64, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("rate limiter interrupted: %w", err)
	}

	input := &pricing.GetProductsInput{
		ServiceCode:   awssdk.String(serviceCode),
		Filters:       filters,
		FormatVersion: awssdk.String("aws_v1"),
		MaxResults:    awssdk.Int64(1),
	}

	result, err := c.api.GetProductsWithContext(ctx, input)
	if err != nil {
		return 0, fmt.Errorf("failed to get pricing: %w", err)
	}

	if len(result.PriceList) == 0 {
		return 0, models.ErrNotFound
	}

	return parseOnDemandPrice(result.PriceList[0])
}

// priceDocument is the subset of a Price List product document we read
type priceDocument struct {
	Terms struct {
		OnDemand map[string]struct {
			PriceDimensions map[string]struct {
				PricePerUnit map[string]string `json:"pricePerUnit"`
			} `json:"priceDimensions"`
		} `json:"OnDemand"`
	} `json:"terms"`
}

// parseOnDemandPrice extracts pricePerUnit.USD from the first OnDemand term's
// first price dimension. Map keys are visited in sorted order.
func parseOnDemandPrice(priceData awssdk.JSONValue) (float64, error) {
	jsonBytes, err := json.Marshal(priceData)
	if err != nil {
		return 0, fmt.Errorf("failed to encode price document: %w", err)
	}

	var doc priceDocument
	if err := json.Unmarshal(jsonBytes, &doc); err != nil {
		return 0, fmt.Errorf("failed to parse price document: %w", err)
	}

	if len(doc.Terms.OnDemand) == 0 {
		return 0, fmt.Errorf("price document has no OnDemand terms")
	}
	term := doc.Terms.OnDemand[firstKey(doc.Terms.OnDemand)]

	if len(term.PriceDimensions) == 0 {
		return 0, fmt.Errorf("OnDemand term has no price dimensions")
	}
	dimension := term.PriceDimensions[firstKey(term.PriceDimensions)]

	priceStr, ok := dimension.PricePerUnit["USD"]
	if !ok {
		return 0, fmt.Errorf("price dimension has no USD price")
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid USD price %q: %w", priceStr, err)
	}
	return price, nil
}

func firstKey[V any](m map[string]V) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys[0]
}
