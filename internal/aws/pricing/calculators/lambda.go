package calculators

import (
	"fmt"

	"github.com/aws/aws-sdk-go/service/pricing"

	"budgetplanner/internal/aws/pricing/models"
)

// LambdaUsage describes a month of event-driven invocations
type LambdaUsage struct {
	Requests   int64
	DurationMs int64
	MemoryMB   int64
}

// GBSeconds returns the compute consumed by the usage
func (u LambdaUsage) GBSeconds() float64 {
	return (float64(u.MemoryMB) / 1024) * (float64(u.DurationMs) / 1000) * float64(u.Requests)
}

// LambdaCalculator handles Lambda cost calculations
type LambdaCalculator struct {
	BaseCalculator
}

// GetPricingFilters returns the pricing filters for one Lambda price group
func (lc *LambdaCalculator) GetPricingFilters(query models.PriceQuery, location string) ([]*pricing.Filter, error) {
	switch query.Group {
	case models.GroupLambdaRequests, models.GroupLambdaDuration:
	default:
		return nil, fmt.Errorf("unsupported Lambda price group: %q", query.Group)
	}

	return []*pricing.Filter{
		termMatch("location", location),
		termMatch("group", query.Group),
	}, nil
}

// CalculateCost returns the monthly cost of usage. The free tier is not deducted.
func (lc *LambdaCalculator) CalculateCost(usage LambdaUsage, prices models.LambdaPricing) float64 {
	return EventComputeCost(usage.Requests, usage.DurationMs, usage.MemoryMB, prices)
}

// EventComputeCost prices requests plus GB-seconds of compute
func EventComputeCost(requests, durationMs, memoryMB int64, prices models.LambdaPricing) float64 {
	usage := LambdaUsage{Requests: requests, DurationMs: durationMs, MemoryMB: memoryMB}
	requestCost := float64(requests) * prices.PerRequest
	computeCost := usage.GBSeconds() * prices.PerGBSecond
	return requestCost + computeCost
}
