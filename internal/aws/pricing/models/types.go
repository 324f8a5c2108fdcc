package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the catalog has no product matching a query
var ErrNotFound = errors.New("no pricing information found")

// Service codes understood by the Price List API
const (
	ServiceEC2    = "AmazonEC2"
	ServiceRDS    = "AmazonRDS"
	ServiceLambda = "AWSLambda"
)

// Lambda price groups
const (
	GroupLambdaRequests = "AWS-Lambda-Requests"
	GroupLambdaDuration = "AWS-Lambda-Duration"
)

// Status tags the outcome of a single price lookup
type Status int

const (
	// Found means the catalog returned a usable on-demand price
	Found Status = iota
	// NotFound means the catalog returned no matching product
	NotFound
	// Failed means the call or the response parsing failed
	Failed
)

func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// PriceQuery describes one resource shape to price
type PriceQuery struct {
	Service      string
	Region       string
	InstanceType string
	Engine       string
	Group        string
}

// CacheKey returns the memoization key for the query
func (q PriceQuery) CacheKey() string {
	switch q.Service {
	case ServiceLambda:
		return fmt.Sprintf("%s:%s:%s", q.Service, q.Region, q.Group)
	case ServiceRDS:
		return fmt.Sprintf("%s:%s:%s:%s", q.Service, q.Region, q.InstanceType, q.Engine)
	default:
		return fmt.Sprintf("%s:%s:%s", q.Service, q.Region, q.InstanceType)
	}
}

// PriceResult is the tagged outcome of a lookup. Price is only meaningful when Status is Found.
type PriceResult struct {
	Query  PriceQuery
	Status Status
	Price  float64
	Err    error
}

// OK reports whether a price was found
func (r PriceResult) OK() bool {
	return r.Status == Found
}

// Cause describes why the lookup produced no price, or nil when it did
func (r PriceResult) Cause() error {
	switch r.Status {
	case Found:
		return nil
	case NotFound:
		return fmt.Errorf("%s: %w", r.Query.CacheKey(), ErrNotFound)
	default:
		return fmt.Errorf("%s: %w", r.Query.CacheKey(), r.Err)
	}
}

// LambdaPricing holds the two unit prices billed for event-driven compute
type LambdaPricing struct {
	PerRequest  float64 `json:"per_request"`
	PerGBSecond float64 `json:"per_gb_second"`
}

// LambdaResult pairs the two lookups needed to price Lambda
type LambdaResult struct {
	Requests PriceResult
	Duration PriceResult
}

// OK reports whether both unit prices were found
func (r LambdaResult) OK() bool {
	return r.Requests.OK() && r.Duration.OK()
}

// Pricing returns the found unit prices
func (r LambdaResult) Pricing() LambdaPricing {
	return LambdaPricing{
		PerRequest:  r.Requests.Price,
		PerGBSecond: r.Duration.Price,
	}
}

// Cause joins the causes of both lookups
func (r LambdaResult) Cause() error {
	return errors.Join(r.Requests.Cause(), r.Duration.Cause())
}
