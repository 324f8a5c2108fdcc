package calculators

import (
	"github.com/aws/aws-sdk-go/service/pricing"

	"budgetplanner/internal/aws/pricing/models"
)

// DefaultEngine is the database engine priced when none is given
const DefaultEngine = "MySQL"

// RDSCalculator handles RDS instance cost calculations
type RDSCalculator struct {
	BaseCalculator
}

// GetPricingFilters returns the pricing filters for Single-AZ RDS instances
func (rc *RDSCalculator) GetPricingFilters(query models.PriceQuery, location string) ([]*pricing.Filter, error) {
	if err := rc.ValidateInstanceType(query); err != nil {
		return nil, err
	}

	engine := query.Engine
	if engine == "" {
		engine = DefaultEngine
	}

	return []*pricing.Filter{
		termMatch("instanceType", query.InstanceType),
		termMatch("location", location),
		termMatch("databaseEngine", engine),
		termMatch("deploymentOption", "Single-AZ"),
	}, nil
}

// CalculateCost returns the monthly cost of an always-on database instance
func (rc *RDSCalculator) CalculateCost(hourlyPrice float64) float64 {
	return rc.MonthlyFromHourly(hourlyPrice)
}
