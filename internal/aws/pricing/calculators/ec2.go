package calculators

import (
	"github.com/aws/aws-sdk-go/service/pricing"

	"budgetplanner/internal/aws/pricing/models"
)

// EC2Calculator handles EC2 instance cost calculations
type EC2Calculator struct {
	BaseCalculator
}

// GetPricingFilters returns the pricing filters for shared-tenancy Linux EC2 instances
func (ec *EC2Calculator) GetPricingFilters(query models.PriceQuery, location string) ([]*pricing.Filter, error) {
	if err := ec.ValidateInstanceType(query); err != nil {
		return nil, err
	}

	return []*pricing.Filter{
		termMatch("instanceType", query.InstanceType),
		termMatch("location", location),
		termMatch("operatingSystem", "Linux"),
		termMatch("tenancy", "Shared"),
		termMatch("preInstalledSw", "NA"),
		termMatch("capacitystatus", "Used"),
	}, nil
}

// CalculateCost returns the monthly cost of an always-on instance
func (ec *EC2Calculator) CalculateCost(hourlyPrice float64) float64 {
	return ec.MonthlyFromHourly(hourlyPrice)
}
