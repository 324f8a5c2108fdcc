package calculators

import (
	"fmt"
	"math"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/pricing"

	"budgetplanner/internal/aws/pricing/models"
)

// HoursPerMonth is the average number of hours in a month (8760 / 12)
const HoursPerMonth = 730

// BaseCalculator provides common functionality for all cost calculators
type BaseCalculator struct{}

// RoundCost rounds a cost value to 4 decimal places
func (bc *BaseCalculator) RoundCost(cost float64) float64 {
	return Round(cost, 4)
}

// MonthlyFromHourly converts an hourly price to a monthly cost
func (bc *BaseCalculator) MonthlyFromHourly(hourlyPrice float64) float64 {
	return MonthlyFromHourly(hourlyPrice)
}

// ValidateInstanceType ensures the query names an instance type
func (bc *BaseCalculator) ValidateInstanceType(query models.PriceQuery) error {
	if query.InstanceType == "" {
		return fmt.Errorf("instance type is required for %s pricing", query.Service)
	}
	return nil
}

// MonthlyFromHourly converts an hourly price to a monthly cost using HoursPerMonth.
// The result is not rounded.
func MonthlyFromHourly(hourlyPrice float64) float64 {
	return hourlyPrice * HoursPerMonth
}

// Round rounds v to the given number of decimal places
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// RoundCents rounds a dollar amount to whole cents
func RoundCents(v float64) float64 {
	return Round(v, 2)
}

// termMatch builds a TERM_MATCH filter
func termMatch(field, value string) *pricing.Filter {
	return &pricing.Filter{
		Type:  aws.String(pricing.FilterTypeTermMatch),
		Field: aws.String(field),
		Value: aws.String(value),
	}
}
