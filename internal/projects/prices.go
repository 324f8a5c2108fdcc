package projects

import "budgetplanner/internal/aws/pricing/models"

// Resource shapes priced live
const (
	ComputeInstanceType  = "t4g.nano"
	DatabaseInstanceType = "db.t4g.micro"
	DatabaseEngine       = "MySQL"
)

// Prices are the unit prices every template is computed from
type Prices struct {
	EC2Hourly float64              `json:"ec2_hourly"`
	RDSHourly float64              `json:"rds_hourly"`
	Lambda    models.LambdaPricing `json:"lambda"`
}

// FallbackPrices returns the constants used whenever a live lookup fails
func FallbackPrices() Prices {
	return Prices{
		EC2Hourly: 0.0042,
		RDSHourly: 0.008,
		Lambda: models.LambdaPricing{
			PerRequest:  0.0000002,
			PerGBSecond: 0.0000166667,
		},
	}
}
