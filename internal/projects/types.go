package projects

// PricingSource tags where the prices behind a template came from
type PricingSource string

const (
	SourceLive     PricingSource = "live"
	SourceFallback PricingSource = "fallback"
)

// CostComponent is one line item of a template's monthly cost
type CostComponent struct {
	Service     string  `json:"service"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

// ProjectTemplate is a project archetype with its monthly cost breakdown
type ProjectTemplate struct {
	ID               int             `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	TotalCost        float64         `json:"total_cost"`
	Components       []CostComponent `json:"components"`
	EstimatedTraffic string          `json:"estimated_traffic"`
	Complexity       string          `json:"complexity"`
	PricingSource    PricingSource   `json:"pricing_source"`
}
