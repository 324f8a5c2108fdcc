package projects

import (
	"errors"
	"fmt"
	"math"

	"budgetplanner/internal/aws/pricing/calculators"
)

// Budget bounds accepted by FilterByBudget callers
const (
	MinBudget     = 1.0
	MaxBudget     = 10000.0
	DefaultBudget = 10.0
)

// ErrBudgetOutOfRange is returned by ValidateBudget
var ErrBudgetOutOfRange = errors.New("budget out of range")

// BudgetStats summarises the affordable templates
type BudgetStats struct {
	Cheapest        float64 `json:"cheapest"`
	RemainingBudget float64 `json:"remaining_budget"`
}

// BudgetResult partitions a catalog against a budget
type BudgetResult struct {
	Budget          float64           `json:"budget"`
	AffordableCount int               `json:"affordable_count"`
	Affordable      []ProjectTemplate `json:"affordable_projects"`
	Expensive       []ProjectTemplate `json:"expensive_projects"`
	Stats           BudgetStats       `json:"stats"`
	PricingSource   PricingSource     `json:"pricing_source"`
}

// ValidateBudget checks MinBudget <= budget <= MaxBudget
func ValidateBudget(budget float64) error {
	if math.IsNaN(budget) || budget < MinBudget || budget > MaxBudget {
		return fmt.Errorf("%w: %g not in [%g, %g]", ErrBudgetOutOfRange, budget, MinBudget, MaxBudget)
	}
	return nil
}

// FilterByBudget splits templates into those costing at most budget and the
// rest, keeping input order.
func FilterByBudget(templates []ProjectTemplate, budget float64) BudgetResult {
	affordable := make([]ProjectTemplate, 0, len(templates))
	expensive := make([]ProjectTemplate, 0, len(templates))
	for _, t := range templates {
		if t.TotalCost <= budget {
			affordable = append(affordable, t)
		} else {
			expensive = append(expensive, t)
		}
	}

	result := BudgetResult{
		Budget:          budget,
		AffordableCount: len(affordable),
		Affordable:      affordable,
		Expensive:       expensive,
		Stats:           BudgetStats{RemainingBudget: budget},
	}
	if len(templates) > 0 {
		result.PricingSource = templates[0].PricingSource
	}

	if len(affordable) == 0 {
		return result
	}

	cheapest, mostExpensive := affordable[0].TotalCost, affordable[0].TotalCost
	for _, t := range affordable[1:] {
		if t.TotalCost < cheapest {
			cheapest = t.TotalCost
		}
		if t.TotalCost > mostExpensive {
			mostExpensive = t.TotalCost
		}
	}
	result.Stats.Cheapest = cheapest
	result.Stats.RemainingBudget = calculators.RoundCents(budget - mostExpensive)
	return result
}
