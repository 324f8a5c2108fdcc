package projects

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterByBudgetPartitions(t *testing.T) {
	templates := Build(FallbackPrices(), SourceFallback)

	for _, budget := range []float64{1, 1.5, 2.34, 5, 9.49, 9.5, 10, 10000} {
		res := FilterByBudget(templates, budget)

		assert.Equal(t, len(templates), len(res.Affordable)+len(res.Expensive))
		assert.Equal(t, len(res.Affordable), res.AffordableCount)
		for _, tpl := range res.Affordable {
			assert.LessOrEqual(t, tpl.TotalCost, budget)
		}
		for _, tpl := range res.Expensive {
			assert.Greater(t, tpl.TotalCost, budget)
		}
		assert.Equal(t, SourceFallback, res.PricingSource)
	}
}

func TestFilterByBudgetOne(t *testing.T) {
	res := FilterByBudget(Build(FallbackPrices(), SourceFallback), 1)

	require.Len(t, res.Affordable, 1)
	assert.Equal(t, "Discord/Slack Bot", res.Affordable[0].Name)
	assert.Len(t, res.Expensive, 5)
	assert.Equal(t, 0.61, res.Stats.Cheapest)
	assert.Equal(t, 0.39, res.Stats.RemainingBudget)
}

func TestFilterByBudgetDefault(t *testing.T) {
	res := FilterByBudget(Build(FallbackPrices(), SourceFallback), DefaultBudget)

	assert.Equal(t, 6, res.AffordableCount)
	assert.Empty(t, res.Expensive)
	assert.Equal(t, 0.61, res.Stats.Cheapest)
	assert.Equal(t, 0.50, res.Stats.RemainingBudget)
}

func TestFilterByBudgetNothingAffordable(t *testing.T) {
	templates := []ProjectTemplate{{ID: 1, TotalCost: 20}, {ID: 2, TotalCost: 30}}
	res := FilterByBudget(templates, 5)

	assert.Empty(t, res.Affordable)
	assert.Len(t, res.Expensive, 2)
	assert.Equal(t, 0.0, res.Stats.Cheapest)
	assert.Equal(t, 5.0, res.Stats.RemainingBudget)
}

func TestFilterByBudgetKeepsOrder(t *testing.T) {
	templates := []ProjectTemplate{{ID: 3, TotalCost: 2}, {ID: 1, TotalCost: 9}, {ID: 2, TotalCost: 1}}
	res := FilterByBudget(templates, 5)

	require.Len(t, res.Affordable, 2)
	assert.Equal(t, 3, res.Affordable[0].ID)
	assert.Equal(t, 2, res.Affordable[1].ID)
}

func TestValidateBudget(t *testing.T) {
	assert.NoError(t, ValidateBudget(1))
	assert.NoError(t, ValidateBudget(10000))
	assert.ErrorIs(t, ValidateBudget(0.99), ErrBudgetOutOfRange)
	assert.ErrorIs(t, ValidateBudget(10000.01), ErrBudgetOutOfRange)
	assert.ErrorIs(t, ValidateBudget(math.NaN()), ErrBudgetOutOfRange)
}
