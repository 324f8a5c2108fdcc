package projects

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetplanner/internal/logging"
	"budgetplanner/internal/projects"
)

func TestRunProjectsText(t *testing.T) {
	prev := logging.SetOutput(io.Discard)
	defer logging.SetOutput(prev)

	out := new(bytes.Buffer)
	err := runProjects(context.Background(), out, projects.NewCatalog(nil, 0), 10, "text")
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Budget: $10.00/month (fallback prices)")
	assert.Contains(t, text, "6 of 6 projects fit")
	assert.Contains(t, text, "Remaining: $0.50")
	assert.Contains(t, text, "Full-Stack")
}

func TestRenderTextNothingFits(t *testing.T) {
	prev := logging.SetOutput(io.Discard)
	defer logging.SetOutput(prev)

	templates := projects.Build(projects.FallbackPrices(), projects.SourceFallback)
	result := projects.FilterByBudget(templates[:5], 0.5)

	out := new(bytes.Buffer)
	require.NoError(t, renderText(out, result))
	assert.Contains(t, out.String(), "No project fits this budget.")
}

func TestRunProjectsJSON(t *testing.T) {
	prev := logging.SetOutput(io.Discard)
	defer logging.SetOutput(prev)

	out := new(bytes.Buffer)
	err := runProjects(context.Background(), out, projects.NewCatalog(nil, 0), 1, "json")
	require.NoError(t, err)

	var result projects.BudgetResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, 1.0, result.Budget)
	assert.Equal(t, 1, result.AffordableCount)
	assert.Equal(t, projects.SourceFallback, result.PricingSource)
	assert.InDelta(t, 0.39, result.Stats.RemainingBudget, 1e-9)
}

func TestProjectsCmdRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"budget below minimum", []string{"--offline", "--budget", "0"}},
		{"budget above maximum", []string{"--offline", "--budget", "20000"}},
		{"unknown format", []string{"--offline", "--format", "yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewProjectsCmd()
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)
			cmd.SetArgs(tt.args)
			assert.Error(t, cmd.Execute())
		})
	}
}
