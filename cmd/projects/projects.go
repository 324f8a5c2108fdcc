package projects

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"budgetplanner/internal/app"
	"budgetplanner/internal/config"
	"budgetplanner/internal/projects"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewProjectsCmd creates the projects command
func NewProjectsCmd() *cobra.Command {
	var (
		budget  float64
		format  string
		offline bool
	)

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Show which starter projects fit a monthly budget",
		Long: `Show which starter projects fit a monthly budget.

Every template is priced from the same batch of lookups. The output says
whether those prices are live or fallback values.`,
		Example: `  # Projects affordable for $5 a month
  budgetplanner projects --budget 5

  # JSON output using fallback prices only
  budgetplanner projects --offline --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := projects.ValidateBudget(budget); err != nil {
				return err
			}
			if format != "text" && format != "json" {
				return fmt.Errorf("unsupported format %q (use text or json)", format)
			}

			catalog := projects.NewCatalog(nil, 0)
			if !offline {
				a, err := app.New(config.Config)
				if err != nil {
					return fmt.Errorf("failed to initialize: %w", err)
				}
				defer a.Close()
				catalog = a.Catalog
			}

			return runProjects(cmd.Context(), cmd.OutOrStdout(), catalog, budget, format)
		},
	}

	cmd.Flags().Float64VarP(&budget, "budget", "b", projects.DefaultBudget, "Monthly budget in USD")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text or json)")
	cmd.Flags().BoolVar(&offline, "offline", false, "Skip live lookups and use fallback prices")

	return cmd
}

func runProjects(ctx context.Context, out io.Writer, catalog *projects.Catalog, budget float64, format string) error {
	assembly := catalog.Assemble(ctx)
	result := projects.FilterByBudget(assembly.Templates, budget)
	result.PricingSource = assembly.Source

	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return renderText(out, result)
}

func renderText(out io.Writer, result projects.BudgetResult) error {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	bold.Fprintf(out, "Budget: $%.2f/month (%s prices)\n\n", result.Budget, result.PricingSource)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROJECT\tMONTHLY\tCOMPLEXITY\tFITS")
	for _, tpl := range result.Affordable {
		fmt.Fprintf(w, "%d\t%s\t$%.2f\t%s\t%s\n", tpl.ID, tpl.Name, tpl.TotalCost, tpl.Complexity, green.Sprint("yes"))
	}
	for _, tpl := range result.Expensive {
		fmt.Fprintf(w, "%d\t%s\t$%.2f\t%s\t%s\n", tpl.ID, tpl.Name, tpl.TotalCost, tpl.Complexity, red.Sprint("no"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	if result.AffordableCount == 0 {
		fmt.Fprintln(out, "No project fits this budget.")
		return nil
	}
	fmt.Fprintf(out, "%d of %d projects fit. Cheapest: $%.2f  Remaining: $%.2f\n",
		result.AffordableCount,
		result.AffordableCount+len(result.Expensive),
		result.Stats.Cheapest,
		result.Stats.RemainingBudget,
	)

	for _, tpl := range result.Affordable {
		fmt.Fprintf(out, "\n%s\n", bold.Sprint(tpl.Name))
		for _, c := range tpl.Components {
			fmt.Fprintf(out, "  %-8s %-40s $%.2f\n", c.Service, strings.TrimSpace(c.Description), c.Cost)
		}
	}
	return nil
}
