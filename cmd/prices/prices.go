package prices

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"budgetplanner/internal/app"
	"budgetplanner/internal/aws/pricing/calculators"
	"budgetplanner/internal/aws/pricing/models"
	"budgetplanner/internal/config"
	"budgetplanner/internal/projects"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// options holds the flags of the prices command
type options struct {
	ec2Types []string
	rdsTypes []string
	engine   string
	usage    calculators.LambdaUsage
}

// row is one priced resource shape
type row struct {
	service string
	shape   string
	unit    string
	result  models.PriceResult
	monthly float64
}

// NewPricesCmd creates the prices command
func NewPricesCmd() *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Look up live on-demand prices",
		Long: `Look up live on-demand prices for small EC2 and RDS instances and for Lambda.

Each lookup reports whether a price was found, and hourly prices are also shown
as a monthly cost over 730 hours. The Lambda usage flags price one example
workload.`,
		Example: `  # Default instance shapes
  budgetplanner prices

  # Specific shapes in another region
  budgetplanner prices --region eu-west-1 --ec2 t3.micro --rds db.t3.micro --engine PostgreSQL`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(config.Config)
			if err != nil {
				return fmt.Errorf("failed to initialize: %w", err)
			}
			defer a.Close()

			return runPrices(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), a.Client, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.ec2Types, "ec2", []string{"t3.nano", "t3.micro", "t4g.nano", "t4g.micro"}, "EC2 instance types to price")
	cmd.Flags().StringSliceVar(&opts.rdsTypes, "rds", []string{"db.t3.micro", "db.t4g.micro"}, "RDS instance classes to price")
	cmd.Flags().StringVar(&opts.engine, "engine", calculators.DefaultEngine, "RDS database engine")
	cmd.Flags().Int64Var(&opts.usage.Requests, "requests", 100000, "Lambda requests per month for the example workload")
	cmd.Flags().Int64Var(&opts.usage.DurationMs, "duration-ms", 200, "Lambda average duration in milliseconds")
	cmd.Flags().Int64Var(&opts.usage.MemoryMB, "memory-mb", 128, "Lambda memory in MB")

	return cmd
}

func runPrices(ctx context.Context, out, progress io.Writer, source projects.PriceSource, opts options) error {
	total := len(opts.ec2Types) + len(opts.rdsTypes) + 1
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("Looking up prices..."),
		progressbar.OptionSetWidth(15),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	rows := make([]row, 0, total+1)
	for _, instanceType := range opts.ec2Types {
		res := source.EC2Price(ctx, instanceType)
		rows = append(rows, row{service: "EC2", shape: instanceType, unit: "hour", result: res, monthly: calculators.MonthlyFromHourly(res.Price)})
		_ = bar.Add(1)
	}
	for _, instanceType := range opts.rdsTypes {
		res := source.RDSPrice(ctx, instanceType, opts.engine)
		rows = append(rows, row{service: "RDS", shape: instanceType + " " + opts.engine, unit: "hour", result: res, monthly: calculators.MonthlyFromHourly(res.Price)})
		_ = bar.Add(1)
	}

	lambda := source.LambdaPrices(ctx)
	rows = append(rows,
		row{service: "Lambda", shape: "requests", unit: "request", result: lambda.Requests},
		row{service: "Lambda", shape: "duration", unit: "GB-second", result: lambda.Duration},
	)
	_ = bar.Finish()

	if err := renderRows(out, rows); err != nil {
		return err
	}

	fmt.Fprintln(out)
	if !lambda.OK() {
		fmt.Fprintln(out, color.YellowString("Lambda example skipped: %v", lambda.Cause()))
		return nil
	}
	u := opts.usage
	cost := calculators.EventComputeCost(u.Requests, u.DurationMs, u.MemoryMB, lambda.Pricing())
	fmt.Fprintf(out, "Lambda example: %d requests x %dms x %dMB = $%.4f/month\n", u.Requests, u.DurationMs, u.MemoryMB, cost)
	return nil
}

func renderRows(out io.Writer, rows []row) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SERVICE\tSHAPE\tUNIT PRICE\tMONTHLY\tSTATUS")
	for _, r := range rows {
		price, monthly := "-", "-"
		if r.result.OK() {
			price = fmt.Sprintf("$%.10g/%s", r.result.Price, r.unit)
			if r.unit == "hour" {
				monthly = fmt.Sprintf("$%.2f", r.monthly)
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.service, r.shape, price, monthly, statusText(r.result.Status))
	}
	return w.Flush()
}

func statusText(s models.Status) string {
	switch s {
	case models.Found:
		return color.GreenString(s.String())
	case models.NotFound:
		return color.YellowString(s.String())
	default:
		return color.RedString(s.String())
	}
}
