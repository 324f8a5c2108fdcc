package list

import (
	"fmt"
	"io"
	"text/tabwriter"

	pricingconfig "budgetplanner/internal/aws/pricing/config"
	"github.com/spf13/cobra"
)

// NewRegionsCmd creates the regions command
func NewRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List regions with a known pricing location",
		Long: `List the regions whose Price List location name is known.
Other regions are priced using the US East (N. Virginia) location.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegions(cmd.OutOrStdout())
		},
	}
}

func runRegions(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "REGION\tLOCATION")
	for _, region := range pricingconfig.SupportedRegions() {
		fmt.Fprintf(w, "%s\t%s\n", region, pricingconfig.LocationForRegion(region))
	}
	return w.Flush()
}
