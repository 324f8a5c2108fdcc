package list

import (
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List AWS profiles and supported regions",
		Long: `List AWS profiles and supported regions.
Currently supports listing:
  - Available AWS credential profiles
  - Regions with a known Price List location`,
	}

	cmd.AddCommand(NewProfilesCmd())
	cmd.AddCommand(NewRegionsCmd())

	return cmd
}
