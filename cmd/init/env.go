package init

import (
	"fmt"
	"strings"

	"budgetplanner/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envFileContent renders every config key as a commented-out override
func envFileContent() string {
	var b strings.Builder
	b.WriteString("# Budget Planner environment overrides\n")
	b.WriteString("# Uncomment a line to override config.yaml and the defaults\n\n")
	for _, key := range config.ConfigKeys() {
		name := config.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		fmt.Fprintf(&b, "# %s=%v\n", name, viper.Get(key))
	}
	return b.String()
}

// NewEnvCmd creates the env subcommand
func NewEnvCmd() *cobra.Command {
	var force bool
	var output string

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Create a default .env file",
		Long: `Create a .env file listing every environment variable override.

Each variable is written commented out with its current value.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = ".env"
			}

			absPath, err := writeFile(output, envFileContent(), force)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created env file: %s\n", absPath)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: ./.env)")

	return cmd
}
