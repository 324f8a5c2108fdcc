package init

import (
	"fmt"
	"os"
	"path/filepath"

	"budgetplanner/internal/config"
	"github.com/spf13/cobra"
)

// writeFile creates path with content, refusing to overwrite unless force is set
func writeFile(path string, content string, force bool) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil && !force {
		return "", fmt.Errorf("file %s already exists. Use --force to overwrite", absPath)
	}

	dir := filepath.Dir(absPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return absPath, nil
}

// NewConfigCmd creates the config subcommand
func NewConfigCmd() *cobra.Command {
	var force bool
	var output string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create a default config.yaml file",
		Long: `Create a default config.yaml file with recommended settings.

The file will be created in the current directory by default.
You can specify a different location using the --output flag.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = "config.yaml"
			}

			absPath, err := writeFile(output, config.DefaultConfigContent, force)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", absPath)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: ./config.yaml)")

	return cmd
}
