package cmd

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "pes-bca",
	Short: "Build tooling for the pes-bca static site",
	Long: `pes-bca maintains the generated parts of the course static site:
navigation fragments rendered from the JSON descriptors under data/, and
PDF links in generated HTML that point at files renamed on disk.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to site configuration (HCL)")
}

// Execute runs the CLI and returns the error of the selected subcommand.
func Execute() error {
	return rootCmd.Execute()
}
