package cmd

import (
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/lalithbseervi/pes-bca/internal/generate"
	"github.com/lalithbseervi/pes-bca/internal/siteconf"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Render navigation fragments from the subject descriptors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := siteconf.Load(configPath)
		if err != nil {
			return err
		}
		return generate.Run(osfs.New("."), cfg, os.Stdout, os.Stderr)
	},
}

func init() {
	rootCmd.AddCommand(genCmd)
}
