package cmd

import (
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/lalithbseervi/pes-bca/internal/linkfix"
	"github.com/lalithbseervi/pes-bca/internal/siteconf"
)

var fixlinksCmd = &cobra.Command{
	Use:   "fixlinks [file...]",
	Short: "Repair dead PDF hrefs in generated HTML",
	Long: `fixlinks scans generated HTML for PDF hrefs that no longer resolve
under the static asset root and rewrites each one to the closest renamed
file it can find. With no arguments it processes the main index template.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := siteconf.Load(configPath)
		if err != nil {
			return err
		}
		files := args
		if len(files) == 0 {
			files = []string{cfg.IndexFile}
		}
		fixer := &linkfix.Fixer{
			FS:           osfs.New("."),
			StaticDir:    cfg.StaticDir,
			Marker:       cfg.BatchMarker,
			SubjectCodes: cfg.SubjectCodes,
			Out:          os.Stdout,
		}
		for _, file := range files {
			if _, err := fixer.FixFile(file); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fixlinksCmd)
}
