// Package generate renders the per-subject navigation fragments from the JSON
// descriptors under the data directory.
package generate

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/lalithbseervi/pes-bca/internal/outline"
	"github.com/lalithbseervi/pes-bca/internal/siteconf"
	"github.com/lalithbseervi/pes-bca/internal/sitefs"
)

// Run renders one HTML fragment per *.json descriptor in cfg.DataDir,
// rewriting a fragment only when its content changed. Failures are scoped to
// a single subject; only a missing data directory aborts the run.
func Run(fs billy.Filesystem, cfg siteconf.Config, stdout, stderr io.Writer) error {
	if _, err := fs.Stat(cfg.DataDir); err != nil {
		return fmt.Errorf("data directory %s not found: %w", cfg.DataDir, err)
	}
	if err := fs.MkdirAll(cfg.TemplatesDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", cfg.TemplatesDir, err)
	}

	entries, err := fs.ReadDir(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("list %s: %w", cfg.DataDir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	renderer := &outline.Renderer{
		DisplayNames: cfg.DisplayNames,
		Icon:         cfg.Icon,
		SubjectBase:  cfg.SubjectBase,
		ViewerPath:   cfg.ViewerPath,
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		srcPath := filepath.Join(cfg.DataDir, entry.Name())
		subjectID := strings.TrimSuffix(entry.Name(), ".json")
		outPath := filepath.Join(cfg.TemplatesDir, subjectID+".html")

		subject, err := readSubject(fs, srcPath)
		if err != nil {
			fmt.Fprintf(stderr, "Skipping %s: invalid json (%v)\n", srcPath, err)
			continue
		}

		content := renderer.Render(subjectID, srcPath, subject)
		status, err := sitefs.WriteFileIfChanged(fs, outPath, []byte(content))
		if err != nil {
			fmt.Fprintf(stderr, "Failed to write %s: %v\n", outPath, err)
			continue
		}
		switch status {
		case sitefs.Unchanged:
			fmt.Fprintf(stdout, "Unchanged template %s\n", outPath)
		case sitefs.Updated:
			fmt.Fprintf(stdout, "Updated template %s\n", outPath)
		case sitefs.Written:
			fmt.Fprintf(stdout, "Wrote template %s\n", outPath)
		}
	}
	return nil
}

func readSubject(fs billy.Filesystem, path string) (*outline.Subject, error) {
	data, err := util.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	return outline.ParseSubject(data)
}
