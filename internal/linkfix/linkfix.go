// Package linkfix repairs dead PDF hrefs in generated HTML by locating
// plausibly renamed files under the static asset root.
package linkfix

import (
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/lalithbseervi/pes-bca/internal/sitefs"
)

// Fixer rewrites PDF hrefs that no longer resolve under the static root.
type Fixer struct {
	FS billy.Filesystem
	// StaticDir is the asset root all hrefs are resolved against.
	StaticDir string
	// Marker prefixes the upload-batch segment in original filenames;
	// segments before the first marked one form the meaningful base name.
	Marker string
	// SubjectCodes are tried in order when a filename has no meaningful
	// base name at all.
	SubjectCodes []string
	// Out receives the per-href and summary status lines.
	Out io.Writer
}

var hrefRE = regexp.MustCompile(`href="([^"]*\.pdf)"`)

// FixFile rewrites dead PDF hrefs in one HTML document and returns the number
// of updates applied. Hrefs with no plausible replacement are reported as
// warnings and left as-is; the file is only rewritten when at least one href
// was repaired.
func (f *Fixer) FixFile(path string) (int, error) {
	raw, err := util.ReadFile(f.FS, path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	content := string(raw)

	updates := 0
	for _, m := range hrefRE.FindAllStringSubmatch(content, -1) {
		oldPath := strings.TrimPrefix(m[1], "/")
		if _, err := f.FS.Stat(filepath.Join(f.StaticDir, oldPath)); err == nil {
			continue
		}
		newPath, ok := f.findReplacement(oldPath)
		if !ok {
			fmt.Fprintf(f.Out, "Warning: Could not find replacement for %s\n", oldPath)
			continue
		}
		fmt.Fprintf(f.Out, "Updating: %s -> %s\n", oldPath, newPath)
		// Plain text substitution over the whole document: every occurrence of
		// the dead href is repaired identically, slash-prefixed or not.
		content = strings.ReplaceAll(content, `href="/`+oldPath+`"`, `href="/`+newPath+`"`)
		content = strings.ReplaceAll(content, `href="`+oldPath+`"`, `href="/`+newPath+`"`)
		updates++
	}

	if updates == 0 {
		fmt.Fprintf(f.Out, "No updates needed for %s\n", path)
		return 0, nil
	}
	if _, err := sitefs.WriteFileIfChanged(f.FS, path, []byte(content)); err != nil {
		return updates, fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(f.Out, "Updated %d links in %s\n", updates, path)
	return updates, nil
}
