// Package sitefs provides the write discipline for generated site files:
// content is staged to a temp file next to the destination and only renamed
// into place when it differs from what is already there. A half-written file
// is never visible at the destination path.
package sitefs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Status reports what WriteFileIfChanged did with the destination file.
type Status int

const (
	// Unchanged means an identical file was already present; nothing was written.
	Unchanged Status = iota
	// Updated means an existing file was atomically replaced.
	Updated
	// Written means the file did not exist and was created.
	Written
)

func (s Status) String() string {
	switch s {
	case Unchanged:
		return "unchanged"
	case Updated:
		return "updated"
	case Written:
		return "written"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// WriteFileIfChanged stages content to a temp file in the destination
// directory, compares it against the existing file, and renames it into place
// only when the content differs. The temp file is removed on every path that
// does not rename it, including errors.
func WriteFileIfChanged(fs billy.Filesystem, path string, content []byte) (Status, error) {
	tmp, err := util.TempFile(fs, filepath.Dir(path), "."+filepath.Base(path)+".")
	if err != nil {
		return Unchanged, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = fs.Remove(tmpName)
		return Unchanged, fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = fs.Remove(tmpName)
		return Unchanged, fmt.Errorf("close temp: %w", err)
	}

	existing, err := util.ReadFile(fs, path)
	switch {
	case err == nil && bytes.Equal(existing, content):
		_ = fs.Remove(tmpName)
		return Unchanged, nil
	case err == nil:
		if err := fs.Rename(tmpName, path); err != nil {
			_ = fs.Remove(tmpName)
			return Unchanged, fmt.Errorf("rename temp to %s: %w", path, err)
		}
		return Updated, nil
	case os.IsNotExist(err):
		if err := fs.Rename(tmpName, path); err != nil {
			_ = fs.Remove(tmpName)
			return Unchanged, fmt.Errorf("rename temp to %s: %w", path, err)
		}
		return Written, nil
	default:
		_ = fs.Remove(tmpName)
		return Unchanged, fmt.Errorf("read existing %s: %w", path, err)
	}
}
