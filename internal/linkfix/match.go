package linkfix

import (
	"path/filepath"
	"sort"
	"strings"
)

// findReplacement looks for a renamed file to stand in for a missing one.
// The filename is split on '_' and the segments before the batch marker form
// the search key; matching is a substring scan over PDFs in the same
// directory. When several files match, the shortest name wins (then
// lexicographic), so the choice never depends on directory-listing order.
func (f *Fixer) findReplacement(oldPath string) (string, bool) {
	dir := filepath.Dir(oldPath)
	if dir == "." {
		dir = ""
	}

	var baseParts []string
	for _, part := range strings.Split(filepath.Base(oldPath), "_") {
		if strings.HasPrefix(part, f.Marker) {
			break
		}
		baseParts = append(baseParts, part)
	}

	if len(baseParts) == 0 {
		return f.guessBySubjectCode(oldPath, dir)
	}

	if match, ok := f.matchInDir(dir, strings.Join(baseParts, "_")); ok {
		return match, true
	}
	// Retry with just the first meaningful segment.
	return f.matchInDir(dir, baseParts[0])
}

// matchInDir returns the best PDF in dir whose name contains substr.
func (f *Fixer) matchInDir(dir, substr string) (string, bool) {
	if substr == "" {
		return "", false
	}
	return f.pickPDF(dir, func(name string) bool {
		return strings.Contains(name, substr)
	})
}

// guessBySubjectCode handles names with no meaningful prefix: guess the course
// from a known code appearing anywhere in the path, then take a PDF in the
// same directory carrying that code in upper case.
func (f *Fixer) guessBySubjectCode(oldPath, dir string) (string, bool) {
	lower := strings.ToLower(oldPath)
	for _, code := range f.SubjectCodes {
		if !strings.Contains(lower, strings.ToLower(code)) {
			continue
		}
		upper := strings.ToUpper(code)
		return f.pickPDF(dir, func(name string) bool {
			return strings.Contains(name, upper)
		})
	}
	return "", false
}

// pickPDF lists the static directory for dir and returns the matching PDF
// with the shortest name, ties broken lexicographically.
func (f *Fixer) pickPDF(dir string, match func(name string) bool) (string, bool) {
	entries, err := f.FS.ReadDir(filepath.Join(f.StaticDir, dir))
	if err != nil {
		return "", false
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() && strings.HasSuffix(name, ".pdf") && match(name) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", false
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) < len(names[j])
		}
		return names[i] < names[j]
	})
	return filepath.Join(dir, names[0]), true
}
