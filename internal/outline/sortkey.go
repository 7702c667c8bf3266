package outline

import (
	"regexp"
	"sort"
	"strconv"
)

// noNumber is the sort key for filenames carrying no digit run at all; it is
// larger than any realistic file count so such files always sort last.
const noNumber = 1_000_000_000

var (
	leadingNumberRE = regexp.MustCompile(`^\s*0*([1-9]\d*|0)`)
	anyNumberRE     = regexp.MustCompile(`\d+`)
)

// SortKey extracts the ordering key for a filename: the value of its leading
// digit run (ignoring leading zeros), else the first digit run found anywhere
// in the name, else noNumber.
func SortKey(filename string) int {
	if filename == "" {
		return noNumber
	}
	if m := leadingNumberRE.FindStringSubmatch(filename); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
		return noNumber
	}
	if m := anyNumberRE.FindString(filename); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			return n
		}
	}
	return noNumber
}

// SortedFiles returns the group's files ordered by numeric key, with ties
// broken by filename. The receiver's slice is not modified.
func (g Group) SortedFiles() []File {
	files := make([]File, len(g.Files))
	copy(files, g.Files)
	sort.SliceStable(files, func(i, j int) bool {
		ki, kj := SortKey(files[i].Filename), SortKey(files[j].Filename)
		if ki != kj {
			return ki < kj
		}
		return files[i].Filename < files[j].Filename
	})
	return files
}
