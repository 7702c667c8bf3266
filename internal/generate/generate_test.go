package generate

import (
	"bytes"
	"strings"
	"testing"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lalithbseervi/pes-bca/internal/siteconf"
)

const wdDescriptor = `{"units":[{"unit":1,"groups":[{"type":"Notes","files":[
	{"filename":"1_intro.pdf","linkText":"Intro","url":"https://x/1.pdf"}
]}]}]}`

func seed(t *testing.T, files map[string]string) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	for path, content := range files {
		require.NoError(t, util.WriteFile(fs, path, []byte(content), 0o644))
	}
	return fs
}

func run(t *testing.T, fs billy.Filesystem) (stdout, stderr string, err error) {
	t.Helper()
	var out, errw bytes.Buffer
	err = Run(fs, siteconf.Default(), &out, &errw)
	return out.String(), errw.String(), err
}

func TestRun_WritesFragmentPerSubject(t *testing.T) {
	fs := seed(t, map[string]string{"data/wd.json": wdDescriptor})

	stdout, stderr, err := run(t, fs)
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "Wrote template templates/wd.html\n")

	html, err := util.ReadFile(fs, "templates/wd.html")
	require.NoError(t, err)
	assert.Contains(t, string(html), "<!-- generated from data/wd.json -->")
	assert.Contains(t, string(html), "<summary>Unit-1</summary>")
	assert.Contains(t, string(html), "Web Design")
}

func TestRun_SecondRunIsUnchanged(t *testing.T) {
	fs := seed(t, map[string]string{
		"data/wd.json":  wdDescriptor,
		"data/cfp.json": `{"units":[]}`,
	})

	_, _, err := run(t, fs)
	require.NoError(t, err)
	first, err := util.ReadFile(fs, "templates/wd.html")
	require.NoError(t, err)

	stdout, _, err := run(t, fs)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Unchanged template templates/cfp.html\n")
	assert.Contains(t, stdout, "Unchanged template templates/wd.html\n")
	assert.NotContains(t, stdout, "Wrote template")

	second, err := util.ReadFile(fs, "templates/wd.html")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRun_ChangedDescriptorIsUpdated(t *testing.T) {
	fs := seed(t, map[string]string{"data/wd.json": wdDescriptor})

	_, _, err := run(t, fs)
	require.NoError(t, err)

	require.NoError(t, util.WriteFile(fs, "data/wd.json",
		[]byte(`{"units":[{"unit":2,"groups":[]}]}`), 0o644))

	stdout, _, err := run(t, fs)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Updated template templates/wd.html\n")
}

func TestRun_MalformedSubjectIsSkipped(t *testing.T) {
	fs := seed(t, map[string]string{
		"data/bad.json": `{"units": [`,
		"data/wd.json":  wdDescriptor,
	})

	stdout, stderr, err := run(t, fs)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Skipping data/bad.json: invalid json (")
	assert.Contains(t, stdout, "Wrote template templates/wd.html\n")

	_, err = fs.Stat("templates/bad.html")
	assert.Error(t, err, "no partial file for the skipped subject")
}

func TestRun_SubjectsProcessedInNameOrder(t *testing.T) {
	fs := seed(t, map[string]string{
		"data/wd.json":   `{"units":[]}`,
		"data/cfp.json":  `{"units":[]}`,
		"data/mfca.json": `{"units":[]}`,
	})

	stdout, _, err := run(t, fs)
	require.NoError(t, err)
	icfp := strings.Index(stdout, "cfp.html")
	imfca := strings.Index(stdout, "mfca.html")
	iwd := strings.Index(stdout, "wd.html")
	assert.Less(t, icfp, imfca)
	assert.Less(t, imfca, iwd)
}

func TestRun_NonJSONFilesIgnored(t *testing.T) {
	fs := seed(t, map[string]string{
		"data/wd.json":   `{"units":[]}`,
		"data/README.md": "not a descriptor",
	})

	stdout, stderr, err := run(t, fs)
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.NotContains(t, stdout, "README")
}

func TestRun_MissingDataDirIsFatal(t *testing.T) {
	_, _, err := run(t, memfs.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data directory")
}
