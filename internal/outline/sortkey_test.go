package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortKey(t *testing.T) {
	cases := []struct {
		filename string
		want     int
	}{
		{"2_b.pdf", 2},
		{"10_a.pdf", 10},
		{"007_notes.pdf", 7},
		{"0_intro.pdf", 0},
		{"  3 lab manual.pdf", 3},
		{"chapter_12_part3.pdf", 12},
		{"no-digits.pdf", noNumber},
		{"", noNumber},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SortKey(tc.filename), "filename %q", tc.filename)
	}
}

func TestSortedFiles_NumericThenName(t *testing.T) {
	g := Group{Files: []File{
		{Filename: "2_b.pdf"},
		{Filename: "10_a.pdf"},
		{Filename: "no-digits.pdf"},
	}}
	got := g.SortedFiles()
	assert.Equal(t, "2_b.pdf", got[0].Filename)
	assert.Equal(t, "10_a.pdf", got[1].Filename)
	assert.Equal(t, "no-digits.pdf", got[2].Filename)
}

func TestSortedFiles_TieBrokenByFilename(t *testing.T) {
	g := Group{Files: []File{
		{Filename: "3_z.pdf"},
		{Filename: "3_a.pdf"},
	}}
	got := g.SortedFiles()
	assert.Equal(t, "3_a.pdf", got[0].Filename)
	assert.Equal(t, "3_z.pdf", got[1].Filename)
}

func TestSortedFiles_DoesNotMutateGroup(t *testing.T) {
	g := Group{Files: []File{
		{Filename: "9_b.pdf"},
		{Filename: "1_a.pdf"},
	}}
	_ = g.SortedFiles()
	assert.Equal(t, "9_b.pdf", g.Files[0].Filename)
}
