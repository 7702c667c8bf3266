// Package siteconf holds the static-site build configuration. Everything the
// tooling used to carry as compiled-in constants (display-name table, link
// icon markup, directory layout, link-repair heuristics) lives here, so the
// generator and repairer run entirely from values handed to them.
package siteconf

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// DefaultPath is the override file looked for when --config is not given.
const DefaultPath = "site.hcl"

// Config drives both the template generator and the link repairer.
type Config struct {
	// DataDir holds the per-subject JSON descriptors.
	DataDir string `hcl:"data_dir,optional"`
	// TemplatesDir receives the rendered HTML fragments.
	TemplatesDir string `hcl:"templates_dir,optional"`
	// StaticDir is the asset root PDF hrefs resolve against.
	StaticDir string `hcl:"static_dir,optional"`
	// IndexFile is the document the link repairer rewrites by default.
	IndexFile string `hcl:"index_file,optional"`
	// SubjectBase prefixes per-subject page links in summaries.
	SubjectBase string `hcl:"subject_base,optional"`
	// ViewerPath is the PDF viewer page generated hrefs point at.
	ViewerPath string `hcl:"viewer_path,optional"`
	// BatchMarker prefixes the upload-batch segment in original filenames;
	// segments before it form the meaningful part of a name.
	BatchMarker string `hcl:"batch_marker,optional"`
	// SubjectCodes are tried in order when a dead link's filename has no
	// meaningful prefix at all.
	SubjectCodes []string `hcl:"subject_codes,optional"`
	// Icon is the inline markup for the decorative subject link icon.
	Icon string `hcl:"icon,optional"`
	// DisplayNames maps subject ids to full course names.
	DisplayNames map[string]string `hcl:"display_names,optional"`
}

const defaultIcon = `<svg width="1em" height="1em" viewBox="0 0 24 30" fill="currentColor" style="vertical-align:middle; margin-left: -0.25em">` +
	`<path class="cls-1" d="m21,12v6c0,1.6543-1.3457,3-3,3H6c-1.6543,0-3-1.3457-3-3V6c0-1.6543,1.3457-3,3-3h6c.55273,0,1,.44775,1,1s-.44727,1-1,1h-6c-.55176,0-1,.44873-1,1v12c0,.55127.44824,1,1,1h12c.55176,0,1-.44873,1-1v-6c0-.55225.44727-1,1-1s1,.44775,1,1Zm-1-9h-4c-.55273,0-1,.44775-1,1s.44727,1,1,1h1.58594l-9.29297,9.29297c-.39062.39062-.39062,1.02344,0,1.41406.19531.19531.45117.29297.70703.29297s.51172-.09766.70703-.29297l9.29297-9.29297v1.58594c0,.55225.44727,1,1,1s1-.44775,1-1v-4c0-.55225-.44727-1-1-1Z"/>` +
	`</svg>`

// Default returns the configuration matching the deployed site layout.
func Default() Config {
	return Config{
		DataDir:      "data",
		TemplatesDir: "templates",
		StaticDir:    "static",
		IndexFile:    "templates/index.html",
		SubjectBase:  "/sem-1/",
		ViewerPath:   "/pdf-viewer/",
		BatchMarker:  "UQ25",
		SubjectCodes: []string{"cfp", "mfca", "pce", "wd"},
		Icon:         defaultIcon,
		DisplayNames: map[string]string{
			"wd":   "Web Design",
			"pce":  "Professional Communication and Ethics",
			"cfp":  "Computational Foundation with Python",
			"mfca": "Mathematical Foundation for Computer Applications",
			"ciep": "Constitutional Law, Intellectual Property, Ethics",
			"mp":   "Macro Programming",
		},
	}
}

// Load layers an optional HCL override file on top of the defaults. An empty
// path means "use DefaultPath if it exists"; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}
