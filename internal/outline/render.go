package outline

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Renderer turns a Subject into a static HTML fragment. All values that used
// to be hardcoded site constants are injected here so rendering can be tested
// in isolation.
type Renderer struct {
	// DisplayNames maps subject ids to full course names. Unknown ids fall
	// back to the id with hyphens replaced by spaces, title-cased.
	DisplayNames map[string]string
	// Icon is the inline markup for the decorative external-link icon next to
	// the subject name.
	Icon string
	// SubjectBase prefixes the per-subject page link, e.g. "/sem-1/".
	SubjectBase string
	// ViewerPath is the PDF viewer page, e.g. "/pdf-viewer/".
	ViewerPath string
}

// DisplayName resolves the human-readable name for a subject id.
func (r *Renderer) DisplayName(subject string) string {
	if name, ok := r.DisplayNames[subject]; ok {
		return name
	}
	// Casers are stateful, so build one per call.
	return cases.Title(language.English).String(strings.ReplaceAll(subject, "-", " "))
}

// Render produces the nested disclosure fragment for one subject. Output is
// fully determined by its inputs: identical descriptors yield byte-identical
// fragments, which is what lets the generator skip unchanged files.
func (r *Renderer) Render(subject, source string, s *Subject) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line("<!-- generated from %s -->", source)
	line("<details>")
	line("  <summary>")
	line("    %s", Escape(r.DisplayName(subject)))
	line(`    <sup><a href="%s%s/" style="border-bottom: none;">%s</a></sup>`, r.SubjectBase, Escape(subject), r.Icon)
	line("  </summary>")
	line("  <ul>")

	for _, unit := range s.Units {
		line("    <li>")
		line("      <details>")
		line("        <summary>Unit-%s</summary>", Escape(unit.ID))
		line("        <ul>")
		line("          <li>")
		for _, group := range unit.Groups {
			line("            <details>")
			line("              <summary>%s</summary>", Escape(group.Type))
			line("              <ul>")
			for _, file := range group.SortedFiles() {
				line(`                <li><a href="%s">%s</a></li>`, Escape(r.ViewerHref(file)), Escape(file.LinkText))
			}
			line("              </ul>")
			line("            </details>")
		}
		line("          </li>")
		line("        </ul>")
		line("      </details>")
		line("    </li>")
	}

	line("  </ul>")
	line("</details>")
	return b.String()
}

// ViewerHref builds the link to the PDF viewer page for a file. The viewer
// expects a 'file' param holding the proxy-servable resource URL; a 'title'
// param is added when the file has link text.
func (r *Renderer) ViewerHref(f File) string {
	href := r.ViewerPath + "?file=" + quoteComponent(f.URL)
	if f.LinkText != "" {
		href += "&title=" + quoteComponent(f.LinkText)
	}
	return href
}

// quoteComponent percent-encodes everything outside the URL-unreserved set,
// including '/' and ':'. Spaces become %20, not '+'.
func quoteComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Escape replaces the three reserved HTML characters. Ampersand goes first so
// entities introduced by the other substitutions are not escaped twice.
func Escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	return strings.ReplaceAll(s, ">", "&gt;")
}
