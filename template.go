package notegen

import (
	"fmt"
	"html"
	"os"
	"strings"
)

// PageTemplate is the fixed HTML skeleton every post page is stamped from.
// Substitution is literal token replacement; there is no template logic.
type PageTemplate struct {
	skeleton string
}

// LoadPageTemplate reads the skeleton file. The skeleton is a mandatory
// shared resource: an unreadable file aborts the whole rebuild before any
// output is touched.
func LoadPageTemplate(path string) (*PageTemplate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("notegen: template missing at %s: %w", path, err)
	}
	return &PageTemplate{skeleton: string(raw)}, nil
}

// Render replaces every occurrence of the five placeholder tokens. Title,
// date, summary, and slug are HTML-escaped; content is already-rendered
// markup and is inserted verbatim. Replaced text is never rescanned, so a
// token appearing inside the content does not cascade.
func (t *PageTemplate) Render(p Post) string {
	return strings.NewReplacer(
		"{{TITLE}}", html.EscapeString(p.Title),
		"{{DATE}}", html.EscapeString(p.Date),
		"{{SUMMARY}}", html.EscapeString(p.Summary),
		"{{SLUG}}", html.EscapeString(p.Slug),
		"{{CONTENT}}", p.ContentHTML,
	).Replace(t.skeleton)
}
