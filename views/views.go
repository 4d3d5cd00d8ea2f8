// Package views holds the templ components rendered by the preview server.
package views

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Note is the view model for one row of the preview index.
type Note struct {
	Slug    string
	Title   string
	Date    string
	Summary string
	Tags    []string
}

// Index returns a templ.Component for the preview landing page listing
// every built note with a link to its rendered page.
func Index(siteName string, notes []Note) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>")
		b.WriteString(html.EscapeString(siteName))
		b.WriteString("</title></head><body>\n<h1>")
		b.WriteString(html.EscapeString(siteName))
		b.WriteString("</h1>\n<ul>\n")
		for _, n := range notes {
			b.WriteString(`<li><a href="/notes/`)
			b.WriteString(html.EscapeString(n.Slug))
			b.WriteString(`.html">`)
			b.WriteString(html.EscapeString(n.Title))
			b.WriteString("</a>")
			if n.Date != "" {
				b.WriteString(" <small>")
				b.WriteString(html.EscapeString(n.Date))
				b.WriteString("</small>")
			}
			if len(n.Tags) > 0 {
				b.WriteString(" <small>[")
				b.WriteString(html.EscapeString(strings.Join(n.Tags, ", ")))
				b.WriteString("]</small>")
			}
			if n.Summary != "" {
				b.WriteString("<br/><em>")
				b.WriteString(html.EscapeString(n.Summary))
				b.WriteString("</em>")
			}
			b.WriteString("</li>\n")
		}
		b.WriteString("</ul>\n</body></html>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
