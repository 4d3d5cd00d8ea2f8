// Package markdown renders note bodies to HTML via goldmark and owns the
// two tree passes the pipeline needs: rewriting bare media links into
// embedded players and discovering the first image as the post thumbnail.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// Renderer converts Markdown bodies into HTML. It is stateless and safe to
// reuse across files within a build.
type Renderer struct {
	md goldmark.Markdown
}

// New constructs a Renderer with GFM extensions, auto heading IDs, raw HTML
// passthrough, and the media-embed rewrite installed.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				&embedExtension{},
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

// Render parses source, returns the rendered HTML body and the destination
// of the first image in document order ("" when the note has no images).
func (r *Renderer) Render(source []byte) (body string, thumb string, err error) {
	doc := r.md.Parser().Parse(text.NewReader(source))
	thumb = FirstImage(doc, source)

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, source, doc); err != nil {
		return "", "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), thumb, nil
}
