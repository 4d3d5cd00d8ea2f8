package markdown

import (
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var (
	reYouTube = regexp.MustCompile(`^https?://(?:www\.)?(?:youtube\.com/watch\?v=|youtu\.be/)([\w-]+)`)
	reTweet   = regexp.MustCompile(`^https?://(?:www\.)?(?:twitter\.com|x\.com)/[^/]+/status/\d+`)
)

type embedProvider int

const (
	embedYouTube embedProvider = iota
	embedTweet
)

// embedNode is a block node standing in for a paragraph that held nothing
// but a recognized media link. It renders as provider-specific raw HTML.
type embedNode struct {
	ast.BaseBlock

	provider embedProvider
	videoID  string
	url      string
}

var kindEmbed = ast.NewNodeKind("MediaEmbed")

func (n *embedNode) Kind() ast.NodeKind { return kindEmbed }

func (n *embedNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"URL": n.url}, nil)
}

// matchEmbed classifies a link destination. YouTube is checked first; a
// destination matches at most one provider.
func matchEmbed(dest string) *embedNode {
	if m := reYouTube.FindStringSubmatch(dest); m != nil {
		return &embedNode{provider: embedYouTube, videoID: m[1], url: dest}
	}
	if reTweet.MatchString(dest) {
		return &embedNode{provider: embedTweet, url: dest}
	}
	return nil
}

// embedTransformer replaces every top-level paragraph whose sole child is a
// link to a recognized provider with an embedNode. Links that share the
// paragraph with any other inline content are left alone.
type embedTransformer struct{}

func (embedTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()
	for node := doc.FirstChild(); node != nil; {
		next := node.NextSibling()
		if embed := matchParagraph(node, source); embed != nil {
			doc.ReplaceChild(doc, node, embed)
		}
		node = next
	}
}

func matchParagraph(node ast.Node, source []byte) *embedNode {
	para, ok := node.(*ast.Paragraph)
	if !ok || para.ChildCount() != 1 {
		return nil
	}
	switch child := para.FirstChild().(type) {
	case *ast.Link:
		return matchEmbed(string(child.Destination))
	case *ast.AutoLink:
		// Linkify turns a bare pasted URL into an AutoLink rather than a
		// Link node; both count as a lone link here.
		return matchEmbed(string(child.URL(source)))
	}
	return nil
}

// embedRenderer emits the raw embed markup for embedNode.
type embedRenderer struct{}

func (r *embedRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(kindEmbed, r.render)
}

func (r *embedRenderer) render(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*embedNode)
	switch n.provider {
	case embedYouTube:
		_, _ = w.WriteString(`<div class="video-container"><iframe src="https://www.youtube.com/embed/`)
		_, _ = w.WriteString(n.videoID)
		_, _ = w.WriteString(`" frameborder="0" allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture" allowfullscreen></iframe></div>`)
	case embedTweet:
		_, _ = w.WriteString(`<blockquote class="twitter-tweet"><a href="`)
		_, _ = w.Write(util.EscapeHTML([]byte(n.url)))
		_, _ = w.WriteString(`"></a></blockquote>`)
	}
	_ = w.WriteByte('\n')
	return ast.WalkContinue, nil
}

// embedExtension wires the transformer and renderer into a goldmark engine.
type embedExtension struct{}

func (e *embedExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&embedTransformer{}, 500),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&embedRenderer{}, 500),
	))
}
