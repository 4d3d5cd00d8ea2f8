package markdown

import "github.com/yuin/goldmark/ast"

// FirstImage returns the destination of the first image node in document
// order, descending into container nodes, or "" when the tree holds no
// images. The tree is not modified.
func FirstImage(doc ast.Node, source []byte) string {
	var dest string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindImage {
			dest = string(n.(*ast.Image).Destination)
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return dest
}
