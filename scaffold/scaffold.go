// Package scaffold provides embedded template files for the notegen CLI:
// the project skeleton created by `notegen init` and the front-matter stub
// written by `notegen new`.
package scaffold

import "embed"

// Templates contains all scaffold files. Files with a .tmpl suffix are
// executed as Go text/templates; everything else is copied verbatim, which
// keeps the {{TITLE}}-style page tokens out of text/template's way.
//
//go:embed all:templates
var Templates embed.FS
