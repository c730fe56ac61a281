// Package render converts Markdown documents into HTML pages using the
// site's templates.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// engine is the shared Markdown converter. goldmark instances are safe for
// concurrent use, so one engine serves the whole build.
var engine = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Footnote),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// Markdown converts CommonMark text to HTML.
func Markdown(src []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := engine.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("Markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
