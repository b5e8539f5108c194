package resumaker

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-resumaker/internal/pipeline"
)

// DocumentParser turns rendered template output into a document tree.
type DocumentParser interface {
	Parse(htmlContent string) (*Document, error)
}

// Document is a parsed, full HTML document.
type Document struct {
	root *html.Node
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// Title returns the text of the <title> element, or "".
func (d *Document) Title() string {
	return pipeline.DocumentTitle(d.root)
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return pipeline.RenderDocument(w, d.root)
}

// String renders the document, returning "" if rendering fails.
func (d *Document) String() string {
	var sb strings.Builder
	if err := d.Render(&sb); err != nil {
		return ""
	}
	return sb.String()
}

// HTMLDocumentParser parses HTML with the HTML5 algorithm, which accepts tag
// soup and wraps fragments into <html><head><body>.
type HTMLDocumentParser struct{}

// NewHTMLDocumentParser creates an HTMLDocumentParser.
func NewHTMLDocumentParser() *HTMLDocumentParser {
	return &HTMLDocumentParser{}
}

// Parse implements DocumentParser.
func (p *HTMLDocumentParser) Parse(htmlContent string) (*Document, error) {
	root, err := pipeline.ParseDocument(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentParse, err)
	}
	return &Document{root: root}, nil
}

// Compile-time interface check.
var _ DocumentParser = (*HTMLDocumentParser)(nil)
