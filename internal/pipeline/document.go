package pipeline

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrHTMLParse indicates the HTML input could not be parsed.
var ErrHTMLParse = errors.New("HTML parse failed")

// ParseDocument parses HTML into a full document tree. Fragments and
// malformed markup are accepted: the HTML5 algorithm supplies the missing
// html, head and body elements.
func ParseDocument(content string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLParse, err)
	}
	return doc, nil
}

// RenderDocument writes the document tree as HTML.
func RenderDocument(w io.Writer, doc *html.Node) error {
	return html.Render(w, doc)
}

// FindElement returns the first element with the given atom in document
// order, or nil.
func FindElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := FindElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

// DocumentTitle returns the trimmed text of the first <title> element.
func DocumentTitle(doc *html.Node) string {
	title := FindElement(doc, atom.Title)
	if title == nil {
		return ""
	}

	var sb strings.Builder
	for c := title.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(sb.String())
}

// EnsureCharset prepends <meta charset="utf-8"> to <head> unless the
// document already declares a charset. Documents are loaded from a file
// URL, where Chrome would otherwise guess the encoding of accented names.
func EnsureCharset(doc *html.Node) {
	head := FindElement(doc, atom.Head)
	if head == nil {
		return
	}

	for c := head.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.DataAtom != atom.Meta {
			continue
		}
		for _, attr := range c.Attr {
			if attr.Key == "charset" {
				return
			}
			if attr.Key == "http-equiv" && strings.EqualFold(attr.Val, "content-type") {
				return
			}
		}
	}

	meta := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Meta,
		Data:     "meta",
		Attr:     []html.Attribute{{Key: "charset", Val: "utf-8"}},
	}
	head.InsertBefore(meta, head.FirstChild)
}
