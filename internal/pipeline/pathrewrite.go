package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// RewriteRelativePaths converts relative img[src], link[href] and a[href]
// values to absolute file:// URLs under baseDir. The document is laid out
// from a temporary file, so relative references in custom templates would
// otherwise resolve against the temp directory. An empty baseDir is a no-op.
//
// Left untouched: URLs, anchors, absolute paths, script[src], and paths
// escaping baseDir.
func RewriteRelativePaths(doc *html.Node, baseDir string) error {
	if baseDir == "" {
		return nil
	}

	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return err
	}

	rewriteNode(doc, absBaseDir)
	return nil
}

func rewriteNode(n *html.Node, baseDir string) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "img":
			rewriteAttr(n, "src", baseDir)
		case "a", "link":
			rewriteAttr(n, "href", baseDir)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, baseDir)
	}
}

func rewriteAttr(n *html.Node, attrName, baseDir string) {
	for i, attr := range n.Attr {
		if attr.Key != attrName || !isRelativePath(attr.Val) {
			continue
		}

		absPath := filepath.Join(baseDir, attr.Val)
		if !isPathUnderDir(absPath, baseDir) {
			continue
		}

		n.Attr[i].Val = pathToFileURL(absPath)
	}
}

// isRelativePath reports whether the value is a relative filesystem path.
func isRelativePath(path string) bool {
	if path == "" || strings.HasPrefix(path, "#") || strings.HasPrefix(path, "//") {
		return false
	}
	if u, err := url.Parse(path); err == nil && u.Scheme != "" {
		// http, https, file, data, mailto, tel...
		return false
	}
	return !filepath.IsAbs(path)
}

func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)

	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}

func pathToFileURL(absPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(absPath),
	}
	return u.String()
}
