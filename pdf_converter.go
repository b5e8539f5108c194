package resumaker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-resumaker/internal/fileutil"
	"github.com/alnah/go-resumaker/internal/pipeline"
)

// PDFConverter writes the PDF of an HTML document to outPath and returns
// the absolute path written.
type PDFConverter interface {
	Convert(ctx context.Context, htmlContent, outPath string) (string, error)
}

// DocumentPDFConverter parses HTML, normalizes it and prints it with a
// headless browser. Create with NewDocumentPDFConverter and Close when done.
type DocumentPDFConverter struct {
	parser   DocumentParser
	files    FileLocator
	renderer pdfRenderer
	page     *PageSettings
	baseDir  string
	logger   *zap.Logger
}

// rootedLocator is implemented by locators that resolve against a directory.
type rootedLocator interface {
	Root() string
}

// NewDocumentPDFConverter creates a converter writing through files.
// Relevant options: WithEngine, WithTimeout, WithPageSettings, WithLogger.
// The browser is launched on the first Convert.
func NewDocumentPDFConverter(files FileLocator, opts ...Option) (*DocumentPDFConverter, error) {
	o := newOptions(opts)

	if err := o.page.Validate(); err != nil {
		return nil, err
	}

	renderer := o.renderer
	if renderer == nil {
		var err error
		renderer, err = newPDFRenderer(o.engine, o.timeout)
		if err != nil {
			return nil, err
		}
	}

	c := &DocumentPDFConverter{
		parser:   NewHTMLDocumentParser(),
		files:    files,
		renderer: renderer,
		page:     o.page,
		logger:   o.logger,
	}
	// Relative img/link references in templates resolve against the
	// locator root, not the temp directory the page is loaded from.
	if rl, ok := files.(rootedLocator); ok {
		c.baseDir = rl.Root()
	}
	return c, nil
}

// Convert implements PDFConverter.
func (c *DocumentPDFConverter) Convert(ctx context.Context, htmlContent, outPath string) (string, error) {
	doc, err := c.parser.Parse(htmlContent)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPDFConvert, err)
	}
	pipeline.EnsureCharset(doc.Root())
	if err := pipeline.RewriteRelativePaths(doc.Root(), c.baseDir); err != nil {
		return "", fmt.Errorf("%w: %w: %v", ErrPDFConvert, ErrDocumentParse, err)
	}

	out, err := c.files.Find(outPath, true)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPDFConvert, err)
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(doc.Render, "html")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPDFConvert, err)
	}
	defer cleanup()

	start := time.Now()
	if err := c.writePDF(ctx, tmpPath, out); err != nil {
		return "", fmt.Errorf("%w: %w", ErrPDFConvert, err)
	}

	c.logger.Debug("PDF laid out",
		zap.String("title", doc.Title()),
		zap.String("path", out),
		zap.Duration("duration", time.Since(start)),
	)
	return out, nil
}

// writePDF renders htmlPath into out, removing out on any failure.
func (c *DocumentPDFConverter) writePDF(ctx context.Context, htmlPath, out string) (err error) {
	f, err := os.OpenFile(out, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644) // #nosec G302 G304 -- PDFs are meant to be shared
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPDFWrite, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrPDFWrite, closeErr)
		}
		if err != nil {
			_ = os.Remove(out)
		}
	}()

	return c.renderer.RenderFromFile(ctx, htmlPath, c.page, f)
}

// Close releases the browser.
func (c *DocumentPDFConverter) Close() error {
	if c.renderer == nil {
		return nil
	}
	return c.renderer.Close()
}

// IsBrowserError reports whether err comes from launching or driving the
// browser rather than from the document itself.
func IsBrowserError(err error) bool {
	return errors.Is(err, ErrBrowserConnect) ||
		errors.Is(err, ErrPageCreate) ||
		errors.Is(err, ErrPageLoad)
}

// Compile-time interface check.
var _ PDFConverter = (*DocumentPDFConverter)(nil)
