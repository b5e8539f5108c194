package resumaker

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-resumaker/internal/process"
)

// pdfRenderer lays out a local HTML file and writes the PDF to w. It allows
// swapping the browser backend and testing without a browser.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, page *PageSettings, w io.Writer) error
	Close() error
}

// Compile-time interface checks.
var (
	_ pdfRenderer = (*rodRenderer)(nil)
	_ pdfRenderer = (*chromedpRenderer)(nil)
)

// newPDFRenderer returns the renderer for an engine name.
func newPDFRenderer(engine string, timeout time.Duration) (pdfRenderer, error) {
	switch engine {
	case "", EngineRod:
		return newRodRenderer(timeout), nil
	case EngineChromedp:
		return newChromedpRenderer(timeout), nil
	default:
		return nil, fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidEngine, engine, EngineRod, EngineChromedp)
	}
}

// fileURL converts an absolute path to a file:// URL.
func fileURL(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}

// rodRenderer implements pdfRenderer using go-rod.
// Rod downloads Chromium on first run if no browser is found.
type rodRenderer struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Pre-installed browser (Docker images, CI).
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") != "" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.launcher = l
	r.browser = browser
	return nil
}

// Close releases browser resources and kills the Chrome process tree.
// Safe to call more than once.
func (r *rodRenderer) Close() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	if r.launcher != nil {
		process.KillProcessGroup(r.launcher.PID())
		r.launcher.Kill()
		r.launcher = nil
	}
	return err
}

// RenderFromFile opens a local HTML file in headless Chrome and streams the
// printed PDF to w.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, page *PageSettings, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := r.ensureBrowser(); err != nil {
		return err
	}

	p, err := r.browser.Page(proto.TargetCreateTarget{URL: fileURL(filePath)})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer p.Close()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return context.DeadlineExceeded
		}
	}
	p = p.Context(ctx).Timeout(timeout)

	if err := p.WaitLoad(); err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	reader, err := p.PDF(buildRodPDFOptions(page))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	if _, err := io.Copy(w, reader); err != nil {
		return fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return nil
}

// buildRodPDFOptions constructs the print parameters for rod.
func buildRodPDFOptions(page *PageSettings) *proto.PagePrintToPDF {
	width, height, margin := resolvePageDimensions(page)
	return &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(width),
		PaperHeight:     floatPtr(height),
		MarginTop:       floatPtr(margin),
		MarginBottom:    floatPtr(margin),
		MarginLeft:      floatPtr(margin),
		MarginRight:     floatPtr(margin),
		PrintBackground: printBackground(page),
	}
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
