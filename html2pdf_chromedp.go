package resumaker

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// chromedpRenderer implements pdfRenderer with chromedp. The allocator and
// browser are started on first use and shared by later renders.
type chromedpRenderer struct {
	timeout     time.Duration
	browserCtx  context.Context
	cancelAlloc context.CancelFunc
	cancelCtx   context.CancelFunc
}

func newChromedpRenderer(timeout time.Duration) *chromedpRenderer {
	return &chromedpRenderer{timeout: timeout}
}

// allocatorOptions returns exec options honoring CHROME_PATH.
func allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if os.Getenv("CI") == "true" || os.Getenv("CHROME_PATH") != "" {
		opts = append(opts, chromedp.NoSandbox)
	}
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}
	return opts
}

// ensureBrowser starts Chrome. The browser lives until Close, independent
// of the per-render context.
func (r *chromedpRenderer) ensureBrowser() error {
	if r.browserCtx != nil {
		return nil
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), allocatorOptions()...)
	browserCtx, cancelCtx := chromedp.NewContext(allocCtx)

	// Run with no actions starts the browser.
	if err := chromedp.Run(browserCtx); err != nil {
		cancelCtx()
		cancelAlloc()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browserCtx = browserCtx
	r.cancelAlloc = cancelAlloc
	r.cancelCtx = cancelCtx
	return nil
}

// Close shuts the browser down. Safe to call more than once.
func (r *chromedpRenderer) Close() error {
	if r.cancelCtx != nil {
		r.cancelCtx()
		r.cancelCtx = nil
	}
	if r.cancelAlloc != nil {
		r.cancelAlloc()
		r.cancelAlloc = nil
	}
	r.browserCtx = nil
	return nil
}

// RenderFromFile opens the file in a new tab and writes the printed PDF to w.
func (r *chromedpRenderer) RenderFromFile(ctx context.Context, filePath string, settings *PageSettings, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.ensureBrowser(); err != nil {
		return err
	}

	tabCtx, cancelTab := chromedp.NewContext(r.browserCtx)
	defer cancelTab()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, r.timeout)
	defer cancelTimeout()

	// Propagate caller cancellation to the tab.
	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()

	if err := chromedp.Run(tabCtx,
		chromedp.Navigate(fileURL(filePath)),
		chromedp.WaitReady("body", chromedp.ByQuery),
	); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	width, height, margin := resolvePageDimensions(settings)

	var buf []byte
	err := chromedp.Run(tabCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		buf, _, err = page.PrintToPDF().
			WithPrintBackground(printBackground(settings)).
			WithPaperWidth(width).
			WithPaperHeight(height).
			WithMarginTop(margin).
			WithMarginBottom(margin).
			WithMarginLeft(margin).
			WithMarginRight(margin).
			Do(ctx)
		return err
	}))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("%w: %v", ErrPDFWrite, err)
	}
	return nil
}
