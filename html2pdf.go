package reportpdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/mss-eng/reportpdf/internal/fileutil"
	"github.com/mss-eng/reportpdf/internal/hints"
	"github.com/mss-eng/reportpdf/internal/process"
)

// pdfConverter turns rendered HTML into PDF bytes. Two implementations
// exist: chromeConverter (headless Chrome via go-rod, the default) and
// weasyConverter (the WeasyPrint CLI).
type pdfConverter interface {
	ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error)
	Close() error
}

// pdfRenderer renders an HTML file already on disk. Splitting it from
// pdfConverter lets tests cover the temp-file plumbing without a browser.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error)
}

// Compile-time interface checks
var (
	_ pdfConverter = (*chromeConverter)(nil)
	_ pdfRenderer  = (*chromeRenderer)(nil)
)

// pdfOptions holds options for PDF generation.
type pdfOptions struct {
	PageNumbers bool // render a "Page X of Y" footer on every page
}

// A4 page geometry. Chrome's print API takes inches, so 210x297mm
// becomes 8.27x11.69.
const (
	paperWidthInches   = 8.27
	paperHeightInches  = 11.69
	marginInches       = 0.4
	footerMarginInches = 0.6 // bottom margin when the page counter is on
)

// footerTemplate is Chrome's native print footer. Chrome substitutes the
// pageNumber and totalPages spans while printing, so the counter stays
// correct when content reflows.
const footerTemplate = `<div style="font-size: 9px; font-family: Arial, Helvetica, sans-serif; color: #777; width: 100%; text-align: center;">Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`

// printSettings maps pdfOptions onto Chrome's print call. Turning the
// page counter on claims extra bottom margin so the footer does not
// overlap content.
func printSettings(opts *pdfOptions) *proto.PagePrintToPDF {
	pageNumbers := opts != nil && opts.PageNumbers

	bottom := marginInches
	if pageNumbers {
		bottom = footerMarginInches
	}

	settings := &proto.PagePrintToPDF{
		PaperWidth:      ptr(paperWidthInches),
		PaperHeight:     ptr(paperHeightInches),
		MarginTop:       ptr(marginInches),
		MarginBottom:    ptr(bottom),
		MarginLeft:      ptr(marginInches),
		MarginRight:     ptr(marginInches),
		PrintBackground: true,
	}

	if pageNumbers {
		settings.DisplayHeaderFooter = true
		settings.HeaderTemplate = "<span></span>" // Empty header
		settings.FooterTemplate = footerTemplate
	}

	return settings
}

func ptr[T any](v T) *T { return &v }

// chromeRenderer drives headless Chrome through go-rod. The browser is
// launched on first use; rod downloads a Chromium build when none is
// installed.
type chromeRenderer struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration
}

func newChromeRenderer(timeout time.Duration) *chromeRenderer {
	return &chromeRenderer{timeout: timeout}
}

// newLauncher configures the browser launcher from the environment.
// ROD_BROWSER_BIN points at a pre-installed browser (container images
// ship one to avoid the download). The Chrome sandbox cannot run inside
// most containers or CI runners, so the same switches the connect-error
// hints suggest turn it off.
func newLauncher() *launcher.Launcher {
	l := launcher.New()

	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	if os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("CI") == "true" ||
		os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	return l
}

// connect launches the browser on the first call and is a no-op after.
func (r *chromeRenderer) connect() error {
	if r.browser != nil {
		return nil
	}

	l := newLauncher()
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v%s", ErrBrowserConnect, err, hints.ForBrowserConnect())
	}
	r.launcher = l

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("%w: %v%s", ErrBrowserConnect, err, hints.ForBrowserConnect())
	}
	r.browser = browser
	return nil
}

// Close shuts the browser down.
func (r *chromeRenderer) Close() error {
	if r.browser == nil {
		return nil
	}
	err := r.browser.Close()
	r.browser = nil

	// Chrome can leave renderer children behind after the DevTools
	// session ends; reap the whole process group.
	if r.launcher != nil {
		process.KillProcessGroup(r.launcher.PID())
		r.launcher = nil
	}
	return err
}

// loadTimeout picks the page-load budget: the context deadline when one
// is set, the configured timeout otherwise.
func (r *chromeRenderer) loadTimeout(ctx context.Context) (time.Duration, error) {
	deadline, ok := ctx.Deadline()
	if !ok {
		return r.timeout, nil
	}
	remaining := time.Until(deadline)
	if remaining <= 0 {
		return 0, context.DeadlineExceeded
	}
	return remaining, nil
}

// RenderFromFile opens a local HTML file in headless Chrome and prints
// it to PDF. Browser failures come back as wrapped sentinel errors, not
// panics.
func (r *chromeRenderer) RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.connect(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout, err := r.loadTimeout(ctx)
	if err != nil {
		return nil, err
	}
	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v%s", ErrPageLoad, err, hints.ForTimeout())
	}

	// The context may have expired while the page loaded.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stream, err := page.PDF(printSettings(opts))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBytes, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return pdfBytes, nil
}

// chromeConverter converts HTML to PDF using headless Chrome via go-rod.
// Content is handed to the browser through a temp file so no HTTP server
// is needed.
type chromeConverter struct {
	renderer pdfRenderer
	closer   io.Closer
}

func newChromeConverter(timeout time.Duration) *chromeConverter {
	r := newChromeRenderer(timeout)
	return &chromeConverter{renderer: r, closer: r}
}

// ToPDF writes htmlContent to a temp file and renders it.
func (c *chromeConverter) ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.renderer.RenderFromFile(ctx, tmpPath, opts)
}

// Close releases browser resources.
func (c *chromeConverter) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}
