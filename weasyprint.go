package reportpdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/mss-eng/reportpdf/internal/fileutil"
)

// Rendering backends selectable through WithBackend.
const (
	backendChrome     = "chrome"
	backendWeasyPrint = "weasyprint"
)

// commandRunner abstracts subprocess execution to enable testing without real binaries.
type commandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stderr string, err error)
}

// execRunner implements commandRunner using os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stderr.String(), err
}

// weasyFooterCSS reproduces the "Page X of Y" counter through CSS paged
// media, which WeasyPrint implements natively. Margins match the Chrome
// backend, including the extra bottom room for the counter.
const weasyFooterCSS = `@page {
  margin: 0.4in;
  margin-bottom: 0.6in;
  @bottom-center {
    content: "Page " counter(page) " of " counter(pages);
    font-family: Arial, Helvetica, sans-serif;
    font-size: 9px;
    color: #777;
  }
}
`

// weasyConverter converts HTML to PDF by invoking the WeasyPrint CLI.
// It covers hosts where headless Chrome cannot run; page size and margins
// come from the document's own @page rules.
type weasyConverter struct {
	runner  commandRunner
	timeout time.Duration
}

var _ pdfConverter = (*weasyConverter)(nil)

// newWeasyConverter creates a weasyConverter with a real command runner.
func newWeasyConverter(timeout time.Duration) *weasyConverter {
	return &weasyConverter{runner: execRunner{}, timeout: timeout}
}

// ToPDF converts HTML content to PDF bytes using the weasyprint binary.
// The content is handed over through a temp file; the page counter is
// injected as an extra stylesheet when requested.
func (w *weasyConverter) ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	htmlPath, cleanupHTML, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanupHTML()

	outPath := htmlPath + ".pdf"
	defer func() { _ = os.Remove(outPath) }()

	args := []string{htmlPath, outPath}
	if opts != nil && opts.PageNumbers {
		cssPath, cleanupCSS, err := fileutil.WriteTempFile(weasyFooterCSS, "css")
		if err != nil {
			return nil, err
		}
		defer cleanupCSS()
		args = append(args, "-s", cssPath)
	}

	runCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	stderr, err := w.runner.Run(runCtx, "weasyprint", args...)
	if err != nil {
		if msg := strings.TrimSpace(stderr); msg != "" {
			return nil, fmt.Errorf("%w: %s: %v", ErrPDFGeneration, msg, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfData, err := os.ReadFile(outPath) // #nosec G304 -- path derives from our own temp file
	if err != nil {
		return nil, fmt.Errorf("%w: reading output: %v", ErrPDFGeneration, err)
	}
	return pdfData, nil
}

// Close is a no-op; each conversion runs a fresh process.
func (w *weasyConverter) Close() error {
	return nil
}
