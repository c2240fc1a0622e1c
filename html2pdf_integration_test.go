//go:build integration

package reportpdf

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func assertValidPDF(t *testing.T, data []byte) {
	t.Helper()

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output missing PDF magic bytes, got prefix %q", data[:min(10, len(data))])
	}
	if len(data) < 100 {
		t.Errorf("output suspiciously small: %d bytes", len(data))
	}
}

func assertValidPDFFile(t *testing.T, path string) {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading spooled PDF: %v", err)
	}
	assertValidPDF(t, data)
}

// multiPageHTML wraps body paragraphs in a minimal document long enough
// to spill onto a second page.
func multiPageHTML(title string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head><title>" + title + "</title></head>\n<body>\n")
	for i := 0; i < 80; i++ {
		b.WriteString("<p>Inspection paragraph with enough text to fill the page.</p>\n")
	}
	b.WriteString("</body>\n</html>")
	return b.String()
}

// The converter integration tests need a working browser. Rod downloads
// a Chromium build on first run when none is installed.
func TestChromeConverter_Integration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		opts *pdfOptions
	}{
		{
			name: "single page without footer",
			html: "<!DOCTYPE html>\n<html><head><title>Visit</title></head><body><h1>Pump room</h1><p>No findings.</p></body></html>",
		},
		{
			name: "multi page with page counter",
			html: multiPageHTML("Numbered"),
			opts: &pdfOptions{PageNumbers: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv := newChromeConverter(testTimeout)
			defer conv.Close()

			data, err := conv.ToPDF(context.Background(), tt.html, tt.opts)
			if err != nil {
				t.Fatalf("ToPDF() error = %v", err)
			}
			assertValidPDF(t, data)
		})
	}
}

// Skipped unless the weasyprint binary is on PATH.
func TestWeasyConverter_Integration(t *testing.T) {
	if _, err := exec.LookPath("weasyprint"); err != nil {
		t.Skip("weasyprint not installed")
	}
	t.Parallel()

	conv := newWeasyConverter(testTimeout)
	defer conv.Close()

	for _, opts := range []*pdfOptions{nil, {PageNumbers: true}} {
		data, err := conv.ToPDF(context.Background(), multiPageHTML("Weasy"), opts)
		if err != nil {
			t.Fatalf("ToPDF(opts=%+v) error = %v", opts, err)
		}
		assertValidPDF(t, data)
	}
}

func TestChromeRenderer_ConnectInCI(t *testing.T) {
	t.Setenv("CI", "true")

	r := newChromeRenderer(testTimeout)
	defer r.Close()

	if err := r.connect(); err != nil {
		t.Fatalf("connect() with CI=true error = %v", err)
	}
	if r.browser == nil {
		t.Error("browser is nil after connect()")
	}
}

// A dead context must be reported before any browser work starts.
func TestChromeRenderer_DeadContext(t *testing.T) {
	t.Parallel()

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	expired, cancelExpired := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancelExpired()

	tests := []struct {
		name string
		ctx  context.Context
		want error
	}{
		{name: "cancelled", ctx: cancelled, want: context.Canceled},
		{name: "deadline passed", ctx: expired, want: context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newChromeRenderer(testTimeout)
			defer r.Close()

			_, err := r.RenderFromFile(tt.ctx, "/tmp/unused.html", nil)
			if err != tt.want {
				t.Errorf("RenderFromFile() error = %v, want %v", err, tt.want)
			}
		})
	}
}
