package reportpdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/mss-eng/reportpdf/internal/assets"
)

// Service orchestrates report rendering and PDF generation.
// Create with New(), generate with GenerateReport() or GenerateHTML(),
// and Close() when done.
type Service struct {
	cfg    serviceConfig
	report reportRenderer
	legacy legacyRenderer
	pool   *converterPool
	store  *artifactStore

	converterFactory func() pdfConverter
	now              func() time.Time
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithLogoPath,
// WithSpoolDir). Returns error if the spool directory cannot be created
// or a configured assets directory is unusable.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		cfg: serviceConfig{
			timeout: defaultTimeout,
			grace:   defaultRemovalGrace,
		},
		now: time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.cfg.spoolDir == "" {
		s.cfg.spoolDir = filepath.Join(os.TempDir(), "reportpdf")
	}

	store, err := newArtifactStore(s.cfg.spoolDir, s.cfg.grace)
	if err != nil {
		return nil, err
	}
	s.store = store

	loader, err := assets.NewAssetResolver(s.cfg.assetsDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetsDir, err)
	}

	// Create renderers if not injected (e.g., by tests). The logo is read
	// once and shared by every render; a missing or unreadable logo is
	// tolerated and reports simply render without one.
	if s.report == nil {
		var logoURI string
		if s.cfg.logoPath != "" {
			if uri, err := assets.LoadLogoDataURI(s.cfg.logoPath); err == nil {
				logoURI = uri
			}
		}
		report, err := newTemplateRenderer(loader, logoURI, s.now)
		if err != nil {
			return nil, err
		}
		s.report = report
	}
	if s.legacy == nil {
		legacy, err := newLegacyRendering(loader)
		if err != nil {
			return nil, err
		}
		s.legacy = legacy
	}

	// Create converter factory if not injected (e.g., by tests)
	if s.converterFactory == nil {
		timeout := s.cfg.timeout
		switch s.cfg.backend {
		case backendWeasyPrint:
			s.converterFactory = func() pdfConverter {
				return newWeasyConverter(timeout)
			}
		default:
			s.converterFactory = func() pdfConverter {
				return newChromeConverter(timeout)
			}
		}
	}
	s.pool = newConverterPool(ResolvePoolSize(s.cfg.workers), s.converterFactory)

	return s, nil
}

// GenerateReport renders a structured report and converts it to PDF.
// The returned Document points at a file in the spool directory; call
// Release() once it has been delivered to the client.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (s *Service) GenerateReport(ctx context.Context, rec ReportRecord) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	htmlContent, err := s.report.Render(ctx, rec)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := s.convert(ctx, htmlContent, &pdfOptions{PageNumbers: true})
	if err != nil {
		return nil, err
	}

	return s.spool(pdfBytes, reportFilename(rec, s.now()))
}

// GenerateHTML converts caller-supplied HTML to PDF.
// Script tags are stripped and the document is wrapped in the standard
// print stylesheet before conversion. The filename is used as the
// download name, or a timestamped default when empty.
// Returns ErrNoHTMLContent when htmlContent is empty.
func (s *Service) GenerateHTML(ctx context.Context, htmlContent, filename string) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if htmlContent == "" {
		return nil, ErrNoHTMLContent
	}

	wrapped := s.legacy.Render(ctx, htmlContent)

	// The original service printed these documents without a page
	// counter, so legacy output keeps that layout.
	pdfBytes, err := s.convert(ctx, wrapped, nil)
	if err != nil {
		return nil, err
	}

	return s.spool(pdfBytes, legacyFilename(filename, s.now()))
}

// RenderReport returns the report HTML without converting it to PDF.
// Useful for previewing template output during development.
func (s *Service) RenderReport(ctx context.Context, rec ReportRecord) (string, error) {
	return s.report.Render(ctx, rec)
}

// Release schedules the document's spool file for deletion after the
// grace period. Safe to call with nil.
func (s *Service) Release(doc *Document) {
	if doc == nil {
		return
	}
	s.store.ScheduleRemoval(doc.Path)
}

// SweepArtifacts removes spooled PDFs older than maxAge and returns how
// many were deleted. Intended to run periodically to catch files whose
// scheduled removal never fired (e.g., after a crash).
func (s *Service) SweepArtifacts(maxAge time.Duration) (int, error) {
	return s.store.Sweep(maxAge)
}

// Close releases pooled converter resources, including any headless
// Chrome browsers.
func (s *Service) Close() error {
	return s.pool.Close()
}

// convert runs htmlContent through a pooled converter.
func (s *Service) convert(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error) {
	conv := s.pool.Acquire()
	defer s.pool.Release(conv)

	pdfBytes, err := conv.ToPDF(ctx, htmlContent, opts)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	return pdfBytes, nil
}

// spool writes pdfBytes to the artifact store and describes the result.
func (s *Service) spool(pdfBytes []byte, filename string) (*Document, error) {
	path, err := s.store.Write(pdfBytes)
	if err != nil {
		return nil, err
	}

	return &Document{
		Filename: filename,
		Path:     path,
		Size:     int64(len(pdfBytes)),
	}, nil
}

// reportFilename builds the download name for a structured report.
func reportFilename(rec ReportRecord, now time.Time) string {
	number := sanitizeFilename(orPlaceholder(rec.ReportNumber))
	return fmt.Sprintf("MSS_Report_%s_%s.pdf", number, now.Format("2006-01-02"))
}

// legacyFilename normalizes a client-supplied download name, generating
// a timestamped default when none was given.
func legacyFilename(filename string, now time.Time) string {
	if strings.TrimSpace(filename) == "" {
		return fmt.Sprintf("report_%s.pdf", now.Format("20060102_150405"))
	}
	return sanitizeFilename(filename)
}

// filenameUnsafe matches characters that would corrupt a download name:
// path separators and anything a Content-Disposition header or common
// filesystem rejects.
var filenameUnsafe = regexp.MustCompile(`[/\\:*?"<>|\x00-\x1f]`)

// sanitizeFilename replaces unsafe characters so the name survives both
// the HTTP header and the client's filesystem.
func sanitizeFilename(name string) string {
	return filenameUnsafe.ReplaceAllString(name, "-")
}
