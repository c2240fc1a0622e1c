package reportpdf

import (
	"time"
)

// placeholderValue substitutes for report fields the client left empty.
const placeholderValue = "N/A"

// maxGridPhotos caps the number of photos rendered in the main grid.
// Remaining photos move to an appendix on the following pages.
const maxGridPhotos = 6

// Default service settings.
const (
	defaultTimeout      = 30 * time.Second
	defaultRemovalGrace = 5 * time.Second
)

// ReportRecord is a structured site-visit report submitted by a client.
// All string fields are optional; empty values render as a placeholder.
type ReportRecord struct {
	ReportNumber        string   `json:"reportNumber"`
	SiteName            string   `json:"siteName"`
	ContactPerson       string   `json:"contactPerson"`
	Phone               string   `json:"phone"`
	VisitType           string   `json:"visitType"`
	ProblemDescription  string   `json:"problemDescription"`
	SolutionDescription string   `json:"solutionDescription"`
	Notes               string   `json:"notes"`
	StartTime           string   `json:"startTime"` // ISO-ish timestamp, rendered leniently
	EndTime             string   `json:"endTime"`
	EmployeeName        string   `json:"employeeName"`
	Images              []string `json:"images"`            // data URIs
	CustomerSignature   string   `json:"customerSignature"` // data URI
}

// Document is a generated PDF spooled to disk.
// Call Service.Release once the file has been delivered.
type Document struct {
	Filename string // download name, sanitized
	Path     string // location in the spool directory
	Size     int64  // PDF size in bytes
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout   time.Duration
	workers   int
	logoPath  string
	spoolDir  string
	assetsDir string
	grace     time.Duration
	backend   string
}

// WithTimeout sets the per-conversion page load timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("reportpdf: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithWorkers sets the converter pool size. Zero means auto-size
// from GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(s *Service) {
		s.cfg.workers = n
	}
}

// WithLogoPath points the renderer at a logo image on disk.
// The logo is read once and inlined into every report header.
func WithLogoPath(path string) Option {
	return func(s *Service) {
		s.cfg.logoPath = path
	}
}

// WithSpoolDir sets the directory where generated PDFs are written.
func WithSpoolDir(dir string) Option {
	return func(s *Service) {
		s.cfg.spoolDir = dir
	}
}

// WithAssetsDir points the renderers at a directory of custom styles
// and templates. Files under <dir>/styles and <dir>/templates override
// the embedded assets of the same name; anything missing falls back to
// the embedded versions.
func WithAssetsDir(dir string) Option {
	return func(s *Service) {
		s.cfg.assetsDir = dir
	}
}

// WithRemovalGrace sets how long a released document stays on disk
// before deletion. Panics if d < 0.
func WithRemovalGrace(d time.Duration) Option {
	if d < 0 {
		panic("reportpdf: WithRemovalGrace duration must not be negative")
	}
	return func(s *Service) {
		s.cfg.grace = d
	}
}

// WithBackend selects the rendering backend, "chrome" (default) or
// "weasyprint". Panics on an unknown name.
func WithBackend(name string) Option {
	if name != backendChrome && name != backendWeasyPrint {
		panic("reportpdf: WithBackend: unknown backend " + name)
	}
	return func(s *Service) {
		s.cfg.backend = name
	}
}

