package reportpdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrNoHTMLContent  = errors.New("No HTML content provided")
	ErrRenderReport   = errors.New("report template rendering failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Artifact store errors.
	ErrSpoolDir      = errors.New("spool directory unavailable")
	ErrArtifactWrite = errors.New("failed to write artifact")

	// ErrAssetsDir indicates the configured custom assets directory is
	// missing or unreadable.
	ErrAssetsDir = errors.New("assets directory unavailable")
)
