// Package reportpdf turns site-visit reports into PDF documents using
// headless Chrome.
//
// # Quick Start
//
// Create a service, generate a report, and close when done:
//
//	svc, err := reportpdf.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer svc.Close()
//
//	doc, err := svc.GenerateReport(ctx, reportpdf.ReportRecord{
//	    ReportNumber: "RPT-2024-001",
//	    SiteName:     "Harbour Street Plant",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer svc.Release(doc)
//
// The returned Document points at a PDF in the spool directory. Release
// schedules its deletion once the file has been delivered.
//
// # Generation Modes
//
// GenerateReport renders a structured ReportRecord through the built-in
// report template: an A4 page with a header, a visit-details grid, free
// text sections, a photo grid, a signature block, and a page counter in
// the footer. Photos and signatures must already be inline data URIs;
// remote URLs are ignored so conversion never touches the network.
//
// GenerateHTML accepts pre-rendered HTML from older clients. Script
// tags are stripped and the fragment is wrapped in a minimal print
// stylesheet before conversion.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc, err := reportpdf.New(
//	    reportpdf.WithTimeout(2 * time.Minute),
//	    reportpdf.WithWorkers(4),
//	    reportpdf.WithLogoPath("assets/logo.png"),
//	    reportpdf.WithSpoolDir("/var/spool/reportpdf"),
//	)
//
// The logo is read once at startup and inlined into every report
// header; a missing logo is tolerated and simply omitted.
//
// # Spool Lifecycle
//
// Generated PDFs live in the spool directory until released. Release
// deletes them after a short grace period so an in-flight download can
// finish. SweepArtifacts removes leftovers from crashed runs and should
// be called periodically by the embedding process.
//
// # Browser Requirements
//
// Conversion drives a headless Chrome or Chromium. When none is
// installed, go-rod fetches its own Chromium build into
// ~/.cache/rod/browser on first use. Point ROD_BROWSER_BIN at an
// existing binary to skip that download. Inside containers and CI
// runners the Chrome sandbox cannot start; set ROD_NO_SANDBOX=1 there
// (CI=true is detected automatically).
package reportpdf
