package reportpdf

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/mss-eng/reportpdf/internal/assets"
	"github.com/mss-eng/reportpdf/internal/dateutil"
)

// reportRenderer assembles the printable HTML document for a report.
type reportRenderer interface {
	Render(ctx context.Context, rec ReportRecord) (string, error)
}

// Compile-time interface check
var _ reportRenderer = (*templateRenderer)(nil)

// reportData is the view model handed to the report template.
// All fields are display-ready: scalars defaulted, dates formatted,
// images filtered to inline data URIs.
type reportData struct {
	Style template.CSS
	Logo  template.URL

	ReportNumber  string
	VisitDate     string
	SiteName      string
	ContactPerson string
	Phone         string
	VisitType     string
	StartTime     string
	EndTime       string
	EmployeeName  string

	ProblemDescription  string
	SolutionDescription string
	Notes               string

	Photos       []template.URL
	ExtraPhotos  []template.URL
	OverflowNote string

	Signature template.URL
	SignedBy  string
	SignedAt  string
}

// templateRenderer implements reportRenderer with the embedded report
// template and stylesheet. The logo data URI is loaded once per process
// and shared by every render.
type templateRenderer struct {
	tmpl  *template.Template
	style template.CSS
	logo  template.URL
	now   func() time.Time
}

// newTemplateRenderer creates a templateRenderer using loader for the
// report template and stylesheet. Custom assets can fail at load or
// parse time, so errors surface to the caller instead of panicking.
func newTemplateRenderer(loader assets.AssetLoader, logoURI string, now func() time.Time) (*templateRenderer, error) {
	tmplContent, err := loader.LoadTemplate("report")
	if err != nil {
		return nil, fmt.Errorf("loading report template: %w", err)
	}

	tmpl, err := template.New("report").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing report template: %w", err)
	}

	style, err := loader.LoadStyle("report")
	if err != nil {
		return nil, fmt.Errorf("loading report style: %w", err)
	}

	return &templateRenderer{
		tmpl:  tmpl,
		style: template.CSS(style), // #nosec G203 -- operator-controlled stylesheet, not request input
		logo:  asDataURI(logoURI),
		now:   now,
	}, nil
}

// Render produces a standalone HTML document for the record.
// It never fails on malformed field values; only template execution
// errors are reported.
func (r *templateRenderer) Render(ctx context.Context, rec ReportRecord) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, r.buildData(rec)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderReport, err)
	}
	return buf.String(), nil
}

// buildData maps a raw record onto the display view model.
func (r *templateRenderer) buildData(rec ReportRecord) *reportData {
	data := &reportData{
		Style: r.style,
		Logo:  r.logo,

		ReportNumber:  orPlaceholder(rec.ReportNumber),
		SiteName:      orPlaceholder(rec.SiteName),
		ContactPerson: orPlaceholder(rec.ContactPerson),
		Phone:         orPlaceholder(rec.Phone),
		VisitType:     orPlaceholder(rec.VisitType),
		EmployeeName:  orPlaceholder(rec.EmployeeName),

		ProblemDescription:  orPlaceholder(rec.ProblemDescription),
		SolutionDescription: orPlaceholder(rec.SolutionDescription),
	}

	// Notes is the only optional section; when blank the whole section is
	// dropped instead of showing a placeholder.
	if strings.TrimSpace(rec.Notes) != "" {
		data.Notes = rec.Notes
	}

	// The header shows the visit date in long form; the grid repeats the
	// raw start and end timestamps compactly.
	data.VisitDate = formatOrPlaceholder(rec.StartTime, dateutil.FormatLong)
	data.StartTime = formatOrPlaceholder(rec.StartTime, dateutil.FormatShort)
	data.EndTime = formatOrPlaceholder(rec.EndTime, dateutil.FormatShort)

	photos := inlineImages(rec.Images)
	if len(photos) > maxGridPhotos {
		data.Photos = photos[:maxGridPhotos]
		data.ExtraPhotos = photos[maxGridPhotos:]
		data.OverflowNote = overflowNote(len(photos))
	} else {
		data.Photos = photos
	}

	if sig := asDataURI(rec.CustomerSignature); sig != "" {
		data.Signature = sig
		data.SignedBy = data.ContactPerson
		data.SignedAt = r.now().Format(dateutil.ShortFormat)
	}

	return data
}

// overflowNote describes photos moved off the main grid.
func overflowNote(total int) string {
	extra := total - maxGridPhotos
	if extra == 1 {
		return fmt.Sprintf("Showing %d of %d photos. 1 more on the following pages.", maxGridPhotos, total)
	}
	return fmt.Sprintf("Showing %d of %d photos. %d more on the following pages.", maxGridPhotos, total, extra)
}

// inlineImages keeps only values that render without a network fetch.
func inlineImages(values []string) []template.URL {
	var uris []template.URL
	for _, v := range values {
		if uri := asDataURI(v); uri != "" {
			uris = append(uris, uri)
		}
	}
	return uris
}

// asDataURI returns s as a trusted image URL when it is an inline data
// URI, and "" otherwise. Remote URLs are rejected so conversion stays
// fully offline.
func asDataURI(s string) template.URL {
	if strings.HasPrefix(s, "data:image/") {
		return template.URL(s) // #nosec G203 -- prefix-checked inline image, attribute-escaped by html/template
	}
	return ""
}

// orPlaceholder substitutes the standard placeholder for blank values.
func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholderValue
	}
	return s
}

// formatOrPlaceholder formats a timestamp for display, or returns the
// placeholder when the value is blank.
func formatOrPlaceholder(value string, format func(string) string) string {
	if strings.TrimSpace(value) == "" {
		return placeholderValue
	}
	return format(value)
}
