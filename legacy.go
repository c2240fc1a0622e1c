package reportpdf

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/mss-eng/reportpdf/internal/assets"
)

// legacyRenderer styles raw client HTML into a printable document.
type legacyRenderer interface {
	Render(ctx context.Context, htmlContent string) string
}

// Compile-time interface check
var _ legacyRenderer = (*legacyRendering)(nil)

// scriptTagPattern matches <script> elements including their content.
// Case-insensitive, and dot matches newlines for multi-line scripts.
var scriptTagPattern = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)

// legacyRendering wraps pre-rendered HTML fragments in a full document
// with the print stylesheet. Clients send whatever their UI produced;
// scripts are stripped, everything else passes through untouched.
type legacyRendering struct {
	style string
}

// newLegacyRendering creates a legacyRendering using loader for the
// print stylesheet.
func newLegacyRendering(loader assets.AssetLoader) (*legacyRendering, error) {
	style, err := loader.LoadStyle("legacy")
	if err != nil {
		return nil, fmt.Errorf("loading legacy style: %w", err)
	}
	return &legacyRendering{style: style}, nil
}

// Render strips script tags and wraps the content in a styled document.
// On a canceled context the input is returned unchanged; the following
// conversion step surfaces the context error.
func (l *legacyRendering) Render(ctx context.Context, htmlContent string) string {
	if ctx.Err() != nil {
		return htmlContent
	}

	stripped := scriptTagPattern.ReplaceAllString(htmlContent, "")

	var b strings.Builder
	b.Grow(len(stripped) + len(l.style) + 128)
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"UTF-8\">\n<style>\n")
	b.WriteString(l.style)
	b.WriteString("</style>\n</head>\n<body>\n")
	b.WriteString(stripped)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}
