// Package dateutil renders client-supplied timestamps for display.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnparsableDate indicates a value no known layout matched.
var ErrUnparsableDate = errors.New("unparsable date")

// Display formats used across report sections.
const (
	// LongFormat spells out the weekday, e.g.
	// "Friday, 15 March 2024, 10:30:00 AM".
	LongFormat = "Monday, 2 January 2006, 3:04:05 PM"

	// ShortFormat is the compact day/month/year form, e.g.
	// "15/03/2024, 10:30:00 AM".
	ShortFormat = "02/01/2006, 3:04:05 PM"
)

// layouts are tried in order. Clients send ISO 8601 with varying
// precision; some omit the zone or the seconds entirely.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Parse interprets a client timestamp using the known layouts.
// Returns ErrUnparsableDate when no layout matches.
func Parse(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrUnparsableDate)
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsableDate, value)
}

// FormatLong renders value in LongFormat. Values that do not parse
// are returned verbatim so a malformed date never blocks a report.
func FormatLong(value string) string {
	return format(value, LongFormat)
}

// FormatShort renders value in ShortFormat, falling back to the
// verbatim input when parsing fails.
func FormatShort(value string) string {
	return format(value, ShortFormat)
}

func format(value, layout string) string {
	t, err := Parse(value)
	if err != nil {
		return value
	}
	return t.Format(layout)
}
