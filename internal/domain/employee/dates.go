package employee

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Accepted textual date layouts for imported spreadsheets, tried in order.
var importDateLayouts = []string{
	"02-01-2006", // 15-12-1988
	"02/01/2006", // 15/12/1988
	"2006-01-02", // 1988-12-15
	"01/02/2006", // 12/15/1988
}

// Tokens treated as an absent date in imported cells.
var blankDateTokens = map[string]struct{}{
	"":     {},
	"na":   {},
	"n/a":  {},
	"null": {},
	"none": {},
	"-":    {},
	"--":   {},
	"---":  {},
}

// Unicode hyphen variants, slashes and dots all normalize to '-'.
var dateSeparators = regexp.MustCompile(`[\x{2010}-\x{2015}\x{2212}/.]`)

// ParseImportDate parses a spreadsheet date cell. Blank-sentinel tokens
// return (nil, nil); unparseable values name the accepted layouts.
func ParseImportDate(value string) (*time.Time, error) {
	s := strings.TrimSpace(value)
	if _, blank := blankDateTokens[strings.ToLower(s)]; blank {
		return nil, nil
	}

	normalized := dateSeparators.ReplaceAllString(s, "-")
	for _, layout := range importDateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return &parsed, nil
		}
		normLayout := strings.NewReplacer("/", "-", ".", "-").Replace(layout)
		if parsed, err := time.Parse(normLayout, normalized); err == nil {
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("date %q did not match accepted formats: %s", value, strings.Join(importDateLayouts, ", "))
}

// FormatExportDate renders dates for export, ISO or empty.
func FormatExportDate(value *time.Time) string {
	if value == nil || value.IsZero() {
		return ""
	}
	return value.Format("2006-01-02")
}
